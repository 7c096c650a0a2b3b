package shamir

import "fmt"

// Verify checks that all shares lie on the same polynomials of degree threshold-1.
//
// The first threshold shares define the polynomials; every further share must
// match their value at its X coordinate. With exactly threshold shares any
// well-formed set passes, so callers need at least threshold+1 shares to
// detect tampering.
func Verify(shares []Share, threshold int) error {
	if threshold < 1 || threshold > MaxShares {
		return ErrInvalidThreshold
	}

	if len(shares) < threshold {
		return ErrInsufficientShares
	}

	xs, secretLen, err := checkShares(shares)
	if err != nil {
		return err
	}

	base := shares[:threshold]

	for _, extra := range shares[threshold:] {
		weights, err := lagrangeBasis(xs[:threshold], extra.X)
		if err != nil {
			return err
		}

		for i := range secretLen {
			if combine(weights, base, i) != extra.Y[i] {
				return fmt.Errorf("%w: share %d disagrees at byte %d", ErrVerificationFailed, extra.X, i)
			}
		}
	}

	return nil
}
