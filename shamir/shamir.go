// Package shamir implements Shamir's Secret Sharing over GF(2^8).
//
// Every byte of the secret is shared independently: it becomes the constant
// term of a random polynomial of degree threshold-1, and share number x
// carries the value of each of those polynomials at x. Any threshold shares
// recover the secret by Lagrange interpolation at zero, while fewer reveal
// nothing about it.
package shamir

import (
	"crypto/rand"
	"io"
)

// MaxShares is the largest number of shares, bounded by the non-zero field elements.
const MaxShares = 255

// Scheme fixes the threshold of a sharing. It is immutable and safe for concurrent use.
type Scheme struct {
	threshold int
}

// NewScheme returns a scheme requiring threshold shares for recovery.
func NewScheme(threshold int) (*Scheme, error) {
	if threshold < 1 || threshold > MaxShares {
		return nil, ErrInvalidThreshold
	}
	return &Scheme{threshold: threshold}, nil
}

// Threshold returns the minimum number of shares needed for recovery.
func (s *Scheme) Threshold() int {
	return s.threshold
}

// Dealer returns a dealer for secret backed by crypto/rand.
func (s *Scheme) Dealer(secret []byte) (*Dealer, error) {
	return s.DealerWithRand(secret, rand.Reader)
}

// DealerWithRand returns a dealer for secret drawing coefficients from rng.
// rng must be a cryptographically secure source.
func (s *Scheme) DealerWithRand(secret []byte, rng io.Reader) (*Dealer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	polys, err := newPolynomials(secret, s.threshold, rng)
	if err != nil {
		return nil, err
	}

	return &Dealer{polys: polys, next: 1}, nil
}

// Recover reconstructs the secret, refusing sets smaller than the threshold.
func (s *Scheme) Recover(shares []Share) ([]byte, error) {
	if len(shares) < s.threshold {
		return nil, ErrInsufficientShares
	}
	return Recover(shares)
}

// Split divides secret into total shares, any threshold of which recover it.
// Coefficients are drawn from crypto/rand.
//
// Parameters:
//   - secret: the secret data to split (any non-zero length)
//   - threshold: minimum shares required for reconstruction (1-255)
//   - total: total shares to generate (threshold-255)
func Split(secret []byte, threshold, total int) ([]Share, error) {
	return Generate(secret, threshold, total, rand.Reader)
}

// Generate is like Split but draws coefficients from rng.
// Parameters are validated before anything is read from rng.
// Shares get the X coordinates 1, 2, ..., total.
func Generate(secret []byte, threshold, total int, rng io.Reader) ([]Share, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	if threshold < 1 || threshold > MaxShares {
		return nil, ErrInvalidThreshold
	}

	if total < threshold || total > MaxShares {
		return nil, ErrInvalidTotal
	}

	scheme := &Scheme{threshold: threshold}

	dealer, err := scheme.DealerWithRand(secret, rng)
	if err != nil {
		return nil, err
	}

	return dealer.Take(total)
}

// Recover reconstructs the secret from shares using Lagrange interpolation at zero.
//
// At least two shares with distinct X coordinates and equal-length Y values
// are required. The original threshold is not encoded in the shares: given
// fewer shares than the threshold, Recover returns a wrong secret without
// reporting an error.
func Recover(shares []Share) ([]byte, error) {
	if len(shares) < 2 {
		return nil, ErrInsufficientShares
	}

	xs, secretLen, err := checkShares(shares)
	if err != nil {
		return nil, err
	}

	weights, err := lagrangeBasis(xs, 0)
	if err != nil {
		return nil, err
	}

	secret := make([]byte, secretLen)
	for i := range secret {
		secret[i] = combine(weights, shares, i)
	}

	return secret, nil
}

// checkShares validates a share set and returns its X coordinates and Y length.
func checkShares(shares []Share) ([]byte, int, error) {
	if len(shares) == 0 {
		return nil, 0, ErrInsufficientShares
	}

	secretLen := len(shares[0].Y)
	xs := make([]byte, len(shares))

	var seen [256]bool
	for i, share := range shares {
		if share.X == 0 {
			return nil, 0, ErrInvalidShareX
		}
		if len(share.Y) == 0 {
			return nil, 0, ErrMalformedShare
		}
		if len(share.Y) != secretLen {
			return nil, 0, ErrInconsistentShares
		}
		if seen[share.X] {
			return nil, 0, ErrDuplicateShare
		}
		seen[share.X] = true
		xs[i] = share.X
	}

	return xs, secretLen, nil
}
