package shamir

import "iter"

// Dealer produces the shares of one secret on demand.
//
// All random coefficients are drawn when the dealer is created, so every share
// it hands out, in any order and at any time, lies on the same polynomials.
// X coordinates are assigned sequentially starting at 1.
//
// A Dealer is not safe for concurrent use.
type Dealer struct {
	polys *polynomials
	next  int
}

// Next returns the share for the next unused X coordinate.
func (d *Dealer) Next() (Share, error) {
	if d.next > MaxShares {
		return Share{}, ErrDealerExhausted
	}

	x := byte(d.next)
	d.next++

	return Share{X: x, Y: d.polys.evaluateAll(x)}, nil
}

// Take returns the next n shares.
func (d *Dealer) Take(n int) ([]Share, error) {
	if n < 0 || n > d.Remaining() {
		return nil, ErrInvalidTotal
	}

	shares := make([]Share, n)
	for i := range shares {
		share, err := d.Next()
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}

	return shares, nil
}

// All returns an iterator over the remaining shares.
func (d *Dealer) All() iter.Seq[Share] {
	return func(yield func(Share) bool) {
		for {
			share, err := d.Next()
			if err != nil || !yield(share) {
				return
			}
		}
	}
}

// Share evaluates the polynomials at x without advancing the dealer.
func (d *Dealer) Share(x byte) (Share, error) {
	if x == 0 {
		return Share{}, ErrInvalidShareX
	}
	return Share{X: x, Y: d.polys.evaluateAll(x)}, nil
}

// Remaining returns how many shares Next can still produce.
func (d *Dealer) Remaining() int {
	return MaxShares - d.next + 1
}

// Threshold returns the number of shares required to recover the secret.
func (d *Dealer) Threshold() int {
	return d.polys.threshold
}
