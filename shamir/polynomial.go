package shamir

import (
	"fmt"
	"io"

	"github.com/vitalvas/sharks/gf256"
)

// polynomials holds one polynomial per secret byte in a flat arena.
// Row i spans coefficients[i*threshold : (i+1)*threshold] and its first
// coefficient is secret[i].
type polynomials struct {
	coefficients []byte
	threshold    int
}

// newPolynomials draws threshold-1 random coefficients for every byte of secret.
func newPolynomials(secret []byte, threshold int, rng io.Reader) (*polynomials, error) {
	degree := threshold - 1
	coefficients := make([]byte, len(secret)*threshold)

	var random []byte
	if degree > 0 {
		random = make([]byte, len(secret)*degree)
		if _, err := io.ReadFull(rng, random); err != nil {
			return nil, fmt.Errorf("shamir: read coefficients: %w", err)
		}
		defer clear(random)
	}

	for i, b := range secret {
		row := coefficients[i*threshold : (i+1)*threshold]
		row[0] = b
		copy(row[1:], random[i*degree:(i+1)*degree])
	}

	return &polynomials{coefficients: coefficients, threshold: threshold}, nil
}

// size returns the number of polynomials, equal to the secret length.
func (p *polynomials) size() int {
	return len(p.coefficients) / p.threshold
}

func (p *polynomials) row(i int) []byte {
	return p.coefficients[i*p.threshold : (i+1)*p.threshold]
}

// evaluateAll evaluates every polynomial at x.
func (p *polynomials) evaluateAll(x byte) []byte {
	ys := make([]byte, p.size())
	for i := range ys {
		ys[i] = evaluate(p.row(i), x)
	}
	return ys
}

// evaluate evaluates the polynomial at x using Horner's method.
func evaluate(coefficients []byte, x byte) byte {
	if x == 0 {
		return coefficients[0]
	}

	degree := len(coefficients) - 1
	result := coefficients[degree]

	for i := degree - 1; i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), coefficients[i])
	}

	return result
}

// lagrangeBasis returns the weights L_j(at) for the given distinct X
// coordinates, so that f(at) = sum of weights[j] * y_j.
//
// L_j(at) = prod over m != j of (at - x_m) / (x_j - x_m)
func lagrangeBasis(xs []byte, at byte) ([]byte, error) {
	weights := make([]byte, len(xs))

	for j := range xs {
		var basis byte = 1
		for m := range xs {
			if m == j {
				continue
			}
			term, err := gf256.Div(gf256.Sub(at, xs[m]), gf256.Sub(xs[j], xs[m]))
			if err != nil {
				return nil, err
			}
			basis = gf256.Mul(basis, term)
		}
		weights[j] = basis
	}

	return weights, nil
}

// combine computes the weighted sum of the pos-th Y value of every share.
func combine(weights []byte, shares []Share, pos int) byte {
	var result byte
	for j, share := range shares {
		result = gf256.Add(result, gf256.Mul(weights[j], share.Y[pos]))
	}
	return result
}
