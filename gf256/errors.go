package gf256

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by zero or inverting zero.
	ErrDivisionByZero = errors.New("gf256: division by zero")

	// ErrLogOfZero is returned when taking the logarithm of zero.
	ErrLogOfZero = errors.New("gf256: logarithm of zero is undefined")
)
