package shamir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned when threshold, share count or secret are out of range.
	ErrInvalidParameters = errors.New("shamir: invalid parameters")

	// ErrInvalidThreshold is returned when threshold is outside [1, 255].
	ErrInvalidThreshold = fmt.Errorf("%w: threshold must be between 1 and %d", ErrInvalidParameters, MaxShares)

	// ErrInvalidTotal is returned when total shares is less than threshold or greater than 255.
	ErrInvalidTotal = fmt.Errorf("%w: total shares must be between threshold and %d", ErrInvalidParameters, MaxShares)

	// ErrEmptySecret is returned when trying to split an empty secret.
	ErrEmptySecret = fmt.Errorf("%w: secret cannot be empty", ErrInvalidParameters)

	// ErrNilRandom is returned when no randomness source is given.
	ErrNilRandom = fmt.Errorf("%w: randomness source is nil", ErrInvalidParameters)

	// ErrDuplicateShare is returned when two shares carry the same X coordinate.
	ErrDuplicateShare = errors.New("shamir: duplicate share X coordinate")

	// ErrInconsistentShares is returned when shares do not belong to one well-formed set.
	ErrInconsistentShares = errors.New("shamir: inconsistent shares")

	// ErrInsufficientShares is returned when not enough shares are provided for reconstruction.
	ErrInsufficientShares = fmt.Errorf("%w: insufficient shares for reconstruction", ErrInconsistentShares)

	// ErrMalformedShare is returned when share data is empty or truncated.
	ErrMalformedShare = errors.New("shamir: malformed share")

	// ErrInvalidShareX is returned when share X coordinate is zero.
	ErrInvalidShareX = fmt.Errorf("%w: X coordinate must be non-zero", ErrMalformedShare)

	// ErrDealerExhausted is returned when every non-zero X coordinate has been used.
	ErrDealerExhausted = errors.New("shamir: dealer exhausted all X coordinates")

	// ErrVerificationFailed is returned when a share does not lie on the polynomials of the set.
	ErrVerificationFailed = errors.New("shamir: share verification failed")
)
