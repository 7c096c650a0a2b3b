package shamir

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

// Share is one point of every per-byte polynomial of a secret.
// Binary format: [x, y_0, y_1, ..., y_n], one byte longer than the secret.
type Share struct {
	// X is the x-coordinate shared by all byte positions, must be non-zero.
	X byte
	// Y holds one polynomial value per secret byte.
	Y []byte
}

// Bytes serializes the share as [x] followed by the Y values.
func (s Share) Bytes() []byte {
	buf := make([]byte, len(s.Y)+1)
	buf[0] = s.X
	copy(buf[1:], s.Y)
	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Share) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Share) UnmarshalBinary(data []byte) error {
	share, err := ParseShare(data)
	if err != nil {
		return err
	}
	*s = share
	return nil
}

// MarshalText encodes the share as base64 so it can be embedded in text documents.
func (s Share) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a base64 share.
func (s *Share) UnmarshalText(text []byte) error {
	share, err := ParseShareString(string(text))
	if err != nil {
		return err
	}
	*s = share
	return nil
}

// String returns the share as a base64-encoded string.
func (s Share) String() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// ParseShare deserializes a share from its binary form. The input is copied.
func ParseShare(data []byte) (Share, error) {
	if len(data) < 2 {
		return Share{}, ErrMalformedShare
	}
	if data[0] == 0 {
		return Share{}, ErrInvalidShareX
	}

	y := make([]byte, len(data)-1)
	copy(y, data[1:])

	return Share{X: data[0], Y: y}, nil
}

// ParseShareString deserializes a share from a base64-encoded string.
func ParseShareString(str string) (Share, error) {
	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return Share{}, errors.Join(ErrMalformedShare, err)
	}
	return ParseShare(data)
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	y := make([]byte, len(s.Y))
	copy(y, s.Y)
	return Share{X: s.X, Y: y}
}

// Equal checks if two shares are equal in constant time.
func (s Share) Equal(other Share) bool {
	if len(s.Y) != len(other.Y) {
		return false
	}
	return subtle.ConstantTimeByteEq(s.X, other.X)&subtle.ConstantTimeCompare(s.Y, other.Y) == 1
}
