//go:build unix

package cli

import "golang.org/x/sys/unix"

// lockMemory keeps b out of swap until the returned function runs.
// The returned function also wipes b.
func lockMemory(b []byte) (func(), error) {
	if len(b) == 0 {
		return func() {}, nil
	}

	if err := unix.Mlock(b); err != nil {
		return func() { clear(b) }, err
	}

	return func() {
		clear(b)
		_ = unix.Munlock(b)
	}, nil
}
