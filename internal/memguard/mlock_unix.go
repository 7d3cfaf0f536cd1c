//go:build !windows

package memguard

import (
	"golang.org/x/sys/unix"
)

// mlock attempts to lock the memory region containing data so it is less
// likely to be paged to swap. Returns true on success.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a previously locked region. Errors are ignored: by the
// time this runs the buffer has already been wiped, so there is nothing
// left to protect.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
