// Package csprng gates access to the cryptographically secure random
// source polynomial coefficients are drawn from, and implements the
// startup/pre-split self-check spec.md §4.2 requires: this is not a
// statistical test, it exists to catch catastrophic failure (stuck output,
// a zeroed source, a disabled syscall) with minimal ceremony.
package csprng

import (
	"crypto/rand"
	"io"
	"strconv"
	"sync"

	"github.com/coldforge/shamirvault/internal/policy"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

var (
	mu     sync.Mutex
	source io.Reader = rand.Reader
	locked bool
)

// SetSource replaces the randomness source. Intended for tests only; once
// Lock has been called (as production Init does, after binding to the OS
// source) further calls fail so a compromised or misconfigured host cannot
// quietly swap in a weak source at runtime.
func SetSource(r io.Reader) error {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		return shamirerr.New(shamirerr.KindInternal, "randomness source is locked")
	}
	source = r
	return nil
}

// Lock freezes the current source against further SetSource calls.
func Lock() {
	mu.Lock()
	defer mu.Unlock()
	locked = true
}

// Unlock is exposed for test teardown only, to restore the default source
// and allow a subsequent test to call SetSource again.
func Unlock() {
	mu.Lock()
	defer mu.Unlock()
	locked = false
	source = rand.Reader
}

// RandomBytes returns n bytes read from the current source. No user-space
// PRNG, no seeding, no fallback: a short or errored read fails hard.
func RandomBytes(n int) ([]byte, error) {
	mu.Lock()
	r := source
	mu.Unlock()

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, shamirerr.Wrap(shamirerr.KindRandomnessUnavailable, "failed to read secure random bytes", err)
	}
	return b, nil
}

// Verify draws the samples spec.md §4.2 specifies and fails with
// RandomnessUnavailable if any check does not hold. It must run at startup
// and before every split.
func Verify() error {
	samples := make([][]byte, 3)
	for i := range samples {
		b, err := RandomBytes(policy.EntropySampleSize)
		if err != nil {
			return err
		}
		samples[i] = b
	}

	for i := 0; i < len(samples); i++ {
		for j := i + 1; j < len(samples); j++ {
			if bytesEqual(samples[i], samples[j]) {
				return shamirerr.New(shamirerr.KindRandomnessUnavailable, "two independent samples were identical")
			}
		}
	}

	for i, s := range samples {
		if distinctByteValues(s) < policy.EntropyFloorDistinctBytes {
			return shamirerr.New(shamirerr.KindRandomnessUnavailable, "sample did not clear the entropy floor",
				"sample", strconv.Itoa(i))
		}
	}

	single, err := RandomBytes(1)
	if err != nil {
		return shamirerr.Wrap(shamirerr.KindRandomnessUnavailable, "single-byte draw failed", err)
	}
	// single[0] is a byte, so it is trivially in [0,255]; the draw
	// succeeding without error is the actual check.
	_ = single[0]

	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func distinctByteValues(b []byte) int {
	var seen [256]bool
	count := 0
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			count++
		}
	}
	return count
}

