// Package validate enforces spec.md §4.7's parameter, secret, and
// share-batch rules, returning shamirerr.Error values classified by kind
// so the facade never has to reinterpret a plain error string.
package validate

import (
	"strconv"

	"github.com/coldforge/shamirvault/internal/policy"
	"github.com/coldforge/shamirvault/internal/shamir"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

// Parameters checks (n, k, secretLen) against spec.md §4.4's ranges.
func Parameters(n, k, secretLen int) error {
	if k < policy.MinThreshold {
		return shamirerr.New(shamirerr.KindInvalidParameters, "threshold k must be at least 2",
			"k", strconv.Itoa(k))
	}
	if n < k {
		return shamirerr.New(shamirerr.KindInvalidParameters, "n must be at least k",
			"n", strconv.Itoa(n), "k", strconv.Itoa(k))
	}
	if n > policy.MaxShares {
		return shamirerr.New(shamirerr.KindInvalidParameters, "n cannot exceed 255",
			"n", strconv.Itoa(n))
	}
	if secretLen < policy.MinSecretLen || secretLen > policy.MaxSecretLen {
		return shamirerr.New(shamirerr.KindInvalidSecret, "secret length out of range",
			"length", strconv.Itoa(secretLen))
	}
	return nil
}

// SecretBytes checks the secret content rules: non-empty, at or under the
// policy ceiling, no embedded NUL, and no ASCII control characters other
// than tab/newline/carriage-return. Full Unicode (as UTF-8) is accepted.
func SecretBytes(b []byte) error {
	if len(b) < policy.MinSecretLen {
		return shamirerr.New(shamirerr.KindInvalidSecret, "secret cannot be empty")
	}
	if len(b) > policy.MaxSecretLen {
		return shamirerr.New(shamirerr.KindInvalidSecret, "secret exceeds maximum length",
			"length", strconv.Itoa(len(b)), "max", strconv.Itoa(policy.MaxSecretLen))
	}
	for _, c := range b {
		if c == 0x00 {
			return shamirerr.New(shamirerr.KindInvalidSecret, "secret contains an embedded NUL byte")
		}
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			return shamirerr.New(shamirerr.KindInvalidSecret, "secret contains a disallowed control character",
				"byte", strconv.Itoa(int(c)))
		}
	}
	return nil
}

// ShareBatch checks the decoded-share invariants Reconstruct depends on:
// all x distinct, all Y equal in length, and at least two shares present.
// Exact duplicate (x, Y) pairs are tolerated and counted once; a shared x
// with differing Y is reported as InconsistentShares here because that is
// the first point at which both copies are visible together.
func ShareBatch(shares []shamir.Share) error {
	if len(shares) < 2 {
		return shamirerr.New(shamirerr.KindInsufficientShares, "at least two distinct shares are required",
			"have", strconv.Itoa(len(shares)))
	}

	seenX := make(map[byte][]byte, len(shares))
	wantLen := len(shares[0].Y)
	for _, s := range shares {
		if prevY, ok := seenX[s.X]; ok {
			if !bytesEqual(prevY, s.Y) {
				return shamirerr.New(shamirerr.KindInconsistentShares, "two shares share an x-coordinate but differ in value",
					"x", strconv.Itoa(int(s.X)))
			}
			continue
		}
		seenX[s.X] = s.Y

		if len(s.Y) != wantLen {
			return shamirerr.New(shamirerr.KindInconsistentShareLengths, "decoded shares differ in length",
				"x", strconv.Itoa(int(s.X)))
		}
	}

	if len(seenX) < 2 {
		return shamirerr.New(shamirerr.KindInsufficientShares, "fewer than two distinct shares after deduplication",
			"distinct", strconv.Itoa(len(seenX)))
	}

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
