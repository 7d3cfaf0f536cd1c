// Package policy centralizes the fixed numeric limits spec.md treats as
// tool policy rather than algorithmic necessity, the way the teacher's
// internal/config/defaults.go centralizes its application defaults. Unlike
// that package, there is no loader: spec.md forbids reading environment
// variables or config files from the core, so these are plain constants.
package policy

const (
	// MinSecretLen is the smallest accepted secret length in bytes.
	MinSecretLen = 1

	// MaxSecretLen is the split-path ceiling on secret length in bytes.
	MaxSecretLen = 64

	// MinThreshold is the smallest accepted K.
	MinThreshold = 2

	// MaxShares is the largest accepted N, bounded by the number of
	// nonzero elements of GF(2^8) available as distinct share indices.
	MaxShares = 255

	// EntropyFloorDistinctBytes is the minimum number of distinct byte
	// values a 32-byte CSPRNG sample must contain to pass the startup
	// self-check.
	EntropyFloorDistinctBytes = 16

	// EntropySampleSize is the size in bytes of each CSPRNG self-check
	// sample.
	EntropySampleSize = 32

	// Base62MinLength is the minimum Base62-encoded length a padded share
	// record must reach.
	Base62MinLength = 250

	// Base62Alphabet is the 62-character alphabet used for encoding,
	// ordered so digit value i maps to Base62Alphabet[i].
	Base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// ShareLabelPrefix is the literal label token recognized (and
	// fuzzy-matched) before a share's payload, e.g. "Share 3: <data>".
	ShareLabelPrefix = "Share"

	// ShareLabelMaxEditDistance bounds how many single-character edits a
	// candidate label may be from ShareLabelPrefix and still be treated
	// as the label rather than as share payload.
	ShareLabelMaxEditDistance = 2
)
