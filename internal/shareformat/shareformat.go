// Package shareformat implements the two wire formats of spec.md §4.6: the
// legacy hex line ("XX-HHHH...") and the padded Base62 record. It is the
// only package that knows either text encoding; internal/shamir operates
// purely on decoded Share values.
package shareformat

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/coldforge/shamirvault/internal/policy"
	"github.com/coldforge/shamirvault/internal/shamir"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

// Format identifies which wire format a line was classified as.
type Format int

const (
	FormatUnknown Format = iota
	FormatLegacy
	FormatBase62
)

var errOutOfAlphabet = errors.New("shareformat: byte outside base62 alphabet")

var legacyPattern = regexp.MustCompile(`^[0-9a-f]{2}-[0-9a-f]{2,128}$`)

var labelPattern = regexp.MustCompile(`^(\S+)\s+\d+:\s*(.*)$`)

// Classify reports which format a preprocessed line matches, without
// decoding it. A line that is not well-formed in either format is
// FormatUnknown.
func Classify(line string) Format {
	if legacyPattern.MatchString(line) {
		return FormatLegacy
	}
	if len(line) >= policy.Base62MinLength && isBase62(line) {
		return FormatBase62
	}
	return FormatUnknown
}

func isBase62(s string) bool {
	for i := 0; i < len(s); i++ {
		if digitValue[s[i]] < 0 {
			return false
		}
	}
	return true
}

// StripLabel removes an optional "Share N:" prefix. The label word is
// matched leniently: it is accepted if it is "Share" or within
// policy.ShareLabelMaxEditDistance edits of it (case-insensitive), per
// spec.md §4.6's tolerance for operator typos. A line without a
// recognizable label is returned unchanged.
func StripLabel(line string) string {
	m := labelPattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	word := strings.ToLower(m[1])
	if levenshtein.ComputeDistance(word, strings.ToLower(policy.ShareLabelPrefix)) > policy.ShareLabelMaxEditDistance {
		return line
	}
	return strings.TrimSpace(m[2])
}

// DecodeLine preprocesses (trims, strips an optional label), classifies,
// and decodes a single share line into a shamir.Share. Blank lines (after
// trimming) are reported via the second return value so callers can skip
// them without treating them as malformed.
func DecodeLine(line string) (share shamir.Share, blank bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return shamir.Share{}, true, nil
	}

	payload := StripLabel(trimmed)

	switch Classify(payload) {
	case FormatLegacy:
		s, err := decodeLegacy(payload)
		return s, false, err
	case FormatBase62:
		s, err := decodeBase62(payload)
		return s, false, err
	default:
		return shamir.Share{}, false, shamirerr.New(shamirerr.KindMalformedShare,
			"share line does not match a known format")
	}
}

// EncodeLegacy renders a share in the legacy "XX-HHHH..." hex format.
func EncodeLegacy(x byte, y []byte) string {
	return fmt.Sprintf("%02x-%x", x, y)
}

func decodeLegacy(line string) (shamir.Share, error) {
	if !legacyPattern.MatchString(line) {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"legacy share does not match XX-HHHH.. pattern")
	}

	xPart, yPart, _ := strings.Cut(line, "-")

	xBytes, err := hex.DecodeString(xPart)
	if err != nil {
		return shamir.Share{}, shamirerr.Wrap(shamirerr.KindMalformedShare,
			"legacy x-coordinate is not valid hex", err)
	}
	if xBytes[0] == 0 {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"legacy x-coordinate must not be zero")
	}

	y, err := hex.DecodeString(yPart)
	if err != nil {
		return shamir.Share{}, shamirerr.Wrap(shamirerr.KindMalformedShare,
			"legacy share value is not valid hex", err)
	}

	return shamir.Share{X: xBytes[0], Y: y}, nil
}
