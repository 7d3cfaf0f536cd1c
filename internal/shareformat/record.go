package shareformat

import (
	"github.com/coldforge/shamirvault/internal/policy"
	"github.com/coldforge/shamirvault/internal/shamir"
	"github.com/coldforge/shamirvault/pkg/shamirerr"
)

// maxPadAttempts bounds the retry loop in EncodeBase62. For a nonzero x
// the first attempt already reaches the minimum length (see
// estimatePadLen); the loop is a backstop against an infinite loop should
// the estimate ever fall short.
const maxPadAttempts = 8

// EncodeBase62 renders a share as the padded Base62 record of spec.md
// §4.6/§9: [x][L][Y...][pad...][padLen], encoded as a big-endian integer
// in Base62, padded so the encoded string reaches at least
// policy.Base62MinLength characters. randSource supplies the padding
// bytes; callers pass the same CSPRNG used for coefficient generation.
func EncodeBase62(x byte, y []byte, randSource func(int) ([]byte, error)) (string, error) {
	if len(y) < 1 || len(y) > 255 {
		return "", shamirerr.New(shamirerr.KindInternal, "share value length out of encodable range")
	}

	padLen := estimatePadLen(len(y))

	for attempt := 0; attempt < maxPadAttempts; attempt++ {
		if padLen > 255 {
			return "", shamirerr.New(shamirerr.KindInternal, "base62 padding length overflowed one byte")
		}

		pad, err := randSource(padLen)
		if err != nil {
			return "", shamirerr.Wrap(shamirerr.KindRandomnessUnavailable, "failed to draw base62 padding bytes", err)
		}

		buf := make([]byte, 0, 2+len(y)+padLen+1)
		buf = append(buf, x, byte(len(y)))
		buf = append(buf, y...)
		buf = append(buf, pad...)
		buf = append(buf, byte(padLen))

		encoded := base62Encode(buf)
		if len(encoded) >= policy.Base62MinLength {
			return encoded, nil
		}
		padLen++
	}

	return "", shamirerr.New(shamirerr.KindInternal, "could not reach minimum base62 length")
}

// estimatePadLen returns the smallest P such that the Base62 encoding of
// a (2+secretByteLen+P)-byte buffer filled with the maximum possible byte
// value (0xFF) reaches policy.Base62MinLength characters. The real record
// is one byte longer than that probe (it ends with the pad-length byte)
// and starts with a nonzero x, so its integer value exceeds the probe's
// and its encoding is never shorter; EncodeBase62's retry loop is only a
// backstop.
func estimatePadLen(secretByteLen int) int {
	for p := 0; ; p++ {
		n := 2 + secretByteLen + p
		probe := make([]byte, n)
		for i := range probe {
			probe[i] = 0xFF
		}
		if len(base62Encode(probe)) >= policy.Base62MinLength {
			return p
		}
	}
}

func decodeBase62(payload string) (shamir.Share, error) {
	if len(payload) < policy.Base62MinLength {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 share is shorter than the minimum record length")
	}

	buf, err := base62Decode(payload)
	if err != nil {
		return shamir.Share{}, shamirerr.Wrap(shamirerr.KindMalformedShare,
			"base62 share contains a character outside the alphabet", err)
	}

	if len(buf) < 4 {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 record is too short to contain a share")
	}

	padLen := int(buf[len(buf)-1])
	core := buf[:len(buf)-1]
	if padLen > len(core) {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 record's declared padding length exceeds the record")
	}

	stripped := core[:len(core)-padLen]
	if len(stripped) < 2 {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 record is too short once padding is removed")
	}

	x := stripped[0]
	l := int(stripped[1])
	if x == 0 {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 x-coordinate must not be zero")
	}
	if l < policy.MinSecretLen || l > policy.MaxSecretLen {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 record declares an out-of-range value length")
	}
	if len(stripped) != 2+l {
		return shamir.Share{}, shamirerr.New(shamirerr.KindMalformedShare,
			"base62 record's declared length does not match its contents")
	}

	y := make([]byte, l)
	copy(y, stripped[2:])
	return shamir.Share{X: x, Y: y}, nil
}
