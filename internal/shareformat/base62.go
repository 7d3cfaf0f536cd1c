package shareformat

import "github.com/coldforge/shamirvault/internal/policy"

// digitValue maps an alphabet byte to its base62 digit value, or -1 if the
// byte is not part of the alphabet. Built once from policy.Base62Alphabet
// so the alphabet has exactly one source of truth.
var digitValue = buildDigitValue()

func buildDigitValue() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(policy.Base62Alphabet); i++ {
		table[policy.Base62Alphabet[i]] = int8(i)
	}
	return table
}

// base62Encode converts buf, interpreted as a big-endian unsigned integer,
// to a Base62 string. Leading zero bytes are preserved by prefixing one
// '0' character per leading zero byte, per spec.md §4.6/§9, since a
// positional big-integer encoding would otherwise silently drop them.
//
// This is hand-rolled long division by 62 over a byte-vector
// representation rather than a math/big- or third-party-bignum-backed
// implementation; see DESIGN.md for why.
func base62Encode(buf []byte) string {
	leadingZeros := 0
	for leadingZeros < len(buf) && buf[leadingZeros] == 0 {
		leadingZeros++
	}

	digits := encodeDigits(buf[leadingZeros:])

	out := make([]byte, 0, leadingZeros+len(digits))
	for i := 0; i < leadingZeros; i++ {
		out = append(out, policy.Base62Alphabet[0])
	}
	for _, d := range digits {
		out = append(out, policy.Base62Alphabet[d])
	}
	return string(out)
}

// encodeDigits returns the base62 digit values (0-61) of data interpreted
// as a big-endian unsigned integer, most significant digit first. Returns
// no digits (a zero-length slice) for an empty or all-zero input.
func encodeDigits(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	num := append([]byte(nil), data...)
	var digitsLSBFirst []byte

	for !allZero(num) {
		remainder := 0
		for i := 0; i < len(num); i++ {
			acc := remainder*256 + int(num[i])
			num[i] = byte(acc / 62)
			remainder = acc % 62
		}
		digitsLSBFirst = append(digitsLSBFirst, byte(remainder))
	}

	// reverse to most-significant-first
	digits := make([]byte, len(digitsLSBFirst))
	for i, d := range digitsLSBFirst {
		digits[len(digits)-1-i] = d
	}
	return digits
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// base62Decode reverses base62Encode. It returns an error if s contains a
// byte outside the alphabet.
func base62Decode(s string) ([]byte, error) {
	leadingZeros := 0
	for leadingZeros < len(s) && s[leadingZeros] == policy.Base62Alphabet[0] {
		leadingZeros++
	}

	digits := make([]byte, 0, len(s)-leadingZeros)
	for i := leadingZeros; i < len(s); i++ {
		v := digitValue[s[i]]
		if v < 0 {
			return nil, errOutOfAlphabet
		}
		digits = append(digits, byte(v))
	}

	body := decodeDigits(digits)

	out := make([]byte, leadingZeros+len(body))
	copy(out[leadingZeros:], body)
	return out, nil
}

// decodeDigits converts base62 digit values (most significant first) back
// into the minimal big-endian byte representation of their integer value,
// by repeated multiply-by-62-and-add.
func decodeDigits(digits []byte) []byte {
	var num []byte
	for _, d := range digits {
		carry := int(d)
		for i := len(num) - 1; i >= 0; i-- {
			acc := int(num[i])*62 + carry
			num[i] = byte(acc % 256)
			carry = acc / 256
		}
		for carry > 0 {
			num = append([]byte{byte(carry % 256)}, num...)
			carry /= 256
		}
	}
	return num
}
