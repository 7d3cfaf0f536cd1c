// Package gf256 implements arithmetic over GF(2^8) with the reducing
// polynomial x^8 + x^4 + x^3 + x + 1 (0x11B), the field Shamir's Secret
// Sharing is evaluated over in this module.
package gf256

import (
	"sync"
)

const (
	// poly is the reducing polynomial for the field, 0x11B.
	poly = 0x11b

	// generator seeds the log/antilog tables. 0x03 is a generator of the
	// multiplicative group for this reducing polynomial.
	generator = 0x03

	// size is the number of elements in the field.
	size = 256
)

var (
	logTable    [size]byte
	antilog     [size]byte
	tableInit   sync.Once
	tableBroken bool
)

// initTables builds the log/antilog tables once and verifies the round-trip
// invariant antilog[log[a]] = a for every nonzero a. A failure here means
// the table construction itself is broken, which every caller treats as an
// Internal bug rather than something a retry could fix.
func initTables() {
	tableInit.Do(func() {
		var x uint16 = 1
		for i := 0; i < size-1; i++ {
			antilog[i] = byte(x)
			logTable[x] = byte(i)

			// x *= generator (3 == x+1): (x<<1) XOR x, then reduce mod poly
			// if the shift overflowed 8 bits.
			x = (x << 1) ^ x
			if x >= size {
				x ^= poly
			}
		}

		for a := 1; a < size; a++ {
			if antilog[logTable[byte(a)]] != byte(a) {
				tableBroken = true
				return
			}
		}
	})
}

// Broken reports whether the table self-check failed. Exposed so Init()
// in the public facade can surface it as an Internal error instead of
// silently producing wrong arithmetic.
func Broken() bool {
	initTables()
	return tableBroken
}

// Add returns a XOR b, the field's addition operator.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a XOR b. Subtraction and addition coincide in GF(2^n).
func Sub(a, b byte) byte { return a ^ b }

// Mul returns the product of a and b in GF(2^8).
func Mul(a, b byte) byte {
	initTables()
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(logTable[a]) + int(logTable[b])
	if sum >= size-1 {
		sum -= size - 1
	}
	return antilog[sum]
}

// Inv returns the multiplicative inverse of a. a must be nonzero; callers
// are responsible for rejecting a==0 (division by zero is a caller bug,
// not a field operation).
func Inv(a byte) (byte, bool) {
	initTables()
	if a == 0 {
		return 0, false
	}
	return antilog[size-1-int(logTable[a])], true
}

// Div returns a / b. b must be nonzero.
func Div(a, b byte) (byte, bool) {
	inv, ok := Inv(b)
	if !ok {
		return 0, false
	}
	return Mul(a, inv), true
}

// Pow returns a^e in GF(2^8). Pow(a, 0) is 1 for every a, including 0, per
// the usual convention for x^0.
func Pow(a byte, e int) byte {
	if e == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	initTables()
	exp := (int(logTable[a]) * e) % (size - 1)
	if exp < 0 {
		exp += size - 1
	}
	return antilog[exp]
}
