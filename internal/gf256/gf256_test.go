package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesNotBroken(t *testing.T) {
	require.False(t, Broken())
}

func TestAddIsXor(t *testing.T) {
	assert.Equal(t, byte(3), Add(1, 2))
	assert.Equal(t, byte(0), Add(42, 42))
}

func TestAddAssociativeAndCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			for c := 0; c < 256; c += 29 {
				lhs := Add(Add(byte(a), byte(b)), byte(c))
				rhs := Add(byte(a), Add(byte(b), byte(c)))
				assert.Equal(t, lhs, rhs)
			}
			assert.Equal(t, Add(byte(a), byte(b)), Add(byte(b), byte(a)))
		}
	}
}

func TestMulZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		assert.Equal(t, byte(0), Mul(byte(a), 0))
		assert.Equal(t, byte(0), Mul(0, byte(a)))
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			assert.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)))
		}
	}
}

func TestDistributivity(t *testing.T) {
	a, b, c := byte(3), byte(4), byte(5)
	lhs := Mul(a, Add(b, c))
	rhs := Add(Mul(a, b), Mul(a, c))
	assert.Equal(t, lhs, rhs)
}

func TestInverse(t *testing.T) {
	_, ok := Inv(0)
	assert.False(t, ok, "0 has no inverse")

	for a := 1; a < 256; a++ {
		inv, ok := Inv(byte(a))
		require.True(t, ok)
		assert.Equal(t, byte(1), Mul(byte(a), inv), "a * inv(a) must be 1 for a=%d", a)
	}
}

func TestDivByZero(t *testing.T) {
	_, ok := Div(5, 0)
	assert.False(t, ok)
}

func TestPow(t *testing.T) {
	assert.Equal(t, byte(1), Pow(0x03, 0))
	assert.Equal(t, byte(0), Pow(0, 5))
	assert.Equal(t, byte(1), Pow(0, 0))
	assert.Equal(t, byte(1), Pow(0x03, 255), "generator^255 == 1 in the multiplicative group")
}

func TestVectorInv0x53(t *testing.T) {
	inv, ok := Inv(0x53)
	require.True(t, ok)
	assert.Equal(t, byte(1), Mul(0x53, inv))
}

func TestFullFieldNoPanics(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			_ = Mul(byte(a), byte(b))
			_ = Add(byte(a), byte(b))
		}
	}
}
