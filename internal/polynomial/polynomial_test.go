package polynomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroCoeffs(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func fixedCoeffs(values ...byte) coeffSource {
	return func(n int) ([]byte, error) {
		out := make([]byte, n)
		copy(out, values)
		return out, nil
	}
}

func TestConstantTermIsSecretByte(t *testing.T) {
	p, err := New(0x42, 3, zeroCoeffs)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), p.Evaluate(0))
}

func TestDegreeOneSingleCoefficient(t *testing.T) {
	// P(x) = 5 + 7x
	p, err := New(5, 2, fixedCoeffs(7))
	require.NoError(t, err)

	assert.Equal(t, byte(5), p.Evaluate(0))
	// P(1) = 5 XOR 7 in GF(2^8) addition composed with multiplication by 1.
	assert.Equal(t, byte(5^7), p.Evaluate(1))
}

func TestLengthOneSecretStillProducesPolynomial(t *testing.T) {
	p, err := New(0xAB, 2, zeroCoeffs)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), p.Evaluate(0))
}

func TestZeroWipesCoefficients(t *testing.T) {
	p, err := New(9, 3, fixedCoeffs(1, 2))
	require.NoError(t, err)
	p.Zero()
	for _, c := range p.coefficients {
		assert.Equal(t, byte(0), c)
	}
}

func TestDrawErrorPropagates(t *testing.T) {
	_, err := New(1, 3, func(int) ([]byte, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)
}
