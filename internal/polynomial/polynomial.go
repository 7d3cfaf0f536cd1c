// Package polynomial builds and evaluates the per-secret-byte polynomials
// Shamir's scheme is built from: P(x) = secret + c_1*x + ... + c_(k-1)*x^(k-1),
// with coefficients drawn from the CSPRNG gate and evaluation done by
// Horner's method in GF(2^8).
package polynomial

import (
	"github.com/coldforge/shamirvault/internal/gf256"
	"github.com/coldforge/shamirvault/internal/memguard"
)

// Polynomial holds the coefficients of one secret byte's polynomial,
// lowest degree first: coefficients[0] is the constant term (the secret
// byte itself), coefficients[i] is the coefficient of x^i.
type Polynomial struct {
	coefficients []byte
}

// coeffSource abstracts the CSPRNG gate so this package does not import it
// directly, keeping the dependency direction one-way (the public facade
// binds the csprng gate and passes its draw function through shamir;
// polynomial only needs "some byte source").
type coeffSource func(n int) ([]byte, error)

// New builds a degree-(k-1) polynomial with the given constant term and
// k-1 random coefficients drawn from draw.
func New(constant byte, k int, draw coeffSource) (*Polynomial, error) {
	degree := k - 1
	coeffs := make([]byte, degree+1)
	coeffs[0] = constant

	if degree > 0 {
		random, err := draw(degree)
		if err != nil {
			return nil, err
		}
		copy(coeffs[1:], random)
	}

	return &Polynomial{coefficients: coeffs}, nil
}

// Evaluate computes P(x) using Horner's method over GF(2^8).
func (p *Polynomial) Evaluate(x byte) byte {
	result := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = gf256.Add(gf256.Mul(result, x), p.coefficients[i])
	}
	return result
}

// Zero overwrites the coefficient slice, satisfying the memory-hygiene
// contract for buffers derived from the secret.
func (p *Polynomial) Zero() {
	memguard.Wipe(p.coefficients)
}
