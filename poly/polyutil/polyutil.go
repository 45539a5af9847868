package polyutil

import (
	"math/big"
	"math/rand"

	"github.com/renproject/shamir-recovery/poly"
)

// RandomInt returns a uniformly random non-negative integer with at most the
// given number of bits.
func RandomInt(bits uint) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Rand(rand.New(rand.NewSource(rand.Int63())), max)
}

// SetRandomPolynomial sets the given polynomial to be a random polynomial with
// the given degree and non-negative integer coefficients of at most the given
// number of bits. The leading coefficient is non-zero.
func SetRandomPolynomial(dst *poly.Poly, degree int, bits uint) {
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		coeffs[i] = RandomInt(bits)
	}

	// Ensure that the leading term is non-zero.
	for coeffs[degree].Sign() == 0 {
		coeffs[degree] = RandomInt(bits)
	}

	dst.Set(poly.NewFromInts(coeffs...))
}

// SetRandomPolynomialWithConstant is the same as SetRandomPolynomial, but the
// constant term is set to the given value.
func SetRandomPolynomialWithConstant(dst *poly.Poly, constant *big.Int, degree int, bits uint) {
	SetRandomPolynomial(dst, degree, bits)
	dst.Coefficient(0).SetInt(constant)
}
