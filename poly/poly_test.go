package poly_test

import (
	"math/big"
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/shamir-recovery/poly"
	"github.com/renproject/shamir-recovery/poly/polyutil"
)

var _ = Describe("Polynomials", func() {
	It("should implement the Stringer interface", func() {
		poly := NewFromInts(big.NewInt(1), big.NewInt(0), big.NewInt(-3))
		Expect(poly.String()).To(Equal("1 + 0 x + -3 x^2"))
	})

	Context("when constructing a polynomial with a given capacity", func() {
		Specify("it should be zeroed and have the given capacity", func() {
			trials := 100
			maxDegree := 20

			for i := 0; i < trials; i++ {
				c := rand.Intn(maxDegree) + 1
				poly := NewWithCapacity(c)

				Expect(poly.IsZero()).To(BeTrue())
				Expect(cap(poly)).To(Equal(c))
			}
		})
	})

	Context("when getting the degree of a polynomial", func() {
		It("should be correct", func() {
			trials := 100
			maxDegree := 20

			poly := NewWithCapacity(maxDegree + 1)

			for i := 0; i < trials; i++ {
				degree := rand.Intn(maxDegree + 1)
				polyutil.SetRandomPolynomial(&poly, degree, 64)

				Expect(poly.Degree()).To(Equal(degree))

				// Memory locations beyond the degree should be out of bounds
				Expect(func() { _ = poly.Coefficient(degree + 1) }).To(Panic())
			}
		})
	})

	Context("when setting a polynomial to be equal to another", func() {
		It("should copy the coefficients rather than share them", func() {
			a := NewWithCapacity(1)
			b := NewFromInts(big.NewInt(4), big.NewInt(5))

			a.Set(b)
			Expect(a.Eq(b)).To(BeTrue())

			b.Coefficient(0).SetInt64(7)
			Expect(a.Coefficient(0).Cmp(big.NewRat(4, 1))).To(Equal(0))
		})
	})

	Context("when evaluating a polynomial", func() {
		It("should agree with direct computation", func() {
			// x^2 + 2x
			poly := NewFromInts(big.NewInt(0), big.NewInt(2), big.NewInt(1))

			for x := int64(-5); x <= 5; x++ {
				y := poly.EvaluateInt(big.NewInt(x))
				Expect(y.Cmp(big.NewRat(x*x+2*x, 1))).To(Equal(0))
			}
		})

		It("should evaluate at rational points exactly", func() {
			// 1 + 3x
			poly := NewFromInts(big.NewInt(1), big.NewInt(3))
			y := poly.Evaluate(big.NewRat(1, 3))
			Expect(y.Cmp(big.NewRat(2, 1))).To(Equal(0))
		})
	})

	Context("when multiplying polynomials", func() {
		It("should compute the product", func() {
			// (x + 1)(x - 1) = x^2 - 1
			a := NewFromInts(big.NewInt(1), big.NewInt(1))
			b := NewFromInts(big.NewInt(-1), big.NewInt(1))
			expected := NewFromInts(big.NewInt(-1), big.NewInt(0), big.NewInt(1))

			a.Mul(a, b)
			Expect(a.Eq(expected)).To(BeTrue())
		})

		It("should evaluate to the product of the evaluations", func() {
			trials := 50
			maxDegree := 10

			var a, b, c Poly
			for i := 0; i < trials; i++ {
				polyutil.SetRandomPolynomial(&a, rand.Intn(maxDegree+1), 128)
				polyutil.SetRandomPolynomial(&b, rand.Intn(maxDegree+1), 128)
				c.Mul(a, b)

				x := polyutil.RandomInt(64)
				expected := new(big.Rat).Mul(a.EvaluateInt(x), b.EvaluateInt(x))
				Expect(c.EvaluateInt(x).Cmp(expected)).To(Equal(0))
				Expect(c.Degree()).To(Equal(a.Degree() + b.Degree()))
			}
		})

		It("should give the zero polynomial when one factor is zero", func() {
			a := NewFromInts(big.NewInt(3), big.NewInt(2))
			a.Mul(a, NewWithCapacity(1))
			Expect(a.IsZero()).To(BeTrue())
		})
	})

	Context("when adding a scaled polynomial", func() {
		It("should remove cancelled leading terms", func() {
			// (1 + 2x) + (-1/2)(4x) = 1
			a := NewFromInts(big.NewInt(1), big.NewInt(2))
			b := NewFromInts(big.NewInt(0), big.NewInt(4))

			a.AddScaled(a, b, big.NewRat(-1, 2))
			Expect(a.Degree()).To(Equal(0))
			Expect(a.Coefficient(0).Cmp(big.NewRat(1, 1))).To(Equal(0))
		})
	})
})
