package poly

import (
	"fmt"
	"math/big"
)

// Poly represents a polynomial with rational coefficients. Coefficients are
// exact, so evaluating and interpolating never loses precision regardless of
// the magnitude of the values involved.
//
// A Poly can be indexed into, where index `i` will be the `i`th coefficient.
// For example, the constant term is index 0.
//
// Since this type just aliases a slice, all of the considerations of using a
// slice apply. The methods on this type allocate coefficients as needed, and
// so manual modification of the underlying slice should be avoided in favour
// of the provided methods.
type Poly []*big.Rat

// NewFromInts constructs a polynomial with the given integer coefficients,
// where the constant term is first. The integers are copied.
func NewFromInts(coeffs ...*big.Int) Poly {
	if len(coeffs) == 0 {
		return NewWithCapacity(1)
	}
	poly := make(Poly, len(coeffs))
	for i, c := range coeffs {
		poly[i] = new(big.Rat).SetInt(c)
	}
	return poly
}

// NewWithCapacity constructs a new polynomial with the given capacity. The
// polynomial will also be initialised to the zero polynomial.
//
// NOTE: This function will panic if the argument is less than 1.
func NewWithCapacity(c int) Poly {
	poly := make(Poly, c)
	for i := range poly {
		poly[i] = new(big.Rat)
	}

	// Make it the zero polynomial
	poly.Zero()

	return poly
}

// String implements the Stringer interface
func (p Poly) String() string {
	str := p.Coefficient(0).RatString()

	for i := 1; i <= p.Degree(); i++ {
		if i == 1 {
			str += fmt.Sprintf(" + %v x", p.Coefficient(i).RatString())
		} else {
			str += fmt.Sprintf(" + %v x^%v", p.Coefficient(i).RatString(), i)
		}
	}

	return str
}

// Degree returns the degree of the polynomial. This is the exponent of the
// highest term with non-zero coefficient. For example, 3x^2 + 2x + 1 has
// degree 2.
func (p Poly) Degree() int {
	return len(p) - 1
}

// Coefficient returns a pointer to the `i`th coefficient of the polynomial.
//
// NOTE: If `i` is geater than the degree of the polynomial, this function will
// panic.
func (p Poly) Coefficient(i int) *big.Rat {
	return p[i]
}

// Set copies a given polynomial into the destination polynomial. Since the
// coefficients are copied, the argument will remain unchanged.
func (p *Poly) Set(a Poly) {
	p.setLenByDegree(a.Degree())
	for i := range a {
		(*p)[i].Set(a[i])
	}
}

// IsZero returns true if the polynomial is the zero polynomial, and false
// otherwise. The zero polynomial is defined to have degree 0 and a constant
// term that is equal to 0.
func (p *Poly) IsZero() bool {
	if p.Degree() != 0 {
		return false
	}

	return p.Coefficient(0).Sign() == 0
}

// Eq returns true if the two polynomials are equal and false if they are not.
// Equality of polynomials is defined as all coefficients being equal.
func (p *Poly) Eq(other Poly) bool {
	// Short circuit if the polynomials have different degrees
	if p.Degree() != other.Degree() {
		return false
	}

	for i := range *p {
		if p.Coefficient(i).Cmp(other.Coefficient(i)) != 0 {
			return false
		}
	}

	return true
}

// Zero sets the polynomial to the zero polynomial (additive identity). That
// is, the polynomial of degree 0 with constant term coefficient also equal to
// 0.
func (p *Poly) Zero() {
	p.setLenByDegree(0)
	p.Coefficient(0).SetInt64(0)
}

// Sets the length of the underlying slice to be such that it can hold a
// polynomial of the given degree, growing the slice if its capacity is too
// small. Every coefficient up to the degree is guaranteed to be non-nil.
func (p *Poly) setLenByDegree(degree int) {
	if cap(*p) < degree+1 {
		grown := make(Poly, degree+1)
		copy(grown, *p)
		*p = grown
	}
	*p = (*p)[:degree+1]
	for i := range *p {
		if (*p)[i] == nil {
			(*p)[i] = new(big.Rat)
		}
	}
}

// Ensures that the x^deg(p) coefficient of the polynomial is non zero by
// possibly reducing its Degree().
func (p *Poly) removeLeadingZeros() {
	for p.Degree() > 0 && p.Coefficient(p.Degree()).Sign() == 0 {
		*p = (*p)[:p.Degree()]
	}
}

// Evaluate computes the value of the polynomial at the given point.
func (p Poly) Evaluate(x *big.Rat) *big.Rat {
	res := new(big.Rat).Set(p.Coefficient(p.Degree()))

	for i := p.Degree() - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.Coefficient(i))
	}

	return res
}

// EvaluateInt computes the value of the polynomial at the given integer point.
func (p Poly) EvaluateInt(x *big.Int) *big.Rat {
	return p.Evaluate(new(big.Rat).SetInt(x))
}

// ScalarMul computes the multiplication of the input polynomial by the input
// scale factor and stores the result in the caller. This function is safe for
// aliasing: the argument may be an alias of the caller.
func (p *Poly) ScalarMul(a Poly, s *big.Rat) {
	// Short circuit conditions
	if s.Sign() == 0 {
		p.Zero()
		return
	}

	p.setLenByDegree(a.Degree())
	for i := range *p {
		p.Coefficient(i).Mul(a.Coefficient(i), s)
	}
}

// AddScaled computes the addition of the first polynomial and a scaled version
// of the second polynomial and stores the result in the caller. This function
// is safe for aliasing: either (and possibly both) of the input polynomials
// may be an alias of the caller.
func (p *Poly) AddScaled(a, b Poly, s *big.Rat) {
	degree := a.Degree()
	if b.Degree() > degree {
		degree = b.Degree()
	}

	res := NewWithCapacity(degree + 1)
	res.setLenByDegree(degree)
	scaled := new(big.Rat)
	for i := range res {
		if i <= a.Degree() {
			res[i].Set(a.Coefficient(i))
		}
		if i <= b.Degree() {
			scaled.Mul(s, b.Coefficient(i))
			res[i].Add(res[i], scaled)
		}
	}

	// Account for the fact that the leading coefficients of a and b may have
	// cancelled eachother
	res.removeLeadingZeros()
	p.Set(res)
}

// Mul computes the product of the two polynomials and stores the result in the
// destination polynomial. Either input may be an alias of the destination.
func (p *Poly) Mul(a, b Poly) {
	// Short circuit if either polynomial is zero
	if a.IsZero() || b.IsZero() {
		p.Zero()
		return
	}

	res := NewWithCapacity(a.Degree() + b.Degree() + 1)
	res.setLenByDegree(a.Degree() + b.Degree())
	ab := new(big.Rat)
	for i := range a {
		for j := range b {
			ab.Mul(a.Coefficient(i), b.Coefficient(j))
			res[i+j].Add(res[i+j], ab)
		}
	}
	p.Set(res)
}
