package poly

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrRepeatedIndex is returned when an interpolator is constructed from a set
// of indices that contains the same index more than once. The Lagrange basis
// is undefined in this case.
var ErrRepeatedIndex = errors.New("repeated interpolation index")

// Interpolator can perform polynomial interpolation. That is, the act of
// taking a set of points on a polynomial and finding a polynomial that passes
// through all of those points. This is encapsulated in an object because when
// interpolating multiple sets of points, all of which have the same set of
// corresponding x coordinates, each interpolation can use the same setup.
//
// All arithmetic is over the rationals, so the interpolating polynomial is
// exact.
type Interpolator struct {
	indices []*big.Int
	basis   []Poly
}

// NewInterpolator constructs a new polynomial interpolator for the given set
// of indices. The indices represent the x coordinates of the points that will
// be interpolated. That is, if the set of indices is `{x0, x1, ..., xn}`, then
// the constructed interpolator will be able to interpolate any set of points
// of the form `{(x0, y0), (x1, y1), ..., (xn, yn)}` for any `y0, y1, ..., yn`.
// The indices are copied. An error wrapping ErrRepeatedIndex is returned if
// any index appears more than once.
func NewInterpolator(indices []*big.Int) (Interpolator, error) {
	inds, err := copyDistinct(indices)
	if err != nil {
		return Interpolator{}, err
	}

	// One basis polynomial for each index
	basis := make([]Poly, len(inds))
	for i := range basis {
		// Each basis polynomial has degree equal to the number of indices
		// minus one
		basis[i] = NewWithCapacity(len(inds))
	}

	numerator := NewWithCapacity(2)
	numerator.setLenByDegree(1)
	denominator := new(big.Rat)
	xj := new(big.Rat)

	// Compute basis polynomials
	for i := range basis {
		basis[i][0].SetInt64(1)

		for j := range inds {
			if i == j {
				continue
			}
			xj.SetInt(inds[j])

			// Numerator x - xj
			numerator[0].Neg(xj)
			numerator[1].SetInt64(1)

			// Denominator xi - xj
			denominator.SetInt(inds[i])
			denominator.Sub(denominator, xj)

			// (x - xj)/(xi - xj)
			denominator.Inv(denominator)
			numerator.ScalarMul(numerator, denominator)

			basis[i].Mul(basis[i], numerator)
		}
	}

	return Interpolator{indices: inds, basis: basis}, nil
}

// Len returns the number of indices the interpolator was constructed with.
func (interp *Interpolator) Len() int {
	return len(interp.indices)
}

// Interpolate takes a set of values representing polynomial evaluations, and
// computes a polynomial that interpolates these values, storing the result in
// `poly`. It is assumed that the values are in corresponding order to the
// indices that were used to construct the interpolator.
//
// NOTE: This function will panic if there are fewer values than indices.
func (interp *Interpolator) Interpolate(values []*big.Int, poly *Poly) {
	if len(interp.basis) == 0 {
		poly.Zero()
		return
	}

	// Polynomial is a linear combination of the Lagrange basis
	y := new(big.Rat)

	// In the first iteration we set the polynomial in case it was non-zero
	poly.ScalarMul(interp.basis[0], y.SetInt(values[0]))

	for i := 1; i < len(interp.basis); i++ {
		poly.AddScaled(*poly, interp.basis[i], y.SetInt(values[i]))
	}
}

// Constant computes the constant term of the polynomial interpolating the
// given values, that is, its evaluation at zero, from the constant terms of
// the precomputed basis. The result is exact. When only the constant term is
// ever needed, LagrangeAtZero avoids building the basis at all.
//
// NOTE: This function will panic if there are fewer values than indices.
func (interp *Interpolator) Constant(values []*big.Int) *big.Rat {
	res := new(big.Rat)
	term := new(big.Rat)
	for i := range interp.basis {
		term.SetInt(values[i])
		term.Mul(term, interp.basis[i].Coefficient(0))
		res.Add(res, term)
	}
	return res
}

// LagrangeAtZero returns the values L_j(0) of the Lagrange basis polynomials
// for the given indices, that is
//
//	L_j(0) = ∏_{i≠j} x_i / (x_i - x_j)
//
// so that the constant term of the polynomial through (x_j, y_j) is
// Σ_j y_j L_j(0). This takes O(k^2) operations, where building an
// Interpolator takes O(k^3). An error wrapping ErrRepeatedIndex is returned
// if any index appears more than once.
func LagrangeAtZero(indices []*big.Int) ([]*big.Rat, error) {
	inds, err := copyDistinct(indices)
	if err != nil {
		return nil, err
	}

	coeffs := make([]*big.Rat, len(inds))
	num, den, diff := new(big.Int), new(big.Int), new(big.Int)
	for j := range inds {
		num.SetInt64(1)
		den.SetInt64(1)
		for i := range inds {
			if i == j {
				continue
			}
			num.Mul(num, inds[i])
			den.Mul(den, diff.Sub(inds[i], inds[j]))
		}
		coeffs[j] = new(big.Rat).SetFrac(num, den)
	}
	return coeffs, nil
}

func copyDistinct(indices []*big.Int) ([]*big.Int, error) {
	inds := make([]*big.Int, len(indices))
	for i := range indices {
		for j := 0; j < i; j++ {
			if indices[i].Cmp(indices[j]) == 0 {
				return nil, errors.Wrapf(ErrRepeatedIndex, "index %v at positions %v and %v", indices[i], j, i)
			}
		}
		inds[i] = new(big.Int).Set(indices[i])
	}
	return inds, nil
}
