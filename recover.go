package shamir

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/renproject/shamir-recovery/poly"
)

// A Recoverer computes the secret of a sharing with threshold k from a set of
// decoded points.
type Recoverer interface {
	Recover(points Points, k int) (*big.Int, error)
}

// A Selector chooses which of the available points are used to reconstruct a
// secret. It must return exactly k points, and must be deterministic: the
// same ordered input always yields the same selection.
type Selector interface {
	Select(points Points, k int) (Points, error)
}

// SelectorFunc adapts an ordinary function to the Selector interface.
type SelectorFunc func(points Points, k int) (Points, error)

// Select implements the Selector interface.
func (f SelectorFunc) Select(points Points, k int) (Points, error) {
	return f(points, k)
}

// FirstK selects the first k points in the order they are given. Any further
// points are ignored; no attempt is made to find a consistent subset when
// some of the points are corrupted.
var FirstK Selector = SelectorFunc(func(points Points, k int) (Points, error) {
	if len(points) < k {
		return nil, &InsufficientPointsError{Required: k, Actual: len(points)}
	}
	return points[:k], nil
})

// Option configures a reconstructor.
type Option func(*options)

type options struct {
	selector    Selector
	consistency bool
}

func newOptions(opts []Option) options {
	o := options{selector: FirstK}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSelector sets the policy used to choose which points take part in the
// reconstruction. The default is FirstK.
func WithSelector(selector Selector) Option {
	return func(o *options) {
		o.selector = selector
	}
}

// WithConsistencyCheck makes the reconstructor verify that every given point,
// including those that were not selected, lies on the polynomial interpolated
// from the selected points. By default points that are not selected are not
// looked at.
func WithConsistencyCheck() Option {
	return func(o *options) {
		o.consistency = true
	}
}

// selectPoints validates the threshold and applies the selection policy. The
// selection is checked for size and for distinct x coordinates.
func (o *options) selectPoints(points Points, k int) (Points, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "expected k >= 1, got k = %v", k)
	}
	if len(points) < k {
		return nil, &InsufficientPointsError{Required: k, Actual: len(points)}
	}

	selected, err := o.selector.Select(points, k)
	if err != nil {
		return nil, err
	}
	if len(selected) != k {
		return nil, &InsufficientPointsError{Required: k, Actual: len(selected)}
	}
	if err := checkDistinct(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func checkDistinct(points Points) error {
	seen := make(map[string]int, len(points))
	for i := range points {
		key := points[i].X.String()
		if j, ok := seen[key]; ok {
			return &DuplicateXCoordinateError{X: new(big.Int).Set(points[i].X), First: j, Second: i}
		}
		seen[key] = i
	}
	return nil
}

// Reconstructor recovers secrets by Lagrange interpolation over the
// rationals. Given k selected points (x_j, y_j), the secret is
//
//	f(0) = Σ_j y_j ∏_{i≠j} (0 - x_i)/(x_j - x_i)
//
// computed exactly and rounded to the nearest integer once, at the end.
type Reconstructor struct {
	opts options
}

// NewReconstructor constructs a new reconstructor with the given options.
func NewReconstructor(opts ...Option) *Reconstructor {
	return &Reconstructor{opts: newOptions(opts)}
}

// Recover computes the secret corresponding to the given points for a sharing
// with threshold k. At least k points are required, and the k selected
// points must have distinct x coordinates.
func (r *Reconstructor) Recover(points Points, k int) (*big.Int, error) {
	selected, err := r.opts.selectPoints(points, k)
	if err != nil {
		return nil, err
	}

	xs, ys := selected.Xs(), selected.Ys()
	coeffs, err := poly.LagrangeAtZero(xs)
	if err != nil {
		return nil, errors.Wrap(err, "computing lagrange coefficients")
	}
	secret := new(big.Rat)
	term := new(big.Rat)
	for i := range coeffs {
		term.SetInt(ys[i])
		secret.Add(secret, term.Mul(term, coeffs[i]))
	}

	if r.opts.consistency {
		interp, err := poly.NewInterpolator(xs)
		if err != nil {
			return nil, errors.Wrap(err, "constructing interpolator")
		}
		f := poly.NewWithCapacity(k)
		interp.Interpolate(ys, &f)
		for i := range points {
			y := f.EvaluateInt(points[i].X)
			if !y.IsInt() || y.Num().Cmp(points[i].Y) != 0 {
				return nil, &InconsistentSharesError{X: new(big.Int).Set(points[i].X)}
			}
		}
	}

	return Round(secret), nil
}

var defaultReconstructor = NewReconstructor()

// Recover computes the secret corresponding to the given points using the
// FirstK selection policy and no consistency check.
func Recover(points Points, k int) (*big.Int, error) {
	return defaultReconstructor.Recover(points, k)
}

// Round returns the integer nearest to x. Halves are rounded towards positive
// infinity, so 5/2 rounds to 3 and -5/2 rounds to -2.
func Round(x *big.Rat) *big.Int {
	if x.IsInt() {
		return new(big.Int).Set(x.Num())
	}

	// floor(x + 1/2) = floor((2a + b) / 2b) for x = a/b with b > 0. Euclidean
	// division by a positive divisor is floor division.
	num := new(big.Int).Lsh(x.Num(), 1)
	num.Add(num, x.Denom())
	den := new(big.Int).Lsh(x.Denom(), 1)
	return num.Div(num, den)
}
