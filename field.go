package shamir

import (
	"math/big"

	"github.com/renproject/secp256k1"
)

// FieldOrder is the order of the secp256k1 group, which is the modulus of the
// field that FieldReconstructor works in.
var FieldOrder = func() *big.Int {
	var one, minusOne secp256k1.Fn
	one.SetU16(1)
	minusOne.Negate(&one)
	order := minusOne.Int()
	return order.Add(order, big.NewInt(1))
}()

// FieldReconstructor recovers secrets that were shared over the scalar field
// of secp256k1 rather than over the integers. Coordinates are reduced modulo
// FieldOrder before interpolating, and the secret is returned as the
// canonical representative in [0, FieldOrder).
type FieldReconstructor struct {
	opts options
}

// NewFieldReconstructor constructs a new field reconstructor with the given
// options.
func NewFieldReconstructor(opts ...Option) *FieldReconstructor {
	return &FieldReconstructor{opts: newOptions(opts)}
}

// Recover computes the secret corresponding to the given points for a sharing
// with threshold k. Two selected points whose x coordinates are equal modulo
// the field order are duplicates.
func (r *FieldReconstructor) Recover(points Points, k int) (*big.Int, error) {
	selected, err := r.opts.selectPoints(points, k)
	if err != nil {
		return nil, err
	}

	xs := make([]secp256k1.Fn, k)
	ys := make([]secp256k1.Fn, k)
	for i := range selected {
		xs[i] = fnFromInt(selected[i].X)
		ys[i] = fnFromInt(selected[i].Y)
		for j := 0; j < i; j++ {
			if xs[i].Eq(&xs[j]) {
				return nil, &DuplicateXCoordinateError{X: new(big.Int).Set(selected[i].X), First: j, Second: i}
			}
		}
	}

	var zero secp256k1.Fn
	zero.SetU16(0)
	secret := evaluateFn(xs, ys, &zero)

	if r.opts.consistency {
		for i := range points {
			x, y := fnFromInt(points[i].X), fnFromInt(points[i].Y)
			eval := evaluateFn(xs, ys, &x)
			if !eval.Eq(&y) {
				return nil, &InconsistentSharesError{X: new(big.Int).Set(points[i].X)}
			}
		}
	}

	return secret.Int(), nil
}

// evaluateFn evaluates the polynomial of least degree through the points
// (xs[i], ys[i]) at x, using Lagrange interpolation. It is assumed that the
// xs are distinct.
func evaluateFn(xs, ys []secp256k1.Fn, x *secp256k1.Fn) secp256k1.Fn {
	var num, denom, res, tmp secp256k1.Fn
	res.SetU16(0)
	for i := range xs {
		num.SetU16(1)
		denom.SetU16(1)
		for j := range xs {
			if i == j {
				continue
			}
			// (x - xj)
			tmp.Negate(&xs[j])
			tmp.Add(&tmp, x)
			num.Mul(&num, &tmp)

			// (xi - xj)
			tmp.Negate(&xs[j])
			tmp.Add(&tmp, &xs[i])
			denom.Mul(&denom, &tmp)
		}
		denom.Inverse(&denom)
		tmp.Mul(&num, &denom)
		tmp.Mul(&tmp, &ys[i])
		res.Add(&res, &tmp)
	}
	return res
}

func fnFromInt(x *big.Int) secp256k1.Fn {
	var bs [32]byte
	new(big.Int).Mod(x, FieldOrder).FillBytes(bs[:])

	var fn secp256k1.Fn
	fn.SetB32(bs[:])
	return fn
}
