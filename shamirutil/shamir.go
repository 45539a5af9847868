package shamirutil

import (
	"math/big"
	"math/rand"
	"strings"

	shamir "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/poly"
	"github.com/renproject/shamir-recovery/poly/polyutil"
)

// SequentialIndices initialises and returns a slice of n indices, where the
// slice index i is equal to i+1.
func SequentialIndices(n int) []*big.Int {
	indices := make([]*big.Int, n)
	for i := range indices {
		indices[i] = big.NewInt(int64(i) + 1)
	}
	return indices
}

// RandomIndices initialises and returns a slice of n distinct, strictly
// positive indices with at most the given number of bits.
func RandomIndices(n int, bits uint) []*big.Int {
	indices := make([]*big.Int, 0, n)
	seen := make(map[string]bool, n)
	for len(indices) < n {
		index := polyutil.RandomInt(bits)
		if index.Sign() == 0 || seen[index.String()] {
			continue
		}
		seen[index.String()] = true
		indices = append(indices, index)
	}
	return indices
}

// PointsOnPolynomial returns the points of the given polynomial at the given
// indices.
//
// Panics: The polynomial must have integer values at the indices, which is
// the case when all of its coefficients are integers.
func PointsOnPolynomial(f poly.Poly, indices []*big.Int) shamir.Points {
	points := make(shamir.Points, len(indices))
	for i, index := range indices {
		y := f.EvaluateInt(index)
		if !y.IsInt() {
			panic("polynomial does not have an integer value at the index")
		}
		points[i] = shamir.NewPoint(new(big.Int).Set(index), new(big.Int).Set(y.Num()))
	}
	return points
}

// RandomSharing returns n points, at the given indices, on a random
// polynomial of degree k-1 with the given constant term. The other
// coefficients are non-negative and have at most the given number of bits.
func RandomSharing(secret *big.Int, indices []*big.Int, k int, bits uint) shamir.Points {
	f := poly.NewWithCapacity(k)
	polyutil.SetRandomPolynomialWithConstant(&f, secret, k-1, bits)
	return PointsOnPolynomial(f, indices)
}

// Encode encodes the given points as shares, each with a random base. Letter
// digits are randomly upper or lower case.
//
// Panics: The y coordinates must be non-negative.
func Encode(points shamir.Points) shamir.Shares {
	shares := make(shamir.Shares, len(points))
	for i, point := range points {
		if point.Y.Sign() < 0 {
			panic("cannot encode a negative value")
		}
		base := RandRange(shamir.MinBase, shamir.MaxBase)
		value := point.Y.Text(base)
		if rand.Intn(2) == 0 {
			value = strings.ToUpper(value)
		}
		shares[i] = shamir.NewShare(new(big.Int).Set(point.X), base, value)
	}
	return shares
}

// Shuffle randomises the order of the given points in the slice.
func Shuffle(points shamir.Points) {
	rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// AddDuplicateIndex picks two random (distinct) positions in the given slice
// of points and sets the x coordinate of the second to be equal to that of the
// first.
func AddDuplicateIndex(points shamir.Points) {
	// Pick two distinct array indices.
	first, second := rand.Intn(len(points)), rand.Intn(len(points))
	for first == second {
		second = rand.Intn(len(points))
	}

	// Set the second point to have the same index as the first.
	points[second] = shamir.NewPoint(new(big.Int).Set(points[first].X), points[second].Y)
}

// PerturbValue adds a random non-zero amount to the y coordinate of the point
// at the given position.
func PerturbValue(points shamir.Points, i int) {
	delta := big.NewInt(int64(rand.Intn(1000)) + 1)
	points[i] = shamir.NewPoint(points[i].X, new(big.Int).Add(points[i].Y, delta))
}
