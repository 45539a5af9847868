package shamir

import (
	"fmt"
	"math/big"
	"math/rand"
	"reflect"

	"github.com/renproject/surge"
)

// Points represents a slice of decoded points.
type Points []Point

// Point is a decoded share: a point (X, Y) on the sharing polynomial.
type Point struct {
	X, Y *big.Int
}

// NewPoint constructs a new point from the given coordinates. The coordinates
// are not copied.
func NewPoint(x, y *big.Int) Point {
	return Point{X: x, Y: y}
}

// String implements the Stringer interface.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Eq returns true if the two points are equal, and false otherwise.
func (p *Point) Eq(other *Point) bool {
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Generate implements the quick.Generator interface.
func (p Point) Generate(rand *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(randomPoint(rand, size))
}

// SizeHint implements the surge.SizeHinter interface.
func (p Point) SizeHint() int { return sizeHintInt(p.X) + sizeHintInt(p.Y) }

// Marshal implements the surge.Marshaler interface.
func (p Point) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := marshalInt(p.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return marshalInt(p.Y, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (p *Point) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := unmarshalInt(&p.X, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return unmarshalInt(&p.Y, buf, rem)
}

// Xs returns the x coordinates of the points.
func (points Points) Xs() []*big.Int {
	xs := make([]*big.Int, len(points))
	for i := range points {
		xs[i] = points[i].X
	}
	return xs
}

// Ys returns the y coordinates of the points.
func (points Points) Ys() []*big.Int {
	ys := make([]*big.Int, len(points))
	for i := range points {
		ys[i] = points[i].Y
	}
	return ys
}

// Eq returns true if the two slices contain equal points in the same order.
func (points Points) Eq(other Points) bool {
	if len(points) != len(other) {
		return false
	}
	for i := range points {
		if !points[i].Eq(&other[i]) {
			return false
		}
	}
	return true
}

// Generate implements the quick.Generator interface.
func (points Points) Generate(rand *rand.Rand, size int) reflect.Value {
	ps := make(Points, rand.Intn(size+1))
	for i := range ps {
		ps[i] = randomPoint(rand, size)
	}
	return reflect.ValueOf(ps)
}

// SizeHint implements the surge.SizeHinter interface.
func (points Points) SizeHint() int {
	size := surge.SizeHintU32
	for i := range points {
		size += points[i].SizeHint()
	}
	return size
}

// Marshal implements the surge.Marshaler interface.
func (points Points) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU32(uint32(len(points)), buf, rem)
	if err != nil {
		return buf, rem, err
	}

	for i := range points {
		buf, rem, err = points[i].Marshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}

	return buf, rem, nil
}

// Unmarshal implements the surge.Unmarshaler interface.
func (points *Points) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	var l uint32
	buf, rem, err := UnmarshalLen(&l, minPointSize, buf, rem)
	if err != nil {
		return buf, rem, err
	}

	if *points == nil {
		*points = make(Points, 0, l)
	}

	*points = (*points)[:0]
	for i := uint32(0); i < l; i++ {
		*points = append(*points, Point{})
		buf, rem, err = (*points)[i].Unmarshal(buf, rem)
		if err != nil {
			return buf, rem, err
		}
	}

	return buf, rem, nil
}

func randomPoint(rand *rand.Rand, size int) Point {
	bits := uint(rand.Intn(size+1) * 8)
	max := new(big.Int).Lsh(big.NewInt(1), bits+1)
	x := new(big.Int).Rand(rand, max)
	x.Add(x, big.NewInt(1))
	y := new(big.Int).Rand(rand, max)
	if rand.Intn(2) == 0 {
		y.Neg(y)
	}
	return NewPoint(x, y)
}
