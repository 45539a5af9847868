package shamir

import (
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// The range of bases that share values can be encoded in. Digits beyond 9 are
// the letters a to z, in either case.
const (
	MinBase = 2
	MaxBase = 36
)

// Shares represents a slice of encoded shares.
type Shares []Share

// Share represents a single share as it is submitted, before its value has
// been decoded. The Index is the x coordinate of the share, and Value is the
// y coordinate written in the numeral system given by Base.
type Share struct {
	Index *big.Int
	Base  int
	Value string
}

// NewShare constructs a new share from an index, a base and an encoded value.
func NewShare(index *big.Int, base int, value string) Share {
	return Share{Index: index, Base: base, Value: value}
}

// String implements the Stringer interface.
func (s Share) String() string {
	return fmt.Sprintf("%v: %q (base %v)", s.Index, s.Value, s.Base)
}

// Decode decodes the share into a point. The index must be strictly positive,
// since x = 0 is where the secret lives, and the value must be a valid digit
// string in the share's base.
func (s Share) Decode() (Point, error) {
	if s.Index == nil || s.Index.Sign() <= 0 {
		return Point{}, &MalformedShareError{
			Base:   s.Base,
			Value:  s.Value,
			Reason: fmt.Sprintf("index %v is not a positive integer", s.Index),
		}
	}
	y, err := Decode(s.Base, s.Value)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(new(big.Int).Set(s.Index), y), nil
}

// Decode decodes every share into a point. The returned points are in the
// same order as the shares. Shares are decoded concurrently; if any of them
// fail to decode, the error for the earliest such share is returned.
func (shares Shares) Decode() (Points, error) {
	points := make(Points, len(shares))
	errs := make([]error, len(shares))

	var g errgroup.Group
	for i := range shares {
		i := i
		g.Go(func() error {
			points[i], errs[i] = shares[i].Decode()
			return errs[i]
		})
	}
	if g.Wait() == nil {
		return points, nil
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

// Decode returns the integer represented by the digit string value in the
// given base. The base must be between MinBase and MaxBase, and the value must
// be non-empty and consist only of digits that are valid in the base. Signs,
// prefixes, separators and whitespace are all rejected. The result has
// arbitrary precision.
func Decode(base int, value string) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, &MalformedShareError{
			Base:   base,
			Value:  value,
			Reason: fmt.Sprintf("base must be between %v and %v", MinBase, MaxBase),
		}
	}
	if value == "" {
		return nil, &MalformedShareError{Base: base, Value: value, Reason: "empty value"}
	}

	for i := 0; i < len(value); i++ {
		d, ok := digit(value[i])
		if !ok || d >= base {
			return nil, &MalformedShareError{
				Base:   base,
				Value:  value,
				Reason: fmt.Sprintf("invalid digit %q at position %v", value[i], i),
			}
		}
	}

	// NOTE: Every character has been checked, so SetString cannot see a
	// sign or an underscore.
	res, ok := new(big.Int).SetString(value, base)
	if !ok {
		return nil, &MalformedShareError{Base: base, Value: value, Reason: "not a number"}
	}
	return res, nil
}

// digit returns the value of an alphanumeric digit.
func digit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
