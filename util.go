package shamir

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/renproject/surge"
)

// An integer is marshalled as a length prefixed byte slice holding a sign
// byte followed by the big endian magnitude.
var (
	minIntSize   = surge.SizeHintBytes([]byte{0})
	minPointSize = 2 * minIntSize
)

var errMalformedInt = errors.New("malformed integer encoding")

func intBytes(x *big.Int) []byte {
	if x == nil {
		return []byte{0}
	}
	bs := make([]byte, 1, 1+(x.BitLen()+7)/8)
	if x.Sign() < 0 {
		bs[0] = 1
	}
	return append(bs, x.Bytes()...)
}

func sizeHintInt(x *big.Int) int {
	return surge.SizeHintBytes(intBytes(x))
}

func marshalInt(x *big.Int, buf []byte, rem int) ([]byte, int, error) {
	bs := intBytes(x)
	if len(bs) > math.MaxUint16 {
		return buf, rem, surge.ErrLengthOverflow
	}
	return surge.MarshalBytes(bs, buf, rem)
}

func unmarshalInt(dst **big.Int, buf []byte, rem int) ([]byte, int, error) {
	var bs []byte
	buf, rem, err := surge.UnmarshalBytes(&bs, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	if len(bs) == 0 || bs[0] > 1 {
		return buf, rem, errMalformedInt
	}

	x := new(big.Int).SetBytes(bs[1:])
	if bs[0] == 1 {
		x.Neg(x)
	}
	*dst = x
	return buf, rem, nil
}

// UnmarshalLen reads a uint32 length prefix for a slice whose elements take
// at least elemSize bytes each. Lengths that cannot fit in the rest of the
// buffer are rejected before anything is allocated.
func UnmarshalLen(l *uint32, elemSize int, buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.UnmarshalU32(l, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	n := uint64(*l) * uint64(elemSize)
	if n > uint64(surge.MaxBytes) {
		return buf, rem, surge.ErrLengthOverflow
	}
	if uint64(len(buf)) < n || uint64(rem) < n {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	return buf, rem, nil
}
