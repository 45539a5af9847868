package shamir_test

import (
	"math/big"
	"reflect"

	"github.com/renproject/surge"
	"github.com/renproject/surge/surgeutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/poly/polyutil"
	"github.com/renproject/shamir-recovery/shamirutil"
)

var _ = Describe("Surge marshalling", func() {
	trials := 100
	types := []reflect.Type{
		reflect.TypeOf(Point{}),
		reflect.TypeOf(Points{}),
	}

	It("should be the same after marshalling and unmarshalling", func() {
		for i := 0; i < trials; i++ {
			points := shamirutil.RandomSharing(polyutil.RandomInt(512), shamirutil.RandomIndices(10, 64), 4, 512)
			points[0] = NewPoint(points[0].X, new(big.Int).Neg(points[0].Y))
			points[1] = NewPoint(points[1].X, big.NewInt(0))

			data, err := surge.ToBinary(points)
			Expect(err).ToNot(HaveOccurred())
			Expect(len(data)).To(Equal(points.SizeHint()))

			var decoded Points
			Expect(surge.FromBinary(&decoded, data)).To(Succeed())
			Expect(decoded.Eq(points)).To(BeTrue())
		}
	})

	It("should write integers as a sign byte and magnitude behind a two byte length", func() {
		point := NewPoint(big.NewInt(1), big.NewInt(-1))
		data, err := surge.ToBinary(point)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{0, 2, 0, 1, 0, 2, 1, 1}))
		Expect(point.SizeHint()).To(Equal(len(data)))

		points := Points{point}
		data, err = surge.ToBinary(points)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{0, 0, 0, 1, 0, 2, 0, 1, 0, 2, 1, 1}))
		Expect(points.SizeHint()).To(Equal(len(data)))
	})

	It("should reject lengths that claim more points than there are bytes", func() {
		var decoded Points
		Expect(surge.FromBinary(&decoded, []byte{0xff, 0xff, 0xff, 0xff})).ToNot(Succeed())
		Expect(surge.FromBinary(&decoded, []byte{0, 0, 0, 2, 0, 2, 0, 1, 0, 2, 1, 1})).ToNot(Succeed())

		var l uint32
		_, _, err := UnmarshalLen(&l, 8, []byte{0, 0, 0, 1, 0, 2, 0, 1, 0, 2, 1, 1}, 12)
		Expect(err).ToNot(HaveOccurred())
		Expect(l).To(Equal(uint32(1)))
	})

	It("should not panic when fuzzing", func() {
		for i := 0; i < trials; i++ {
			for _, t := range types {
				Expect(func() { surgeutil.Fuzz(t) }).ToNot(Panic())
			}
		}
	})

	Context("marshalling", func() {
		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				for _, t := range types {
					Expect(surgeutil.MarshalBufTooSmall(t)).To(Succeed())
				}
			}
		})
	})

	Context("unmarshalling", func() {
		It("should return an error when the buffer is too small", func() {
			for i := 0; i < trials; i++ {
				for _, t := range types {
					Expect(surgeutil.UnmarshalBufTooSmall(t)).To(Succeed())
				}
			}
		})
	})
})
