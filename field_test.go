package shamir_test

import (
	"math/big"
	"math/rand"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/poly/polyutil"
	"github.com/renproject/shamir-recovery/shamirutil"
)

// fieldSharing returns points at the given indices on a random polynomial of
// degree k-1 over the integers modulo FieldOrder with the given constant term.
func fieldSharing(secret *big.Int, indices []*big.Int, k int) Points {
	coeffs := make([]*big.Int, k)
	coeffs[0] = secret
	for i := 1; i < k; i++ {
		coeffs[i] = new(big.Int).Mod(polyutil.RandomInt(256), FieldOrder)
	}

	points := make(Points, len(indices))
	for i, x := range indices {
		y := new(big.Int).Set(coeffs[k-1])
		for j := k - 2; j >= 0; j-- {
			y.Mul(y, x)
			y.Add(y, coeffs[j])
			y.Mod(y, FieldOrder)
		}
		points[i] = NewPoint(new(big.Int).Set(x), y)
	}
	return points
}

var _ = Describe("Field secret recovery", func() {
	It("should have the order of the secp256k1 group", func() {
		order, ok := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
		Expect(ok).To(BeTrue())
		Expect(FieldOrder.Cmp(order)).To(Equal(0))
	})

	Context("when recovering secrets of random sharings", func() {
		It("should reconstruct to the same shared secret", func() {
			trials := 50
			n := 20
			reconstructor := NewFieldReconstructor()

			for i := 0; i < trials; i++ {
				k := rand.Intn(n) + 1
				secret := new(big.Int).Mod(polyutil.RandomInt(256), FieldOrder)
				points := fieldSharing(secret, shamirutil.RandomIndices(n, 128), k)
				shamirutil.Shuffle(points)

				recons, err := reconstructor.Recover(points[:k+rand.Intn(n-k+1)], k)
				Expect(err).ToNot(HaveOccurred())
				Expect(recons.Cmp(secret)).To(Equal(0))
			}
		})

		It("should agree with integer recovery for small sharings", func() {
			points := pointsFromInts(1, 3, 2, 8, 3, 15)
			secret, err := NewFieldReconstructor().Recover(points, 3)
			Expect(err).ToNot(HaveOccurred())
			Expect(secret.Sign()).To(Equal(0))
		})
	})

	Context("when the points are invalid", func() {
		It("should report insufficient points", func() {
			_, err := NewFieldReconstructor().Recover(pointsFromInts(1, 3), 2)
			Expect(errors.Is(err, ErrInsufficientPoints)).To(BeTrue())
		})

		It("should treat indices that are equal modulo the order as duplicates", func() {
			x := new(big.Int).Add(FieldOrder, big.NewInt(1))
			points := Points{
				NewPoint(big.NewInt(1), big.NewInt(5)),
				NewPoint(x, big.NewInt(5)),
			}

			_, err := NewFieldReconstructor().Recover(points, 2)
			Expect(errors.Is(err, ErrDuplicateXCoordinate)).To(BeTrue())

			// Over the integers these are distinct.
			_, err = Recover(points, 2)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when checking consistency", func() {
		It("should detect a corrupted surplus point", func() {
			n, k := 10, 4
			points := fieldSharing(big.NewInt(9), shamirutil.SequentialIndices(n), k)
			reconstructor := NewFieldReconstructor(WithConsistencyCheck())

			secret, err := reconstructor.Recover(points, k)
			Expect(err).ToNot(HaveOccurred())
			Expect(secret.Int64()).To(Equal(int64(9)))

			shamirutil.PerturbValue(points, n-1)
			_, err = reconstructor.Recover(points, k)
			Expect(errors.Is(err, ErrInconsistentShares)).To(BeTrue())
		})
	})
})
