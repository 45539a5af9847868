package shamir_test

import (
	"math/big"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/shamir-recovery"
	"github.com/renproject/shamir-recovery/poly/polyutil"
	"github.com/renproject/shamir-recovery/shamirutil"
)

var _ = Describe("Cases", func() {
	It("should solve a case with encoded shares", func() {
		secret := polyutil.RandomInt(256)
		points := shamirutil.RandomSharing(secret, shamirutil.SequentialIndices(10), 7, 256)
		c := Case{ID: "random", N: 10, K: 7, Shares: shamirutil.Encode(points)}

		recons, err := c.Solve(NewReconstructor())
		Expect(err).ToNot(HaveOccurred())
		Expect(recons.Cmp(secret)).To(Equal(0))
	})

	It("should identify the case when a share is malformed", func() {
		c := Case{
			ID: "bad-digit",
			N:  2, K: 2,
			Shares: Shares{
				NewShare(big.NewInt(1), 2, "102"),
				NewShare(big.NewInt(2), 10, "4"),
			},
		}

		_, err := c.Solve(NewReconstructor())
		Expect(errors.Is(err, ErrCaseProcessingFailed)).To(BeTrue())
		Expect(errors.Is(err, ErrMalformedShare)).To(BeTrue())

		var caseErr *CaseError
		Expect(errors.As(err, &caseErr)).To(BeTrue())
		Expect(caseErr.Case).To(Equal("bad-digit"))
		Expect(err.Error()).To(ContainSubstring("bad-digit"))
	})

	It("should identify the case when there are not enough shares", func() {
		c := Case{
			ID: "short",
			N:  3, K: 3,
			Shares: Shares{
				NewShare(big.NewInt(1), 10, "3"),
				NewShare(big.NewInt(2), 10, "6"),
			},
		}

		_, err := c.Solve(NewReconstructor())
		Expect(errors.Is(err, ErrCaseProcessingFailed)).To(BeTrue())

		var insufficient *InsufficientPointsError
		Expect(errors.As(err, &insufficient)).To(BeTrue())
		Expect(insufficient.Required).To(Equal(3))
		Expect(insufficient.Actual).To(Equal(2))
	})
})
