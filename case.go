package shamir

import (
	"math/big"
)

// Case is a single reconstruction problem: the shares that were submitted,
// the declared number of shares N, and the threshold K. N is informational;
// K is both the minimum number of points required and exactly the number
// used.
type Case struct {
	ID     string
	N, K   int
	Shares Shares
}

// Solve decodes the shares of the case and recovers the secret with the given
// recoverer. Any failure is returned as a *CaseError that identifies the
// case.
func (c Case) Solve(r Recoverer) (*big.Int, error) {
	points, err := c.Shares.Decode()
	if err != nil {
		return nil, &CaseError{Case: c.ID, Err: err}
	}

	secret, err := r.Recover(points, c.K)
	if err != nil {
		return nil, &CaseError{Case: c.ID, Err: err}
	}
	return secret, nil
}
