// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a table of action values.
// The table has one row per state and one column per action.
//
// With probability ε, an action is selected uniformly at random.
// Otherwise, the action with the highest value in the current state is
// selected. Actions whose values lie within the tie tolerance of the
// highest value are tied, and ties are broken uniformly at random. In
// particular, a state whose action values are all equal (e.g. before
// any learning) always selects uniformly at random.
type EGreedy struct {
	values    *mat.Dense
	epsilon   float64
	tolerance float64
	rng       *rand.Rand
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected, tol is the
// tolerance within which two action values are considered equal, and
// rng is the random number generator used for all sampling. The values
// table is referenced, not copied, so that updates a learner makes to
// the table are reflected in the actions the policy chooses.
func NewEGreedy(e, tol float64, values *mat.Dense,
	rng *rand.Rand) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon %v not in [0, 1]", e)
	}
	if tol < 0 {
		return nil, fmt.Errorf("newEGreedy: tolerance %v is negative", tol)
	}
	if rng == nil {
		return nil, fmt.Errorf("newEGreedy: nil random number generator")
	}

	return &EGreedy{
		values:    values,
		epsilon:   e,
		tolerance: tol,
		rng:       rng,
	}, nil
}

// SelectAction selects an action in state from the ε-greedy policy
func (p *EGreedy) SelectAction(state int) int {
	_, numActions := p.values.Dims()

	if p.rng.Float64() < p.epsilon {
		return p.rng.Intn(numActions)
	}

	_, ties := floatutils.MaxSlice(p.values.RawRowView(state), p.tolerance)
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[p.rng.Intn(len(ties))]
}
