package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/utils/floatutils"
)

// Greedy is a deterministic greedy policy over a table of action
// values. Ties between actions whose values lie within the tie
// tolerance are broken in favour of the lowest action index, so that
// the same table always yields the same action.
type Greedy struct {
	values    *mat.Dense
	tolerance float64
}

// NewGreedy creates a new Greedy policy referencing values
func NewGreedy(tol float64, values *mat.Dense) *Greedy {
	return &Greedy{values, tol}
}

// SelectAction selects the greedy action in state
func (p *Greedy) SelectAction(state int) int {
	return floatutils.ArgMax(p.values.RawRowView(state), p.tolerance)
}
