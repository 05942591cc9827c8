// Package sarsa implements tabular SARSA
package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/tdlearn/agent/tabular"
	"github.com/samuelfneumann/tdlearn/environment"
)

// Sarsa implements tabular SARSA.
//
// Each episode starts in a uniformly random state, and every action,
// including the first, is chosen by the ε-greedy behaviour policy. The
// update target bootstraps off the action that is taken next, so that
// the values learned are those of the behaviour policy.
type Sarsa struct {
	*tabular.TD
}

// New creates a new Sarsa agent on env
func New(env environment.Environment, c Config, seed uint64) (*Sarsa,
	error) {
	td, err := tabular.New(env, bootstrapper{}, c.td(), seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create sarsa agent: %w", err)
	}

	return &Sarsa{td}, nil
}

type bootstrapper struct{}

func (bootstrapper) Start(td *tabular.TD) (state, action int) {
	state = td.SelectState()
	return state, td.SelectAction(state)
}

func (bootstrapper) Next(td *tabular.TD, nextState int) int {
	return td.SelectAction(nextState)
}
