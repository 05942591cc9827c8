// Package qlearning implements tabular Q-learning
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/tdlearn/agent/tabular"
	"github.com/samuelfneumann/tdlearn/environment"
)

// QLearning implements tabular Q-learning.
//
// Each episode starts in a state and with an action chosen uniformly at
// random. The update target bootstraps off the greedy action in the
// next state, and the episode continues by taking that greedy action.
type QLearning struct {
	*tabular.TD
}

// New creates a new QLearning agent on env
func New(env environment.Environment, c Config, seed uint64) (*QLearning,
	error) {
	td, err := tabular.New(env, bootstrapper{}, c.td(), seed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create qlearning agent: %w",
			err)
	}

	return &QLearning{td}, nil
}

// bootstrapper implements the Q-learning target
type bootstrapper struct{}

// Start returns a uniformly random state and action
func (bootstrapper) Start(td *tabular.TD) (state, action int) {
	return td.SelectState(), td.RandomAction()
}

// Next returns the greedy action in nextState
func (bootstrapper) Next(td *tabular.TD, nextState int) int {
	return td.GreedyAction(nextState)
}
