// Package agent defines an agent interface
package agent

import (
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// action values that the Policy acts on.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Train runs a single episode to completion, updating the action
	// values along the way, and returns the sum of the updated action
	// values over the episode
	Train() float64

	// Quality returns the current value of taking action in state
	Quality(state, action int) float64

	// ActionValues returns a copy of the table of action values, with
	// one row per state and one column per action
	ActionValues() *mat.Dense
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent,
// the Policy and Learner should reference the same action values so
// that any changes the Learner makes are reflected in the actions the
// Policy chooses
type Policy interface {
	// SelectAction selects an action to explore with in state
	SelectAction(state int) int

	// Strategy returns the greedy sequence of actions from start to
	// the goal, stopping early if a state would be revisited
	Strategy(start int) []int
}
