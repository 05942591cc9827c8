// Package tabular implements temporal-difference learning with an exact
// table of action values.
//
// A TD learner owns an action-value table with one row per state and
// one column per action, an environment, and an ε-greedy exploration
// policy. Each call to Train runs a full episode from a start state to
// the goal state, updating the table once per step. The algorithms
// built on TD differ only in their Bootstrapper, which decides how an
// episode starts and which next action the update bootstraps from.
package tabular

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/agent/tabular/policy"
	"github.com/samuelfneumann/tdlearn/environment"
)

const (
	DefaultEpsilon   float64 = 0.1
	DefaultTolerance float64 = 1e-9
	DefaultSeed      uint64  = 22061994
)

// Bootstrapper determines the parts of the TD update that differ
// between TD algorithms
type Bootstrapper interface {
	// Start returns the state and action that an episode starts with
	Start(td *TD) (state, action int)

	// Next returns the action in nextState whose value is used in the
	// update target. The episode continues by taking this action.
	Next(td *TD, nextState int) int
}

// Config represents the hyperparameters of a TD learner
type Config struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64 // epsilon for the exploration policy
	Tolerance    float64 // tolerance within which values are tied
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return fmt.Errorf("learning rate %v not in (0, 1]", c.LearningRate)
	}
	if !(c.Discount >= 0 && c.Discount < 1) {
		return fmt.Errorf("discount %v not in [0, 1)", c.Discount)
	}
	if !(c.Epsilon >= 0 && c.Epsilon <= 1) {
		return fmt.Errorf("epsilon %v not in [0, 1]", c.Epsilon)
	}
	if !(c.Tolerance >= 0) || math.IsInf(c.Tolerance, 1) {
		return fmt.Errorf("tolerance %v must be finite and non-negative",
			c.Tolerance)
	}
	return nil
}

// TD implements the parts of temporal-difference learning shared by
// all tabular TD algorithms.
//
// A TD is not safe for concurrent use.
type TD struct {
	env       environment.Environment
	bootstrap Bootstrapper

	values    *mat.Dense
	behaviour *policy.EGreedy
	target    *policy.Greedy
	starter   environment.Starter
	rng       *rand.Rand

	learningRate float64
	discount     float64
}

// New creates a new TD learner for env. All randomness (start states,
// exploration, tie-breaking) is drawn from a single source seeded with
// seed, so that learners with equal arguments produce identical
// training runs.
func New(env environment.Environment, b Bootstrapper, c Config,
	seed uint64) (*TD, error) {
	if env == nil {
		return nil, fmt.Errorf("new: nil environment")
	}
	if b == nil {
		return nil, fmt.Errorf("new: nil bootstrapper")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	// Ensure environment has discrete states and actions
	if env.StateSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("new: cannot use non-discrete states")
	}
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("new: cannot use non-discrete actions")
	}

	numStates, numActions := env.NumStates(), env.NumActions()
	if numStates <= 0 || numActions <= 0 {
		return nil, fmt.Errorf("new: environment must have states and "+
			"actions, has %d states and %d actions", numStates, numActions)
	}
	if goal := env.Goal(); goal < 0 || goal >= numStates {
		return nil, fmt.Errorf("new: goal %d not in [0, %d)", goal, numStates)
	}

	source := rand.NewSource(seed)
	rng := rand.New(source)

	// Ensure both policies and the learner reference the same values
	values := mat.NewDense(numStates, numActions, nil)
	behaviour, err := policy.NewEGreedy(c.Epsilon, c.Tolerance, values, rng)
	if err != nil {
		return nil, fmt.Errorf("new: invalid behaviour policy: %v", err)
	}
	target := policy.NewGreedy(c.Tolerance, values)

	return &TD{
		env:          env,
		bootstrap:    b,
		values:       values,
		behaviour:    behaviour,
		target:       target,
		starter:      environment.NewUniformStarter(numStates, source),
		rng:          rng,
		learningRate: c.LearningRate,
		discount:     c.Discount,
	}, nil
}

// SelectState selects a state uniformly at random
func (td *TD) SelectState() int {
	return td.starter.Start()
}

// SelectAction selects an action in state using the ε-greedy
// exploration policy
func (td *TD) SelectAction(state int) int {
	return td.behaviour.SelectAction(state)
}

// RandomAction selects an action uniformly at random
func (td *TD) RandomAction() int {
	return td.rng.Intn(td.env.NumActions())
}

// GreedyAction returns the action with the highest value in state.
// Ties are broken in favour of the lowest action index.
func (td *TD) GreedyAction(state int) int {
	return td.target.SelectAction(state)
}

// Train runs a single episode, updating the action values once per
// step until the goal state is reached. Train returns the sum of the
// updated action values over the episode, which is useful for
// inspecting convergence.
//
// Train does not limit the number of steps in an episode. If the goal
// cannot be reached from some visited state, Train does not return.
func (td *TD) Train() float64 {
	goal := td.env.Goal()
	state, action := td.bootstrap.Start(td)

	totalQuality := 0.0
	for state != goal {
		nextState := td.env.Next(state, action)
		nextAction := td.bootstrap.Next(td, nextState)

		current := td.values.At(state, action)
		target := td.env.Reward(state, action) +
			td.discount*td.values.At(nextState, nextAction)
		updated := current + td.learningRate*(target-current)
		td.values.Set(state, action, updated)

		totalQuality += updated

		state, action = nextState, nextAction
	}

	return totalQuality
}

// Quality returns the current value of taking action in state
func (td *TD) Quality(state, action int) float64 {
	return td.values.At(state, action)
}

// ActionValues returns a copy of the action-value table
func (td *TD) ActionValues() *mat.Dense {
	return mat.DenseCopyOf(td.values)
}
