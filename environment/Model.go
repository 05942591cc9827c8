package environment

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/utils/floatutils"
)

var (
	ErrEmptyTable      = errors.New("empty table")
	ErrRaggedTable     = errors.New("ragged table")
	ErrStateOutOfRange = errors.New("state out of range")
	ErrGoalOutOfRange  = errors.New("goal out of range")
	ErrNonFinite       = errors.New("non-finite reward")
)

// Model is a tabular Environment. The transition table maps each
// (state, action) pair to the next state and the reward table maps each
// (state, action) pair to a reward. Both tables are copied on
// construction, so a Model never changes after it is created.
type Model struct {
	transitions [][]int
	rewards     *mat.Dense
	goal        int
}

// NewModel creates a new Model from a transition table, reward table,
// and goal state. The number of states is len(transitions) and the
// number of actions is len(transitions[0]). Every row of both tables
// must have exactly one entry per action, every transition must lead
// to a valid state, and every reward must be finite.
func NewModel(transitions [][]int, rewards [][]float64,
	goal int) (*Model, error) {
	if len(transitions) == 0 || len(transitions[0]) == 0 {
		return nil, fmt.Errorf("newModel: transitions: %w", ErrEmptyTable)
	}
	numStates, numActions := len(transitions), len(transitions[0])

	if len(rewards) != numStates {
		return nil, fmt.Errorf("newModel: rewards have %d rows, want %d: %w",
			len(rewards), numStates, ErrRaggedTable)
	}
	if goal < 0 || goal >= numStates {
		return nil, fmt.Errorf("newModel: goal %d not in [0, %d): %w", goal,
			numStates, ErrGoalOutOfRange)
	}

	table := make([][]int, numStates)
	values := make([]float64, 0, numStates*numActions)
	for state := range transitions {
		if l := len(transitions[state]); l != numActions {
			return nil, fmt.Errorf("newModel: transitions[%d] has %d "+
				"actions, want %d: %w", state, l, numActions, ErrRaggedTable)
		}
		if l := len(rewards[state]); l != numActions {
			return nil, fmt.Errorf("newModel: rewards[%d] has %d "+
				"actions, want %d: %w", state, l, numActions, ErrRaggedTable)
		}
		if !floatutils.AllFinite(rewards[state]) {
			return nil, fmt.Errorf("newModel: rewards[%d]: %w", state,
				ErrNonFinite)
		}

		for action, next := range transitions[state] {
			if next < 0 || next >= numStates {
				return nil, fmt.Errorf("newModel: transitions[%d][%d] = %d "+
					"not in [0, %d): %w", state, action, next, numStates,
					ErrStateOutOfRange)
			}
		}

		table[state] = append([]int(nil), transitions[state]...)
		values = append(values, rewards[state]...)
	}

	return &Model{
		transitions: table,
		rewards:     mat.NewDense(numStates, numActions, values),
		goal:        goal,
	}, nil
}

// Next returns the state reached by taking action in state
func (m *Model) Next(state, action int) int {
	return m.transitions[state][action]
}

// Reward returns the reward for taking action in state
func (m *Model) Reward(state, action int) float64 {
	return m.rewards.At(state, action)
}

// Goal returns the terminal state
func (m *Model) Goal() int {
	return m.goal
}

// NumStates returns the number of states in the Model
func (m *Model) NumStates() int {
	return len(m.transitions)
}

// NumActions returns the number of actions available in each state
func (m *Model) NumActions() int {
	return len(m.transitions[0])
}

// StateSpec returns the state specification of the Model
func (m *Model) StateSpec() Spec {
	return NewSpec(State, m.NumStates(), Discrete)
}

// ActionSpec returns the action specification of the Model
func (m *Model) ActionSpec() Spec {
	return NewSpec(Action, m.NumActions(), Discrete)
}

// Rewards returns a copy of the reward table
func (m *Model) Rewards() *mat.Dense {
	return mat.DenseCopyOf(m.rewards)
}

// Transitions returns a copy of the transition table
func (m *Model) Transitions() [][]int {
	table := make([][]int, len(m.transitions))
	for state := range m.transitions {
		table[state] = append([]int(nil), m.transitions[state]...)
	}
	return table
}

func (m *Model) String() string {
	str := "Model | States: %d  |  Actions: %d  |  Goal: %d"
	return fmt.Sprintf(str, m.NumStates(), m.NumActions(), m.goal)
}
