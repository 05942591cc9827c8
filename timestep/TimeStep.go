// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment: the
// action taken in some state, the reward received, and the state that
// the action led to
type TimeStep struct {
	stepType  StepType
	State     int
	Action    int
	Reward    float64
	NextState int
	Number    int
}

// New returns a new TimeStep
func New(t StepType, state, action int, r float64, next, n int) TimeStep {
	return TimeStep{t, state, action, r, next, n}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep transitions into the goal state
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  %d --(%d)--> %d  |  Reward:  %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.State, t.Action, t.NextState,
		t.Reward, t.Number)
}

// Dynamics is the part of an environment needed to replay actions
type Dynamics interface {
	Next(state, action int) int
	Reward(state, action int) float64
	Goal() int
}

// Rollout replays a sequence of actions from the start state and
// returns the TimeSteps generated. The step that enters the goal state
// is a Last step, and replaying stops there even if actions remain.
func Rollout(env Dynamics, start int, actions []int) []TimeStep {
	steps := make([]TimeStep, 0, len(actions))

	state := start
	for i, action := range actions {
		if state == env.Goal() {
			break
		}

		next := env.Next(state, action)
		stepType := Mid
		if next == env.Goal() {
			stepType = Last
		} else if i == 0 {
			stepType = First
		}

		steps = append(steps, New(stepType, state, action,
			env.Reward(state, action), next, i+1))
		state = next
	}
	return steps
}

// Return returns the sum of rewards over steps
func Return(steps []TimeStep) float64 {
	rewards := make([]float64, len(steps))
	for i := range steps {
		rewards[i] = steps[i].Reward
	}
	return floats.Sum(rewards)
}

// ReachedGoal returns whether the last of steps enters the goal state
func ReachedGoal(steps []TimeStep) bool {
	return len(steps) > 0 && steps[len(steps)-1].Last()
}
