package experiment

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/samuelfneumann/tdlearn/timestep"
)

// rewardTolerance is the tolerance within which the rewards of two
// paths are considered equal
const rewardTolerance = 1e-9

// Path is a sequence of actions from a start state together with the
// result of taking them
type Path struct {
	Actions     []int
	Steps       []timestep.TimeStep
	Reward      float64
	Final       int // state reached after the last action
	ReachedGoal bool
}

// NewPath rolls out actions from start in e
func NewPath(e timestep.Dynamics, start int, actions []int) Path {
	steps := timestep.Rollout(e, start, actions)

	final := start
	if len(steps) > 0 {
		final = steps[len(steps)-1].NextState
	}

	return Path{
		Actions:     actions,
		Steps:       steps,
		Reward:      timestep.Return(steps),
		Final:       final,
		ReachedGoal: final == e.Goal(),
	}
}

// Len returns the number of actions on the path
func (p Path) Len() int {
	return len(p.Actions)
}

// Report compares the strategy an agent learned with a shortest path
// to the goal. A Report which does not Match is a signal that training
// has not converged, not an error.
type Report struct {
	Start    int
	Episodes int
	Learned  Path
	Shortest Path

	// Reachable is false if no path leads from Start to the goal, in
	// which case Shortest is empty
	Reachable bool

	// Match is true if the learned path reaches the goal in as few
	// steps and with the same reward as the shortest path
	Match bool
}

// NewReport creates a Report comparing learned with shortest
func NewReport(start, episodes int, learned, shortest Path) Report {
	match := learned.ReachedGoal &&
		learned.Len() == shortest.Len() &&
		scalar.EqualWithinAbsOrRel(learned.Reward, shortest.Reward,
			rewardTolerance, rewardTolerance)

	return Report{
		Start:     start,
		Episodes:  episodes,
		Learned:   learned,
		Shortest:  shortest,
		Reachable: true,
		Match:     match,
	}
}

