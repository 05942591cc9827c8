// Package oracle computes shortest action sequences through a tabular
// environment with breadth-first search. Learned strategies can be
// checked against these sequences.
package oracle

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// ErrUnreachable is returned when no sequence of actions leads from a
// state to the goal
var ErrUnreachable = errors.New("goal unreachable")

// Dynamics is the part of an environment that BFS needs
type Dynamics interface {
	Next(state, action int) int
	Goal() int
	NumStates() int
	NumActions() int
}

// Graph returns the state graph of env. Each state is a node and there
// is an edge from u to v if some action takes u to v. Self-transitions
// are omitted since they never shorten a path.
func Graph(env Dynamics) *simple.DirectedGraph {
	return newGraph(env, false)
}

func newGraph(env Dynamics, reversed bool) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for state := 0; state < env.NumStates(); state++ {
		g.AddNode(simple.Node(state))
	}

	for state := 0; state < env.NumStates(); state++ {
		for action := 0; action < env.NumActions(); action++ {
			from, to := state, env.Next(state, action)
			if from == to {
				continue
			}
			if reversed {
				from, to = to, from
			}
			if g.HasEdgeFromTo(int64(from), int64(to)) {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(to)))
		}
	}

	return g
}

// ShortestPath returns a shortest sequence of actions from start to the
// goal of env. The returned sequence is empty if start is the goal.
// When several actions lead from one state to the next state on the
// path, the lowest action is used. If more than one path is shortest,
// which one is returned is unspecified.
func ShortestPath(env Dynamics, start int) ([]int, error) {
	goal := env.Goal()
	if start < 0 || start >= env.NumStates() {
		return nil, fmt.Errorf("shortestPath: start %d not in [0, %d)",
			start, env.NumStates())
	}
	if start == goal {
		return []int{}, nil
	}

	parent := make(map[int64]int64)
	bf := traverse.BreadthFirst{
		Traverse: func(e graph.Edge) bool {
			from, to := e.From().ID(), e.To().ID()
			if _, seen := parent[to]; !seen && to != int64(start) {
				parent[to] = from
			}
			return true
		},
	}

	g := Graph(env)
	found := bf.Walk(g, simple.Node(start), func(n graph.Node, _ int) bool {
		return n.ID() == int64(goal)
	})
	if found == nil {
		return nil, fmt.Errorf("shortestPath: from %d: %w", start,
			ErrUnreachable)
	}

	// Walk back from the goal to the start
	states := []int{goal}
	for state := int64(goal); state != int64(start); {
		state = parent[state]
		states = append(states, int(state))
	}

	actions := make([]int, 0, len(states)-1)
	for i := len(states) - 1; i > 0; i-- {
		actions = append(actions, action(env, states[i], states[i-1]))
	}

	return actions, nil
}

// action returns the lowest action taking from to to
func action(env Dynamics, from, to int) int {
	for a := 0; a < env.NumActions(); a++ {
		if env.Next(from, a) == to {
			return a
		}
	}
	panic(fmt.Sprintf("action: no action from %d to %d", from, to))
}

// Unreachable returns the states, in increasing order, from which the
// goal of env cannot be reached
func Unreachable(env Dynamics) []int {
	bf := traverse.BreadthFirst{}
	bf.Walk(newGraph(env, true), simple.Node(env.Goal()), nil)

	states := make([]int, 0)
	for state := 0; state < env.NumStates(); state++ {
		if !bf.Visited(simple.Node(state)) {
			states = append(states, state)
		}
	}
	return states
}

// Reachable returns whether the goal of env can be reached from every
// state. Training only terminates on environments where this holds.
func Reachable(env Dynamics) bool {
	return len(Unreachable(env)) == 0
}
