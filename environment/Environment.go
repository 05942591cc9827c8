// Package environment outlines the interfaces and structs needed to
// describe finite, deterministic Markov decision processes that agents
// learn in
package environment

// Starter samples starting states for episodes
type Starter interface {
	Start() int
}

// Environment implements a finite, deterministic Markov decision
// process. States are enumerated as (0, 1, ... NumStates()-1) and
// actions as (0, 1, ... NumActions()-1); every action is available in
// every state.
//
// An Environment is immutable for the life of any agent learning in it.
// Reaching the Goal() state terminates an episode, and the Environment
// must guarantee that the goal is reachable from every state an agent
// may visit.
type Environment interface {
	// Next returns the state reached by taking action in state
	Next(state, action int) int

	// Reward returns the reward for taking action in state
	Reward(state, action int) float64

	// Goal returns the terminal state
	Goal() int

	NumStates() int
	NumActions() int

	StateSpec() Spec
	ActionSpec() Spec
}
