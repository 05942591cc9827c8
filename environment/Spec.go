package environment

import (
	"fmt"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action, a state, or a reward
type SpecType int

const (
	Action SpecType = iota
	State
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case State:
		return "State"
	default:
		return "Reward"
	}
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// size, and cardinality of the actions, states, or rewards in an
// environment. For discrete specifications, Size is the number of
// enumerated values (0, 1, ... Size-1).
type Spec struct {
	Type SpecType
	Size int
	Cardinality
}

// NewSpec constructs a new environment specification
func NewSpec(t SpecType, size int, cardinality Cardinality) Spec {
	if size <= 0 {
		panic(fmt.Sprintf("newSpec: size %v must be positive", size))
	}
	return Spec{t, size, cardinality}
}

func (s Spec) String() string {
	return fmt.Sprintf("%v Spec | Size: %d  |  Cardinality: %v", s.Type,
		s.Size, s.Cardinality)
}
