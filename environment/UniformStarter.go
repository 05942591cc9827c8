package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformStarter returns starting states sampled from a uniform
// categorical distribution over the states (0, 1, 2, ... N-1).
type UniformStarter struct {
	rand distuv.Categorical
}

// NewUniformStarter returns a new UniformStarter over states states.
// Samples are drawn from source, which may be shared with other
// samplers so that a single seed determines a whole run.
func NewUniformStarter(states int, source rand.Source) *UniformStarter {
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &UniformStarter{distuv.NewCategorical(weights, source)}
}

// Start returns a starting state
func (u *UniformStarter) Start() int {
	return int(u.rand.Rand())
}

