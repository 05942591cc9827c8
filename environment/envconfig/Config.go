// Package envconfig provides configuration structs for configuring
// gridworld environments with default rewards. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "github.com/samuelfneumann/tdlearn/environment"
	"github.com/samuelfneumann/tdlearn/environment/gridworld"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Windy EnvName = "Windy"
	Cliff EnvName = "Cliff"
)

// Config implements a specific configuration of a specific gridworld.
// FallReward is only used by environments with cliffs.
type Config struct {
	Environment EnvName
	StepReward  float64
	GoalReward  float64
	FallReward  float64
}

// NewConfig returns a new environment Config with the default rewards
// of the named environment
func NewConfig(envName EnvName) (Config, error) {
	switch envName {
	case Windy:
		return Config{
			Environment: Windy,
			StepReward:  gridworld.WindyStepReward,
			GoalReward:  gridworld.WindyGoalReward,
		}, nil

	case Cliff:
		return Config{
			Environment: Cliff,
			StepReward:  gridworld.CliffStepReward,
			GoalReward:  gridworld.CliffGoalReward,
			FallReward:  gridworld.CliffFallReward,
		}, nil
	}

	return Config{}, fmt.Errorf("newConfig: no such environment %v",
		envName)
}

// Create returns the gridworld described by the Config as well as the
// Model compiled from it
func (c Config) Create() (*gridworld.GridWorld, *env.Model, error) {
	var (
		g   *gridworld.GridWorld
		err error
	)

	switch c.Environment {
	case Windy:
		g, err = gridworld.NewWindy(c.StepReward, c.GoalReward)

	case Cliff:
		g, err = gridworld.NewCliff(c.StepReward, c.GoalReward,
			c.FallReward)

	default:
		return nil, nil, fmt.Errorf("create: cannot create environment "+
			"%v, no such environment", c.Environment)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create: %v", err)
	}

	m, err := g.Model()
	if err != nil {
		return nil, nil, fmt.Errorf("create: %v", err)
	}
	return g, m, nil
}
