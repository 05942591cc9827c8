// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/agent"
	"github.com/samuelfneumann/tdlearn/environment"
	"github.com/samuelfneumann/tdlearn/environment/envconfig"
	"github.com/samuelfneumann/tdlearn/experiment/tracker"
	"github.com/samuelfneumann/tdlearn/oracle"
)

// Interface Experiment outlines structs that can run experiments.
// The Run() method trains an agent for all episodes of the experiment
// and the RunEpisode() function trains the agent for a single episode.
//
// Experiments send the total quality of each episode to Trackers using
// the Tracker's Track() method. The Tracker then determines which data
// it caches and saves. The Save() function saves all tracked data,
// and is usually called after an experiment has been run. New Trackers
// can be registered with an Experiment through the constructor or
// through an Experiment's Register() function.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode() bool // Returns whether or not the experiment finished

	// Evaluate compares the strategy of the agent from start with the
	// shortest path to the goal
	Evaluate(start int) (Report, error)

	// ActionValues returns a copy of the agent's action values
	ActionValues() *mat.Dense

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

type Type string

const (
	EpisodicExp Type = "EpisodicExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Episodes  int
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfigList
}

// CreateExp creates the experiment which trains the agent at index i
// of the agent configurations
func (c Config) CreateExp(i int, t ...tracker.Tracker) (Experiment,
	error) {
	_, env, err := c.EnvConf.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create "+
			"environment: %v", err)
	}
	if err := reachable(env); err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}

	if i < 0 || i >= c.AgentConf.Len() {
		return nil, fmt.Errorf("createExp: agent config %d not in [0, %d)",
			i, c.AgentConf.Len())
	}
	agentConf := c.AgentConf.At(i)
	if err := agentConf.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: invalid agent config: %v", err)
	}

	agent, err := agentConf.CreateAgent(env, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	switch c.Type {
	case EpisodicExp:
		return NewEpisodic(env, agent, c.Episodes, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}

// reachable returns an error listing the states of e from which the
// goal cannot be reached. Training never ends in such environments.
func reachable(e environment.Environment) error {
	if states := oracle.Unreachable(e); len(states) > 0 {
		return fmt.Errorf("reachable: goal %d unreachable from states %v: %w",
			e.Goal(), states, oracle.ErrUnreachable)
	}
	return nil
}

// RunID returns a new unique identifier for an experiment run, which
// can be used to name the files an experiment saves
func RunID() string {
	return uuid.NewString()
}
