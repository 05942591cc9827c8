package qlearning

import (
	"fmt"
	"reflect"

	"github.com/samuelfneumann/tdlearn/agent"
	"github.com/samuelfneumann/tdlearn/agent/tabular"
	"github.com/samuelfneumann/tdlearn/environment"
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.QLearningTabular, ConfigList{})
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	LearningRate []float64
	Discount     []float64
	Epsilon      []float64
	Tolerance    []float64
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(learningRate, discount, ɛ,
	tolerance []float64) agent.TypedConfigList {
	config := ConfigList{
		LearningRate: learningRate,
		Discount:     discount,
		Epsilon:      ɛ,
		Tolerance:    tolerance,
	}
	return agent.NewTypedConfigList(config)
}

// Config returns an empty Config that is of the type stored by
// ConfigList
func (c ConfigList) Config() agent.Config {
	return Config{}
}

// Type returns the type of agent that can be constructed by Config's
// stored by the list
func (c ConfigList) Type() agent.Type {
	return c.Config().Type()
}

// NumFields returns the number of settable fields for the ConfigList
func (c ConfigList) NumFields() int {
	rValue := reflect.ValueOf(c)
	return rValue.NumField()
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.LearningRate) * len(c.Discount) * len(c.Epsilon) *
		len(c.Tolerance)
}

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate float64
	Discount     float64
	Epsilon      float64 // epsilon for behaviour policy
	Tolerance    float64
}

// NewConfig returns a Config with the default exploration rate and
// tie tolerance
func NewConfig(learningRate, discount float64) Config {
	return Config{
		LearningRate: learningRate,
		Discount:     discount,
		Epsilon:      tabular.DefaultEpsilon,
		Tolerance:    tabular.DefaultTolerance,
	}
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if err := c.td().Validate(); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.QLearningTabular
}

func (c Config) td() tabular.Config {
	return tabular.Config{
		LearningRate: c.LearningRate,
		Discount:     c.Discount,
		Epsilon:      c.Epsilon,
		Tolerance:    c.Tolerance,
	}
}
