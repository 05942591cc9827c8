package agent

import (
	"fmt"
	"reflect"

	"github.com/samuelfneumann/tdlearn/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}

// ConfigList implements functionality for storing a number of Configs
// in a simple manner. Instead of storing a slice of Configs, a
// ConfigList stores a slice of values for each field of its Config,
// and the Configs in the list are every combination of field values.
//
// Each field of a ConfigList must be a slice whose element type and
// name match a field of the Config type it stores.
type ConfigList interface {
	// Config returns an empty Config of the type stored by the list
	Config() Config

	// Type returns the type of agent created by the stored Configs
	Type() Type

	// NumFields returns the number of settable fields
	NumFields() int

	// Len returns the number of Configs stored by the list
	Len() int
}

// ConfigAt returns the Config at index i in the ConfigList c. Configs
// are enumerated with the last field varying fastest.
func ConfigAt(i int, c ConfigList) Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("configAt: index %d out of range [0, %d)", i,
			c.Len()))
	}

	list := reflect.ValueOf(c)
	config := reflect.New(reflect.TypeOf(c.Config())).Elem()

	for field := list.NumField() - 1; field >= 0; field-- {
		values := list.Field(field)
		name := list.Type().Field(field).Name

		target := config.FieldByName(name)
		if !target.IsValid() {
			panic(fmt.Sprintf("configAt: config %T has no field %v",
				c.Config(), name))
		}

		target.Set(values.Index(i % values.Len()))
		i /= values.Len()
	}

	return config.Interface().(Config)
}
