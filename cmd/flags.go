package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/tdlearn/agent/tabular"
)

// Flags holds the settings of a command line run
type Flags struct {
	SavePath    string
	Environment string
	Config      string // experiment configuration file, overrides flags
	AgentFlags
	RunFlags
	LogEvery int
	Chart    bool
	Colour   bool
	Values   bool // print the learned action values
}

// AgentFlags holds the hyperparameters of the agents
type AgentFlags struct {
	Algorithm    string
	LearningRate float64
	Discount     float64
	Epsilon      float64
	Tolerance    float64
}

// RunFlags holds the settings of an experiment
type RunFlags struct {
	Episodes int
	Seed     uint64
}

// DefaultFlags returns the default Flags
func DefaultFlags() *Flags {
	return &Flags{
		SavePath:    "results",
		Environment: "windy",
		AgentFlags: AgentFlags{
			Algorithm:    "qlearning",
			LearningRate: 0.1,
			Discount:     0.8,
			Epsilon:      tabular.DefaultEpsilon,
			Tolerance:    tabular.DefaultTolerance,
		},
		RunFlags: RunFlags{
			Episodes: 8000,
			Seed:     tabular.DefaultSeed,
		},
		LogEvery: 0,
		Chart:    false,
		Colour:   true,
		Values:   false,
	}
}

// Record saves the Flags as JSON in the save path
func (f *Flags) Record() error {
	return saveJSON(filepath.Join(f.SavePath, "config.json"), f)
}

// saveJSON saves data as JSON to path, creating its directory if needed
func saveJSON(path string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("saveJSON: %v", err)
	}

	bs, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return fmt.Errorf("saveJSON: %v", err)
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return fmt.Errorf("saveJSON: %v", err)
	}
	return nil
}

// loadJSON decodes the JSON file at path into data
func loadJSON(path string, data interface{}) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loadJSON: %v", err)
	}
	if err := json.Unmarshal(bs, data); err != nil {
		return fmt.Errorf("loadJSON: %v", err)
	}
	return nil
}
