package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdlearn/agent"
	"github.com/samuelfneumann/tdlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/tdlearn/agent/tabular/sarsa"
	"github.com/samuelfneumann/tdlearn/environment/envconfig"
	"github.com/samuelfneumann/tdlearn/environment/gridworld"
	"github.com/samuelfneumann/tdlearn/experiment"
	"github.com/samuelfneumann/tdlearn/experiment/tracker"
	"github.com/samuelfneumann/tdlearn/utils/progressbar"
)

const (
	barWidth    = 40
	chartWindow = 100
)

// envConfig returns the configuration of the named environment
func envConfig(name string) (envconfig.Config, error) {
	switch strings.ToLower(name) {
	case "windy":
		return envconfig.NewConfig(envconfig.Windy)
	case "cliff":
		return envconfig.NewConfig(envconfig.Cliff)
	}
	return envconfig.Config{}, fmt.Errorf("envConfig: no such "+
		"environment %v", name)
}

// agentConfigs returns the configuration of the named algorithm with
// the hyperparameters in a
func agentConfigs(algorithm string, a AgentFlags) (agent.TypedConfigList,
	error) {
	learningRate := []float64{a.LearningRate}
	discount := []float64{a.Discount}
	epsilon := []float64{a.Epsilon}
	tolerance := []float64{a.Tolerance}

	switch strings.ToLower(algorithm) {
	case "qlearning":
		return qlearning.NewConfigList(learningRate, discount, epsilon,
			tolerance), nil
	case "sarsa":
		return sarsa.NewConfigList(learningRate, discount, epsilon,
			tolerance), nil
	}
	return agent.TypedConfigList{}, fmt.Errorf("agentConfigs: no such "+
		"algorithm %v", algorithm)
}

// experimentConfig returns the experiment configuration for algorithm.
// If a configuration file is given in f, it is used instead.
func experimentConfig(f *Flags, algorithm string) (experiment.Config,
	error) {
	if f.Config != "" {
		var c experiment.Config
		if err := loadJSON(f.Config, &c); err != nil {
			return experiment.Config{}, fmt.Errorf("experimentConfig: %v",
				err)
		}
		return c, nil
	}

	envConf, err := envConfig(f.Environment)
	if err != nil {
		return experiment.Config{}, err
	}
	agentConf, err := agentConfigs(algorithm, f.AgentFlags)
	if err != nil {
		return experiment.Config{}, err
	}

	return experiment.Config{
		Type:      experiment.EpisodicExp,
		Episodes:  f.Episodes,
		Seed:      f.Seed,
		EnvConf:   envConf,
		AgentConf: agentConf,
	}, nil
}

// result is the outcome of training one agent
type result struct {
	name   string
	report experiment.Report
	grid   *gridworld.GridWorld
	values *mat.Dense
}

// runExperiment trains every agent configured in c and evaluates each
// from the start state of the environment. The progress bar is written
// to progress and logged total qualities to logs. If chart is not nil,
// each agent adds a series to it.
func runExperiment(ctx context.Context, c experiment.Config,
	progress io.Writer, logs io.Writer, chart *tracker.Chart) ([]result,
	error) {
	g, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, fmt.Errorf("runExperiment: %v", err)
	}

	results := make([]result, 0, c.AgentConf.Len())
	for i := 0; i < c.AgentConf.Len(); i++ {
		name := fmt.Sprintf("%v-%v", c.AgentConf.Type, c.EnvConf.Environment)
		if c.AgentConf.Len() > 1 {
			name = fmt.Sprintf("%v-%d", name, i)
		}
		id := experiment.RunID()

		quality := filepath.Join(flags.SavePath,
			fmt.Sprintf("%v-%v.bin", name, id))
		bar := progressbar.NewManualProgressBar(progress, barWidth,
			c.Episodes)

		trackers := []tracker.Tracker{
			tracker.NewTotalQuality(quality),
			tracker.NewProgress(bar, max(c.Episodes/100, 1)),
		}
		if flags.LogEvery > 0 {
			trackers = append(trackers, tracker.NewLogger(logs,
				flags.LogEvery))
		}
		if chart != nil {
			trackers = append(trackers, chart.Series(name))
		}

		exp, err := c.CreateExp(i, trackers...)
		if err != nil {
			return nil, fmt.Errorf("runExperiment: %v", err)
		}
		if err := exp.Run(ctx); err != nil {
			return nil, fmt.Errorf("runExperiment: %v", err)
		}
		if err := exp.Save(); err != nil {
			return nil, fmt.Errorf("runExperiment: %v", err)
		}

		report, err := exp.Evaluate(g.Start())
		if err != nil {
			return nil, fmt.Errorf("runExperiment: %v", err)
		}

		reportFile := filepath.Join(flags.SavePath,
			fmt.Sprintf("%v-%v-report.json", name, id))
		if err := saveJSON(reportFile, report); err != nil {
			return nil, fmt.Errorf("runExperiment: %v", err)
		}
		log.Printf("saved %v results to %v and %v", name, quality,
			reportFile)

		results = append(results, result{name, report, g,
			exp.ActionValues()})
	}

	return results, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
