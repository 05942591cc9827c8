package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flags       *Flags = DefaultFlags()
	savePath    string
	environment string
	configPath  string

	algorithm    string
	learningRate float64
	discount     float64
	epsilon      float64
	tolerance    float64

	episodes int
	seed     uint64

	logEvery int
	chart    bool
	colour   bool
	values   bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().StringVar(&environment, "env", flags.Environment, "Environment to learn in (windy or cliff)")
	cmd.PersistentFlags().StringVar(&configPath, "config", flags.Config, "Experiment configuration file, overrides the agent and run flags")

	cmd.PersistentFlags().StringVar(&algorithm, "algorithm", flags.Algorithm, "Learning algorithm (qlearning or sarsa)")
	cmd.PersistentFlags().Float64Var(&learningRate, "learning-rate", flags.LearningRate, "Learning rate")
	cmd.PersistentFlags().Float64Var(&discount, "discount", flags.Discount, "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration probability")
	cmd.PersistentFlags().Float64Var(&tolerance, "tolerance", flags.Tolerance, "Tolerance within which action values are tied")

	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Random seed")

	cmd.PersistentFlags().IntVar(&logEvery, "log-every", flags.LogEvery, "Log the total quality every n episodes, 0 to disable")
	cmd.PersistentFlags().BoolVar(&chart, "chart", flags.Chart, "Save a convergence chart")
	cmd.PersistentFlags().BoolVar(&colour, "colour", flags.Colour, "Colour the report")
	cmd.PersistentFlags().BoolVar(&values, "values", flags.Values, "Print the learned action values")
}

func UpdateFlags() {
	flags.SavePath = savePath
	flags.Environment = environment
	flags.Config = configPath

	flags.Algorithm = algorithm
	flags.LearningRate = learningRate
	flags.Discount = discount
	flags.Epsilon = epsilon
	flags.Tolerance = tolerance

	flags.Episodes = episodes
	flags.Seed = seed

	flags.LogEvery = logEvery
	flags.Chart = chart
	flags.Colour = colour
	flags.Values = values
}
