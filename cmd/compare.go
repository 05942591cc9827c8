package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/tdlearn/experiment/report"
	"github.com/samuelfneumann/tdlearn/experiment/tracker"
)

// algorithms compared by the compare command
var algorithms = []string{"qlearning", "sarsa"}

// CompareCommand returns the command which trains every algorithm on
// the same environment, one after another, and reports all strategies
func CompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Train Q-learning and Sarsa on the same environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt)
			defer cancel()

			if flags.Config != "" {
				return fmt.Errorf("compare: cannot use a configuration " +
					"file, use the agent flags instead")
			}

			var chart *tracker.Chart
			if flags.Chart {
				chart = tracker.NewChart(
					filepath.Join(flags.SavePath, "charts", "compare.html"),
					fmt.Sprintf("Q-learning and Sarsa on %v",
						flags.Environment),
					chartWindow,
				)
			}

			writer := uilive.New()
			writer.Out = cmd.ErrOrStderr()
			writer.Start()

			results := make([]result, 0, len(algorithms))
			for _, algorithm := range algorithms {
				c, err := experimentConfig(flags, algorithm)
				if err != nil {
					writer.Stop()
					return err
				}

				rs, err := runExperiment(ctx, c, writer, writer.Bypass(),
					chart)
				if err != nil {
					writer.Stop()
					return err
				}
				results = append(results, rs...)
			}
			writer.Stop()

			if chart != nil {
				if err := chart.Save(); err != nil {
					return err
				}
			}

			printer := report.NewPrinter(cmd.OutOrStdout(), flags.Colour)
			for _, r := range results {
				printer.Print(r.name, r.report, r.grid)
				if flags.Values {
					printer.Values(r.values)
				}
			}
			return nil
		},
	}

	return cmd
}
