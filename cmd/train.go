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

// TrainCommand returns the command which trains a single algorithm
func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an agent and compare its strategy with the shortest path",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt)
			defer stop()

			c, err := experimentConfig(flags, flags.Algorithm)
			if err != nil {
				return err
			}

			var chart *tracker.Chart
			if flags.Chart {
				chart = tracker.NewChart(
					filepath.Join(flags.SavePath, "charts", "train.html"),
					fmt.Sprintf("%v on %v", c.AgentConf.Type,
						c.EnvConf.Environment),
					chartWindow,
				)
			}

			writer := uilive.New()
			writer.Out = cmd.ErrOrStderr()
			writer.Start()
			results, err := runExperiment(ctx, c, writer, writer.Bypass(),
				chart)
			writer.Stop()
			if err != nil {
				return err
			}

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
