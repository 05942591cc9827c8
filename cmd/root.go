// Package cmd implements the command line interface for training
// tabular agents on gridworlds
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCommand returns the tdlearn command
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tdlearn",
		Short: "Tabular temporal-difference learning on gridworlds",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			UpdateFlags()
			return flags.Record()
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		TrainCommand(),
		CompareCommand(),
	)

	return cmd
}
