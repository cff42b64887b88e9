package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "rangecal",
		Short:         "rangecal picks a date range on a dual-calendar view",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the interactive picker.
			return runPick(cmd, newPickFlags(), flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newGridCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
