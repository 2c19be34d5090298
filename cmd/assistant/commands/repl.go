package commands

import (
	"github.com/spf13/cobra"
)

// repl: talk to the assistant on the terminal until close or exit.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	return dispatcher.RunREPL(cmd.InOrStdin(), cmd.OutOrStdout())
}
