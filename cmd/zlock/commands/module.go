package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newModuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "module ARGS_FILE",
		Short: "Run as a configuration-management module",
		Long: "Reads module arguments from a JSON file and prints the result as one JSON object. " +
			"On failure it prints {\"failed\": true, \"msg\": ...} and exits 1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunModule(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}
