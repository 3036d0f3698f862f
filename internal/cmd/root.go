// Package cmd holds the ereport command tree.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs the ereport root command with the emit and levels
// subcommands.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "ereport",
		Short:         "Leveled reporting from the shell",
		Long:          "ereport emits leveled, multi-outlet log lines using reporters described in a config file.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(NewEmitCommand())
	root.AddCommand(NewLevelsCommand())
	return root
}
