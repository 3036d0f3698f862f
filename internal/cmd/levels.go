package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/ereport"
)

// NewLevelsCommand returns the levels subcommand.
func NewLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severity levels in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			for _, l := range ereport.Levels() {
				if _, err := fmt.Fprintf(c.OutOrStdout(), "%d %s\n", l.Weight, l.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
