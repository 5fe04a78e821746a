// Package runcmd implements the "run" placeholder command.
package runcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand returns the "run" Cobra command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Deploy the planned infrastructure (not implemented yet)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Deployment is not implemented yet. Use 'scaletrail preview' to review the plan.")
			return nil
		},
		SilenceUsage: true,
	}
}
