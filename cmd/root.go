package cmd

import (
	"os"

	"scaletrailhq/scaletrail/cmd/commands/auth"
	"scaletrailhq/scaletrail/cmd/commands/initialize"
	"scaletrailhq/scaletrail/cmd/commands/preview"
	"scaletrailhq/scaletrail/cmd/commands/runcmd"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "scaletrail",
		Short: "An interactive wizard that plans cloud infrastructure and DNS",
		Long: `scaletrail is an interactive command-line wizard that plans single-VM
infrastructure on Linode and DNS on Cloudflare. It collects your choices
(region, instance size, operating system, domain), enumerates the available
options from the provider APIs, and writes one configuration file per
environment. Nothing is ever provisioned: scaletrail only plans and previews.

Quick start:
  scaletrail init                  # Interactive project setup
  scaletrail preview               # Render the planned infrastructure
  scaletrail run                   # (not implemented yet)`,
	}

	cmd.AddCommand(initialize.NewCommand())
	cmd.AddCommand(preview.NewCommand())
	cmd.AddCommand(runcmd.NewCommand())
	cmd.AddCommand(auth.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
