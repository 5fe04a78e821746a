// Package initialize implements "scaletrail init": the interactive wizard
// that produces the per-environment configuration files and the .env
// secrets file.
package initialize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"scaletrailhq/scaletrail/internal/config"
	"scaletrailhq/scaletrail/internal/envfile"
	"scaletrailhq/scaletrail/internal/providers/cloudflare"
	"scaletrailhq/scaletrail/internal/providers/linode"
	"scaletrailhq/scaletrail/internal/services/auth"
	"scaletrailhq/scaletrail/internal/tui"
	"scaletrailhq/scaletrail/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "init" Cobra command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the project configuration",
		Long: `Initialize the project configuration interactively.

The wizard collects a region, one or more environments, an instance size and
operating system per environment, a domain, and integration credentials, then
writes config/<env>-config.toml per environment plus a .env secrets file.

Any flag you pass skips its prompt:

  scaletrail init --project-name shop --region us-east \
    --environments dev,prod --domain example.com --backups --tags web,shop`,
		RunE:         runInit,
		SilenceUsage: true,
	}

	cmd.Flags().String("project-name", "", "Name of the project to initialize")
	cmd.Flags().String("continent", "", "Continent to narrow the region prompt (e.g. Europe)")
	cmd.Flags().String("region", "", "Linode region slug (e.g. us-east); skips the region prompt")
	cmd.Flags().StringSlice("environments", nil, "Environments to set up (e.g. dev,staging,prod)")
	cmd.Flags().String("domain", "", "Domain to configure (e.g. example.com)")
	cmd.Flags().Bool("backups", false, "Enable backups for the instances")
	cmd.Flags().String("tags", "", "Comma-separated tags to apply to the instances")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if !term.IsTerminal(int(os.Stdin.Fd())) && missingRequiredFlags(cmd) {
		return fmt.Errorf("init requires a terminal for its prompts (or pass every required flag)")
	}

	tui.ShowBanner(out)

	secrets, err := envfile.FindOrCreate("")
	if err != nil {
		return reportError(errOut, err)
	}

	opts := optionsFromFlags(cmd)
	wizard := tui.NewWizard(out, errOut, secrets, auth.DefaultStore(),
		func(token string) tui.CatalogClient { return linode.New(token) },
		func(token string) tui.DNSClient { return cloudflare.New(token) },
		opts)

	result, err := wizard.Run(context.Background())
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(errOut, styles.Error("Initialization cancelled."))
			return err
		}
		return reportError(errOut, err)
	}

	// File writes happen strictly after all selection has completed, one
	// file per environment.
	for _, env := range result.Environments {
		cfg := buildConfig(result, env)
		if err := cfg.Save(); err != nil {
			return reportError(errOut, err)
		}
	}

	envList := strings.Join(result.Environments, ", ")
	fmt.Fprintln(out, styles.Success(fmt.Sprintf("Configs for %s have been saved to the config folder.", envList)))
	fmt.Fprintln(out, "Initialization complete! Run 'scaletrail preview' to review the planned infrastructure.")

	return nil
}

func optionsFromFlags(cmd *cobra.Command) tui.Options {
	projectName, _ := cmd.Flags().GetString("project-name")
	continent, _ := cmd.Flags().GetString("continent")
	region, _ := cmd.Flags().GetString("region")
	environments, _ := cmd.Flags().GetStringSlice("environments")
	domainName, _ := cmd.Flags().GetString("domain")
	backups, _ := cmd.Flags().GetBool("backups")
	tags, _ := cmd.Flags().GetString("tags")

	return tui.Options{
		ProjectName:    projectName,
		Continent:      continent,
		Region:         region,
		Environments:   environments,
		Domain:         domainName,
		BackupsEnabled: backups,
		BackupsSet:     cmd.Flags().Changed("backups"),
		Tags:           tags,
	}
}

func missingRequiredFlags(cmd *cobra.Command) bool {
	for _, name := range []string{"project-name", "region", "domain"} {
		if !cmd.Flags().Changed(name) {
			return true
		}
	}
	environments, _ := cmd.Flags().GetStringSlice("environments")
	return len(environments) == 0
}

func buildConfig(result *tui.Result, env string) *config.EnvironmentConfig {
	return &config.EnvironmentConfig{
		Project: config.Project{
			Name:        result.ProjectName,
			Initialized: true,
		},
		Environment: config.Environment{Name: env},
		Linode: config.Linode{
			Region:         result.Region,
			BackupsEnabled: result.BackupsEnabled,
			Tags:           result.Tags,
			InstanceType:   result.InstanceByEnv[env],
			Image:          result.ImageByEnv[env],
		},
		Cloudflare: config.Cloudflare{
			AccountIDSaved: result.Credentials.CloudflareAccountID != "",
			APIKeySaved:    result.Credentials.CloudflareAPIKey != "",
		},
		Stripe:   config.SecretSaved{APIKeySaved: result.Credentials.StripeAPIKey != ""},
		Sendgrid: config.SecretSaved{APIKeySaved: result.Credentials.SendgridAPIKey != ""},
		Domain:   config.Domain{Root: result.Domain},
	}
}

func reportError(errOut io.Writer, err error) error {
	fmt.Fprintln(errOut, styles.Error(err.Error()))
	return err
}
