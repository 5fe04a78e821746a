// Package preview implements "scaletrail preview": a human-readable
// rendering of the persisted configuration and the DNS records each
// environment would need.
package preview

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"scaletrailhq/scaletrail/internal/config"
	"scaletrailhq/scaletrail/internal/dnsplan"
	"scaletrailhq/scaletrail/internal/tui/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the "preview" Cobra command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Render the planned infrastructure and DNS records",
		Long: `Read every config/<env>-config.toml written by 'scaletrail init' and
render the planned infrastructure per environment, including the DNS
records that would need to be created. Nothing is provisioned.`,
		RunE:         runPreview,
		SilenceUsage: true,
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configs, err := config.LoadAll()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error(err.Error()))
		return err
	}
	if len(configs) == 0 {
		err := fmt.Errorf("no environment configs found (run 'scaletrail init' first)")
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error(err.Error()))
		return err
	}

	for i, cfg := range configs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printEnvironment(out, cfg)
	}

	return nil
}

func printEnvironment(out io.Writer, cfg *config.EnvironmentConfig) {
	env := cfg.Environment.Name
	header := styles.Title.Render(cfg.Project.Name) + " / " + styles.EnvironmentStyle(env).Render(env)
	fmt.Fprintln(out, header)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Region:\t%s\n", cfg.Linode.Region)
	fmt.Fprintf(w, "  Instance type:\t%s\n", cfg.Linode.InstanceType)
	fmt.Fprintf(w, "  Image:\t%s\n", cfg.Linode.Image)
	fmt.Fprintf(w, "  Backups:\t%t\n", cfg.Linode.BackupsEnabled)
	fmt.Fprintf(w, "  Tags:\t%s\n", formatTags(cfg.Linode.Tags))
	fmt.Fprintf(w, "  Domain:\t%s\n", cfg.Domain.Root)
	fmt.Fprintf(w, "  Cloudflare:\t%s\n", formatSaved(cfg.Cloudflare.AccountIDSaved && cfg.Cloudflare.APIKeySaved))
	fmt.Fprintf(w, "  Stripe:\t%s\n", formatSaved(cfg.Stripe.APIKeySaved))
	fmt.Fprintf(w, "  SendGrid:\t%s\n", formatSaved(cfg.Sendgrid.APIKeySaved))
	w.Flush()

	if cfg.Domain.Root == "" {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Subtitle.Render("  Planned DNS records:"))

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tTYPE\tCONTENT\tPROXIED\tTTL")
	for _, record := range dnsplan.PlanRecords(cfg.Domain.Root, env) {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%t\t%s\n",
			record.Name, record.Type, record.Content, record.Proxied, formatTTL(record.TTL))
	}
	w.Flush()
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

func formatSaved(saved bool) string {
	if saved {
		return "credentials saved"
	}
	return "not configured"
}

func formatTTL(ttl int) string {
	if ttl == 1 {
		return "auto"
	}
	return fmt.Sprintf("%d", ttl)
}
