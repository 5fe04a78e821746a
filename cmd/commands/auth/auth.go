package auth

import (
	"github.com/spf13/cobra"
)

// Providers that accept a stored token. The .env file in the project
// directory takes precedence over the keychain at use time.
var providerNames = []string{"linode", "cloudflare"}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication for providers",
		Long: `Manage authentication for providers.

Use this command group to store API tokens in the OS keychain. Tokens stored
here are picked up by 'scaletrail init' when the project .env file does not
already hold them.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
