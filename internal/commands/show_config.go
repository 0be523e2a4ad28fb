// internal/commands/show_config.go
package commands

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"blogsmith-mcp/internal/appconfig"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), *cfg)
		if cfg.Debug {
			// Full struct dump, secrets included; debug only.
			_, _ = pp.Fprintln(cmd.OutOrStdout(), cfg)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
