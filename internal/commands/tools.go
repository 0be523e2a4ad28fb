// internal/commands/tools.go
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogsmith-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools this server exposes",
	Run: func(cmd *cobra.Command, args []string) {
		registry := tools.NewRegistry(*GetConfig(), nil)
		heading := color.New(color.FgCyan, color.Bold)
		for _, e := range registry.Entries() {
			_, _ = heading.Fprintln(cmd.OutOrStdout(), e.Tool.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e.Tool.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
