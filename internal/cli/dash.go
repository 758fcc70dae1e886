package cli

import (
	"github.com/spf13/cobra"

	"drover/internal/filter"
	"drover/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive session dashboard",
	Long: `dash opens a terminal dashboard that polls the session's console and
network telemetry. The same filter flags as 'drover logs' apply, with
console flags under console- and network flags under network-.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		consoleOverride, err := consoleOverrides(cmd, "console-")
		if err != nil {
			return err
		}
		networkOverride, err := networkOverrides(cmd, "network-")
		if err != nil {
			return err
		}

		consoleQuery, err := filter.ResolveConsole(cfg.Filters.Console, consoleOverride)
		if err != nil {
			return err
		}
		networkQuery, err := filter.ResolveNetwork(cfg.Filters.Network, networkOverride)
		if err != nil {
			return err
		}

		return tui.Run(client, sessionID, cfg.Model, consoleQuery, networkQuery)
	},
}

func init() {
	registerConsoleFilterFlags(dashCmd, "console-")
	registerNetworkFilterFlags(dashCmd, "network-")

	rootCmd.AddCommand(dashCmd)
}
