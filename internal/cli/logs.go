package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drover/internal/filter"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Fetch captured telemetry from the session",
}

var logsConsoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Fetch console logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		override, err := consoleOverrides(cmd, "")
		if err != nil {
			return err
		}
		query, err := filter.ResolveConsole(cfg.Filters.Console, override)
		if err != nil {
			return err
		}

		resp, err := client.ConsoleLogs(sessionID, query)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp.Logs)
		}
		if len(resp.Logs) == 0 {
			fmt.Println("No console logs found")
			return nil
		}

		NewLogPrinter(os.Stdout).PrintConsoleRecords(resp.Logs, query.TruncateLength)
		return nil
	},
}

var logsNetworkCmd = &cobra.Command{
	Use:   "network",
	Short: "Fetch network logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		override, err := networkOverrides(cmd, "")
		if err != nil {
			return err
		}
		query, err := filter.ResolveNetwork(cfg.Filters.Network, override)
		if err != nil {
			return err
		}

		resp, err := client.NetworkLogs(sessionID, query)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp.Logs)
		}
		if len(resp.Logs) == 0 {
			fmt.Println("No network logs found")
			return nil
		}

		NewLogPrinter(os.Stdout).PrintNetworkRecords(resp.Logs, query.TruncateLength)
		return nil
	},
}

var clearLogsCmd = &cobra.Command{
	Use:   "clear-logs",
	Short: "Clear captured telemetry for the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		if err := client.ClearLogs(sessionID); err != nil {
			return err
		}
		fmt.Println("Logs cleared")
		return nil
	},
}

func init() {
	registerConsoleFilterFlags(logsConsoleCmd, "")
	registerNetworkFilterFlags(logsNetworkCmd, "")

	logsCmd.AddCommand(logsConsoleCmd)
	logsCmd.AddCommand(logsNetworkCmd)

	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(clearLogsCmd)
}
