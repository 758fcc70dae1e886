package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drover/internal/api"
	"drover/internal/config"
	"drover/internal/constants"
	"drover/internal/filter"
)

// Act command flags
var (
	actVision      bool
	actModel       string
	actIncludeLogs bool
)

var navigateCmd = &cobra.Command{
	Use:   "navigate <url>",
	Short: "Point the remote browser at a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		resp, err := client.Navigate(sessionID, api.NavigateRequest{
			URL:     args[0],
			Timeout: cfg.NavigationTimeout,
		})
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("navigation failed: %s", orUnknown(resp.Error))
		}

		fmt.Println("Navigation successful")
		return nil
	},
}

var actCmd = &cobra.Command{
	Use:   "act <instruction>",
	Short: "Perform a natural-language action on the current page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		req := api.ActRequest{
			Action:      args[0],
			UseVision:   visionMode(actVision),
			ModelName:   modelName(cfg.Model),
			IncludeLogs: actIncludeLogs,
		}

		var consoleQuery filter.ConsoleQuery
		var networkQuery filter.NetworkQuery
		if actIncludeLogs {
			consoleQuery, networkQuery, err = actionQueries(cmd, cfg)
			if err != nil {
				return err
			}
			req.LogFilters = &filter.LogFilterPayload{
				Console: consoleQuery.Payload(),
				Network: networkQuery.Payload(),
			}
		}

		resp, err := client.Act(sessionID, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp)
		}

		if !resp.Success {
			return fmt.Errorf("action failed")
		}
		fmt.Println("Action completed successfully")
		if len(resp.Result) > 0 {
			printRawJSON(resp.Result)
		}

		if resp.Logs != nil {
			printer := NewLogPrinter(os.Stdout)

			if len(resp.Logs.Console) > 0 {
				fmt.Println("\nConsole logs:")
				printer.PrintConsoleRecords(resp.Logs.Console, consoleQuery.TruncateLength)
			}
			if len(resp.Logs.Network) > 0 {
				fmt.Println("\nNetwork logs:")
				printer.PrintNetworkRecords(resp.Logs.Network, networkQuery.TruncateLength)
			}
		}
		return nil
	},
}

// actionQueries resolves both channels for the act request body. The act
// command registers its filter flags with console-/network- prefixes so
// operators can shape both channels on one invocation.
func actionQueries(cmd *cobra.Command, cfg *config.Config) (filter.ConsoleQuery, filter.NetworkQuery, error) {
	consoleOverride, err := consoleOverrides(cmd, "console-")
	if err != nil {
		return filter.ConsoleQuery{}, filter.NetworkQuery{}, err
	}
	networkOverride, err := networkOverrides(cmd, "network-")
	if err != nil {
		return filter.ConsoleQuery{}, filter.NetworkQuery{}, err
	}

	consoleQuery, err := filter.ResolveConsole(cfg.Filters.Console, consoleOverride)
	if err != nil {
		return filter.ConsoleQuery{}, filter.NetworkQuery{}, err
	}
	networkQuery, err := filter.ResolveNetwork(cfg.Filters.Network, networkOverride)
	if err != nil {
		return filter.ConsoleQuery{}, filter.NetworkQuery{}, err
	}
	return consoleQuery, networkQuery, nil
}

// Extract command flags
var (
	extractSchema string
	extractModel  string
)

var extractCmd = &cobra.Command{
	Use:   "extract <instruction>",
	Short: "Extract structured data from the current page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		if !json.Valid([]byte(extractSchema)) {
			return fmt.Errorf("invalid JSON schema: %s", extractSchema)
		}

		model := extractModel
		if model == "" {
			model = cfg.Model
		}

		resp, err := client.Extract(sessionID, api.ExtractRequest{
			Instruction: args[0],
			Schema:      json.RawMessage(extractSchema),
			ModelName:   model,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp)
		}
		if !resp.Success {
			return fmt.Errorf("extraction failed")
		}
		printRawJSON(resp.Result)
		return nil
	},
}

// Observe command flags
var (
	observeVision bool
	observeModel  string
)

var observeCmd = &cobra.Command{
	Use:   "observe [instruction]",
	Short: "Ask the service to describe the current page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		req := api.ObserveRequest{UseVision: visionMode(observeVision)}
		if len(args) > 0 {
			req.Instruction = args[0]
		}
		req.ModelName = observeModel
		if req.ModelName == "" {
			req.ModelName = cfg.Model
		}

		resp, err := client.Observe(sessionID, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp)
		}
		if !resp.Success {
			return fmt.Errorf("observation failed")
		}
		printRawJSON(resp.Result)
		return nil
	},
}

// Screenshot command flags
var screenshotOutput string

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the current page as a PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		data, err := client.Screenshot(sessionID)
		if err != nil {
			return err
		}

		if err := os.WriteFile(screenshotOutput, data, 0644); err != nil {
			return fmt.Errorf("writing screenshot: %w", err)
		}

		fmt.Printf("Saved screenshot to %s (%d bytes)\n", screenshotOutput, len(data))
		return nil
	},
}

var domCmd = &cobra.Command{
	Use:   "dom",
	Short: "Print the raw DOM state of the current page",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}
		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		resp, err := client.DOMState(sessionID)
		if err != nil {
			return err
		}

		fmt.Println(resp.State)
		return nil
	},
}

// visionMode maps the --vision flag to the wire value; the service treats
// anything other than "true" as its fallback heuristics.
func visionMode(enabled bool) string {
	if enabled {
		return "true"
	}
	return constants.DefaultVisionMode
}

func modelName(configured string) string {
	if actModel != "" {
		return actModel
	}
	return configured
}

func orUnknown(msg string) string {
	if msg == "" {
		return "unknown error"
	}
	return msg
}

// printRawJSON pretty-prints an API result blob for human output
func printRawJSON(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var buf any
	if err := json.Unmarshal(raw, &buf); err != nil {
		fmt.Println(string(raw))
		return
	}
	out, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(out))
}

func init() {
	actCmd.Flags().BoolVar(&actVision, "vision", false, "Use vision for the action")
	actCmd.Flags().StringVar(&actModel, "model", "", "Model to use (overrides config)")
	actCmd.Flags().BoolVar(&actIncludeLogs, "logs", false, "Include telemetry captured during the action")
	registerConsoleFilterFlags(actCmd, "console-")
	registerNetworkFilterFlags(actCmd, "network-")

	extractCmd.Flags().StringVar(&extractSchema, "schema", `{"example": "string"}`, "JSON schema for the extracted data")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model to use (overrides config)")

	observeCmd.Flags().BoolVar(&observeVision, "vision", false, "Use vision for the observation")
	observeCmd.Flags().StringVar(&observeModel, "model", "", "Model to use (overrides config)")

	screenshotCmd.Flags().StringVarP(&screenshotOutput, "output", "o", "screenshot.png", "Output file")

	rootCmd.AddCommand(navigateCmd)
	rootCmd.AddCommand(actCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(observeCmd)
	rootCmd.AddCommand(screenshotCmd)
	rootCmd.AddCommand(domCmd)
}
