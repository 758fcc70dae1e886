package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drover/internal/config"
	"drover/internal/constants"
	"drover/internal/domain"
	"drover/internal/state"
)

// Version is set during build
var Version = "dev"

// Global flags
var (
	configPath  string
	apiURL      string
	sessionFlag string
	jsonOutput  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "drover",
	Short: "An operator console for remote browser automation",
	Long: `drover drives a remote browser-automation session from the terminal.
It supports:
  - Session lifecycle (create, resume, stop)
  - Navigation and natural-language actions
  - Data extraction and page observation
  - Screenshots and raw DOM state
  - Console and network telemetry with layered filters
  - An interactive dashboard for watching logs`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("drover version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Base URL of the automation API (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "Session ID (overrides the saved session)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output raw JSON")

	rootCmd.SetVersionTemplate("drover version {{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file, falling back to compiled-in defaults
// when no file exists. Environment overrides (env_file, DROVER_*) apply
// on top either way.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == constants.DefaultConfigFile {
		// Only the default name falls back to the search variants; an
		// explicit --config that doesn't exist stays an error below.
		if found, err := config.FindConfigFile(); err == nil {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, domain.ErrConfigNotFound) {
			return nil, err
		}
		cfg = config.Default()
	}

	if err := config.ApplyEnvOverrides(cfg, configDir()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}

// resolveAPIURL picks the API address for a command.
// Priority: --api flag > saved session state > config file.
func resolveAPIURL(cfg *config.Config) string {
	if apiURL != "" {
		return apiURL
	}
	if cwd, err := os.Getwd(); err == nil {
		if sess, err := state.Load(cwd); err == nil && sess.APIURL != "" {
			return sess.APIURL
		}
	}
	return cfg.API.URL
}

// resolveSession picks the session ID for a command: the --session flag
// when given, otherwise the saved session state.
func resolveSession() (string, error) {
	if sessionFlag != "" {
		return sessionFlag, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}

	sess, err := state.Load(cwd)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return "", fmt.Errorf("%w: run 'drover session create' or pass --session", domain.ErrNoSession)
		}
		return "", err
	}
	return sess.SessionID, nil
}

// newClientFromConfig builds a client using the resolved API address
func newClientFromConfig() (*Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return NewClient(resolveAPIURL(cfg)), cfg, nil
}
