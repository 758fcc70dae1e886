// Package constants provides shared configuration values used across the drover application.
package constants

import "time"

// Configuration file defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "drover.yaml"

	// DefaultAPIURL is the default base URL of the remote automation API
	DefaultAPIURL = "http://localhost:3000/api"
)

// Timeout and duration defaults
const (
	// DefaultRequestTimeout is the default timeout for API requests
	DefaultRequestTimeout = 30 * time.Second

	// DefaultNavigationTimeout is the default page navigation timeout
	// sent to the remote browser, in milliseconds
	DefaultNavigationTimeout = 30000
)

// Log filter defaults
const (
	// DefaultTruncateLength is the default character cap applied to log
	// messages and bodies by the telemetry API
	DefaultTruncateLength = 500
)

// Model defaults
const (
	// DefaultModel is the model used for act/extract/observe when the
	// config file and flags don't name one
	DefaultModel = "claude-3-5-sonnet-latest"

	// DefaultVisionMode is the vision mode sent with act/observe requests
	DefaultVisionMode = "fallback"
)

// ANSI color codes for terminal output
var (
	// ClassColors maps a display class color name to its ANSI escape code.
	// Used by the CLI log printer; the TUI maps the same names to lipgloss styles.
	ClassColors = map[string]string{
		"red":    "\033[31m",
		"orange": "\033[33m",
		"blue":   "\033[34m",
		"green":  "\033[32m",
		"gray":   "\033[90m",
		"purple": "\033[35m",
		"black":  "\033[0m",
	}

	// ColorReset resets the terminal color
	ColorReset = "\033[0m"

	// ColorDim is used for timestamps and secondary detail
	ColorDim = "\033[2m"
)
