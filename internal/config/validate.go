package config

import (
	"fmt"
	"net/url"
	"strings"

	"drover/internal/domain"
)

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if u, err := url.Parse(config.API.URL); err != nil {
		errs = append(errs, fmt.Sprintf("api.url: %v", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("api.url: scheme must be http or https, got %q", u.Scheme))
	}

	if config.NavigationTimeout < 0 {
		errs = append(errs, fmt.Sprintf("navigation_timeout: must be non-negative, got %d", config.NavigationTimeout))
	}

	// Truncate lengths get a full check at resolve time; reject the
	// obviously broken values here so a bad config fails at startup.
	if config.Filters.Console.TruncateLength.Valid && config.Filters.Console.TruncateLength.Int64 < 0 {
		errs = append(errs, fmt.Sprintf("filters.console.truncate_length: must be non-negative, got %d",
			config.Filters.Console.TruncateLength.Int64))
	}
	if config.Filters.Network.TruncateLength.Valid && config.Filters.Network.TruncateLength.Int64 < 0 {
		errs = append(errs, fmt.Sprintf("filters.network.truncate_length: must be non-negative, got %d",
			config.Filters.Network.TruncateLength.Int64))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
