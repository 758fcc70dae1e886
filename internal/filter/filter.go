// Package filter resolves layered log-filter configuration into the
// canonical query shape consumed by the telemetry API.
//
// Filters stack in three layers: compiled-in channel defaults, a base
// layer from the config file, and per-call overrides from flags or the
// TUI. Precedence is resolved per field, not per object — an override
// that sets a single boolean inherits every other field from the layer
// below. Optional fields use null types as an explicit "unset" sentinel
// so false and 0 survive as deliberate values.
package filter

import (
	"fmt"
	"time"

	"gopkg.in/guregu/null.v3"

	"drover/internal/constants"
	"drover/internal/domain"
)

// Console is a possibly-partial filter for the console telemetry channel.
// Invalid (unset) fields inherit from the layer below at resolve time.
type Console struct {
	Error   null.Bool
	Warning null.Bool
	Info    null.Bool
	Trace   null.Bool

	TruncateLength       null.Int
	IncludeStringFilters StringList
	ExcludeStringFilters StringList
	StartTime            null.Time
	EndTime              null.Time
}

// Network is a possibly-partial filter for the network telemetry channel
type Network struct {
	StatusInfo        null.Bool
	StatusSuccess     null.Bool
	StatusRedirect    null.Bool
	StatusClientError null.Bool
	StatusServerError null.Bool

	IncludeHeaders     null.Bool
	IncludeBody        null.Bool
	IncludeQueryParams null.Bool

	TruncateLength       null.Int
	IncludeStringFilters StringList
	ExcludeStringFilters StringList
	StartTime            null.Time
	EndTime              null.Time
}

// ConsoleQuery is a fully-resolved console filter: every field carries a
// concrete value and the struct is ready for wire serialization.
type ConsoleQuery struct {
	Error   bool
	Warning bool
	Info    bool
	Trace   bool

	TruncateLength       int
	IncludeStringFilters []string
	ExcludeStringFilters []string
	StartTime            time.Time
	EndTime              time.Time
}

// NetworkQuery is a fully-resolved network filter
type NetworkQuery struct {
	StatusInfo        bool
	StatusSuccess     bool
	StatusRedirect    bool
	StatusClientError bool
	StatusServerError bool

	IncludeHeaders     bool
	IncludeBody        bool
	IncludeQueryParams bool

	TruncateLength       int
	IncludeStringFilters []string
	ExcludeStringFilters []string
	StartTime            time.Time
	EndTime              time.Time
}

// DefaultConsole returns the compiled-in console channel defaults:
// errors on, everything else off, 500-character truncation, no string
// filters, no time bounds.
func DefaultConsole() ConsoleQuery {
	return ConsoleQuery{
		Error:                true,
		Warning:              false,
		Info:                 false,
		Trace:                false,
		TruncateLength:       constants.DefaultTruncateLength,
		IncludeStringFilters: []string{},
		ExcludeStringFilters: []string{},
	}
}

// DefaultNetwork returns the compiled-in network channel defaults. This is
// the permissive set: all status-code buckets on, bodies and query params
// included, headers excluded.
func DefaultNetwork() NetworkQuery {
	return NetworkQuery{
		StatusInfo:           true,
		StatusSuccess:        true,
		StatusRedirect:       true,
		StatusClientError:    true,
		StatusServerError:    true,
		IncludeHeaders:       false,
		IncludeBody:          true,
		IncludeQueryParams:   true,
		TruncateLength:       constants.DefaultTruncateLength,
		IncludeStringFilters: []string{},
		ExcludeStringFilters: []string{},
	}
}

// ResolveConsole merges defaults, base, and override into a ConsoleQuery.
// For each field the highest layer with a set value wins. TruncateLength
// must resolve to a non-negative integer and an explicit start/end pair
// must be ordered; both are configuration errors caught before anything
// reaches the wire.
func ResolveConsole(base, override Console) (ConsoleQuery, error) {
	q := DefaultConsole()

	q.Error = mergeBool(q.Error, base.Error, override.Error)
	q.Warning = mergeBool(q.Warning, base.Warning, override.Warning)
	q.Info = mergeBool(q.Info, base.Info, override.Info)
	q.Trace = mergeBool(q.Trace, base.Trace, override.Trace)

	q.TruncateLength = mergeInt(q.TruncateLength, base.TruncateLength, override.TruncateLength)
	q.IncludeStringFilters = mergeList(q.IncludeStringFilters, base.IncludeStringFilters, override.IncludeStringFilters)
	q.ExcludeStringFilters = mergeList(q.ExcludeStringFilters, base.ExcludeStringFilters, override.ExcludeStringFilters)
	q.StartTime = mergeTime(q.StartTime, base.StartTime, override.StartTime)
	q.EndTime = mergeTime(q.EndTime, base.EndTime, override.EndTime)

	if err := validateCommon(q.TruncateLength, q.StartTime, q.EndTime); err != nil {
		return ConsoleQuery{}, err
	}
	return q, nil
}

// ResolveNetwork merges defaults, base, and override into a NetworkQuery
func ResolveNetwork(base, override Network) (NetworkQuery, error) {
	q := DefaultNetwork()

	q.StatusInfo = mergeBool(q.StatusInfo, base.StatusInfo, override.StatusInfo)
	q.StatusSuccess = mergeBool(q.StatusSuccess, base.StatusSuccess, override.StatusSuccess)
	q.StatusRedirect = mergeBool(q.StatusRedirect, base.StatusRedirect, override.StatusRedirect)
	q.StatusClientError = mergeBool(q.StatusClientError, base.StatusClientError, override.StatusClientError)
	q.StatusServerError = mergeBool(q.StatusServerError, base.StatusServerError, override.StatusServerError)

	q.IncludeHeaders = mergeBool(q.IncludeHeaders, base.IncludeHeaders, override.IncludeHeaders)
	q.IncludeBody = mergeBool(q.IncludeBody, base.IncludeBody, override.IncludeBody)
	q.IncludeQueryParams = mergeBool(q.IncludeQueryParams, base.IncludeQueryParams, override.IncludeQueryParams)

	q.TruncateLength = mergeInt(q.TruncateLength, base.TruncateLength, override.TruncateLength)
	q.IncludeStringFilters = mergeList(q.IncludeStringFilters, base.IncludeStringFilters, override.IncludeStringFilters)
	q.ExcludeStringFilters = mergeList(q.ExcludeStringFilters, base.ExcludeStringFilters, override.ExcludeStringFilters)
	q.StartTime = mergeTime(q.StartTime, base.StartTime, override.StartTime)
	q.EndTime = mergeTime(q.EndTime, base.EndTime, override.EndTime)

	if err := validateCommon(q.TruncateLength, q.StartTime, q.EndTime); err != nil {
		return NetworkQuery{}, err
	}
	return q, nil
}

func validateCommon(truncateLength int, start, end time.Time) error {
	if truncateLength < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", domain.ErrInvalidTruncateLength, truncateLength)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("%w: end %s precedes start %s", domain.ErrInvalidTimeRange,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return nil
}

// mergeBool returns the last set value, falling back to def
func mergeBool(def bool, layers ...null.Bool) bool {
	result := def
	for _, layer := range layers {
		if layer.Valid {
			result = layer.Bool
		}
	}
	return result
}

// mergeInt returns the last set value, falling back to def
func mergeInt(def int, layers ...null.Int) int {
	result := def
	for _, layer := range layers {
		if layer.Valid {
			result = int(layer.Int64)
		}
	}
	return result
}

// mergeList returns the last non-nil list, falling back to def.
// A non-nil empty list is a deliberate "no filters" and wins over base.
func mergeList(def []string, layers ...StringList) []string {
	result := def
	for _, layer := range layers {
		if layer != nil {
			result = []string(layer)
		}
	}
	return result
}

// mergeTime returns the last set value, falling back to def. The default
// is always the zero time: an unset bound means "no bound", never a
// synthesized window.
func mergeTime(def time.Time, layers ...null.Time) time.Time {
	result := def
	for _, layer := range layers {
		if layer.Valid {
			result = layer.Time
		}
	}
	return result
}
