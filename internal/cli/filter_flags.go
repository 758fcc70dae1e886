package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"drover/internal/filter"
)

// Filter flags form the override layer: only flags the user actually
// passed become set values, everything else stays unset and inherits from
// the config file base or the compiled-in defaults. cobra's Changed
// tracking gives us the unset/false distinction for free.

// registerConsoleFilterFlags adds the console filter flags to a command.
// prefix distinguishes commands that carry both channels (e.g. act uses
// "console-" and "network-").
func registerConsoleFilterFlags(cmd *cobra.Command, prefix string) {
	flags := cmd.Flags()
	flags.Bool(prefix+"error", true, "Include error logs")
	flags.Bool(prefix+"warning", false, "Include warning logs")
	flags.Bool(prefix+"info", false, "Include info logs")
	flags.Bool(prefix+"trace", false, "Include trace logs")
	registerCommonFilterFlags(flags, prefix)
}

// registerNetworkFilterFlags adds the network filter flags to a command
func registerNetworkFilterFlags(cmd *cobra.Command, prefix string) {
	flags := cmd.Flags()
	flags.Bool(prefix+"1xx", true, "Include informational responses")
	flags.Bool(prefix+"2xx", true, "Include success responses")
	flags.Bool(prefix+"3xx", true, "Include redirect responses")
	flags.Bool(prefix+"4xx", true, "Include client error responses")
	flags.Bool(prefix+"5xx", true, "Include server error responses")
	flags.Bool(prefix+"headers", false, "Include request/response headers")
	flags.Bool(prefix+"body", true, "Include request/response bodies")
	flags.Bool(prefix+"query-params", true, "Include query parameters")
	registerCommonFilterFlags(flags, prefix)
}

func registerCommonFilterFlags(flags *pflag.FlagSet, prefix string) {
	flags.Int(prefix+"truncate", 500, "Maximum length of messages/bodies before truncation")
	flags.StringArray(prefix+"include", nil, "Only show records matching this string (repeatable)")
	flags.StringArray(prefix+"exclude", nil, "Hide records matching this string (repeatable)")
	flags.String(prefix+"since", "", "Only records at or after this RFC3339 time")
	flags.String(prefix+"until", "", "Only records at or before this RFC3339 time")
}

// consoleOverrides reads the console filter flags into an override layer
func consoleOverrides(cmd *cobra.Command, prefix string) (filter.Console, error) {
	flags := cmd.Flags()
	var override filter.Console

	override.Error = boolFlag(flags, prefix+"error")
	override.Warning = boolFlag(flags, prefix+"warning")
	override.Info = boolFlag(flags, prefix+"info")
	override.Trace = boolFlag(flags, prefix+"trace")

	common, err := commonOverrides(flags, prefix)
	if err != nil {
		return filter.Console{}, err
	}
	override.TruncateLength = common.truncate
	override.IncludeStringFilters = common.include
	override.ExcludeStringFilters = common.exclude
	override.StartTime = common.since
	override.EndTime = common.until
	return override, nil
}

// networkOverrides reads the network filter flags into an override layer
func networkOverrides(cmd *cobra.Command, prefix string) (filter.Network, error) {
	flags := cmd.Flags()
	var override filter.Network

	override.StatusInfo = boolFlag(flags, prefix+"1xx")
	override.StatusSuccess = boolFlag(flags, prefix+"2xx")
	override.StatusRedirect = boolFlag(flags, prefix+"3xx")
	override.StatusClientError = boolFlag(flags, prefix+"4xx")
	override.StatusServerError = boolFlag(flags, prefix+"5xx")
	override.IncludeHeaders = boolFlag(flags, prefix+"headers")
	override.IncludeBody = boolFlag(flags, prefix+"body")
	override.IncludeQueryParams = boolFlag(flags, prefix+"query-params")

	common, err := commonOverrides(flags, prefix)
	if err != nil {
		return filter.Network{}, err
	}
	override.TruncateLength = common.truncate
	override.IncludeStringFilters = common.include
	override.ExcludeStringFilters = common.exclude
	override.StartTime = common.since
	override.EndTime = common.until
	return override, nil
}

type commonFilterValues struct {
	truncate null.Int
	include  filter.StringList
	exclude  filter.StringList
	since    null.Time
	until    null.Time
}

func commonOverrides(flags *pflag.FlagSet, prefix string) (commonFilterValues, error) {
	var values commonFilterValues

	if flags.Changed(prefix + "truncate") {
		n, err := flags.GetInt(prefix + "truncate")
		if err != nil {
			return values, err
		}
		values.truncate = null.IntFrom(int64(n))
	}

	values.include = stringListFlag(flags, prefix+"include")
	values.exclude = stringListFlag(flags, prefix+"exclude")

	since, err := timeFlag(flags, prefix+"since")
	if err != nil {
		return values, err
	}
	values.since = since

	until, err := timeFlag(flags, prefix+"until")
	if err != nil {
		return values, err
	}
	values.until = until

	return values, nil
}

func boolFlag(flags *pflag.FlagSet, name string) null.Bool {
	if !flags.Changed(name) {
		return null.Bool{}
	}
	b, err := flags.GetBool(name)
	if err != nil {
		return null.Bool{}
	}
	return null.BoolFrom(b)
}

// stringListFlag normalizes a repeatable flag whose entries may themselves
// be newline-delimited blocks
func stringListFlag(flags *pflag.FlagSet, name string) filter.StringList {
	if !flags.Changed(name) {
		return nil
	}
	entries, err := flags.GetStringArray(name)
	if err != nil {
		return nil
	}

	list := filter.StringList{}
	for _, entry := range entries {
		list = append(list, filter.SplitLines(entry)...)
	}
	return list
}

func timeFlag(flags *pflag.FlagSet, name string) (null.Time, error) {
	if !flags.Changed(name) {
		return null.Time{}, nil
	}
	raw, err := flags.GetString(name)
	if err != nil {
		return null.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return null.Time{}, fmt.Errorf("invalid --%s value %q: expected RFC3339 timestamp", name, raw)
	}
	return null.TimeFrom(t), nil
}
