package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"drover/internal/filter"
)

func filterTestCmd(prefix string, network bool) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	if network {
		registerNetworkFilterFlags(cmd, prefix)
	} else {
		registerConsoleFilterFlags(cmd, prefix)
	}
	return cmd
}

func TestConsoleOverrides_UnpassedFlagsStayUnset(t *testing.T) {
	cmd := filterTestCmd("", false)
	if err := cmd.Flags().Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := consoleOverrides(cmd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// flag defaults must not leak into the override layer
	if override.Error.Valid {
		t.Error("expected error to stay unset without the flag")
	}
	if override.TruncateLength.Valid {
		t.Error("expected truncate to stay unset without the flag")
	}
	if override.IncludeStringFilters != nil {
		t.Error("expected include filters to stay unset without the flag")
	}
	if override.StartTime.Valid {
		t.Error("expected since to stay unset without the flag")
	}
}

func TestConsoleOverrides_ExplicitFalseIsSet(t *testing.T) {
	cmd := filterTestCmd("", false)
	if err := cmd.Flags().Parse([]string{"--error=false", "--trace=true"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := consoleOverrides(cmd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !override.Error.Valid || override.Error.Bool {
		t.Errorf("expected error set to false, got %+v", override.Error)
	}
	if !override.Trace.Valid || !override.Trace.Bool {
		t.Errorf("expected trace set to true, got %+v", override.Trace)
	}
	if override.Warning.Valid {
		t.Error("expected warning to stay unset")
	}
}

func TestConsoleOverrides_PrefixedFlags(t *testing.T) {
	cmd := filterTestCmd("console-", false)
	if err := cmd.Flags().Parse([]string{"--console-warning", "--console-truncate", "100"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := consoleOverrides(cmd, "console-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !override.Warning.Valid || !override.Warning.Bool {
		t.Errorf("expected warning set to true, got %+v", override.Warning)
	}
	if !override.TruncateLength.Valid || override.TruncateLength.Int64 != 100 {
		t.Errorf("expected truncate 100, got %+v", override.TruncateLength)
	}
}

func TestConsoleOverrides_IncludeEntriesSplit(t *testing.T) {
	cmd := filterTestCmd("", false)
	args := []string{"--include", "foo\nbar", "--include", "baz"}
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := consoleOverrides(cmd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filter.StringList{"foo", "bar", "baz"}
	if len(override.IncludeStringFilters) != len(want) {
		t.Fatalf("expected %v, got %v", want, override.IncludeStringFilters)
	}
	for i, s := range want {
		if override.IncludeStringFilters[i] != s {
			t.Errorf("expected %v, got %v", want, override.IncludeStringFilters)
			break
		}
	}
}

func TestConsoleOverrides_TimeFlags(t *testing.T) {
	cmd := filterTestCmd("", false)
	if err := cmd.Flags().Parse([]string{"--since", "2026-08-26T10:00:00Z"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := consoleOverrides(cmd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	if !override.StartTime.Valid || !override.StartTime.Time.Equal(want) {
		t.Errorf("expected since %v, got %+v", want, override.StartTime)
	}
	if override.EndTime.Valid {
		t.Error("expected until to stay unset")
	}
}

func TestConsoleOverrides_BadTimeRejected(t *testing.T) {
	cmd := filterTestCmd("", false)
	if err := cmd.Flags().Parse([]string{"--since", "yesterday"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	if _, err := consoleOverrides(cmd, ""); err == nil {
		t.Fatal("expected error for non-RFC3339 time")
	}
}

func TestNetworkOverrides_StatusBuckets(t *testing.T) {
	cmd := filterTestCmd("", true)
	if err := cmd.Flags().Parse([]string{"--4xx=false", "--5xx=false", "--headers"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	override, err := networkOverrides(cmd, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !override.StatusClientError.Valid || override.StatusClientError.Bool {
		t.Errorf("expected 4xx set to false, got %+v", override.StatusClientError)
	}
	if !override.StatusServerError.Valid || override.StatusServerError.Bool {
		t.Errorf("expected 5xx set to false, got %+v", override.StatusServerError)
	}
	if !override.IncludeHeaders.Valid || !override.IncludeHeaders.Bool {
		t.Errorf("expected headers set to true, got %+v", override.IncludeHeaders)
	}
	if override.StatusSuccess.Valid {
		t.Error("expected 2xx to stay unset")
	}
}
