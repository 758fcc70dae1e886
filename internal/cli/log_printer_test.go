package cli

import (
	"bytes"
	"strings"
	"testing"

	"drover/internal/constants"
	"drover/internal/domain"
)

func TestLogPrinter_ConsoleRecord(t *testing.T) {
	var buf bytes.Buffer
	printer := NewLogPrinter(&buf)

	printer.PrintConsoleRecords([]domain.ConsoleRecord{
		{Type: "error", Timestamp: "2026-08-26T10:00:00Z", Message: "boom", Path: "https://example.com/app"},
	}, 0)

	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected upper-cased label, got %q", out)
	}
	if !strings.Contains(out, constants.ClassColors["red"]) {
		t.Errorf("expected red escape for error, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected message, got %q", out)
	}
	if !strings.Contains(out, "path:") || !strings.Contains(out, "https://example.com/app") {
		t.Errorf("expected path detail, got %q", out)
	}
}

func TestLogPrinter_ConsoleTruncation(t *testing.T) {
	var buf bytes.Buffer
	printer := NewLogPrinter(&buf)

	printer.PrintConsoleRecords([]domain.ConsoleRecord{
		{Type: "log", Message: "abcdefghij"},
	}, 4)

	out := buf.String()
	if strings.Contains(out, "abcdefghij") {
		t.Errorf("expected message to be truncated, got %q", out)
	}
	if !strings.Contains(out, "abcd") {
		t.Errorf("expected truncated prefix, got %q", out)
	}
}

func TestLogPrinter_UnknownTypeFailsOpen(t *testing.T) {
	var buf bytes.Buffer
	printer := NewLogPrinter(&buf)

	printer.PrintConsoleRecords([]domain.ConsoleRecord{
		{Type: "mystery", Message: "??"},
	}, 0)

	out := buf.String()
	if !strings.Contains(out, "MYSTERY") {
		t.Errorf("expected unknown record to still print, got %q", out)
	}
	if !strings.Contains(out, constants.ClassColors["black"]) {
		t.Errorf("expected default color for unknown type, got %q", out)
	}
}

func TestLogPrinter_NetworkRecord(t *testing.T) {
	var buf bytes.Buffer
	printer := NewLogPrinter(&buf)

	printer.PrintNetworkRecords([]domain.NetworkRecord{
		{
			Status:    503,
			Method:    "GET",
			URL:       "https://example.com/api/items",
			Timestamp: "2026-08-26T10:00:00Z",
			Response:  domain.ResponseDetails{Body: `{"error":"down"}`},
		},
	}, 0)

	out := buf.String()
	if !strings.Contains(out, "503") {
		t.Errorf("expected status in output, got %q", out)
	}
	if !strings.Contains(out, constants.ClassColors["purple"]) {
		t.Errorf("expected purple escape for 5xx, got %q", out)
	}
	if !strings.Contains(out, "response body:") {
		t.Errorf("expected response body section, got %q", out)
	}
	if !strings.Contains(out, `"error"`) {
		t.Errorf("expected structural body, got %q", out)
	}
}

func TestLogPrinter_NetworkOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	printer := NewLogPrinter(&buf)

	printer.PrintNetworkRecords([]domain.NetworkRecord{
		{Status: 200, Method: "GET", URL: "https://example.com/"},
	}, 0)

	out := buf.String()
	for _, section := range []string{"request headers", "request body", "response headers", "response body", "query params", "timing"} {
		if strings.Contains(out, section) {
			t.Errorf("expected %q section to be omitted, got %q", section, out)
		}
	}
}
