package cli

import (
	"fmt"
	"io"
	"strings"

	"drover/internal/constants"
	"drover/internal/domain"
	"drover/internal/logview"
)

// LogPrinter handles consistent log formatting and color assignment
type LogPrinter struct {
	out io.Writer
}

// NewLogPrinter creates a new LogPrinter writing to out
func NewLogPrinter(out io.Writer) *LogPrinter {
	return &LogPrinter{out: out}
}

// PrintConsoleRecords prints console records with their class color
func (lp *LogPrinter) PrintConsoleRecords(records []domain.ConsoleRecord, truncateLength int) {
	for _, record := range records {
		lp.PrintConsole(logview.RenderConsole(record, truncateLength))
	}
}

// PrintConsole prints a rendered console view
func (lp *LogPrinter) PrintConsole(view logview.ConsoleView) {
	color := classColor(view.Class)
	fmt.Fprintf(lp.out, "%s%s%s%-7s%s %s\n",
		lp.dim(view.Timestamp), spaceAfter(view.Timestamp),
		color, view.Label, constants.ColorReset, view.Message)

	if view.Path != "" {
		lp.detail("path", view.Path)
	}
	if view.StackTrace != "" {
		lp.block("stack trace", view.StackTrace)
	}
	if view.Args != "" {
		lp.block("args", view.Args)
	}
}

// PrintNetworkRecords prints network records with their class color
func (lp *LogPrinter) PrintNetworkRecords(records []domain.NetworkRecord, truncateLength int) {
	for _, record := range records {
		lp.PrintNetwork(logview.RenderNetwork(record, truncateLength))
	}
}

// PrintNetwork prints a rendered network view
func (lp *LogPrinter) PrintNetwork(view logview.NetworkView) {
	color := classColor(view.Class)
	fmt.Fprintf(lp.out, "%s%s%s%3d%s %-7s %s\n",
		lp.dim(view.Timestamp), spaceAfter(view.Timestamp),
		color, view.Status, constants.ColorReset, view.Method, view.URL)

	if view.QueryParams != "" {
		lp.block("query params", view.QueryParams)
	}
	if view.RequestHeaders != "" {
		lp.block("request headers", view.RequestHeaders)
	}
	if view.RequestBody != nil {
		lp.block("request body", view.RequestBody.Text)
	}
	if view.ResponseHeaders != "" {
		lp.block("response headers", view.ResponseHeaders)
	}
	if view.ResponseBody != nil {
		lp.block("response body", view.ResponseBody.Text)
	}
	if view.Timing != "" {
		lp.block("timing", view.Timing)
	}
}

// detail prints a one-line secondary field indented under the record
func (lp *LogPrinter) detail(name, value string) {
	fmt.Fprintf(lp.out, "  %s%s:%s %s\n", constants.ColorDim, name, constants.ColorReset, value)
}

// block prints a multi-line section indented under the record
func (lp *LogPrinter) block(name, body string) {
	fmt.Fprintf(lp.out, "  %s%s:%s\n", constants.ColorDim, name, constants.ColorReset)
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(lp.out, "    %s\n", line)
	}
}

func (lp *LogPrinter) dim(s string) string {
	if s == "" {
		return ""
	}
	return constants.ColorDim + s + constants.ColorReset
}

func spaceAfter(s string) string {
	if s == "" {
		return ""
	}
	return " "
}

func classColor(class logview.DisplayClass) string {
	if code, ok := constants.ClassColors[class.Color]; ok {
		return code
	}
	return constants.ClassColors["black"]
}
