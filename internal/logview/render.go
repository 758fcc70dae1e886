package logview

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"drover/internal/domain"
)

// ConsoleView is the display form of a console record. Optional sections
// are empty strings when the record carries no data for them; callers omit
// empty sections instead of rendering placeholders.
type ConsoleView struct {
	Class      DisplayClass
	Label      string // upper-cased type, e.g. ERROR
	Timestamp  string
	Message    string
	Path       string
	StackTrace string
	Args       string // pretty-printed JSON, "" when absent
}

// BodySection is a rendered request or response body. JSON is true when
// the body parsed as JSON and Text holds the indented structural form;
// otherwise Text is the raw body for preformatted display.
type BodySection struct {
	Text string
	JSON bool
}

// NetworkView is the display form of a network record
type NetworkView struct {
	Class     DisplayClass
	Status    int
	Method    string
	URL       string
	Timestamp string

	QueryParams     string // pretty-printed JSON, "" when absent
	RequestHeaders  string
	RequestBody     *BodySection
	ResponseHeaders string
	ResponseBody    *BodySection
	Timing          string
}

// RenderConsole builds the display view for a console record. Message and
// stack trace are cut to truncateLength characters; 0 means no truncation.
func RenderConsole(record domain.ConsoleRecord, truncateLength int) ConsoleView {
	view := ConsoleView{
		Class:      Classify(record),
		Label:      strings.ToUpper(record.Type),
		Timestamp:  record.Timestamp,
		Message:    Truncate(record.Message, truncateLength),
		Path:       record.Path,
		StackTrace: Truncate(record.StackTrace, truncateLength),
	}
	if len(record.Args) > 0 {
		view.Args = prettyJSON(record.Args)
	}
	return view
}

// RenderNetwork builds the display view for a network record. Bodies are
// truncated first, then rendered structurally when what remains is still
// valid JSON; anything else stays preformatted text. Absent sub-fields
// stay empty rather than rendering as placeholders.
func RenderNetwork(record domain.NetworkRecord, truncateLength int) NetworkView {
	view := NetworkView{
		Class:     ClassifyStatus(record.Status),
		Status:    record.Status,
		Method:    record.Method,
		URL:       record.URL,
		Timestamp: record.Timestamp,
	}

	if len(record.Request.QueryParams) > 0 {
		view.QueryParams = prettyJSON(record.Request.QueryParams)
	}
	if len(record.Request.Headers) > 0 {
		view.RequestHeaders = prettyJSON(record.Request.Headers)
	}
	if record.Request.Body != "" {
		view.RequestBody = renderBody(record.Request.Body, truncateLength)
	}
	if len(record.Response.Headers) > 0 {
		view.ResponseHeaders = prettyJSON(record.Response.Headers)
	}
	if record.Response.Body != "" {
		view.ResponseBody = renderBody(record.Response.Body, truncateLength)
	}
	if len(record.Timing) > 0 {
		view.Timing = prettyJSON(record.Timing)
	}
	return view
}

// Truncate cuts s to at most limit characters. A limit of zero (or less)
// means no truncation, never "truncate to nothing".
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// renderBody renders a body structurally when it is valid JSON and as
// plain preformatted text otherwise. The fallback never surfaces an error.
func renderBody(body string, truncateLength int) *BodySection {
	cut := Truncate(body, truncateLength)
	if gjson.Valid(cut) {
		return &BodySection{
			Text: strings.TrimRight(string(pretty.Pretty([]byte(cut))), "\n"),
			JSON: true,
		}
	}
	return &BodySection{Text: cut}
}

// prettyJSON renders a marshalable value as indented JSON. Values here are
// plain maps and slices, so a marshal failure cannot happen in practice;
// the empty string keeps the section omitted if it ever does.
func prettyJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(pretty.Pretty(data)), "\n")
}
