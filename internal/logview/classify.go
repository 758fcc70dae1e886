// Package logview classifies fetched log records for display and renders
// them into truncation-aware textual views. Classification is fail-open:
// unknown console types and out-of-range status codes degrade to a default
// category instead of erroring, since a record the server chose to return
// should always reach the screen.
package logview

import "drover/internal/domain"

// DisplayClass is a derived category/color label attached to a record for
// rendering. It is computed fresh per render pass and never persisted.
type DisplayClass struct {
	Category string
	Color    string
}

// DefaultClass is used for console types and status codes outside the
// known tables
var DefaultClass = DisplayClass{Category: "unknown", Color: "black"}

var consoleClasses = map[string]DisplayClass{
	"error":   {Category: "error", Color: "red"},
	"warning": {Category: "warning", Color: "orange"},
	"info":    {Category: "info", Color: "blue"},
	"log":     {Category: "log", Color: "green"},
	"trace":   {Category: "trace", Color: "gray"},
}

// statusBucket is a half-open interval [Lo, Hi) of HTTP status codes
type statusBucket struct {
	Lo, Hi int
	Class  DisplayClass
}

// statusBuckets is an ordered, first-match lookup table. The intervals are
// contiguous and non-overlapping: 200 lands in success, not info, and 600
// falls through to the default.
var statusBuckets = []statusBucket{
	{100, 200, DisplayClass{Category: "info", Color: "blue"}},
	{200, 300, DisplayClass{Category: "success", Color: "green"}},
	{300, 400, DisplayClass{Category: "redirect", Color: "orange"}},
	{400, 500, DisplayClass{Category: "clientError", Color: "red"}},
	{500, 600, DisplayClass{Category: "serverError", Color: "purple"}},
}

// Classify maps a console record's type to its display class
func Classify(record domain.ConsoleRecord) DisplayClass {
	if class, ok := consoleClasses[record.Type]; ok {
		return class
	}
	return DefaultClass
}

// ClassifyStatus maps an HTTP status code to its display class
func ClassifyStatus(status int) DisplayClass {
	for _, bucket := range statusBuckets {
		if status >= bucket.Lo && status < bucket.Hi {
			return bucket.Class
		}
	}
	return DefaultClass
}
