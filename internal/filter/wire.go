package filter

import (
	"net/url"
	"strconv"
	"time"
)

// Wire parameter names for the console channel
const (
	keyError          = "error"
	keyWarning        = "warning"
	keyInfo           = "info"
	keyTrace          = "trace"
	keyTruncateLength = "truncateLength"
	keyIncludeFilters = "includeStringFilters[]"
	keyExcludeFilters = "excludeStringFilters[]"
	keyStartTime      = "startTime"
	keyEndTime        = "endTime"
)

// Wire parameter names for the network channel
const (
	keyIncludeInfo        = "includeInfo"
	keyIncludeSuccess     = "includeSuccess"
	keyIncludeRedirect    = "includeRedirect"
	keyIncludeClientError = "includeClientError"
	keyIncludeServerError = "includeServerError"
	keyIncludeHeaders     = "includeHeaders"
	keyIncludeBody        = "includeBody"
	keyIncludeQueryParams = "includeQueryParams"
)

// WireQuery serializes the resolved console filter into the query
// parameters the telemetry API expects. Booleans are always present as
// lowercase "true"/"false" (the server matches on the string, not the
// type); string-filter lists appear as repeated keys only when non-empty,
// since an empty include list server-side means "no restriction"; time
// bounds appear only when set.
func (q ConsoleQuery) WireQuery() url.Values {
	values := url.Values{}
	values.Set(keyError, strconv.FormatBool(q.Error))
	values.Set(keyWarning, strconv.FormatBool(q.Warning))
	values.Set(keyInfo, strconv.FormatBool(q.Info))
	values.Set(keyTrace, strconv.FormatBool(q.Trace))
	values.Set(keyTruncateLength, strconv.Itoa(q.TruncateLength))

	addListParams(values, keyIncludeFilters, q.IncludeStringFilters)
	addListParams(values, keyExcludeFilters, q.ExcludeStringFilters)
	addTimeParams(values, q.StartTime, q.EndTime)
	return values
}

// WireQuery serializes the resolved network filter into query parameters.
// Same conventions as the console channel; each status-code bucket maps to
// exactly one includeX key, present in both true and false states.
func (q NetworkQuery) WireQuery() url.Values {
	values := url.Values{}
	values.Set(keyIncludeInfo, strconv.FormatBool(q.StatusInfo))
	values.Set(keyIncludeSuccess, strconv.FormatBool(q.StatusSuccess))
	values.Set(keyIncludeRedirect, strconv.FormatBool(q.StatusRedirect))
	values.Set(keyIncludeClientError, strconv.FormatBool(q.StatusClientError))
	values.Set(keyIncludeServerError, strconv.FormatBool(q.StatusServerError))
	values.Set(keyIncludeHeaders, strconv.FormatBool(q.IncludeHeaders))
	values.Set(keyIncludeBody, strconv.FormatBool(q.IncludeBody))
	values.Set(keyIncludeQueryParams, strconv.FormatBool(q.IncludeQueryParams))
	values.Set(keyTruncateLength, strconv.Itoa(q.TruncateLength))

	addListParams(values, keyIncludeFilters, q.IncludeStringFilters)
	addListParams(values, keyExcludeFilters, q.ExcludeStringFilters)
	addTimeParams(values, q.StartTime, q.EndTime)
	return values
}

func addListParams(values url.Values, key string, items []string) {
	for _, item := range items {
		values.Add(key, item)
	}
}

func addTimeParams(values url.Values, start, end time.Time) {
	if !start.IsZero() {
		values.Set(keyStartTime, start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		values.Set(keyEndTime, end.Format(time.RFC3339))
	}
}

// Payload types for the action-request body. Unlike query parameters,
// which are string-typed by nature of URLs, the logFilters object embedded
// in an act request travels as native JSON booleans, numbers, and arrays.

// LogFilterPayload is the nested logFilters object of an act request
type LogFilterPayload struct {
	Console ConsolePayload `json:"console"`
	Network NetworkPayload `json:"network"`
}

// ConsolePayload is the console half of a LogFilterPayload
type ConsolePayload struct {
	Levels               LevelsPayload `json:"levels"`
	TruncateLength       int           `json:"truncateLength"`
	IncludeStringFilters []string      `json:"includeStringFilters"`
	ExcludeStringFilters []string      `json:"excludeStringFilters"`
	StartTime            string        `json:"startTime,omitempty"`
	EndTime              string        `json:"endTime,omitempty"`
}

// LevelsPayload holds the console level booleans
type LevelsPayload struct {
	Error   bool `json:"error"`
	Warning bool `json:"warning"`
	Info    bool `json:"info"`
	Trace   bool `json:"trace"`
}

// NetworkPayload is the network half of a LogFilterPayload
type NetworkPayload struct {
	StatusCodes          StatusCodesPayload `json:"statusCodes"`
	IncludeHeaders       bool               `json:"includeHeaders"`
	IncludeBody          bool               `json:"includeBody"`
	IncludeQueryParams   bool               `json:"includeQueryParams"`
	TruncateLength       int                `json:"truncateLength"`
	IncludeStringFilters []string           `json:"includeStringFilters"`
	ExcludeStringFilters []string           `json:"excludeStringFilters"`
	StartTime            string             `json:"startTime,omitempty"`
	EndTime              string             `json:"endTime,omitempty"`
}

// StatusCodesPayload holds the status-code bucket booleans
type StatusCodesPayload struct {
	Info        bool `json:"info"`
	Success     bool `json:"success"`
	Redirect    bool `json:"redirect"`
	ClientError bool `json:"clientError"`
	ServerError bool `json:"serverError"`
}

// Payload converts the resolved console filter to its body-payload form
func (q ConsoleQuery) Payload() ConsolePayload {
	return ConsolePayload{
		Levels: LevelsPayload{
			Error:   q.Error,
			Warning: q.Warning,
			Info:    q.Info,
			Trace:   q.Trace,
		},
		TruncateLength:       q.TruncateLength,
		IncludeStringFilters: q.IncludeStringFilters,
		ExcludeStringFilters: q.ExcludeStringFilters,
		StartTime:            formatWireTime(q.StartTime),
		EndTime:              formatWireTime(q.EndTime),
	}
}

// Payload converts the resolved network filter to its body-payload form
func (q NetworkQuery) Payload() NetworkPayload {
	return NetworkPayload{
		StatusCodes: StatusCodesPayload{
			Info:        q.StatusInfo,
			Success:     q.StatusSuccess,
			Redirect:    q.StatusRedirect,
			ClientError: q.StatusClientError,
			ServerError: q.StatusServerError,
		},
		IncludeHeaders:       q.IncludeHeaders,
		IncludeBody:          q.IncludeBody,
		IncludeQueryParams:   q.IncludeQueryParams,
		TruncateLength:       q.TruncateLength,
		IncludeStringFilters: q.IncludeStringFilters,
		ExcludeStringFilters: q.ExcludeStringFilters,
		StartTime:            formatWireTime(q.StartTime),
		EndTime:              formatWireTime(q.EndTime),
	}
}

func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
