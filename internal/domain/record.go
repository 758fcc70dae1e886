package domain

// Channel identifies one of the two telemetry streams
type Channel string

const (
	ChannelConsole Channel = "console"
	ChannelNetwork Channel = "network"
)

// String returns the string representation of Channel
func (c Channel) String() string {
	return string(c)
}

// ConsoleRecord is a single console log entry as returned by the telemetry API.
// Type is the browser console method name (error, warning, info, log, trace);
// values outside that set are preserved and classified to a default category.
type ConsoleRecord struct {
	Type       string   `json:"type"`
	Timestamp  string   `json:"timestamp"`
	Message    string   `json:"message"`
	Path       string   `json:"path"`
	StackTrace string   `json:"stackTrace,omitempty"`
	Args       []string `json:"args,omitempty"`
}

// NetworkRecord is a single captured network exchange as returned by the
// telemetry API. Request and response sub-fields are optional and omitted
// by the server when the corresponding include* filter was false.
type NetworkRecord struct {
	Status    int             `json:"status"`
	Method    string          `json:"method"`
	URL       string          `json:"url"`
	Timestamp string          `json:"timestamp"`
	Request   RequestDetails  `json:"request"`
	Response  ResponseDetails `json:"response"`
	Timing    map[string]any  `json:"timing,omitempty"`
}

// RequestDetails holds the optional request-side capture of a NetworkRecord
type RequestDetails struct {
	Headers     map[string]string `json:"headers,omitempty"`
	Body        string            `json:"body,omitempty"`
	QueryParams map[string]string `json:"queryParams,omitempty"`
}

// ResponseDetails holds the optional response-side capture of a NetworkRecord
type ResponseDetails struct {
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body,omitempty"`
}

// SessionInfo describes a remote browser session
type SessionInfo struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Region    string `json:"region"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
