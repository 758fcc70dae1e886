// Package api defines the wire shapes of the remote browser-automation
// service. Field names are load-bearing: they must match the upstream API
// exactly for request bodies and response decoding.
package api

import (
	"encoding/json"

	"drover/internal/domain"
	"drover/internal/filter"
)

// NavigateRequest is the body for POST /browser/navigate/{id}
type NavigateRequest struct {
	URL     string `json:"url"`
	Timeout int    `json:"timeout"`
}

// ActRequest is the body for POST /browser/act/{id}. LogFilters is only
// sent when IncludeLogs is set; it travels as native JSON types, unlike
// the string-typed query parameters of the log endpoints.
type ActRequest struct {
	Action      string                   `json:"action"`
	UseVision   string                   `json:"useVision"`
	ModelName   string                   `json:"modelName,omitempty"`
	IncludeLogs bool                     `json:"includeLogs"`
	LogFilters  *filter.LogFilterPayload `json:"logFilters,omitempty"`
}

// ExtractRequest is the body for POST /browser/extract/{id}
type ExtractRequest struct {
	Instruction string          `json:"instruction"`
	Schema      json.RawMessage `json:"schema"`
	ModelName   string          `json:"modelName,omitempty"`
}

// ObserveRequest is the body for POST /browser/observe/{id}
type ObserveRequest struct {
	Instruction string `json:"instruction,omitempty"`
	UseVision   string `json:"useVision"`
	ModelName   string `json:"modelName,omitempty"`
}

// SuccessResponse is the generic `{success}` envelope; Error carries the
// failure detail some endpoints return alongside success=false.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body of non-2xx responses
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CreateSessionResponse is the response for POST /sessions/create-session
type CreateSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

// SessionListResponse is the response for GET /sessions/running-sessions
type SessionListResponse struct {
	Success  bool                 `json:"success"`
	Sessions []domain.SessionInfo `json:"sessions"`
}

// SessionDetailResponse is the response for GET /sessions/session/{id}
type SessionDetailResponse struct {
	Success bool               `json:"success"`
	Session domain.SessionInfo `json:"session"`
}

// ActionLogs groups the telemetry captured during an action
type ActionLogs struct {
	Console []domain.ConsoleRecord `json:"console,omitempty"`
	Network []domain.NetworkRecord `json:"network,omitempty"`
}

// ActionResponse is the response for POST /browser/act/{id}
type ActionResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
	Logs    *ActionLogs     `json:"logs,omitempty"`
}

// ExtractResponse is the response for POST /browser/extract/{id}
type ExtractResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// ObserveResponse is the response for POST /browser/observe/{id}
type ObserveResponse struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// DOMStateResponse is the response for GET /browser/dom-state/{id}
type DOMStateResponse struct {
	Success bool   `json:"success"`
	State   string `json:"state"`
}

// ConsoleLogsResponse is the response for GET /browser/console-logs/{id}
type ConsoleLogsResponse struct {
	Success bool                   `json:"success"`
	Logs    []domain.ConsoleRecord `json:"logs"`
}

// NetworkLogsResponse is the response for GET /browser/network-logs/{id}
type NetworkLogsResponse struct {
	Success bool                   `json:"success"`
	Logs    []domain.NetworkRecord `json:"logs"`
}
