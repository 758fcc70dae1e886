package domain

import "errors"

// Domain errors
var (
	ErrNoSession              = errors.New("no active session")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidTruncateLength  = errors.New("invalid truncate length")
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrConfigNotFound         = errors.New("config file not found")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrRemoteRequestFailed    = errors.New("remote request failed")
	ErrUnexpectedResponseBody = errors.New("unexpected response body")
)

// Error codes used by the remote API in error responses
const (
	ErrCodeSessionNotFound = "SESSION_NOT_FOUND"
	ErrCodeInvalidFilter   = "INVALID_FILTER"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// ErrorCode returns the API error code for a domain error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return ErrCodeSessionNotFound
	case errors.Is(err, ErrInvalidTruncateLength), errors.Is(err, ErrInvalidTimeRange):
		return ErrCodeInvalidFilter
	default:
		return ErrCodeInternal
	}
}
