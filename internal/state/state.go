// Package state persists the active remote session between CLI
// invocations. The session identifier is the only piece of state shared
// across commands; everything else is request/response.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"drover/internal/domain"
)

const (
	// StateDirName is the name of the directory storing runtime state
	StateDirName = ".drover"
	// StateFileName is the name of the session state file
	StateFileName = "session.json"
)

// Session holds the active remote session for a working directory.
//
// Session is not safe for concurrent use. Commands run one at a time, so
// concurrent access to the same state file is not expected.
type Session struct {
	SessionID string    `json:"session_id"`
	APIURL    string    `json:"api_url"`
	StartedAt time.Time `json:"started_at"`
}

// Write writes the session to the state file in the given directory
func (s *Session) Write(dir string) error {
	if s.SessionID == "" {
		return fmt.Errorf("session ID cannot be empty")
	}
	if s.APIURL == "" {
		return fmt.Errorf("API URL cannot be empty")
	}

	stateDir := filepath.Join(dir, StateDirName)
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	path := filepath.Join(stateDir, StateFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}

	return nil
}

// Load reads the session from the state file in the given directory.
// A missing file maps to domain.ErrNoSession.
func Load(dir string) (*Session, error) {
	path := filepath.Join(dir, StateDirName, StateFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("reading session state: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshaling session state: %w", err)
	}
	if session.SessionID == "" {
		return nil, domain.ErrNoSession
	}

	return &session, nil
}

// Remove removes the state file from the given directory
func Remove(dir string) error {
	path := filepath.Join(dir, StateDirName, StateFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session state: %w", err)
	}
	return nil
}
