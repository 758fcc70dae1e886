package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"drover/internal/api"
	"drover/internal/filter"
)

// DashClient is the interface for dashboard API interactions. It
// consolidates the operations the dashboard needs from the client.
type DashClient interface {
	SessionDetails(sessionID string) (*api.SessionDetailResponse, error)
	Navigate(sessionID string, req api.NavigateRequest) (*api.SuccessResponse, error)
	Act(sessionID string, req api.ActRequest) (*api.ActionResponse, error)
	ConsoleLogs(sessionID string, query filter.ConsoleQuery) (*api.ConsoleLogsResponse, error)
	NetworkLogs(sessionID string, query filter.NetworkQuery) (*api.NetworkLogsResponse, error)
	ClearLogs(sessionID string) error
}

// Run starts the dashboard for a session
func Run(client DashClient, sessionID, modelName string, consoleQuery filter.ConsoleQuery, networkQuery filter.NetworkQuery) error {
	model := NewModel(client, sessionID, modelName, consoleQuery, networkQuery)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
