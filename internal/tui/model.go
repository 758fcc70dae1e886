package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"drover/internal/api"
	"drover/internal/constants"
	"drover/internal/domain"
	"drover/internal/filter"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeNavigate
	ModeAct
	ModeHelp
)

// ViewMode selects which telemetry channel the viewport shows
type ViewMode int

const (
	ViewModeConsole ViewMode = iota
	ViewModeNetwork
)

// maxRecords is the maximum number of records kept in memory per channel
const maxRecords = 1000

// pollInterval is how often the dashboard refetches telemetry
const pollInterval = 2 * time.Second

// maxErrorDisplayLen is the maximum length of error messages in the status bar
const maxErrorDisplayLen = 60

// nearBottomThreshold is the scroll percentage (0.0-1.0) at which we consider
// the viewport to be "near" the bottom for auto-follow purposes.
const nearBottomThreshold = 0.98

// Model is the bubbletea model for the dashboard
type Model struct {
	// Dependencies
	client    DashClient
	sessionID string
	modelName string

	// Resolved filters applied to every fetch
	consoleQuery filter.ConsoleQuery
	networkQuery filter.NetworkQuery

	// State
	session        domain.SessionInfo
	consoleRecords []domain.ConsoleRecord
	networkRecords []domain.NetworkRecord
	lastError      error

	// UI components
	viewport  viewport.Model
	textInput textinput.Model

	// Mode
	mode     Mode
	viewMode ViewMode

	// Filtering
	searchPattern string

	// Auto-scroll
	followMode bool

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewModel creates a new dashboard model
func NewModel(client DashClient, sessionID, modelName string, consoleQuery filter.ConsoleQuery, networkQuery filter.NetworkQuery) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		client:       client,
		sessionID:    sessionID,
		modelName:    modelName,
		consoleQuery: consoleQuery,
		networkQuery: networkQuery,
		textInput:    ti,
		mode:         ModeNormal,
		viewMode:     ViewModeConsole,
		followMode:   true,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchSession(),
		m.fetchLogs(),
		tickCmd(),
	)
}

// SessionMsg carries refreshed session details
type SessionMsg domain.SessionInfo

// LogsMsg carries a full refetch of both telemetry channels
type LogsMsg struct {
	Console []domain.ConsoleRecord
	Network []domain.NetworkRecord
}

// TickMsg is sent periodically to drive polling
type TickMsg time.Time

// FetchErrorMsg is sent when a refresh fails
type FetchErrorMsg struct {
	Err error
}

// ClearedMsg is sent when a clear-logs request completes
type ClearedMsg struct {
	Err error
}

// ActionResultMsg is sent when a navigate or act request completes
type ActionResultMsg struct {
	Verb string
	Err  error
}

// fetchSession returns a command that refreshes the session details
func (m Model) fetchSession() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.SessionDetails(m.sessionID)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		return SessionMsg(resp.Session)
	}
}

// fetchLogs returns a command that refetches both telemetry channels. The
// service applies the resolved filters server-side; the dashboard only
// layers its interactive substring filter on top.
func (m Model) fetchLogs() tea.Cmd {
	return func() tea.Msg {
		console, err := m.client.ConsoleLogs(m.sessionID, m.consoleQuery)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		network, err := m.client.NetworkLogs(m.sessionID, m.networkQuery)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}
		return LogsMsg{Console: console.Logs, Network: network.Logs}
	}
}

// clearLogs returns a command that clears the session's telemetry
func (m Model) clearLogs() tea.Cmd {
	return func() tea.Msg {
		return ClearedMsg{Err: m.client.ClearLogs(m.sessionID)}
	}
}

// navigate returns a command that points the remote browser at a URL
func (m Model) navigate(url string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.Navigate(m.sessionID, api.NavigateRequest{
			URL:     url,
			Timeout: constants.DefaultNavigationTimeout,
		})
		return ActionResultMsg{Verb: "navigate", Err: err}
	}
}

// act returns a command that performs a natural-language action
func (m Model) act(instruction string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.Act(m.sessionID, api.ActRequest{
			Action:    instruction,
			UseVision: constants.DefaultVisionMode,
			ModelName: m.modelName,
		})
		return ActionResultMsg{Verb: "act", Err: err}
	}
}

// tickCmd returns a command that ticks periodically
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
