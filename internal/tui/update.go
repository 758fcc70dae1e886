package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"drover/internal/domain"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		m.updateViewport()

	case SessionMsg:
		m.session = domain.SessionInfo(msg)

	case LogsMsg:
		m.handleLogs(msg)

	case TickMsg:
		cmds = append(cmds, m.fetchLogs(), tickCmd())

	case FetchErrorMsg:
		m.lastError = msg.Err

	case ClearedMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
		} else {
			m.lastError = nil
			m.consoleRecords = nil
			m.networkRecords = nil
			m.updateViewport()
		}

	case ActionResultMsg:
		if msg.Err != nil {
			m.lastError = msg.Err
		} else {
			m.lastError = nil
			cmds = append(cmds, m.fetchSession(), m.fetchLogs())
		}
	}

	// Handle viewport updates
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	// Handle text input if in an input mode
	if m.mode == ModeSearch || m.mode == ModeNavigate || m.mode == ModeAct {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleWindowSize handles window resize messages
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 2 // Session panel
	footerHeight := 2 // Status bar
	verticalMargins := headerHeight + footerHeight

	viewportHeight := msg.Height - verticalMargins
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewportHeight
	}
}

// handleLogs replaces both channels with the newly fetched records. The
// polling model refetches rather than appends, so trimming only guards
// against a service that returns more history than we want to hold.
func (m *Model) handleLogs(msg LogsMsg) {
	wasNearBottom := m.isNearBottom()

	m.lastError = nil
	m.consoleRecords = trimConsole(msg.Console)
	m.networkRecords = trimNetwork(msg.Network)
	m.updateViewport()

	// If user was at bottom, re-enable follow mode and stay at bottom
	if wasNearBottom {
		m.followMode = true
		m.viewport.GotoBottom()
	} else if m.followMode {
		m.viewport.GotoBottom()
	}
}

func trimConsole(records []domain.ConsoleRecord) []domain.ConsoleRecord {
	if len(records) > maxRecords {
		return records[len(records)-maxRecords:]
	}
	return records
}

func trimNetwork(records []domain.NetworkRecord) []domain.NetworkRecord {
	if len(records) > maxRecords {
		return records[len(records)-maxRecords:]
	}
	return records
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeNavigate, ModeAct:
		return m.handleInputKey(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	}

	// Normal mode keys
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.viewMode == ViewModeConsole {
			m.viewMode = ViewModeNetwork
		} else {
			m.viewMode = ViewModeConsole
		}
		m.updateViewport()
		return m, nil

	case "?":
		m.mode = ModeHelp
		return m, nil

	case "/", "s":
		m.mode = ModeSearch
		m.textInput.SetValue(m.searchPattern)
		m.textInput.Placeholder = "Type to filter..."
		m.textInput.Focus()
		return m, nil

	case "n":
		m.mode = ModeNavigate
		m.textInput.SetValue("")
		m.textInput.Placeholder = "URL to open..."
		m.textInput.Focus()
		return m, nil

	case "a":
		m.mode = ModeAct
		m.textInput.SetValue("")
		m.textInput.Placeholder = "Instruction, e.g. click the login button..."
		m.textInput.Focus()
		return m, nil

	case "r":
		return m, tea.Batch(m.fetchSession(), m.fetchLogs())

	case "c":
		return m, m.clearLogs()

	case "e", "w", "i", "t":
		if m.viewMode == ViewModeConsole {
			m.toggleLevel(msg.String())
			return m, m.fetchLogs()
		}
		return m, nil

	case "1", "2", "3", "4", "5":
		if m.viewMode == ViewModeNetwork {
			m.toggleStatusBucket(msg.String())
			return m, m.fetchLogs()
		}
		return m, nil

	case "esc":
		m.searchPattern = ""
		m.updateViewport()
		return m, nil

	case "up", "k":
		m.viewport.LineUp(1)
		m.followMode = false
		return m, nil

	case "down", "j":
		m.viewport.LineDown(1)
		return m, nil

	case "pgup":
		m.viewport.HalfViewUp()
		m.followMode = false
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil

	case "home", "g":
		m.viewport.GotoTop()
		m.followMode = false
		return m, nil

	case "end", "G":
		m.viewport.GotoBottom()
		m.followMode = true
		return m, nil

	case "F":
		m.followMode = !m.followMode
		if m.followMode {
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey handles keys in search mode; the substring filter
// applies live as the user types.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.textInput.Blur()
		m.searchPattern = ""
		m.updateViewport()
		return m, nil

	case "enter":
		m.searchPattern = m.textInput.Value()
		m.mode = ModeNormal
		m.textInput.Blur()
		m.updateViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchPattern = m.textInput.Value()
	m.updateViewport()
	return m, cmd
}

// handleInputKey handles keys in navigate/act input modes
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.textInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		mode := m.mode
		m.mode = ModeNormal
		m.textInput.Blur()
		if value == "" {
			return m, nil
		}
		if mode == ModeNavigate {
			return m, m.navigate(value)
		}
		return m, m.act(value)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// toggleLevel flips one console level in the active query; the next fetch
// carries the updated filter to the service.
func (m *Model) toggleLevel(key string) {
	switch key {
	case "e":
		m.consoleQuery.Error = !m.consoleQuery.Error
	case "w":
		m.consoleQuery.Warning = !m.consoleQuery.Warning
	case "i":
		m.consoleQuery.Info = !m.consoleQuery.Info
	case "t":
		m.consoleQuery.Trace = !m.consoleQuery.Trace
	}
}

// toggleStatusBucket flips one status bucket in the active network query
func (m *Model) toggleStatusBucket(key string) {
	switch key {
	case "1":
		m.networkQuery.StatusInfo = !m.networkQuery.StatusInfo
	case "2":
		m.networkQuery.StatusSuccess = !m.networkQuery.StatusSuccess
	case "3":
		m.networkQuery.StatusRedirect = !m.networkQuery.StatusRedirect
	case "4":
		m.networkQuery.StatusClientError = !m.networkQuery.StatusClientError
	case "5":
		m.networkQuery.StatusServerError = !m.networkQuery.StatusServerError
	}
}

// isNearBottom checks if the viewport is at or near the bottom
func (m *Model) isNearBottom() bool {
	if m.viewport.AtBottom() {
		return true
	}
	return m.viewport.ScrollPercent() >= nearBottomThreshold
}
