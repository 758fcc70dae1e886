package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"drover/internal/domain"
	"drover/internal/logview"
)

// View renders the dashboard
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.mode == ModeHelp {
		return m.helpView()
	}

	var sb strings.Builder
	sb.WriteString(m.sessionPanel())
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())
	return sb.String()
}

// updateViewport updates the viewport content
func (m *Model) updateViewport() {
	var lines []string

	if m.viewMode == ViewModeNetwork {
		for _, record := range m.filteredNetwork() {
			lines = append(lines, m.formatNetworkRecord(record))
		}
	} else {
		for _, record := range m.filteredConsole() {
			lines = append(lines, m.formatConsoleRecord(record))
		}
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// filteredConsole returns console records after the interactive filter
func (m *Model) filteredConsole() []domain.ConsoleRecord {
	if m.searchPattern == "" {
		return m.consoleRecords
	}
	var result []domain.ConsoleRecord
	for _, record := range m.consoleRecords {
		if containsIgnoreCase(record.Message, m.searchPattern) ||
			containsIgnoreCase(record.Path, m.searchPattern) {
			result = append(result, record)
		}
	}
	return result
}

// filteredNetwork returns network records after the interactive filter
func (m *Model) filteredNetwork() []domain.NetworkRecord {
	if m.searchPattern == "" {
		return m.networkRecords
	}
	var result []domain.NetworkRecord
	for _, record := range m.networkRecords {
		if containsIgnoreCase(record.URL, m.searchPattern) ||
			containsIgnoreCase(record.Method, m.searchPattern) {
			result = append(result, record)
		}
	}
	return result
}

// formatConsoleRecord formats a single console record for the viewport
func (m *Model) formatConsoleRecord(record domain.ConsoleRecord) string {
	view := logview.RenderConsole(record, m.consoleQuery.TruncateLength)
	style := classStyle(view.Class.Color)

	label := style.Render(fmt.Sprintf("%-7s", view.Label))
	line := fmt.Sprintf("%s %s %s", dimStyle.Render(view.Timestamp), label, view.Message)
	if view.Path != "" {
		line += " " + dimStyle.Render(view.Path)
	}
	return line
}

// formatNetworkRecord formats a single network record for the viewport
func (m *Model) formatNetworkRecord(record domain.NetworkRecord) string {
	view := logview.RenderNetwork(record, m.networkQuery.TruncateLength)
	style := classStyle(view.Class.Color)

	status := style.Render(fmt.Sprintf("%3d", view.Status))
	method := fmt.Sprintf("%-7s", view.Method)
	return fmt.Sprintf("%s %s %s %s", dimStyle.Render(view.Timestamp), status, method, view.URL)
}

// sessionPanel renders the session header
func (m *Model) sessionPanel() string {
	id := m.session.ID
	if id == "" {
		id = m.sessionID
	}

	parts := []string{"Session: " + id}
	if m.session.Status != "" {
		parts = append(parts, "Status: "+m.session.Status)
	}
	if m.session.Region != "" {
		parts = append(parts, "Region: "+m.session.Region)
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  |  "))
	return headerStyle.Render(header)
}

// statusBar renders the bottom status bar
func (m *Model) statusBar() string {
	var left, right string

	viewIndicator := "[Console " + m.levelIndicator() + "]"
	if m.viewMode == ViewModeNetwork {
		viewIndicator = "[Network " + m.bucketIndicator() + "]"
	}

	switch m.mode {
	case ModeSearch:
		left = "Filter: " + m.textInput.View()
	case ModeNavigate:
		left = "Navigate: " + m.textInput.View()
	case ModeAct:
		left = "Act: " + m.textInput.View()
	default:
		if m.searchPattern != "" {
			left = fmt.Sprintf("Filter: %s (ESC to clear)", m.searchPattern)
		} else {
			left = "Tab: switch view | ? for help"
		}
	}
	if m.lastError != nil {
		left = errorStyle.Render(" ERR ") + " " + truncateError(m.lastError, maxErrorDisplayLen)
	}

	var visible, total int
	var label string
	if m.viewMode == ViewModeNetwork {
		visible = len(m.filteredNetwork())
		total = len(m.networkRecords)
		label = "requests"
	} else {
		visible = len(m.filteredConsole())
		total = len(m.consoleRecords)
		label = "logs"
	}
	followIndicator := "[FOLLOW]"
	if !m.followMode {
		followIndicator = "[PAUSED]"
	}
	right = fmt.Sprintf("%s %s %d/%d %s", viewIndicator, followIndicator, visible, total, label)

	leftWidth := m.width - len(right) - 4
	if leftWidth < 0 {
		leftWidth = 0
	}

	leftPart := statusStyle.Width(leftWidth).Render(left)
	rightPart := statusStyle.Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, "  ", rightPart)
}

// levelIndicator shows which console levels the active query keeps
func (m *Model) levelIndicator() string {
	letters := []struct {
		on     bool
		letter string
	}{
		{m.consoleQuery.Error, "E"},
		{m.consoleQuery.Warning, "W"},
		{m.consoleQuery.Info, "I"},
		{m.consoleQuery.Trace, "T"},
	}

	var sb strings.Builder
	for _, l := range letters {
		if l.on {
			sb.WriteString(l.letter)
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}

// bucketIndicator shows which status buckets the active query keeps
func (m *Model) bucketIndicator() string {
	digits := []struct {
		on    bool
		digit string
	}{
		{m.networkQuery.StatusInfo, "1"},
		{m.networkQuery.StatusSuccess, "2"},
		{m.networkQuery.StatusRedirect, "3"},
		{m.networkQuery.StatusClientError, "4"},
		{m.networkQuery.StatusServerError, "5"},
	}

	var sb strings.Builder
	for _, d := range digits {
		if d.on {
			sb.WriteString(d.digit)
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}

// helpView renders the help overlay
func (m *Model) helpView() string {
	title := "Drover - Session Dashboard"
	if m.viewMode == ViewModeNetwork {
		title += " [Network View]"
	} else {
		title += " [Console View]"
	}

	help := fmt.Sprintf(`
%s

Views:
  Tab        Switch between console and network

Navigation:
  j/↓        Scroll down
  k/↑        Scroll up (pauses auto-follow)
  g/Home     Go to top (pauses auto-follow)
  G/End      Go to bottom (resumes auto-follow)
  PgUp/PgDn  Page up/down
  F          Toggle auto-follow mode

Filtering:
  / or s     Substring filter
  e/w/i/t    Toggle console levels (console view)
  1-5        Toggle status buckets (network view)
  ESC        Clear filter

Session:
  n          Navigate to a URL
  a          Perform an action
  r          Refresh now
  c          Clear captured telemetry

Other:
  ?          Toggle help
  q/Ctrl+C   Quit (session keeps running)

Press any key to close help...
`, title)

	return helpStyle.Render(help)
}

// containsIgnoreCase performs a case-insensitive substring search
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// truncateError truncates an error message to maxLen characters
func truncateError(err error, maxLen int) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if len(msg) > maxLen {
		return msg[:maxLen-3] + "..."
	}
	return msg
}
