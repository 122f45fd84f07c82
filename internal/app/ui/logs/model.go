package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"metroems/internal/app/follow"
	"metroems/internal/app/logtail"
	"metroems/internal/app/ui/components"
	"metroems/internal/config/logger"
)

const filterCharLimit = 100

// Model is the logs tab: the full tail in a scrollable viewport that follows new entries
// until the operator scrolls away from the bottom
type Model struct {
	tail      *logtail.Tail
	follow    *follow.Controller
	viewport  viewport.Model
	input     textinput.Model
	filter    Filter
	filterErr error
	filtering bool
	lines     *lineCache
	keys      KeyMap
	shown     int
	width     int
	height    int
}

// NewModel creates the logs view with a fresh tail and follow controller
func NewModel(limit, threshold int, log logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "glob, e.g. rssi* or warn *"
	ti.Prompt = "/ "
	ti.CharLimit = filterCharLimit

	return Model{
		tail:     logtail.NewTail(limit),
		follow:   follow.NewController(threshold, log),
		viewport: viewport.New(components.DefaultViewportWidth, 0),
		input:    ti,
		lines:    newLineCache(),
		keys:     DefaultKeyMap(),
	}
}

// Tail returns the log buffer the sync engine writes to
func (m Model) Tail() *logtail.Tail {
	return m.tail
}

// Following reports whether new entries scroll the view
func (m Model) Following() bool {
	return m.follow.IsFollowing()
}

// Capturing reports whether key presses are going to the filter input
func (m Model) Capturing() bool {
	return m.filtering
}

// Keys returns the bindings for the help view
func (m Model) Keys() KeyMap {
	return m.keys
}

// SetSize updates the viewport dimensions, keeping one row for the filter line
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-1)
	m.input.Width = max(1, width-4)

	m.render()
	m.applyFollow()
}

// Refresh re-renders after the tail changed and scrolls when following
func (m *Model) Refresh() {
	m.render()
	m.applyFollow()
}

// Clear drops every entry; the view keeps only what arrives afterwards
func (m *Model) Clear() {
	m.tail.Clear()
	m.lines.reset(m.width)
	m.render()
	m.viewport.GotoTop()
}

// Update handles keys and mouse input for the logs view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.filtering {
			return m.updateFilter(keyMsg)
		}

		return m.handleKey(keyMsg)
	}

	if _, ok := msg.(tea.MouseMsg); ok {
		return m.scroll(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.input.SetValue(m.filter.Pattern())
		m.input.CursorEnd()

		return m, m.input.Focus()

	case key.Matches(msg, m.keys.ClearLogs):
		m.Clear()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if m.follow.JumpToBottom() == follow.ScrollToBottom {
			m.viewport.GotoBottom()
		}

		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.filter.Active() {
			m.filter = Filter{}
			m.filterErr = nil
			m.Refresh()
		}

		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow.Scrolled(m.distanceFromBottom())

		return m, nil

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		return m.scroll(msg)
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Apply):
		filter, err := NewFilter(m.input.Value())
		m.filterErr = err

		if err == nil {
			m.filter = filter
		}

		m.filtering = false
		m.input.Blur()
		m.Refresh()

		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.input.Blur()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) scroll(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)
	m.follow.Scrolled(m.distanceFromBottom())

	return m, cmd
}

// distanceFromBottom returns how far the viewport is from the last line, in pixels
func (m Model) distanceFromBottom() int {
	rows := m.viewport.TotalLineCount() - (m.viewport.YOffset + m.viewport.Height)

	return max(0, rows) * components.RowHeight
}

func (m *Model) applyFollow() {
	if m.follow.Mutated() == follow.ScrollToBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) render() {
	entries := m.tail.Snapshot()
	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		if m.filter.Match(e) {
			lines = append(lines, m.lines.line(e, m.width))
		}
	}

	m.lines.prune(entries)

	m.shown = len(lines)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderEntry keeps the time and level columns and wraps long messages under the message column
func renderEntry(entry logtail.Entry, width int) string {
	if width <= 0 {
		width = components.DefaultViewportWidth
	}

	prefix := components.TimestampStyle.Render(components.PadRight(entry.Time, components.LogTimeWidth)) + " " +
		components.LevelStyle(string(entry.Level)).Render(components.PadRight(string(entry.Level), components.LogLevelWidth)) + " "

	room := max(10, width-lipgloss.Width(prefix))
	message := lipgloss.NewStyle().Width(room).Render(entry.Message)

	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, message)
}

// Status returns the counts and follow state for the header
func (m Model) Status() string {
	state := "following"
	if !m.follow.IsFollowing() {
		state = "paused"
	}

	status := fmt.Sprintf("%d entries • %s", m.tail.Len(), state)
	if m.filter.Active() {
		status = fmt.Sprintf("%d/%d entries • %s", m.shown, m.tail.Len(), state)
	}

	return status
}

// View renders the viewport and the filter line
func (m Model) View() string {
	body := m.viewport.View()
	if m.tail.Len() == 0 {
		body = components.EmptyStateStyle.Render("No log entries yet")
	} else if m.shown == 0 {
		body = components.EmptyStateStyle.Render(fmt.Sprintf("No entries match '%s'", m.filter.Pattern()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.filterLine())
}

func (m Model) filterLine() string {
	switch {
	case m.filtering:
		return m.input.View()
	case m.filterErr != nil:
		return components.NoticeStyle.Render(fmt.Sprintf("invalid filter: %v", m.filterErr))
	case m.filter.Active():
		return components.MutedStyle.Render(fmt.Sprintf("filter: %s (esc to clear)", m.filter.Pattern()))
	default:
		return ""
	}
}
