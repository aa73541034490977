// Package stopwatch is the terminal widget around pkg/stopwatch: a
// MM:SS display with Start/Stop and Reset buttons.
package stopwatch

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mouseZone "github.com/lrstanley/bubblezone"

	log "github.com/cloudposse/stopwatch/pkg/logger"
	sw "github.com/cloudposse/stopwatch/pkg/stopwatch"
	"github.com/cloudposse/stopwatch/pkg/ui/theme"
)

const (
	title = "Stopwatch"

	labelStart = "Start"
	labelStop  = "Stop"
	labelReset = "Reset"
)

// TickMsg is delivered once per interval for the tick source identified
// by Handle.
type TickMsg struct {
	Handle sw.TickHandle
}

type button int

const (
	startStopButton button = iota
	resetButton
	buttonCount
)

// Model is the bubbletea model of the stopwatch widget.
type Model struct {
	watch    sw.Stopwatch
	keys     keyMap
	help     help.Model
	styles   theme.Styles
	focus    button
	quitting bool

	// zones is nil when mouse support is off.
	zones      *mouseZone.Manager
	zonePrefix string
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the widget styles.
func WithStyles(styles theme.Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// WithMouseZones enables clicking the buttons. The program must be run
// with mouse reporting on.
func WithMouseZones(zones *mouseZone.Manager) Option {
	return func(m *Model) {
		m.zones = zones
		m.zonePrefix = zones.NewPrefix()
	}
}

// New returns the widget in its initial state: idle at 00:00.
func New(opts ...Option) Model {
	m := Model{
		watch:  sw.New(),
		keys:   newKeyMap(),
		help:   help.New(),
		styles: theme.DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Styles.ShortKey = m.styles.Help.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, m.tick(msg.Handle)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for b := startStopButton; b < buttonCount; b++ {
		if z := m.zones.Get(m.zoneID(b)); z != nil && z.InBounds(msg) {
			m.focus = b
			return m, m.press()
		}
	}
	return m, nil
}

func (m Model) zoneID(b button) string {
	if b == resetButton {
		return m.zonePrefix + "reset"
	}
	return m.zonePrefix + "start-stop"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.StartStop):
		return m, m.startStop()
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % buttonCount
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + buttonCount - 1) % buttonCount
		return m, nil
	case key.Matches(msg, m.keys.Press):
		return m, m.press()
	}
	return m, nil
}

func (m *Model) press() tea.Cmd {
	if m.focus == resetButton {
		if m.ResetEnabled() {
			m.reset()
		}
		return nil
	}
	return m.startStop()
}

func (m *Model) startStop() tea.Cmd {
	h, started := m.watch.StartStop()
	m.keys.sync(m.watch.Running(), m.watch.CanReset())
	if !started {
		log.Debug("Stopwatch stopped", "elapsed", m.watch.String())
		return nil
	}
	log.Debug("Stopwatch started", "elapsed", m.watch.String())
	return scheduleTick(h)
}

func (m *Model) reset() {
	m.watch.Reset()
	m.keys.sync(m.watch.Running(), m.watch.CanReset())
	log.Debug("Stopwatch reset")
}

func (m *Model) tick(h sw.TickHandle) tea.Cmd {
	if !m.watch.Tick(h) {
		log.Trace("Dropped stale tick")
		return nil
	}
	m.keys.sync(m.watch.Running(), m.watch.CanReset())
	log.Trace("Tick", "elapsed", m.watch.String())
	return scheduleTick(h)
}

func (m *Model) quit() {
	m.watch.Close()
	m.quitting = true
	log.Debug("Stopwatch closed", "elapsed", m.watch.String())
}

func scheduleTick(h sw.TickHandle) tea.Cmd {
	return tea.Tick(sw.Interval, func(time.Time) tea.Msg {
		return TickMsg{Handle: h}
	})
}

// Elapsed returns the elapsed seconds.
func (m Model) Elapsed() int {
	return m.watch.Elapsed()
}

// Running reports whether the stopwatch is running.
func (m Model) Running() bool {
	return m.watch.Running()
}

// Closed reports whether the widget has been torn down.
func (m Model) Closed() bool {
	return m.watch.Closed()
}

// Display returns the formatted elapsed time.
func (m Model) Display() string {
	return m.watch.String()
}

// StartStopLabel is "Stop" while running and "Start" otherwise.
func (m Model) StartStopLabel() string {
	if m.watch.Running() {
		return labelStop
	}
	return labelStart
}

// ResetEnabled reports whether the Reset button is enabled.
func (m Model) ResetEnabled() bool {
	return m.watch.CanReset()
}

func (m Model) View() string {
	if m.quitting {
		return m.styles.Help.Render(title+" "+m.watch.String()) + "\n"
	}

	display := m.styles.Display
	if m.watch.Running() {
		display = m.styles.RunningDisplay
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(startStopButton, m.StartStopLabel(), true),
		" ",
		m.renderButton(resetButton, labelReset, m.ResetEnabled()),
	)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(title),
		display.Render(m.watch.String()),
		buttons,
		"",
		m.help.View(m.keys),
	) + "\n"
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func (m Model) renderButton(b button, label string, enabled bool) string {
	style := m.styles.Button
	switch {
	case !enabled:
		style = m.styles.DisabledButton
	case m.focus == b:
		style = m.styles.FocusedButton
	}
	if m.zones == nil {
		return style.Render(label)
	}
	return m.zones.Mark(m.zoneID(b), style.Render(label))
}
