// Package tui implements the fullscreen pomodoro timer interface
// using the Bubble Tea framework.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pomoterm/pomoterm/internal/config"
	"github.com/pomoterm/pomoterm/internal/domain"
)

// tickMsg is sent roughly once a second to advance the countdown.
type tickMsg time.Time

// Model is the Bubble Tea model for the timer screen. The domain timer is
// the single source of truth; the model only caches terminal dimensions
// and the wall-clock instant of the previous tick.
type Model struct {
	timer        *domain.Timer
	theme        config.ThemeConfig
	width        int
	height       int
	lastTick     time.Time
	onTransition func(domain.Transition)
}

// NewModel creates a timer model. onTransition, when non-nil, is invoked
// once for every phase change.
func NewModel(timer *domain.Timer, theme config.ThemeConfig, onTransition func(domain.Transition)) Model {
	return Model{
		timer:        timer,
		theme:        theme,
		lastTick:     time.Now(),
		onTransition: onTransition,
	}
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles key, resize and tick messages. Ticks advance the domain
// timer by measured wall-clock time rather than a fixed second, so the
// countdown does not drift when rendering or input handling runs late.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.timer.Start()
		case "p":
			m.timer.TogglePause()
		}
		// unrecognized keys are ignored

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		now := time.Time(msg)
		elapsed := now.Sub(m.lastTick)
		m.lastTick = now
		if tr, ok := m.timer.Advance(elapsed); ok && m.onTransition != nil {
			m.onTransition(tr)
		}
		return m, tickCmd()
	}
	return m, nil
}

// View renders the full frame. The frame is rebuilt from scratch on every
// message and clamped to the terminal box, so a resize can never leave
// stale artifacts from a previous larger frame.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	color := lipgloss.Color(gaugeColor(m.timer, m.theme))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	statusStyle := lipgloss.NewStyle().Foreground(color)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render("🍅 pomoterm"))
	sections = append(sections, statusStyle.Render(m.statusLine()))
	sections = append(sections, "")
	sections = append(sections, renderCountdown(formatDuration(m.timer.Remaining()), color, m.width, m.height))

	if !m.timer.Running() {
		badge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render("⏸ PAUSED")
		sections = append(sections, "", badge)
	}

	sections = append(sections, "", m.renderGauge(color))
	sections = append(sections, "", helpStyle.Render(m.helpLine()))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	frame := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(frame)
}

// statusLine names the phase and, outside the long break, the cycle the
// timer is in.
func (m Model) statusLine() string {
	label := domain.PhaseLabel(m.timer.Phase())
	if m.timer.Phase() == domain.PhaseLongBreak {
		return label
	}
	return fmt.Sprintf("%s · cycle %d/%d", label, m.timer.CycleNumber(), m.timer.Config().CyclesBeforeLong)
}

// renderGauge draws the progress bar filled to the elapsed share of the
// current phase.
func (m Model) renderGauge(color lipgloss.Color) string {
	bar := progress.New(progress.WithSolidFill(string(color)), progress.WithoutPercentage())
	bar.EmptyColor = emptyBarColor(m.theme.DarkMode)
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	bar.Width = w
	return bar.ViewAs(m.timer.Progress())
}

func (m Model) helpLine() string {
	if m.timer.Running() {
		return "[p]ause  [q]uit"
	}
	return "[s]tart  [q]uit"
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Run starts the fullscreen timer and blocks until the user quits or an
// unrecoverable terminal error occurs. The alternate screen and raw mode
// are restored on every exit path, including errors.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
