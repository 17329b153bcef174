package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}

	labelStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// ─── Messages ────────────────────────────────────────────────────────────────

// ProgressMsg carries one scan progress notification.
type ProgressMsg struct {
	Label   string
	Percent int
}

// DoneMsg signals that the scan goroutine has finished.
type DoneMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// ScanModel renders live scan progress from a message channel fed by the
// scan session's progress callback. Esc or q requests cancellation; the
// model still waits for DoneMsg so the partial results stay consistent.
type ScanModel struct {
	ch        <-chan tea.Msg
	cancel    func()
	spin      spinner.Model
	bar       progress.Model
	label     string
	percent   int
	cancelled bool
	done      bool
}

// NewScanModel creates a ScanModel reading from ch. cancel is invoked
// when the user aborts.
func NewScanModel(ch <-chan tea.Msg, cancel func()) ScanModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return ScanModel{
		ch:     ch,
		cancel: cancel,
		spin:   sp,
		bar:    bar,
		label:  "starting",
	}
}

// listen waits for the next message from the scan goroutine.
func (m ScanModel) listen() tea.Cmd {
	return func() tea.Msg {
		return <-m.ch
	}
}

func (m ScanModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.listen())
}

func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.cancelled {
				m.cancelled = true
				if m.cancel != nil {
					m.cancel()
				}
			}
			return m, nil
		}

	case ProgressMsg:
		m.label = msg.Label
		m.percent = msg.Percent
		return m, m.listen()

	case DoneMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m ScanModel) View() string {
	if m.done {
		return ""
	}

	title := "Scanning for cleanup candidates"
	if m.cancelled {
		title = "Cancelling…"
	}

	var s strings.Builder
	s.WriteString("\n  " + m.spin.View() + title + "\n\n")
	s.WriteString(fmt.Sprintf("  %s %3d%%\n", m.bar.ViewAs(float64(m.percent)/100), m.percent))
	s.WriteString("  " + labelStyle.Render(m.label) + "\n\n")
	s.WriteString(helpStyle.Render("  q/esc cancel"))
	return s.String()
}
