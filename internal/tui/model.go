package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseDone
)

// ProgressUpdate is sent once per completed job.
type ProgressUpdate struct {
	Done  int
	Total int
	Path  string
}

type (
	progressMsg ProgressUpdate
	doneMsg     struct{}
)

// Config for the TUI
type Config struct {
	InputDir  string
	OutputDir string
	Workers   int
}

// Model renders a live progress bar while jobs run. It quits once the updates
// channel is closed.
type Model struct {
	config   Config
	updates  <-chan ProgressUpdate
	Phase    Phase
	spinner  spinner.Model
	progress progress.Model
	started  time.Time
	done     int
	total    int
	current  string
	Quitting bool
	width    int
}

func NewModel(cfg Config, updates <-chan ProgressUpdate) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		updates:  updates,
		Phase:    PhaseRunning,
		spinner:  s,
		progress: p,
		started:  time.Now(),
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, listenForUpdates(m.updates))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}

	case progressMsg:
		m.done = msg.Done
		m.total = msg.Total
		m.current = msg.Path
		cmds := []tea.Cmd{listenForUpdates(m.updates)}
		if m.total > 0 {
			cmds = append(cmds, m.progress.SetPercent(float64(m.done)/float64(m.total)))
		}
		return m, tea.Batch(cmds...)

	case doneMsg:
		m.Phase = PhaseDone
		return m, tea.Quit

	case spinner.TickMsg:
		if m.Phase == PhaseRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func listenForUpdates(updates <-chan ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return progressMsg(update)
	}
}

func (m Model) View() string {
	if m.Quitting || m.Phase == PhaseDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderRunning())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press q to stop watching (jobs keep running)"))
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("rawbatch")
	workers := "sequential"
	if m.config.Workers > 1 {
		workers = fmt.Sprintf("%d workers", m.config.Workers)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		dimStyle.Render(fmt.Sprintf("%s Input:  %s", iconFolder, shortenPath(m.config.InputDir))),
		dimStyle.Render(fmt.Sprintf("%s Output: %s", iconFolder, shortenPath(m.config.OutputDir))),
		dimStyle.Render(workers),
	)
}

func (m Model) renderRunning() string {
	var b strings.Builder

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}

	b.WriteString(fmt.Sprintf("  %s Processing...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.done, m.total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%) %s", percent*100, time.Since(m.started).Round(time.Second))),
	))

	if m.current != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", iconArrow, fileNameStyle.Render(m.current)))
	}
	return b.String()
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
