package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/exam/internal/model"
)

// maxRecentResults bounds the rolling result list in the progress view.
const maxRecentResults = 12

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	tuiSummaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	tuiAccentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	tuiSuiteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // Magenta

	tuiPassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	tuiFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	tuiMessageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(4)
)

// runModel handles the TUI display during a test run.
type runModel struct {
	width        int
	progressBar  progress.Model
	total        int
	completed    int
	failures     int
	currentSuite string
	currentID    string
	recent       []m.Outcome
	report       m.Report
	finished     bool
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return runModel{progressBar: prog}
}

// Init implements tea.Model.
func (mod runModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (mod runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mod.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return mod, tea.Quit
		}

	case runStartedMsg:
		mod.total = msg.total
		mod.completed = 0
		mod.failures = 0

	case suiteMsg:
		mod.currentSuite = msg.suite

	case startedMsg:
		mod.currentID = msg.id

	case finishedMsg:
		mod.completed++
		if !msg.outcome.Passed {
			mod.failures++
		}

		mod.recent = append(mod.recent, msg.outcome)
		if len(mod.recent) > maxRecentResults {
			mod.recent = mod.recent[len(mod.recent)-maxRecentResults:]
		}

	case summaryMsg:
		mod.report = msg.report
		mod.finished = true

		return mod, tea.Quit
	}

	return mod, nil
}

// View implements tea.Model.
func (mod runModel) View() string {
	if mod.finished {
		return mod.viewSummary()
	}

	return mod.viewProgress()
}

func (mod runModel) viewProgress() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("exam"))
	b.WriteString("\n")

	b.WriteString(tuiSummaryStyle.Render(fmt.Sprintf(
		"Completed: %s / %s  •  Failures: %s",
		tuiAccentStyle.Render(fmt.Sprintf("%d", mod.completed)),
		tuiAccentStyle.Render(fmt.Sprintf("%d", mod.total)),
		tuiAccentStyle.Render(fmt.Sprintf("%d", mod.failures)),
	)))
	b.WriteString("\n")

	b.WriteString("  ")
	b.WriteString(mod.progressBar.ViewAs(mod.progressPercent()))
	b.WriteString("\n\n")

	if mod.currentSuite != "" {
		b.WriteString("  ")
		b.WriteString(tuiSuiteStyle.Render(mod.currentSuite))
		b.WriteString("\n")
	}

	if mod.currentID != "" {
		b.WriteString(fmt.Sprintf("  running %s\n", tuiAccentStyle.Render(mod.currentID)))
	}

	b.WriteString("\n")

	for _, outcome := range mod.recent {
		b.WriteString("  ")
		b.WriteString(renderOutcomeLine(outcome))
		b.WriteString("\n")
	}

	return b.String()
}

func (mod runModel) viewSummary() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("exam"))
	b.WriteString("\n")

	verdict := tuiPassStyle.Render("OK")
	if !mod.report.Ok() {
		verdict = tuiFailStyle.Render("FAILED")
	}

	b.WriteString(tuiSummaryStyle.Render(fmt.Sprintf(
		"%s  •  %d run, %d passed, %d ignored",
		verdict, mod.report.Run, mod.report.Passed, mod.report.Ignored,
	)))
	b.WriteString("\n")

	for _, outcome := range mod.recent {
		if outcome.Passed {
			continue
		}

		b.WriteString("  ")
		b.WriteString(renderOutcomeLine(outcome))
		b.WriteString("\n")

		if outcome.Message != "" {
			b.WriteString(tuiMessageStyle.Render(outcome.Message))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (mod runModel) progressPercent() float64 {
	if mod.finished {
		return 1
	}

	if mod.total == 0 {
		return 0
	}

	return float64(mod.completed) / float64(mod.total)
}

func renderOutcomeLine(outcome m.Outcome) string {
	verdict := tuiPassStyle.Render("✓")
	if !outcome.Passed {
		verdict = tuiFailStyle.Render("✗")
	}

	return fmt.Sprintf("%s %s (%s)", verdict, outcome.ID, formatElapsed(outcome.Elapsed))
}
