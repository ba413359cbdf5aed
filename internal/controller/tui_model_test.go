package controller

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/exam/internal/model"
)

func update(t *testing.T, mod runModel, msg tea.Msg) (runModel, tea.Cmd) {
	t.Helper()

	next, cmd := mod.Update(msg)

	got, ok := next.(runModel)
	require.True(t, ok, "Update returned a %T, want runModel", next)

	return got, cmd
}

func TestRunModel_TracksProgress(t *testing.T) {
	mod := newRunModel()

	mod, _ = update(t, mod, runStartedMsg{total: 4})
	assert.Equal(t, 4, mod.total)
	assert.InDelta(t, 0.0, mod.progressPercent(), 1e-9)

	mod, _ = update(t, mod, suiteMsg{suite: "Suite1"})
	mod, _ = update(t, mod, startedMsg{id: "Suite1_A"})
	assert.Equal(t, "Suite1", mod.currentSuite)
	assert.Equal(t, "Suite1_A", mod.currentID)

	mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{ID: "Suite1_A", Passed: true}})
	mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{ID: "Suite1_B", Passed: false}})

	assert.Equal(t, 2, mod.completed)
	assert.Equal(t, 1, mod.failures)
	assert.InDelta(t, 0.5, mod.progressPercent(), 1e-9)
}

func TestRunModel_RecentResultsAreBounded(t *testing.T) {
	mod := newRunModel()

	for range maxRecentResults + 5 {
		mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{ID: "Suite_X", Passed: true}})
	}

	assert.Len(t, mod.recent, maxRecentResults)
}

func TestRunModel_SummaryQuits(t *testing.T) {
	mod := newRunModel()

	mod, cmd := update(t, mod, summaryMsg{report: m.Report{Run: 2, Passed: 1}})

	assert.True(t, mod.finished)
	require.NotNil(t, cmd, "summary should quit the render loop")
	assert.Equal(t, tea.Quit(), cmd())
	assert.InDelta(t, 1.0, mod.progressPercent(), 1e-9)
}

func TestRunModel_KeysQuit(t *testing.T) {
	mod := newRunModel()

	_, cmd := update(t, mod, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd, "q should quit")

	_, cmd = update(t, mod, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd, "ctrl+c should quit")
}

func TestRunModel_Views(t *testing.T) {
	t.Run("progress view", func(t *testing.T) {
		mod := newRunModel()
		mod, _ = update(t, mod, runStartedMsg{total: 2})
		mod, _ = update(t, mod, suiteMsg{suite: "Suite1"})
		mod, _ = update(t, mod, startedMsg{id: "Suite1_A"})
		mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{
			ID:      "Suite1_A",
			Passed:  true,
			Elapsed: time.Millisecond,
		}})

		view := mod.View()

		assert.Contains(t, view, "Suite1")
		assert.Contains(t, view, "Suite1_A")
		assert.Contains(t, view, "1.00 ms")
	})

	t.Run("summary view lists failures only", func(t *testing.T) {
		mod := newRunModel()
		mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{ID: "Suite_Ok", Passed: true}})
		mod, _ = update(t, mod, finishedMsg{outcome: m.Outcome{
			ID:      "Suite_Bad",
			Passed:  false,
			Message: "Expected: x == y",
		}})
		mod, _ = update(t, mod, summaryMsg{report: m.Report{Run: 2, Passed: 1}})

		view := mod.View()

		assert.Contains(t, view, "FAILED")
		assert.Contains(t, view, "Suite_Bad")
		assert.Contains(t, view, "Expected: x == y")
		assert.Contains(t, view, "2 run, 1 passed, 0 ignored")
	})
}
