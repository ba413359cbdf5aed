package controller

import m "github.com/mouse-blink/exam/internal/model"

// Messages forwarded from the runner's sink callbacks into the Bubble Tea
// event loop.

// runStartedMsg carries the number of execution instances an unfiltered
// pass would produce.
type runStartedMsg struct {
	total int
}

// suiteMsg announces a suite boundary.
type suiteMsg struct {
	suite string
}

// startedMsg announces a test body about to run.
type startedMsg struct {
	id string
}

// finishedMsg carries one completed test outcome.
type finishedMsg struct {
	outcome m.Outcome
}

// summaryMsg carries the final tally and ends the render loop.
type summaryMsg struct {
	report m.Report
}
