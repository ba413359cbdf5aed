package domain

import m "github.com/mouse-blink/exam/internal/model"

// Sink receives the ordered event stream of one run. The runner only ever
// reports pass/fail booleans and raw message strings; any colouring or
// layout is the sink's concern. Implementations live in
// internal/controller.
type Sink interface {
	// RunStarted fires once, before any test, with the number of execution
	// instances an unfiltered pass would produce.
	RunStarted(total int)
	// SuiteStarted fires before the first executed test of each suite.
	SuiteStarted(suite string)
	// TestStarted fires before a test body is invoked.
	TestStarted(id string)
	// TestFinished fires after a test body returned or failed.
	TestFinished(outcome m.Outcome)
	// Summary fires once, after the last descriptor, with the final tally.
	Summary(report m.Report)
}
