package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	m "github.com/mouse-blink/exam/internal/model"
)

// Runner drives one sequential pass over a registry: it filters each
// candidate id, executes allowed test bodies while containing their
// failures, and reports every step to its sink. Cartesian descriptors are
// re-offered once per combination before the walk moves on.
//
// A Runner is single-threaded. Run may be called again for another full
// pass; distinct Runner instances may run on separate goroutines as long as
// they do not share a registry of cartesian descriptors.
type Runner struct {
	registry *Registry
	filter   Filter
	sink     Sink

	// scratch backs candidate-id formatting. It is exclusive to this runner
	// and reset at the start of each build, never mid-format.
	scratch strings.Builder
}

// NewRunner creates a Runner over the given registry, filter and sink.
func NewRunner(registry *Registry, filter Filter, sink Sink) *Runner {
	return &Runner{
		registry: registry,
		filter:   filter,
		sink:     sink,
	}
}

// Run walks the registry in declaration order and returns the final tally.
// A failing test never aborts the pass.
func (r *Runner) Run() m.Report {
	var report m.Report

	r.sink.RunStarted(r.registry.Executions())

	lastSuite := ""
	haveSuite := false

	for d := range r.registry.All() {
		if d.Kind == KindCartesian && d.Space.Size() == 0 {
			// Empty space: the test runs zero times.
			report.Ignored++
			continue
		}

		for {
			id := r.candidateID(d)

			if !r.filter.Allows(id) {
				report.Ignored++

				if d.Kind == KindCartesian && d.Space.Iteration() > 0 {
					// Abandoned mid-iteration: restore the all-zero state
					// for the next pass.
					d.Space.Reset()
				}

				break
			}

			// Suite boundary is detected after filtering, so a header is
			// only ever followed by at least one executed test.
			if !haveSuite || d.Suite != lastSuite {
				r.sink.SuiteStarted(d.Suite)

				lastSuite = d.Suite
				haveSuite = true
			}

			outcome := r.execute(d, id)

			report.Run++
			if outcome.Passed {
				report.Passed++
			}

			r.sink.TestFinished(outcome)

			if d.Kind != KindCartesian {
				break
			}

			if !d.Space.Advance() {
				d.Space.Reset()
				break
			}
		}
	}

	r.sink.Summary(report)

	return report
}

// execute invokes the test body once, converting assertion failures,
// unexpected errors and panics into a failed outcome.
func (r *Runner) execute(d *Descriptor, id string) (outcome m.Outcome) {
	r.sink.TestStarted(id)

	outcome = m.Outcome{
		ID:     id,
		Suite:  d.Suite,
		Passed: true,
	}

	start := time.Now()

	defer func() {
		outcome.Elapsed = time.Since(start)

		if p := recover(); p != nil {
			outcome.Passed = false
			outcome.Message = fmt.Sprintf("Unexpected panic: %v", p)
		}
	}()

	err := d.invoke()

	var failure *m.Failure

	switch {
	case err == nil:
	case errors.As(err, &failure):
		outcome.Passed = false
		outcome.Message = failure.Message
	default:
		outcome.Passed = false
		outcome.Message = "Unexpected error: " + err.Error()
	}

	return outcome
}

// candidateID builds the filter-checked identity of the next execution
// instance: suite and name joined by '_', plus the current combination
// suffix for cartesian descriptors.
func (r *Runner) candidateID(d *Descriptor) string {
	r.scratch.Reset()
	r.scratch.WriteString(d.Suite)
	r.scratch.WriteByte(idJoin)
	r.scratch.WriteString(d.Name)

	if d.Kind == KindCartesian {
		d.Space.appendSuffix(&r.scratch)
	}

	return r.scratch.String()
}
