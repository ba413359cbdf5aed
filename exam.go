// Package exam is a minimal in-process unit-test harness. Programs declare
// tests at init time against a process-wide registry and hand control to
// cmd.Execute, which filters the declared tests by a wildcard expression,
// runs them strictly sequentially and exits with the number of failures.
//
// A test body reports a failed check by returning the error built by Fail,
// Failf or True; any other non-nil error or a panic counts as an unexpected
// failure. Either way the failure is contained to that test and the run
// continues.
package exam

import (
	"fmt"

	"github.com/mouse-blink/exam/internal/domain"
	"github.com/mouse-blink/exam/internal/model"
)

// Core types re-exported for declaration and programmatic use.
type (
	// Registry is an append-only, declaration-ordered test collection.
	Registry = domain.Registry
	// Test is one declared test: identity plus runnable body.
	Test = domain.Descriptor
	// Axis is one named dimension of a cartesian test's input space.
	Axis = domain.Axis
	// Space enumerates the cartesian product of its axes.
	Space = domain.Space
	// Filter pairs include and exclude wildcard pattern lists.
	Filter = domain.Filter
	// Sink receives the ordered event stream of one run.
	Sink = domain.Sink
	// Outcome is the result of one test execution instance.
	Outcome = model.Outcome
	// Report is the final tally of one run.
	Report = model.Report
)

var defaultRegistry = domain.NewRegistry()

// Default returns the process-wide registry that the Register functions and
// cmd.Execute operate on. It is populated once, at declaration time, and
// lives for the whole process.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry creates an empty explicit registry, for hosts that do not
// want the process-wide one.
func NewRegistry() *Registry {
	return domain.NewRegistry()
}

// NewSpace creates a cartesian space over the given axes. Axis 0 varies
// fastest. An axis with no values makes the space empty and the bound test
// never runs.
func NewSpace(axes ...Axis) *Space {
	return domain.NewSpace(axes...)
}

// NewTest creates a plain test.
func NewTest(suite, name string, body func() error) *Test {
	return &domain.Descriptor{
		Suite: suite,
		Name:  name,
		Kind:  domain.KindPlain,
		Body:  body,
	}
}

// SetUpper is the optional fixture hook run before the test body.
type SetUpper interface {
	SetUp() error
}

// TearDowner is the optional fixture hook run after the test body, also
// when the body failed or panicked.
type TearDowner interface {
	TearDown()
}

// NewFixtureTest creates a test backed by a fixture: a fresh zero value of F
// is built for every execution, SetUp runs before the body if F implements
// SetUpper, and TearDown is deferred if F implements TearDowner. A SetUp
// error is an unexpected failure, not a failed check.
func NewFixtureTest[F any](suite, name string, body func(fixture *F) error) *Test {
	return &domain.Descriptor{
		Suite: suite,
		Name:  name,
		Kind:  domain.KindFixture,
		Body: func() error {
			var fixture F

			if up, ok := any(&fixture).(SetUpper); ok {
				if err := up.SetUp(); err != nil {
					return fmt.Errorf("fixture set up: %w", err)
				}
			}

			if down, ok := any(&fixture).(TearDowner); ok {
				defer down.TearDown()
			}

			return body(&fixture)
		},
	}
}

// NewCartesianTest creates a test executed once per combination of space.
// The body receives one selected value per axis and the iteration ordinal,
// starting at 0.
func NewCartesianTest(suite, name string, space *Space, body func(values []any, iteration int) error) *Test {
	return &domain.Descriptor{
		Suite:         suite,
		Name:          name,
		Kind:          domain.KindCartesian,
		CartesianBody: body,
		Space:         space,
	}
}

// Register declares a plain test in the default registry. Call it from an
// init function (or otherwise before cmd.Execute).
func Register(suite, name string, body func() error) {
	defaultRegistry.Register(NewTest(suite, name, body))
}

// RegisterFixture declares a fixture-backed test in the default registry.
func RegisterFixture[F any](suite, name string, body func(fixture *F) error) {
	defaultRegistry.Register(NewFixtureTest(suite, name, body))
}

// RegisterCartesian declares a cartesian test in the default registry.
func RegisterCartesian(suite, name string, space *Space, body func(values []any, iteration int) error) {
	defaultRegistry.Register(NewCartesianTest(suite, name, space, body))
}

// Fail builds an assertion failure carrying message. The message is
// reported as is.
func Fail(message string) error {
	return model.NewFailure(message)
}

// Failf builds an assertion failure from a format string and arguments.
func Failf(format string, args ...any) error {
	return model.NewFailuref(format, args...)
}

// True returns nil when value holds, otherwise an assertion failure naming
// the checked expression.
func True(value bool, expr string) error {
	if value {
		return nil
	}

	return model.NewFailure("Expected: " + expr)
}

// ParseFilter builds a Filter from a single configuration string: patterns
// delimited by ':', patterns after the first '-' excluding instead of
// including, '*' as the wildcard.
func ParseFilter(s string) Filter {
	return domain.ParseFilter(s)
}

// Match reports whether candidate matches a single wildcard pattern in
// full.
func Match(pattern, candidate string) bool {
	return domain.Match(pattern, candidate)
}

// Run executes one sequential pass over reg with the given filter string,
// reporting every step to sink, and returns the final tally.
func Run(reg *Registry, filter string, sink Sink) Report {
	return domain.NewRunner(reg, domain.ParseFilter(filter), sink).Run()
}
