package exam_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/exam"
)

// recordingSink captures the run's event stream for assertions.
type recordingSink struct {
	total    int
	events   []string
	outcomes []exam.Outcome
	report   exam.Report
}

func (s *recordingSink) RunStarted(total int) {
	s.total = total
	s.events = append(s.events, "run-started")
}

func (s *recordingSink) SuiteStarted(suite string) {
	s.events = append(s.events, "suite:"+suite)
}

func (s *recordingSink) TestStarted(id string) {
	s.events = append(s.events, "started:"+id)
}

func (s *recordingSink) TestFinished(outcome exam.Outcome) {
	s.events = append(s.events, "finished:"+outcome.ID)
	s.outcomes = append(s.outcomes, outcome)
}

func (s *recordingSink) Summary(report exam.Report) {
	s.report = report
	s.events = append(s.events, "summary")
}

func TestRun_EndToEnd(t *testing.T) {
	reg := exam.NewRegistry()
	reg.Register(exam.NewTest("Suite1", "Fails", func() error {
		return exam.Fail("Expected: x == y")
	}))
	reg.Register(exam.NewTest("Suite1", "Passes", func() error { return nil }))

	sink := &recordingSink{}
	report := exam.Run(reg, "", sink)

	assert.Equal(t, 2, report.Run)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 0, report.Ignored)
	assert.Equal(t, 1, report.ExitCode())
	assert.False(t, report.Ok())

	require.Len(t, sink.outcomes, 2)
	assert.False(t, sink.outcomes[0].Passed)
	assert.Equal(t, "Expected: x == y", sink.outcomes[0].Message)
	assert.True(t, sink.outcomes[1].Passed)

	assert.Equal(t, report, sink.report)
}

func TestRun_FilterSelectsAndExcludes(t *testing.T) {
	invoked := map[string]bool{}

	track := func(suite, name string) *exam.Test {
		return exam.NewTest(suite, name, func() error {
			invoked[suite+"_"+name] = true
			return nil
		})
	}

	reg := exam.NewRegistry()
	reg.Register(track("FooTest", "That"))
	reg.Register(track("FooTest", "NotThis"))
	reg.Register(track("FooTest", "This"))

	report := exam.Run(reg, "*This*-*Not*", &recordingSink{})

	assert.Equal(t, 1, report.Run)
	assert.Equal(t, 2, report.Ignored)
	assert.Equal(t, map[string]bool{"FooTest_This": true}, invoked)
}

func TestRun_CartesianCombinations(t *testing.T) {
	space := exam.NewSpace(
		exam.Axis{Name: "Size", Values: []any{1}},
		exam.Axis{Name: "Color", Values: []any{"red", "blue"}},
	)

	var seen []string

	reg := exam.NewRegistry()
	reg.Register(exam.NewCartesianTest("Paint", "Mixes", space,
		func(values []any, iteration int) error {
			seen = append(seen, fmt.Sprintf("%d:%v/%v", iteration, values[0], values[1]))
			return nil
		}))

	sink := &recordingSink{}
	report := exam.Run(reg, "", sink)

	assert.Equal(t, 2, sink.total)
	assert.Equal(t, 2, report.Run)
	assert.Equal(t, []string{"0:1/red", "1:1/blue"}, seen)

	require.Len(t, sink.outcomes, 2)
	assert.Equal(t, "Paint_Mixes_Size[0]_Color[0]", sink.outcomes[0].ID)
	assert.Equal(t, "Paint_Mixes_Size[0]_Color[1]", sink.outcomes[1].ID)
}

type lifecycleFixture struct {
	log *[]string
}

// hookLog is written through the fixture's pointer receiver; the zero value
// has no log yet, so SetUp wires it to the package slot the test resets.
var hookLog []string

func (f *lifecycleFixture) SetUp() error {
	f.log = &hookLog
	*f.log = append(*f.log, "setup")

	return nil
}

func (f *lifecycleFixture) TearDown() {
	*f.log = append(*f.log, "teardown")
}

func TestFixtureTest_HookOrder(t *testing.T) {
	hookLog = nil

	reg := exam.NewRegistry()
	reg.Register(exam.NewFixtureTest("Io", "RoundTrips", func(f *lifecycleFixture) error {
		*f.log = append(*f.log, "body")
		return nil
	}))

	report := exam.Run(reg, "", &recordingSink{})

	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, []string{"setup", "body", "teardown"}, hookLog)
}

func TestFixtureTest_TearDownRunsAfterFailure(t *testing.T) {
	hookLog = nil

	reg := exam.NewRegistry()
	reg.Register(exam.NewFixtureTest("Io", "Fails", func(f *lifecycleFixture) error {
		*f.log = append(*f.log, "body")
		return exam.Fail("Expected: written == read")
	}))

	sink := &recordingSink{}
	report := exam.Run(reg, "", sink)

	assert.Equal(t, 0, report.Passed)
	assert.Equal(t, []string{"setup", "body", "teardown"}, hookLog)
	assert.Equal(t, "Expected: written == read", sink.outcomes[0].Message)
}

type brokenFixture struct{}

func (brokenFixture) SetUp() error { return errors.New("no scratch dir") }

func TestFixtureTest_SetUpErrorIsUnexpected(t *testing.T) {
	bodyRan := false

	reg := exam.NewRegistry()
	reg.Register(exam.NewFixtureTest("Io", "NeverStarts", func(*brokenFixture) error {
		bodyRan = true
		return nil
	}))

	sink := &recordingSink{}
	report := exam.Run(reg, "", sink)

	assert.False(t, bodyRan, "body must not run when SetUp fails")
	assert.Equal(t, 1, report.Run)
	assert.Equal(t, 0, report.Passed)
	assert.Equal(t, "Unexpected error: fixture set up: no scratch dir", sink.outcomes[0].Message)
}

func TestCheckHelpers(t *testing.T) {
	assert.NoError(t, exam.True(true, "1 == 1"))

	err := exam.True(false, "a == b")
	require.Error(t, err)
	assert.Equal(t, "Expected: a == b", err.Error())

	assert.Equal(t, "boom", exam.Fail("boom").Error())
	assert.Equal(t, "want 3, got 4", exam.Failf("want %d, got %d", 3, 4).Error())
}

func TestMatchAndParseFilter(t *testing.T) {
	assert.True(t, exam.Match("Io*", "Io_RoundTrips"))
	assert.False(t, exam.Match("ooTest", "FooTest"))

	filter := exam.ParseFilter("Io*-*Slow*")
	assert.True(t, filter.Allows("Io_Fast"))
	assert.False(t, filter.Allows("Io_SlowDisk"))
	assert.False(t, filter.Allows("Net_Fast"))
}

func TestDefaultRegistryRegistration(t *testing.T) {
	before := exam.Default().Len()

	exam.Register("FacadeSuite", "Registers", func() error { return nil })

	assert.Equal(t, before+1, exam.Default().Len())
}
