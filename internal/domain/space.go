package domain

import (
	"strconv"
	"strings"
)

// Axis is one named dimension of a parameterized test's input space.
type Axis struct {
	Name   string
	Values []any
}

// Space enumerates the cartesian product of its axes. Axis 0 varies fastest:
// advancing increments its index and carries overflow into the following
// axes in declaration order. A Space also tracks the ordinal of the current
// iteration and can render the current indices as a candidate-id suffix.
//
// A Space is owned by a single descriptor and is not safe for concurrent use.
type Space struct {
	axes      []Axis
	state     []int
	iteration int
}

// NewSpace creates a Space over the given axes. An axis with no values makes
// the whole space empty: a test bound to it never runs.
func NewSpace(axes ...Axis) *Space {
	return &Space{
		axes:  axes,
		state: make([]int, len(axes)),
	}
}

// Axes returns the declared axes.
func (s *Space) Axes() []Axis {
	return s.axes
}

// Size returns the total number of combinations, zero if any axis is empty
// or no axes were declared.
func (s *Space) Size() int {
	if len(s.axes) == 0 {
		return 0
	}

	size := 1
	for _, axis := range s.axes {
		size *= len(axis.Values)
	}

	return size
}

// Current returns the currently selected value of each axis, in axis order.
func (s *Space) Current() []any {
	values := make([]any, len(s.axes))
	for i, axis := range s.axes {
		values[i] = axis.Values[s.state[i]]
	}

	return values
}

// Advance moves to the next combination and returns true while one exists.
// Once every axis has overflowed the state wraps back to all-zero and
// Advance returns false; the caller must Reset before any further use.
func (s *Space) Advance() bool {
	s.iteration++

	for i := range s.state {
		s.state[i]++
		if s.state[i] < len(s.axes[i].Values) {
			return true
		}

		s.state[i] = 0
	}

	return false
}

// Reset zeroes every axis index and the iteration counter.
func (s *Space) Reset() {
	for i := range s.state {
		s.state[i] = 0
	}

	s.iteration = 0
}

// Iteration returns the ordinal of the current combination: the number of
// Advance calls since the last Reset, starting at 0.
func (s *Space) Iteration() int {
	return s.iteration
}

// Suffix renders the current indices as "_<axis>[<index>]" per axis, in
// declaration order, for inclusion in a candidate id.
func (s *Space) Suffix() string {
	var b strings.Builder
	s.appendSuffix(&b)

	return b.String()
}

func (s *Space) appendSuffix(b *strings.Builder) {
	for i, axis := range s.axes {
		b.WriteByte('_')
		b.WriteString(axis.Name)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.state[i]))
		b.WriteByte(']')
	}
}
