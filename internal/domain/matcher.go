// Package domain implements the test harness core: the wildcard filter
// matcher, the declaration-ordered registry, the cartesian parameter space
// and the sequential runner.
package domain

import "strings"

const (
	// Wildcard substitutes for zero or more arbitrary characters in a
	// filter pattern. It may appear any number of times.
	Wildcard = '*'
	// PatternDelimiter separates patterns in a filter list.
	PatternDelimiter = ':'
	// exclusionMark splits a filter string into include and exclude parts.
	exclusionMark = '-'
)

// Match reports whether candidate matches pattern in full. A non-wildcard
// character matches only itself; Wildcard matches any run of characters,
// including none.
func Match(pattern, candidate string) bool {
	m := matcher{
		pattern:   pattern,
		candidate: candidate,
	}
	return m.match(0, 0)
}

// MatchAny splits a PatternDelimiter-joined pattern list and reports whether
// candidate matches at least one non-empty pattern. An empty list matches
// nothing.
func MatchAny(patterns, candidate string) bool {
	for pattern := range strings.SplitSeq(patterns, string(PatternDelimiter)) {
		if pattern != "" && Match(pattern, candidate) {
			return true
		}
	}

	return false
}

// matcher holds the two strings being matched and a memo of cursor pairs
// already known not to match. The memo keeps pathological inputs (near
// matches around repeated wildcards) polynomial without changing behaviour.
type matcher struct {
	pattern   string
	candidate string
	failed    map[int]struct{}
}

func (m *matcher) match(pi, ci int) bool {
	if pi == len(m.pattern) {
		return ci == len(m.candidate)
	}

	key := pi*(len(m.candidate)+1) + ci
	if _, known := m.failed[key]; known {
		return false
	}

	if m.pattern[pi] == Wildcard {
		// Either the wildcard is done matching here, or it swallows one
		// more candidate character.
		if m.match(pi+1, ci) {
			return true
		}

		if ci < len(m.candidate) && m.match(pi, ci+1) {
			return true
		}
	} else if ci < len(m.candidate) && m.pattern[pi] == m.candidate[ci] {
		if m.match(pi+1, ci+1) {
			return true
		}
	}

	if m.failed == nil {
		m.failed = make(map[int]struct{})
	}

	m.failed[key] = struct{}{}

	return false
}

// Filter pairs include and exclude pattern lists. The zero value allows
// everything.
type Filter struct {
	include []string
	exclude []string
}

// ParseFilter builds a Filter from a single configuration string. Patterns
// are delimited by ':'; patterns before the first '-' are inclusion filters,
// patterns after it exclusion filters. Empty patterns are ignored. An empty
// string (or one starting with '-') keeps the default inclusion filter "*".
// Malformed input degrades to a best-effort split, it is never an error.
func ParseFilter(s string) Filter {
	f := Filter{include: []string{string(Wildcard)}}
	if s == "" {
		return f
	}

	includePart := s

	if i := strings.IndexByte(s, exclusionMark); i >= 0 {
		includePart = s[:i]
		f.exclude = splitPatterns(s[i+1:])
	}

	if includePart != "" {
		f.include = splitPatterns(includePart)
	}

	return f
}

// Include returns the inclusion patterns.
func (f Filter) Include() []string {
	if f.include == nil {
		return []string{string(Wildcard)}
	}

	return f.include
}

// Exclude returns the exclusion patterns.
func (f Filter) Exclude() []string {
	return f.exclude
}

// Allows reports whether the candidate id passes the filter: it must match
// at least one inclusion pattern and no exclusion pattern.
func (f Filter) Allows(id string) bool {
	return anyMatch(f.Include(), id) && !anyMatch(f.exclude, id)
}

func anyMatch(patterns []string, candidate string) bool {
	for _, pattern := range patterns {
		if Match(pattern, candidate) {
			return true
		}
	}

	return false
}

func splitPatterns(s string) []string {
	patterns := []string{}

	for pattern := range strings.SplitSeq(s, string(PatternDelimiter)) {
		if pattern != "" {
			patterns = append(patterns, pattern)
		}
	}

	return patterns
}
