package model

// Report tallies one full pass over a registry.
type Report struct {
	Run     int // test instances executed
	Passed  int // executed instances that passed
	Ignored int // descriptors skipped by the filter (or with an empty space)
}

// Ok reports whether every executed test passed.
func (r Report) Ok() bool {
	return r.Passed == r.Run
}

// ExitCode returns the number of failed tests, suitable as a process
// exit status (0 means fully green).
func (r Report) ExitCode() int {
	return r.Run - r.Passed
}
