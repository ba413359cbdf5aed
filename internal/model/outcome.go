package model

import "time"

// Outcome represents the result of one test execution instance.
type Outcome struct {
	ID      string        // fully qualified candidate id, including any combination suffix
	Suite   string        // suite the test was declared under
	Passed  bool          // whether the body returned without failing
	Elapsed time.Duration // wall-clock duration of the body
	Message string        // failure message, empty when passed
}
