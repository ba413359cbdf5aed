// Package model defines the data structures for test execution results.
package model

import "fmt"

// Failure is the error a test body returns to report a failed check.
// Any other non-nil error (or a panic) is treated as an unexpected failure.
type Failure struct {
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}

// NewFailure creates a Failure with the given message. The message is
// reported as is, with no further formatting.
func NewFailure(message string) *Failure {
	return &Failure{Message: message}
}

// NewFailuref creates a Failure from a format string and arguments.
func NewFailuref(format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}
