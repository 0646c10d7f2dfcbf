package store

import "errors"

var (
	// ErrNotFound marks an unresolvable id. Callers should not retry.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a transient fetch failure. Callers may retry.
	ErrUnavailable = errors.New("service temporarily unavailable")

	// ErrAlreadyEnrolled is returned when enrolling twice in the same course
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
)
