package apperrors

import "errors"

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Enrollment errors
var (
	// ErrEnrollmentExists is returned when the enrollments primary key
	// rejects an insert, i.e. the (user, course) pair is already enrolled.
	ErrEnrollmentExists = errors.New("enrollment already exists")
)
