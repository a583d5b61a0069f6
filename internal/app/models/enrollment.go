package models

import "time"

// Enrollment is the join entity linking a user to a course.
// The (user_id, course_id) pair is the primary key; rows are created only
// through the enroll operation and never removed.
type Enrollment struct {
	UserID     int64     `json:"userId" db:"user_id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	EnrollDate time.Time `json:"enrollDate" db:"enroll_date"`
}
