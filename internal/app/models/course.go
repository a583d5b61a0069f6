package models

// Course represents a course taught by a single instructor.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Title        string  `json:"title" db:"title"`
	Description  *string `json:"description,omitempty" db:"description"` // Nullable
	InstructorID int64   `json:"instructorId" db:"instructor_id"`

	// InstructorName is populated by queries joining the users table.
	InstructorName string `json:"instructorName,omitempty"`
}
