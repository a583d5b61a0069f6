package models

// Lesson represents a lesson within a course, ordered by id.
type Lesson struct {
	ID       int64   `json:"id" db:"id"`
	CourseID int64   `json:"courseId" db:"course_id"`
	Title    string  `json:"title" db:"title"`
	Content  *string `json:"content,omitempty" db:"content"` // Nullable
}
