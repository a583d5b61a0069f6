package dto

// CourseResponse is a single entry in the course catalog listing.
type CourseResponse struct {
	ID             int64   `json:"id" example:"101"`
	Title          string  `json:"title" example:"Introduction to SQL and Relational Databases"`
	Description    *string `json:"description"`
	InstructorName string  `json:"instructor_name" example:"Dr. Aris Patel"`
}

// LessonResponse is a lesson entry within a course detail.
type LessonResponse struct {
	ID      int64   `json:"id" example:"1"`
	Title   string  `json:"title" example:"What is a Database?"`
	Content *string `json:"content"`
}

// CourseDetailResponse is the full course view: catalog fields plus the
// ordered lessons and the enrollment flag for the requesting user.
type CourseDetailResponse struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description"`
	InstructorName string           `json:"instructor_name"`
	Lessons        []LessonResponse `json:"lessons"`
	IsEnrolled     bool             `json:"is_enrolled"`
}
