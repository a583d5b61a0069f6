package dto

// EnrollRequest is the enroll operation body. Both ids are required and must
// be non-zero; gin's required binding rejects missing and zero values alike.
type EnrollRequest struct {
	UserID   int64 `json:"user_id" binding:"required" example:"4"`
	CourseID int64 `json:"course_id" binding:"required" example:"101"`
}

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message" example:"Enrollment successful!"`
}
