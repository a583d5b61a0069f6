package dto

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error string `json:"error" example:"Course not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
