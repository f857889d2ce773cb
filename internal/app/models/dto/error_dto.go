package dto

// ErrorResponse is the uniform error body: a JSON object carrying a
// user-facing message string. Internal detail stays in the server log.
type ErrorResponse struct {
	Message string `json:"message" example:"Resource not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}
