package dto

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error string `json:"error" example:"Student not found"`
}

// MessageResponse is the minimal success body.
type MessageResponse struct {
	Message string `json:"message" example:"Certificate deleted successfully"`
}
