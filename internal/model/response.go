package model

// ErrorResponse is the uniform error body. Detail carries the underlying
// error text on 500s and is omitted otherwise.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// NewErrorResponse creates an error response body.
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Message: message, Detail: detail}
}

// MessageResponse is the plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the role-specific redirect hint alongside the
// acknowledgement; the token itself travels in the cookie.
type LoginResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
