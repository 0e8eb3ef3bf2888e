package types

// MessageResponse is a simple informational response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse documents the error body produced by the error-handler
// middleware.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code"`
}
