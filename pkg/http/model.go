package http

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationError represents a single request validation failure.
type ValidationError struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// AckResponse acknowledges a state-changing request.
type AckResponse struct {
	Status   string   `json:"status"`
	Selected []string `json:"selected,omitempty"`
}
