package handler

// ErrorResponse is the shared error payload shape.
type ErrorResponse struct {
	Error string `json:"error"`
}
