package api

import "errors"

// Sentinel errors shared by all feature packages. Repositories wrap these so
// handlers can map them to HTTP statuses with errors.Is.
var (
	ErrNotFound    = errors.New("requested item not found")
	ErrConflict    = errors.New("item already exists or conflict")
	ErrBadInput    = errors.New("invalid input")
	ErrUnavailable = errors.New("upstream service unavailable")
)

// Response represents a generic API response for success or error messages.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Operation successful"`
	Error   string `json:"error,omitempty" example:"Resource not found"`
}
