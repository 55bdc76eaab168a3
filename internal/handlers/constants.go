package handlers

const (
	RequestIDHeader = "X-Request-ID"

	ErrInvalidJSON         = "Invalid JSON body"
	ErrUnauthorized        = "Unauthorized"
	ErrTooManyRequests     = "Too many requests"
	ErrDictionaryNotFound  = "Dictionary not found"
	ErrDictionaryConflict  = "Dictionary already exists"
	ErrInternalServerError = "Internal server error"

	maxBodyBytes = 1 << 20
)
