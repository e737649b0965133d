package errors

import "fmt"

// ErrorCode represents a Grab error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrParseFailed     ErrorCode = "PARSE_FAILED"     // 422
	ErrReadFailed      ErrorCode = "READ_FAILED"      // 500
	ErrClipboardFailed ErrorCode = "CLIPBOARD_FAILED" // 502
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// GrabError represents a structured error with code, status, and details.
type GrabError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *GrabError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *GrabError {
	return &GrabError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a capture or sidecar that does not exist.
func NewNotFound(name string) *GrabError {
	return &GrabError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("capture not found: %s", name),
		Details: map[string]any{"name": name},
	}
}

// NewParseFailed creates a 422 error for a JSON document that could not be
// parsed. Used only for explicitly-requested reads (settings, a named
// sidecar); the registry scan downgrades sidecar parse failures instead.
func NewParseFailed(subject string, err error) *GrabError {
	return &GrabError{
		Code:    ErrParseFailed,
		Status:  422,
		Message: fmt.Sprintf("failed to parse %s: %v", subject, err),
		Details: map[string]any{"subject": subject},
	}
}

// NewReadFailed creates a 500 error for a filesystem read that failed on an
// existing path.
func NewReadFailed(subject string, err error) *GrabError {
	return &GrabError{
		Code:    ErrReadFailed,
		Status:  500,
		Message: fmt.Sprintf("failed to read %s: %v", subject, err),
		Details: map[string]any{"subject": subject},
	}
}

// NewClipboardFailed creates a 502 error for a failed system clipboard
// invocation. The details carry the captured diagnostic output of the
// subprocess.
func NewClipboardFailed(output string, err error) *GrabError {
	return &GrabError{
		Code:    ErrClipboardFailed,
		Status:  502,
		Message: fmt.Sprintf("clipboard copy failed: %v", err),
		Details: map[string]any{"output": output},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *GrabError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &GrabError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a GrabError with the given code.
func Is(err error, code ErrorCode) bool {
	if gErr, ok := err.(*GrabError); ok {
		return gErr.Code == code
	}
	return false
}
