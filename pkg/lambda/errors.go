package lambda

import "strings"

// ErrorKind classifies a dispatch failure
type ErrorKind int

const (
	// ErrNotFound means no route matches the request method+path
	ErrNotFound ErrorKind = iota
	// ErrValidationFailed means the request body does not conform to the
	// route's typed body
	ErrValidationFailed
	// ErrHandlerFailed means a handler raised an unexpected failure
	ErrHandlerFailed
)

// DispatchError is the tagged error variant produced by the dispatch cycle.
// Details carry field-level validation messages; they are only surfaced to
// the caller for ErrValidationFailed.
type DispatchError struct {
	Kind    ErrorKind
	Message string
	Details []string
}

func (e *DispatchError) Error() string {
	if len(e.Details) > 0 {
		return e.Message + ": " + strings.Join(e.Details, "; ")
	}
	return e.Message
}

// NewNotFound reports a routing miss
func NewNotFound() *DispatchError {
	return &DispatchError{Kind: ErrNotFound, Message: "not found"}
}

// NewValidationFailed reports a request body that failed validation
func NewValidationFailed(details ...string) *DispatchError {
	return &DispatchError{Kind: ErrValidationFailed, Message: "validation failed", Details: details}
}

// NewHandlerFailed reports an unexpected internal fault. The generic message
// is what callers see; the underlying detail stays in the process log.
func NewHandlerFailed() *DispatchError {
	return &DispatchError{Kind: ErrHandlerFailed, Message: "internal server error"}
}
