package chatclient

import "errors"

// GenericErrorMessage is surfaced when no backend ever supplied a message.
const GenericErrorMessage = "LLM backend error"

// ErrBackendUnreachable matches any *BackendUnreachableError via errors.Is.
var ErrBackendUnreachable = errors.New("llm backend unreachable")

// BackendUnreachableError is returned by Ask after every candidate failed.
type BackendUnreachableError struct {
	// Message is the failure message sent by the last candidate tried, or
	// GenericErrorMessage when that attempt failed in transport.
	Message string
	// Attempts is the number of candidates contacted.
	Attempts int
	// Cause is the last transport-level error, if any.
	Cause error
}

func (e *BackendUnreachableError) Error() string {
	return e.Message
}

func (e *BackendUnreachableError) Is(target error) bool {
	return target == ErrBackendUnreachable
}

func (e *BackendUnreachableError) Unwrap() error {
	return e.Cause
}

// backendError is a failure reported by a reachable backend (success=false).
type backendError struct {
	message string
}

func (e *backendError) Error() string {
	return e.message
}
