package domain

import "fmt"

// ErrorKind enumerates the closed failure taxonomy of the application.
// Every failure that crosses a package boundary is one of these five.
type ErrorKind int

const (
	// ErrorKindNetwork is a transport-layer failure (no connectivity, DNS, reset).
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindUserNotFound means the remote confirmed the account does not exist.
	ErrorKindUserNotFound
	// ErrorKindServer is a remote 5xx response.
	ErrorKindServer
	// ErrorKindDecoding means the payload could not be mapped to a domain value.
	ErrorKindDecoding
	// ErrorKindUnexpected covers validation failures and anything uncategorized.
	ErrorKindUnexpected
)

// AppError is the single error type surfaced by the gateway and use cases.
// The message is data attached to the value so every consumer renders
// identical wording for identical failures.
type AppError struct {
	Kind       ErrorKind
	StatusCode int    // set for ErrorKindServer only
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is makes errors.Is work against the kind-level sentinels below.
// StatusCode and Message are intentionally ignored here; use Equal for
// full value comparison.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Equal reports full value equality. The server status code and the
// unexpected message participate; the other kinds compare by kind alone.
func (e *AppError) Equal(other *AppError) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case ErrorKindServer:
		return e.StatusCode == other.StatusCode
	case ErrorKindUnexpected:
		return e.Message == other.Message
	default:
		return true
	}
}

// ErrNetwork reports a transport failure.
func ErrNetwork() *AppError {
	return &AppError{Kind: ErrorKindNetwork, Message: "Unable to reach GitHub. Check your network connection."}
}

// ErrUserNotFound reports an account the remote does not know.
func ErrUserNotFound() *AppError {
	return &AppError{Kind: ErrorKindUserNotFound, Message: "User not found."}
}

// ErrServer reports a remote 5xx with its status code.
func ErrServer(code int) *AppError {
	return &AppError{Kind: ErrorKindServer, StatusCode: code, Message: fmt.Sprintf("GitHub returned a server error (HTTP %d).", code)}
}

// ErrDecoding reports a payload that could not be mapped to the domain model.
func ErrDecoding() *AppError {
	return &AppError{Kind: ErrorKindDecoding, Message: "Received an unexpected response from GitHub."}
}

// ErrUnexpected wraps validation failures and uncategorized errors.
func ErrUnexpected(message string) *AppError {
	return &AppError{Kind: ErrorKindUnexpected, Message: message}
}
