package domain

import "fmt"

// ErrorKind classifies a failure so the dispatch boundary can map it onto
// the protocol's error envelope exactly once.
type ErrorKind int

const (
	// KindValidation means the caller-supplied arguments violate the tool's
	// declared schema or a per-action required-field rule.
	KindValidation ErrorKind = iota
	// KindNotImplemented means the action is declared in the catalog but has
	// no server-side implementation.
	KindNotImplemented
	// KindRemote means the GitHub API call failed (network, auth, non-2xx).
	KindRemote
)

// Error is a tagged error carried as an explicit value from the point of
// failure to the dispatch boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError creates a validation failure
func ValidationError(format string, v ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, v...)}
}

// NotImplementedError creates a failure for a declared but unbuilt action
func NotImplementedError(tool, action string) *Error {
	return &Error{Kind: KindNotImplemented, Message: fmt.Sprintf("action %q of tool %q is not implemented", action, tool)}
}

// RemoteError wraps a GitHub client failure, preserving its message
func RemoteError(err error) *Error {
	return &Error{Kind: KindRemote, Message: "github api call failed", Err: err}
}

// KindOf returns the kind of a domain error, or KindRemote for any other
// error reaching the dispatch boundary.
func KindOf(err error) ErrorKind {
	if de, ok := err.(*Error); ok {
		return de.Kind
	}
	return KindRemote
}
