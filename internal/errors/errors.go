// Package errors provides structured error types shared by the hookrun
// runtime. The supervisor is the only component that maps these to
// process exit codes; inner layers return them and keep going.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors recognized by the supervisor.
var (
	// ErrIssuesFound reports that the hook ran to completion and found
	// problems. Not a fault: the invocation itself was well-formed.
	ErrIssuesFound = errors.New("issues found")

	// ErrPipeClosed reports that the downstream consumer closed the
	// output stream. Treated as benign: the reader got everything it
	// wanted.
	ErrPipeClosed = errors.New("output pipe closed")
)

// UsageError reports a malformed invocation: bad flags, an unknown hook,
// or an invalid manifest. Always raised before any file is touched.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Usagef creates a UsageError with formatting.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// IsUsage reports whether err is a usage error.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// ExitRequest asks the supervisor to terminate with a specific code.
// The supervisor clamps codes that collide with host-reserved values
// under the embedded profile.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit requested with code %d", e.Code)
}

// Exit creates an ExitRequest for the given code.
func Exit(code int) *ExitRequest {
	return &ExitRequest{Code: code}
}

// UnitKind classifies a per-unit failure. The set is closed: collaborator
// checks may fail on one file only in these ways. UnitOther covers read
// failures outside the taxonomy and reports the underlying error text.
type UnitKind int

const (
	UnitOther UnitKind = iota
	UnitNotFound
	UnitPermission
	UnitDecode
)

// UnitError reports that a single file could not be processed. It is
// recorded as one diagnostic line and processing continues with the
// remaining files.
type UnitError struct {
	Path string
	Kind UnitKind
	Err  error
}

func (e *UnitError) Error() string {
	switch e.Kind {
	case UnitNotFound:
		return fmt.Sprintf("%s: file not found", e.Path)
	case UnitPermission:
		return fmt.Sprintf("%s: permission denied", e.Path)
	case UnitDecode:
		return fmt.Sprintf("%s: not valid UTF-8", e.Path)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// Message returns the description half of the diagnostic line, without
// the path prefix.
func (e *UnitError) Message() string {
	switch e.Kind {
	case UnitNotFound:
		return "file not found"
	case UnitPermission:
		return "permission denied"
	case UnitDecode:
		return "not valid UTF-8"
	default:
		return e.Err.Error()
	}
}
