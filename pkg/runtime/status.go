package runtime

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is a canonical runtime error code.
type Code uint8

const (
	CodeOK Code = iota
	CodeCancelled
	CodeUnknown
	CodeInvalidArgument
	CodeDeadlineExceeded
	CodeNotFound
	CodeAlreadyExists
	CodePermissionDenied
	CodeResourceExhausted
	CodeFailedPrecondition
	CodeAborted
	CodeOutOfRange
	CodeUnimplemented
	CodeInternal
	CodeUnavailable
	CodeDataLoss
	CodeUnauthenticated
)

var codeNames = [...]string{
	CodeOK:                 "OK",
	CodeCancelled:          "CANCELLED",
	CodeUnknown:            "UNKNOWN",
	CodeInvalidArgument:    "INVALID_ARGUMENT",
	CodeDeadlineExceeded:   "DEADLINE_EXCEEDED",
	CodeNotFound:           "NOT_FOUND",
	CodeAlreadyExists:      "ALREADY_EXISTS",
	CodePermissionDenied:   "PERMISSION_DENIED",
	CodeResourceExhausted:  "RESOURCE_EXHAUSTED",
	CodeFailedPrecondition: "FAILED_PRECONDITION",
	CodeAborted:            "ABORTED",
	CodeOutOfRange:         "OUT_OF_RANGE",
	CodeUnimplemented:      "UNIMPLEMENTED",
	CodeInternal:           "INTERNAL",
	CodeUnavailable:        "UNAVAILABLE",
	CodeDataLoss:           "DATA_LOSS",
	CodeUnauthenticated:    "UNAUTHENTICATED",
}

// String implements Stringer.String for Code.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("UNKNOWN_CODE(%d)", uint8(c))
}

// Status pairs a code with a diagnostic message. The zero value is OK.
type Status struct {
	Code    Code
	Message string
}

// OKStatus returns the ok status.
func OKStatus() Status {
	return Status{}
}

// NewStatus builds a status with a formatted message.
func NewStatus(code Code, format string, args ...interface{}) Status {
	return Status{Code: code, Message: fmt.Sprintf(format, args...)}
}

// OK reports whether the status represents success.
func (s Status) OK() bool {
	return s.Code == CodeOK
}

// String renders the status as "OK" or "CODE: message".
func (s Status) String() string {
	if s.OK() {
		return "OK"
	}
	if s.Message == "" {
		return s.Code.String()
	}
	return s.Code.String() + ": " + s.Message
}

// Err returns nil for an ok status and a *SessionError otherwise.
func (s Status) Err() error {
	if s.OK() {
		return nil
	}
	return &SessionError{Status: s}
}

// ErrSessionCreation matches every *SessionError via errors.Is.
var ErrSessionCreation = errors.New("failed to create session")

// SessionError is returned when a runtime fails to construct a session.
type SessionError struct {
	Status Status
}

func (e *SessionError) Error() string {
	return ErrSessionCreation.Error() + ": " + e.Status.String()
}

// Is implements errors.Is for ErrSessionCreation.
func (e *SessionError) Is(target error) bool {
	return target == ErrSessionCreation
}
