package pod

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies faults reported by the pod or raised locally.
type ErrorCode string

const (
	// ErrorCodeNotFound indicates the referenced user, stream, or presence does not exist.
	ErrorCodeNotFound ErrorCode = "not_found"
	// ErrorCodeInvalidArgument indicates a malformed or disallowed request.
	ErrorCodeInvalidArgument ErrorCode = "invalid_argument"
	// ErrorCodeUnauthorized indicates a missing or expired session.
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	// ErrorCodeForbidden indicates the session lacks the entitlement for the call.
	ErrorCodeForbidden ErrorCode = "forbidden"
	// ErrorCodeUnavailable indicates a pod-side failure (5xx).
	ErrorCodeUnavailable ErrorCode = "unavailable"
	// ErrorCodeUnknown indicates an unmapped error.
	ErrorCodeUnknown ErrorCode = "unknown"
)

// Error is a typed package error for pod operations.
//
// Status is the HTTP status when the error came from the REST API, zero otherwise.
type Error struct {
	Code    ErrorCode
	Message string
	Status  int
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "pod: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("pod: %s", e.Code)
	}
	return fmt.Sprintf("pod: %s: %s", e.Code, e.Message)
}

// InvalidArgument builds an ErrorCodeInvalidArgument error.
func InvalidArgument(format string, args ...any) error {
	return &Error{Code: ErrorCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds an ErrorCodeNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Code: ErrorCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not a *Error.
func CodeOf(err error) ErrorCode {
	var perr *Error
	if errors.As(err, &perr) && perr != nil {
		return perr.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found fault.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrorCodeNotFound
}

// IsInvalidArgument reports whether err is an invalid-argument fault.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrorCodeInvalidArgument
}

func errorCodeFromStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest:
		return ErrorCodeInvalidArgument
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrorCodeForbidden
	case status == http.StatusNotFound:
		return ErrorCodeNotFound
	case status >= 500:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeUnknown
	}
}
