// Package apperr defines the closed outcome taxonomy shared by every
// entity operation. Operations return plain errors; handlers use KindOf
// and Status to shape the HTTP response without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an operation outcome. The set is closed: handlers switch
// over these values exhaustively.
type Kind string

const (
	// KindInvalidPayload covers missing required fields, dangling
	// references and malformed calculator inputs.
	KindInvalidPayload Kind = "invalid_payload"
	// KindNotFound covers id, owner and filter lookups with no result.
	KindNotFound Kind = "not_found"
	// KindInternal covers store failures and other unanticipated errors.
	KindInternal Kind = "internal"
	// KindPaymentFailed and KindPaymentCompleted tag the outcome of a
	// payment status transition landing in the corresponding state.
	// They describe successful transitions, not errors.
	KindPaymentFailed    Kind = "payment_failed"
	KindPaymentCompleted Kind = "payment_completed"
)

// Error is a tagged operation error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// InvalidPayload returns a tagged invalid-payload error.
func InvalidPayload(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidPayload, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a tagged not-found error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected error into the taxonomy.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error()}
}

// KindOf extracts the outcome kind from an error. Untagged errors are
// reported as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindInvalidPayload:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error envelope returned by handlers.
type Body struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the tagged kind and message of a failed operation.
type ErrorBody struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Envelope builds the JSON error body for an error.
func Envelope(err error) Body {
	var e *Error
	if errors.As(err, &e) {
		return Body{Error: ErrorBody{Kind: e.Kind, Message: e.Message}}
	}
	return Body{Error: ErrorBody{Kind: KindInternal, Message: err.Error()}}
}
