// Package apperr defines the rejection taxonomy shared by every catalog
// mutation: a request is either structurally invalid, aimed at a missing row,
// colliding on a natural key, breaking referential integrity, or the victim of
// an infrastructure failure. Handlers map kinds to HTTP statuses in one place.
package apperr

import (
	"errors"
	"net/http"
)

type Kind uint8

const (
	// KindStructural - missing or malformed field; the caller must fix the payload.
	KindStructural Kind = iota + 1
	// KindNotFound - the id does not resolve to a row.
	KindNotFound
	// KindConflict - natural-key collision, or a delete blocked by dependents.
	KindConflict
	// KindReferential - a foreign key on a write points to a missing row.
	KindReferential
	// KindInternal - storage or transport failure; detail is logged, never returned.
	KindInternal
)

// Error is a typed rejection carrying the user-visible message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InternalMessage is the only message ever returned for KindInternal.
const InternalMessage = "Erro interno do servidor"

func Structural(msg string) *Error {
	return &Error{Kind: KindStructural, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Referential(msg string) *Error {
	return &Error{Kind: KindReferential, Message: msg}
}

// Internal wraps an infrastructure failure. The original error stays attached
// for server-side logging only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// Normalize passes typed rejections through untouched and wraps anything else
// as internal. Pipeline steps return raw errors for infrastructure failures;
// this keeps the promise that callers only ever see the five kinds.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(err)
}

// KindOf returns the kind of a typed rejection, or KindInternal for any other
// non-nil error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-visible message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return InternalMessage
}

// HTTPStatus maps an error to the transport status code. Referential failures
// on writes are 400 and dependent-blocked deletes are conflicts, matching the
// service's public contract.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindStructural, KindReferential:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
