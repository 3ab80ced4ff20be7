// FILE: internal/pkg/apperr/apperr.go
// Typed application errors translated into response envelopes at the HTTP boundary
package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindConstraint   Kind = "constraint"
	KindStore        Kind = "store"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
)

const MsgInternal = "internal server error"

// AppError carries a kind, a caller-safe message and optional per-field detail.
type AppError struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to a response status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConstraint:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Validation(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

// InvalidField is a Validation error about a single field.
func InvalidField(field, reason string) *AppError {
	return Validation(fmt.Sprintf("invalid %s", field), map[string]string{field: reason})
}

func Constraint(field, message string) *AppError {
	return &AppError{Kind: KindConstraint, Message: message, Fields: map[string]string{field: "unique"}}
}

// Store wraps a persistence failure. The message shown to callers is always generic.
func Store(err error) *AppError {
	return &AppError{Kind: KindStore, Message: MsgInternal, Err: err}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

// From returns the AppError inside err, treating anything else as a store fault.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Store(err)
}

func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return From(err).Kind
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConstraint(err error) bool {
	return KindOf(err) == KindConstraint
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}
