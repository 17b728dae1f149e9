// Package apperr classifies failures by the site that produced them so handlers can map
// each kind to a status code and a client action without a catch-all.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies where a failure happened.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindUnauthorized     Kind = "unauthorized"
	KindNotFound         Kind = "not-found"
	KindFetchFailure     Kind = "fetch-failure"
	KindPermissionDenial Kind = "permission-denial"
	KindInvalidState     Kind = "invalid-state"
	KindUploadFailure    Kind = "upload-failure"
	KindPersistFailure   Kind = "persist-failure"
	KindUpstream         Kind = "upstream-analysis"
)

type Error struct {
	Kind     Kind
	Message  string
	Redirect string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithRedirect sets the route the client should navigate to after showing the error.
func (e *Error) WithRedirect(path string) *Error {
	e.Redirect = path
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// HTTPStatus maps a failure to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindPermissionDenial:
		return http.StatusForbidden
	case KindInvalidState:
		return http.StatusConflict
	case KindUpstream:
		return http.StatusInternalServerError
	case KindUploadFailure, KindPersistFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
