package services

import (
	"errors"
	"net/http"
)

// Stable machine-readable error codes surfaced to API callers.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeForbidden      = "FORBIDDEN"
	CodeInvalidState   = "INVALID_STATE"
	CodeConflict       = "CONFLICT"
)

// Error pairs a stable code with a human-readable message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) *Error       { return &Error{Code: CodeNotFound, Message: msg} }
func InvalidRequest(msg string) *Error { return &Error{Code: CodeInvalidRequest, Message: msg} }
func Forbidden(msg string) *Error      { return &Error{Code: CodeForbidden, Message: msg} }
func InvalidState(msg string) *Error   { return &Error{Code: CodeInvalidState, Message: msg} }
func Conflict(msg string) *Error       { return &Error{Code: CodeConflict, Message: msg} }

// AsError unwraps err into an *Error when it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HTTPStatus maps an error to the response status for its code.
func HTTPStatus(err error) int {
	e, ok := AsError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidState:
		return http.StatusUnprocessableEntity
	case CodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
