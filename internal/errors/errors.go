package errors

import (
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}

// ValidationError covers malformed input: empty fields, too many or
// duplicate tags, over-deep comment nesting.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

func (e *ValidationError) Status() int { return http.StatusBadRequest }

// PermissionError means the caller's role is not allowed to perform the
// operation, e.g. posting into a restricted category.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("Permission denied: %s", e.Message)
}

func (e *PermissionError) Status() int { return http.StatusForbidden }

// NotFoundError means a referenced post/comment/category id does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Status() int { return http.StatusNotFound }

// StatusCode maps an error to the HTTP status the handler should write.
func StatusCode(err error) int {
	type statuser interface{ Status() int }
	if e, ok := err.(statuser); ok {
		return e.Status()
	}
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
