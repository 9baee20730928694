package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Error represents a failed call to the backend API. Error() is shown to
// visitors as-is and never includes the cause, which may name internal
// hosts; Detail() carries it for logs.
type Error struct {
	Op         string // e.g. "list jobs"
	URL        string
	StatusCode int // 0 when the request never completed
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Detail is the full message including the cause, for logging.
func (e *Error) Detail() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Error(), e.URL, e.Cause)
	}
	return e.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsStatus reports whether err is an API error that completed with a
// non-success HTTP status, as opposed to a transport failure.
func IsStatus(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode != 0
}

func statusError(op, url, message string, code int) *Error {
	return &Error{Op: op, URL: url, StatusCode: code, Message: message}
}

func transportError(op, url, message string, cause error) *Error {
	return &Error{Op: op, URL: url, Message: message, Cause: cause}
}

// logged writes e's detail to the log and returns it, for failures that
// have no request log line of their own.
func logged(e *Error) *Error {
	log.Printf("[api] %s", e.Detail())
	return e
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
