package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/selamsoft/selam-web/internal/api"
)

// ErrFormToken indicates a missing, expired or foreign form token
type ErrFormToken struct {
	Form  string
	Cause error
}

func (e *ErrFormToken) Error() string {
	return fmt.Sprintf("invalid %s form token: %v", e.Form, e.Cause)
}

func (e *ErrFormToken) Unwrap() error {
	return e.Cause
}

// ErrUpload indicates the multipart body could not be read
type ErrUpload struct {
	Cause error
}

func (e *ErrUpload) Error() string {
	return fmt.Sprintf("failed to read upload: %v", e.Cause)
}

func (e *ErrUpload) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		tooLarge *http.MaxBytesError
		upload   *ErrUpload
		token    *ErrFormToken
		apiErr   *api.Error
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &upload):
		return http.StatusBadRequest
	case errors.As(err, &token):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
