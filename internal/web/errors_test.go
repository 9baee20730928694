package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"oversize body", &ErrUpload{Cause: &http.MaxBytesError{Limit: 10}}, http.StatusRequestEntityTooLarge},
		{"bad multipart", &ErrUpload{Cause: http.ErrNotMultipart}, http.StatusBadRequest},
		{"form token", &ErrFormToken{Form: "contact", Cause: notify.ErrTokenMissing}, http.StatusForbidden},
		{"deadline", fmt.Errorf("list jobs: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"api", &api.Error{Op: "list jobs", StatusCode: 500, Message: "boom"}, http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrFormToken(t *testing.T) {
	err := &ErrFormToken{Form: "application", Cause: notify.ErrWrongForm}
	assert.Contains(t, err.Error(), "invalid application form token")
	assert.ErrorIs(t, err, notify.ErrWrongForm)
}

func TestErrUpload(t *testing.T) {
	err := &ErrUpload{Cause: http.ErrNotMultipart}
	assert.Contains(t, err.Error(), "failed to read upload")
	assert.ErrorIs(t, err, http.ErrNotMultipart)
}
