package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: New(KindValidation, "Please select a role"), want: http.StatusBadRequest},
		{name: "unauthorized", err: New(KindUnauthorized, "no session"), want: http.StatusUnauthorized},
		{name: "not found", err: New(KindNotFound, "session"), want: http.StatusNotFound},
		{name: "permission denial", err: New(KindPermissionDenial, "camera"), want: http.StatusForbidden},
		{name: "invalid state", err: New(KindInvalidState, "already recording"), want: http.StatusConflict},
		{name: "upload failure", err: Wrap(KindUploadFailure, "upload", errors.New("boom")), want: http.StatusBadGateway},
		{name: "upstream", err: Wrap(KindUpstream, "gemini", errors.New("boom")), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped app error", err: fmt.Errorf("outer: %w", New(KindNotFound, "x")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestError_UnwrapAndRedirect(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindFetchFailure, "Failed to load interview session", cause).WithRedirect("/setup")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "/setup", err.Redirect)
	assert.Equal(t, KindFetchFailure, KindOf(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, Kind(""), KindOf(cause))
}
