package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		message  string
		redirect string
	}{
		{"validation", apperr.New(apperr.KindValidation, "Please select a role"), http.StatusBadRequest, "Please select a role", ""},
		{"not found", apperr.New(apperr.KindNotFound, "Interview session not found").WithRedirect("/setup"), http.StatusNotFound, "Interview session not found", "/setup"},
		{"upload", apperr.Wrap(apperr.KindUploadFailure, "Failed to upload recording", errors.New("AccessDenied")), http.StatusBadGateway, "Failed to upload recording", ""},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "boom", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Error)
			assert.Equal(t, tc.redirect, body.Redirect)
		})
	}
}

func TestLandingHandler(t *testing.T) {
	ctrl := NewController(service.NewLandingService(), nil)
	r := gin.New()
	r.GET("/", ctrl.LandingHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.LandingDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Features, 6)
	assert.False(t, body.SignedIn)
	assert.Equal(t, "/auth", body.Next)
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	ctrl := NewController(service.NewLandingService(), nil)
	r := gin.New()
	r.GET("/health", ctrl.HealthHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
