package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"user not found", apperrors.ErrUserNotFound, 404},
		{"job not found", apperrors.ErrJobNotFound, 404},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"validation failed", apperrors.ErrValidationFailed, 400},
		{"conflict", apperrors.ErrConflict, 400},
		{"invalid state", apperrors.ErrInvalidState, 400},
		{"mentorship active", apperrors.ErrMentorshipActive, 400},
		{"unknown", errors.New("pool exhausted"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(t, tt.err)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandleAPIErrorSurfacesWrappedMessage(t *testing.T) {
	w := respond(t, apperrors.NewValidationError("Invalid job type"))
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"message":"Invalid job type"}`, w.Body.String())
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := respond(t, errors.New("dial tcp: connection refused"))
	assert.Equal(t, 500, w.Code)
	assert.JSONEq(t, `{"message":"Something went wrong"}`, w.Body.String())
}
