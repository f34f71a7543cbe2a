package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failed", apperrors.NewValidationError("name cannot be empty"), http.StatusBadRequest},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"permission denied", apperrors.NewForbiddenError("only the project owner can do this"), http.StatusForbidden},
		{"not a participant", apperrors.ErrNotParticipant, http.StatusForbidden},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"project not found", apperrors.ErrProjectNotFound, http.StatusNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound},
		{"conversation not found", apperrors.ErrConversationNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading profile: %w", apperrors.ErrUserNotFound), http.StatusNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"already requested", apperrors.ErrAlreadyRequested, http.StatusConflict},
		{"position inactive", apperrors.ErrPositionInactive, http.StatusConflict},
		{"not accepted", apperrors.ErrNotAccepted, http.StatusConflict},
		{"conflict with message", apperrors.NewConflictError("project is not recruiting"), http.StatusConflict},
		{"unsupported file type", apperrors.ErrUnsupportedFileType, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	HandleAPIError(c, apperrors.NewConflictError("project is not recruiting"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "project is not recruiting")
}

func TestHandleAPIErrorInternalHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
