package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumconnect/backend/internal/app/models/dto"
	"github.com/alumconnect/backend/internal/pkg/apperrors"
	"github.com/alumconnect/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Error messages come
// from the wrapped CustomError where present, so services control the wording.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed) || errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message("Validation failed"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied), errors.Is(err, apperrors.ErrNotParticipant):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, message("Permission denied"))

	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrProjectNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Project not found")
	case errors.Is(err, apperrors.ErrPositionNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Position not found")
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found")
	case errors.Is(err, apperrors.ErrRequestNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Mentorship request not found")
	case errors.Is(err, apperrors.ErrConversationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Conversation not found")
	case errors.Is(err, apperrors.ErrBlogPostNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Blog post not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message("Resource not found"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already applied to this position")
	case errors.Is(err, apperrors.ErrAlreadyRequested):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Mentorship request already sent")
	case errors.Is(err, apperrors.ErrPositionInactive):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Position is no longer accepting applications")
	case errors.Is(err, apperrors.ErrNotAccepted):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Application has not been accepted")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message("Conflict"))

	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Unsupported file type")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
