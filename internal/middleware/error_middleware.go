package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
	"github.com/alumnisphere/backend/internal/pkg/logger"
)

// HandleAPIError converts service errors to HTTP responses. Known sentinels
// map to their status codes; anything else becomes a generic 500 with the
// detail kept server-side.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrProfileNotFound),
		errors.Is(err, apperrors.ErrJobNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrMentorshipNotFound):
		c.JSON(404, dto.NewErrorResponse(messageOf(err, "Resource not found")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(messageOf(err, "Permission denied")))

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(messageOf(err, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrMentorshipActive),
		errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.NewErrorResponse(messageOf(err, "Invalid request")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(500, dto.NewErrorResponse("Something went wrong"))
	}
}

// messageOf prefers the wrapped user-facing message over a fixed fallback
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
