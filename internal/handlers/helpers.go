package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "stockdex/internal/errors"
	"stockdex/internal/logger"
	"stockdex/internal/middleware"
	"stockdex/internal/models"
	"stockdex/internal/uuid"
	"stockdex/internal/window"
)

// getUser extracts the authenticated user from the Gin context.
// Returns ErrUnauthorized if not present.
func getUser(c *gin.Context) (*models.User, error) {
	v, exists := c.Get(middleware.UserContextKey)
	if !exists {
		return nil, apperrors.ErrUnauthorized
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// parsePathID parses a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseWindow resolves the reporting window for a list request. Explicit
// from/to query parameters build a custom range; otherwise the window token
// is parsed, with an unrecognized token rejected outright.
func parseWindow(c *gin.Context) (window.Window, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr != "" || toStr != "" {
		var from, to *time.Time
		if fromStr != "" {
			t, err := parseDay(fromStr)
			if err != nil {
				return window.Window{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date")
			}
			from = &t
		}
		if toStr != "" {
			t, err := parseDay(toStr)
			if err != nil {
				return window.Window{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date")
			}
			to = &t
		}
		return window.NewCustom(from, to), nil
	}

	return window.Parse(c.Query("window"))
}

// parseDay accepts a calendar date or a full RFC 3339 timestamp.
func parseDay(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
