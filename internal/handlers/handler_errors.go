package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps service errors to HTTP status codes. AppError carries
// its own message; bare sentinels fall back to fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := http.StatusInternalServerError
	msg := fallbackMsg

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code != 0 {
			status = appErr.Code
		}
		if appErr.Message != "" {
			msg = appErr.Message
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		// Do not leak internals to the client
		msg = fallbackMsg
	} else {
		logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
	}

	c.JSON(status, ErrorResponse{Error: msg})
}
