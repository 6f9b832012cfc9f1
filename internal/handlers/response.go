package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/project_budget_app/internal/apperrors"
	"github.com/SscSPs/project_budget_app/internal/dto"
	"github.com/SscSPs/project_budget_app/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgInvalidID          = "Invalid ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInternalError      = "Internal server error"
)

// respondError maps an error kind to a status code and writes the failed envelope.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var fieldErr *apperrors.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		logger.Warn("Request failed validation", slog.Any("fields", fieldErr.Fields))
		c.JSON(http.StatusBadRequest, dto.Failed(fieldErr.Fields))
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Failed(apperrors.PublicMessage(err)))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.Failed(apperrors.PublicMessage(err)))
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(http.StatusInternalServerError, dto.Failed(appErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failed(msgInternalError))
	}
}

// parseProjectID reads the :id path parameter, answering 400 when it is not an integer.
func parseProjectID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("Invalid project ID in path", slog.String("id", raw))
		c.JSON(http.StatusBadRequest, dto.Failed(msgInvalidID))
		return 0, false
	}
	return id, true
}

// bindValidated checks the raw JSON body against rules, then binds it into out.
// It writes the error response itself and reports whether the handler may continue.
func bindValidated(c *gin.Context, logger *slog.Logger, rules validator.RuleSet[any], out any) bool {
	var raw map[string]any
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Failed(msgInvalidRequestBody))
		return false
	}

	if result := validator.Validate(raw, rules); !result.IsValid {
		respondError(c, logger, result.Err())
		return false
	}

	if err := c.ShouldBindBodyWith(out, binding.JSON); err != nil {
		logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Failed(msgInvalidRequestBody))
		return false
	}
	return true
}
