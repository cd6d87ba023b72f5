package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error onto its HTTP status. Server side
// failures hide the cause behind msg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// respondWithBindError reports a malformed or invalid request body.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + middleware.ValidationMessage(err)})
}

// requireUserID returns the authenticated caller or writes 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindListParams reads limit and offset from the query string.
func bindListParams(c *gin.Context, logger *slog.Logger) (dto.ListParams, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, logger, err)
		return params, false
	}
	params.Limit, params.Offset = pagination.Normalize(params.Limit, params.Offset)
	return params, true
}
