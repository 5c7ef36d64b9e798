package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeUpstreamError ErrorCode = "upstream_unavailable"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}
	if len(details) > 0 {
		response.Error.Details = details[0]
	}
	c.JSON(statusCode, response)
}

// respondValidationError sends a 400 Bad Request with validation details
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondDomainError maps a service error onto the API status contract:
// absent entities answer 204, conflicting state transitions answer 406,
// upstream outages answer 503 and everything else is a logged 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.Status(http.StatusNoContent)

	case errors.Is(err, domain.ErrAssetAlreadyExists):
		respondWithError(c, http.StatusNotAcceptable, errCodeConflict, "Asset already registered")

	case errors.Is(err, domain.ErrAssetTaken):
		respondWithError(c, http.StatusNotAcceptable, errCodeConflict, "Asset mint already in progress")

	case errors.Is(err, domain.ErrHashIncomplete),
		errors.Is(err, domain.ErrMissingFileHash),
		errors.Is(err, domain.ErrInvalidPayload):
		respondWithError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		respondWithError(c, http.StatusServiceUnavailable, errCodeUpstreamError, "Upstream unavailable")

	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
	}
}
