package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/server/http/dto"
)

// FallbackHeader marks responses served from the offline sample
// catalog instead of the live endpoint.
const FallbackHeader = "X-Catalog-Fallback"

// writeError maps domain errors onto HTTP statuses. Validation errors
// carry the per-field message map.
func writeError(c *gin.Context, err error) {
	var fields domainErrors.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "already exists"})
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "order already finalized"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

// markDegraded flags a response built from the offline sample set.
func markDegraded(c *gin.Context, degraded bool) {
	if degraded {
		c.Header(FallbackHeader, "true")
	}
}
