package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondRequestError responds to a failed request body validation.
// Validate methods already return an *APIError, anything else is wrapped.
func respondRequestError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusUnprocessableEntity, apiErr)
		return
	}
	respondValidationError(c, err.Error())
}

// respondError maps a workflow error to its HTTP response
func respondError(c *gin.Context, err error, message string) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError(message, err.Error()))
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrDuplicateClaim),
		errors.Is(err, domain.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(message, err.Error()))
	case errors.Is(err, domain.ErrMissingReason),
		errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message, err.Error()))
	case domain.IsPartialApply(err):
		// Already reported to the reconciliation logger by the workflow
		c.JSON(http.StatusInternalServerError, apierrors.NewReconciliationError(message))
	case domain.IsTransient(err):
		logger.WarnCtx(ctx, message, zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceUnavailableError(message))
	default:
		logger.ErrorCtx(ctx, err, zap.String("message", message), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
	}
}
