package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// ErrorPresenter formats errors in a consistent way matching the REST API format.
// This function is called by gqlgen for every error.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	// Parse and validation errors carry no cause and are shown as-is
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		if errors.Unwrap(err) == nil {
			return gqlErr
		}
		logger.ErrorCtx(ctx, err, zap.String("message", "Unhandled GraphQL error"))
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	gqlErr.Message = apiErr.Message
	gqlErr.Extensions = map[string]interface{}{
		"code":    string(apiErr.Code),
		"message": apiErr.Message,
	}
	if apiErr.Details != "" {
		gqlErr.Extensions["details"] = apiErr.Details
	}
	return gqlErr
}

// RecoverFunc handles panics in resolvers
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err), zap.Any("panic", err))
	return apierrors.NewInternalError("Internal server error")
}
