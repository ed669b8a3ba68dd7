package graphql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"go.uber.org/zap"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
)

// Resolver is the root resolver that holds the claim query service
type Resolver struct {
	claimQuery claims.QueryService
	retry      retry.Config
}

// NewResolver creates a new root resolver
func NewResolver(claimQuery claims.QueryService, retryCfg retry.Config) *Resolver {
	return &Resolver{
		claimQuery: claimQuery,
		retry:      retryCfg,
	}
}

// Claims resolves Query.claims
func (r *Resolver) Claims(ctx context.Context, args map[string]any) (*claims.ClaimPage, error) {
	filter := claims.ClaimFilter{}

	status, err := optionalString(args["status"])
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid status: %v", err))
	}
	if status != "" && status != "all" {
		s := domain.ClaimStatus(status)
		if !domain.IsValidClaimStatus(s) {
			return nil, apierrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
		}
		filter.Status = &s
	}

	search, err := optionalString(args["search"])
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid search: %v", err))
	}
	filter.Search = search

	page, err := optionalInt(args["page"], claims.DefaultPage)
	if err != nil || page < 1 {
		return nil, apierrors.NewValidationError("page must be at least 1")
	}
	perPage, err := optionalInt(args["perPage"], claims.DefaultPerPage)
	if err != nil || perPage < 1 || perPage > claims.MaxPerPage {
		return nil, apierrors.NewValidationError(fmt.Sprintf("perPage must be between 1 and %d", claims.MaxPerPage))
	}

	var result *claims.ClaimPage
	err = retry.Do(ctx, r.retry, "graphql_list_claims", func(ctx context.Context) error {
		var err error
		result, err = r.claimQuery.ListClaims(ctx, filter, page, perPage)
		return err
	})
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to list claims")
	}
	return result, nil
}

// ClaimStats resolves Query.claimStats
func (r *Resolver) ClaimStats(ctx context.Context) (*claims.ClaimStats, error) {
	var stats *claims.ClaimStats
	err := retry.Do(ctx, r.retry, "graphql_claim_stats", func(ctx context.Context) error {
		var err error
		stats, err = r.claimQuery.GetClaimStats(ctx)
		return err
	})
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to get claim stats")
	}
	return stats, nil
}

// Claim resolves Query.claim
func (r *Resolver) Claim(ctx context.Context, args map[string]any) (*store.ClaimWithInstrument, error) {
	id, err := graphql.UnmarshalString(args["id"])
	if err != nil || strings.TrimSpace(id) == "" {
		return nil, apierrors.NewBadRequestError("ID is required")
	}

	var claim *store.ClaimWithInstrument
	err = retry.Do(ctx, r.retry, "graphql_get_claim", func(ctx context.Context) error {
		var err error
		claim, err = r.claimQuery.GetClaim(ctx, strings.TrimSpace(id))
		return err
	})
	if err != nil {
		return nil, toAPIError(ctx, err, "Failed to get claim")
	}
	return claim, nil
}

// optionalString reads a nullable String argument
func optionalString(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, err := graphql.UnmarshalString(v)
	return strings.TrimSpace(s), err
}

// optionalInt reads a nullable Int argument.
// Literals arrive as int64 and variables as json.Number.
func optionalInt(v any, fallback int) (int, error) {
	if v == nil {
		return fallback, nil
	}
	return graphql.UnmarshalInt(v)
}

// toAPIError maps a query service error to the shared API error
func toAPIError(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apierrors.NewNotFoundError(message, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return apierrors.NewForbiddenError(message, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return apierrors.NewValidationError(message, err.Error())
	case domain.IsTransient(err):
		logger.WarnCtx(ctx, message, zap.Error(err))
		return apierrors.NewServiceUnavailableError(message)
	default:
		return err
	}
}
