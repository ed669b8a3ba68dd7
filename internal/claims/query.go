package claims

import (
	"context"
	"fmt"
	"strings"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ClaimFilter represents filters for listing claims
type ClaimFilter struct {
	Status *domain.ClaimStatus
	// Search is a case-insensitive match on make, model, serial number and claim reason
	Search    string
	ClaimerID *string
}

// ClaimPage is one page of claims joined with their instruments
type ClaimPage struct {
	Items      []store.ClaimWithInstrument
	Total      uint64
	Page       int
	PerPage    int
	TotalPages int
}

// ClaimStats counts claims per status
type ClaimStats struct {
	Total       uint64 `json:"total"`
	Pending     uint64 `json:"pending"`
	UnderReview uint64 `json:"under_review"`
	Approved    uint64 `json:"approved"`
	Rejected    uint64 `json:"rejected"`
	Withdrawn   uint64 `json:"withdrawn"`
}

// QueryService is the read side of the claim workflow
//
//go:generate mockgen -source=query.go -destination=../mocks/claims_query.go -package=mocks -mock_names=QueryService=MockClaimsQueryService
type QueryService interface {
	// ListClaims retrieves a page of claims, newest first
	ListClaims(ctx context.Context, filter ClaimFilter, page, perPage int) (*ClaimPage, error)
	// HasPendingClaim reports whether the user has a live claim on the instrument
	HasPendingClaim(ctx context.Context, userID, instrumentID string) (bool, error)
	// GetClaimStats counts claims per status
	GetClaimStats(ctx context.Context) (*ClaimStats, error)
	// GetClaim retrieves a claim joined with its instrument
	GetClaim(ctx context.Context, claimID string) (*store.ClaimWithInstrument, error)
}

type queryService struct {
	store store.Store
}

// NewQueryService creates a new claim query service
func NewQueryService(st store.Store) QueryService {
	return &queryService{store: st}
}

// normalizePaging applies the default page size and caps it
func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// ListClaims retrieves a page of claims, newest first
func (q *queryService) ListClaims(ctx context.Context, filter ClaimFilter, page, perPage int) (*ClaimPage, error) {
	if filter.Status != nil && !domain.IsValidClaimStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: unknown claim status %q", domain.ErrInvalidInput, *filter.Status)
	}

	page, perPage = normalizePaging(page, perPage)

	items, total, err := q.store.ListClaims(ctx, store.ClaimQueryFilter{
		Status:    filter.Status,
		Search:    strings.TrimSpace(filter.Search),
		ClaimerID: filter.ClaimerID,
		Limit:     perPage,
		Offset:    uint64(page-1) * uint64(perPage),
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []store.ClaimWithInstrument{}
	}

	return &ClaimPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int((total + uint64(perPage) - 1) / uint64(perPage)),
	}, nil
}

// HasPendingClaim reports whether the user has a live claim on the instrument
func (q *queryService) HasPendingClaim(ctx context.Context, userID, instrumentID string) (bool, error) {
	if userID == "" || instrumentID == "" {
		return false, nil
	}
	return q.store.HasLiveClaim(ctx, userID, instrumentID)
}

// GetClaimStats counts claims per status
func (q *queryService) GetClaimStats(ctx context.Context) (*ClaimStats, error) {
	counts, err := q.store.CountClaimsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ClaimStats{
		Pending:     counts[domain.ClaimStatusPending],
		UnderReview: counts[domain.ClaimStatusUnderReview],
		Approved:    counts[domain.ClaimStatusApproved],
		Rejected:    counts[domain.ClaimStatusRejected],
		Withdrawn:   counts[domain.ClaimStatusWithdrawn],
	}
	for _, n := range counts {
		stats.Total += n
	}

	return stats, nil
}

// GetClaim retrieves a claim joined with its instrument
func (q *queryService) GetClaim(ctx context.Context, claimID string) (*store.ClaimWithInstrument, error) {
	claim, err := q.store.GetClaimDetail(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, fmt.Errorf("%w: claim %s", domain.ErrNotFound, claimID)
	}
	return claim, nil
}
