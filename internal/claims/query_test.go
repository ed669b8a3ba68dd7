package claims_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/mocks"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

func TestListClaims_Paging(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		perPage        int
		total          uint64
		wantLimit      int
		wantOffset     uint64
		wantPage       int
		wantPerPage    int
		wantTotalPages int
	}{
		{name: "defaults", page: 0, perPage: 0, total: 45, wantLimit: 20, wantOffset: 0, wantPage: 1, wantPerPage: 20, wantTotalPages: 3},
		{name: "second page", page: 2, perPage: 10, total: 25, wantLimit: 10, wantOffset: 10, wantPage: 2, wantPerPage: 10, wantTotalPages: 3},
		{name: "per page capped", page: 1, perPage: 500, total: 101, wantLimit: 100, wantOffset: 0, wantPage: 1, wantPerPage: 100, wantTotalPages: 2},
		{name: "empty", page: 1, perPage: 20, total: 0, wantLimit: 20, wantOffset: 0, wantPage: 1, wantPerPage: 20, wantTotalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			st := mocks.NewMockStore(ctrl)
			q := claims.NewQueryService(st)

			st.EXPECT().
				ListClaims(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f store.ClaimQueryFilter) ([]store.ClaimWithInstrument, uint64, error) {
					assert.Equal(t, tt.wantLimit, f.Limit)
					assert.Equal(t, tt.wantOffset, f.Offset)
					return nil, tt.total, nil
				})

			page, err := q.ListClaims(context.Background(), claims.ClaimFilter{}, tt.page, tt.perPage)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPerPage, page.PerPage)
			assert.Equal(t, tt.wantTotalPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
			assert.NotNil(t, page.Items)
		})
	}
}

func TestListClaims_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStore(ctrl)
	q := claims.NewQueryService(st)

	status := domain.ClaimStatusPending
	claimer := "user-1"
	st.EXPECT().
		ListClaims(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f store.ClaimQueryFilter) ([]store.ClaimWithInstrument, uint64, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, domain.ClaimStatusPending, *f.Status)
			assert.Equal(t, "strat", f.Search)
			assert.Equal(t, &claimer, f.ClaimerID)
			return []store.ClaimWithInstrument{{
				OwnershipClaim: schema.OwnershipClaim{ID: "claim-1"},
				InstrumentMake: "Fender",
			}}, 1, nil
		})

	page, err := q.ListClaims(context.Background(), claims.ClaimFilter{
		Status:    &status,
		Search:    "  strat ",
		ClaimerID: &claimer,
	}, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Fender", page.Items[0].InstrumentMake)
}

func TestListClaims_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := claims.NewQueryService(mocks.NewMockStore(ctrl))

	status := domain.ClaimStatus("archived")
	_, err := q.ListClaims(context.Background(), claims.ClaimFilter{Status: &status}, 1, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetClaimStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStore(ctrl)
	q := claims.NewQueryService(st)

	st.EXPECT().CountClaimsByStatus(gomock.Any()).Return(map[domain.ClaimStatus]uint64{
		domain.ClaimStatusPending:   4,
		domain.ClaimStatusApproved:  2,
		domain.ClaimStatusWithdrawn: 1,
	}, nil)

	stats, err := q.GetClaimStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, claims.ClaimStats{
		Total:     7,
		Pending:   4,
		Approved:  2,
		Withdrawn: 1,
	}, *stats)
}

func TestHasPendingClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStore(ctrl)
	q := claims.NewQueryService(st)

	st.EXPECT().HasLiveClaim(gomock.Any(), "user-1", "inst-1").Return(true, nil)

	ok, err := q.HasPendingClaim(context.Background(), "user-1", "inst-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// blank ids never hit the store
	ok, err = q.HasPendingClaim(context.Background(), "", "inst-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStore(ctrl)
	q := claims.NewQueryService(st)

	st.EXPECT().GetClaimDetail(gomock.Any(), "missing").Return(nil, nil)
	_, err := q.GetClaim(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	st.EXPECT().GetClaimDetail(gomock.Any(), "claim-1").Return(&store.ClaimWithInstrument{
		OwnershipClaim: schema.OwnershipClaim{ID: "claim-1"},
	}, nil)
	claim, err := q.GetClaim(context.Background(), "claim-1")
	require.NoError(t, err)
	assert.Equal(t, "claim-1", claim.ID)
}
