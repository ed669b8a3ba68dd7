package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

func strPtr(s string) *string {
	return &s
}

// buildTestInstrument creates a claimable, unowned instrument input
func buildTestInstrument(brand, model string) CreateInstrumentInput {
	return CreateInstrumentInput{
		ID:           uuid.NewString(),
		Make:         brand,
		Model:        model,
		Year:         strPtr("1965"),
		SerialNumber: strPtr(fmt.Sprintf("SN-%s", uuid.NewString()[:8])),
		Specs: map[string]string{
			"body_material": "alder",
			"pickups":       "SSS",
		},
		IsClaimable: true,
	}
}

// buildTestClaim creates a claim input with "other" evidence
func buildTestClaim(instrumentID, claimerID string, createdAt time.Time) CreateClaimInput {
	return CreateClaimInput{
		ID:               uuid.NewString(),
		InstrumentID:     instrumentID,
		ClaimerID:        claimerID,
		VerificationType: domain.VerificationOther,
		VerificationData: []byte(`{"description":"bought it new"}`),
		ClaimReason:      "I am the original owner",
		CreatedAt:        createdAt,
	}
}

// buildTestChange creates an update proposal
func buildTestChange(instrumentID, field string, newValue *string, createdAt time.Time) CreateAttributeChangeInput {
	return CreateAttributeChangeInput{
		ID:              uuid.NewString(),
		InstrumentID:    instrumentID,
		FieldName:       field,
		NewValue:        newValue,
		ChangeReason:    "correction",
		ChangedByUserID: "user-editor",
		ChangeType:      domain.ChangeTypeUpdate,
		CreatedAt:       createdAt,
	}
}

func mustCreateInstrument(t *testing.T, store Store, brand, model string) *schema.Instrument {
	t.Helper()
	instrument, err := store.CreateInstrument(context.Background(), buildTestInstrument(brand, model))
	require.NoError(t, err)
	require.NotNil(t, instrument)
	return instrument
}

func decodeSpecs(t *testing.T, instrument *schema.Instrument) map[string]string {
	t.Helper()
	specs := map[string]string{}
	require.NoError(t, json.Unmarshal(instrument.Specs, &specs))
	return specs
}

// =============================================================================
// Test: Instruments
// =============================================================================

func testInstruments(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get instrument", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Stratocaster")

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Fender", got.Make)
		assert.True(t, got.IsClaimable)
		assert.Nil(t, got.CurrentOwnerID)
		assert.Equal(t, int64(1), got.Version)
		assert.Equal(t, "alder", decodeSpecs(t, got)["body_material"])
	})

	t.Run("nil specs stored as empty object", func(t *testing.T) {
		input := buildTestInstrument("Taylor", "814ce")
		input.Specs = nil
		instrument, err := store.CreateInstrument(ctx, input)
		require.NoError(t, err)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.JSONEq(t, "{}", string(got.Specs))
		assert.Empty(t, decodeSpecs(t, got))
	})

	t.Run("get missing instrument returns nil", func(t *testing.T) {
		got, err := store.GetInstrument(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create unclaimable instrument keeps false", func(t *testing.T) {
		input := buildTestInstrument("Martin", "D-28")
		input.IsClaimable = false
		input.CurrentOwnerID = strPtr("owner-1")
		instrument, err := store.CreateInstrument(ctx, input)
		require.NoError(t, err)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.False(t, got.IsClaimable)
		assert.False(t, got.Claimable())
	})

	t.Run("set claimable bumps version", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gretsch", "White Falcon")

		got, err := store.SetInstrumentClaimable(ctx, instrument.ID, false, time.Now().UTC())
		require.NoError(t, err)
		assert.False(t, got.IsClaimable)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("set claimable on missing instrument", func(t *testing.T) {
		_, err := store.SetInstrumentClaimable(ctx, uuid.NewString(), true, time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// =============================================================================
// Test: Claims
// =============================================================================

func testClaims(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("create claim and check live claim", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Telecaster")

		has, err := store.HasLiveClaim(ctx, "user-1", instrument.ID)
		require.NoError(t, err)
		assert.False(t, has)

		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, claim.Status)

		has, err = store.HasLiveClaim(ctx, "user-1", instrument.ID)
		require.NoError(t, err)
		assert.True(t, has)

		has, err = store.HasLiveClaim(ctx, "user-2", instrument.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("duplicate live claim by same claimer is rejected", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gibson", "SG")

		_, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		_, err = store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		assert.ErrorIs(t, err, domain.ErrDuplicateClaim)

		// A different claimer may still claim
		_, err = store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-2", now))
		assert.NoError(t, err)
	})

	t.Run("new claim allowed after withdrawal", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Rickenbacker", "360")

		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		claimer := "user-1"
		ok, err := store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:      claim.ID,
			FromStatuses: domain.LiveClaimStatuses(),
			ClaimerID:    &claimer,
			ToStatus:     domain.ClaimStatusWithdrawn,
			At:           now,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		has, err := store.HasLiveClaim(ctx, "user-1", instrument.ID)
		require.NoError(t, err)
		assert.False(t, has)

		_, err = store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		assert.NoError(t, err)
	})

	t.Run("guarded status update respects claimer and status", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "PRS", "Custom 24")
		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		other := "user-2"
		ok, err := store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:      claim.ID,
			FromStatuses: domain.LiveClaimStatuses(),
			ClaimerID:    &other,
			ToStatus:     domain.ClaimStatusWithdrawn,
			At:           now,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		reason := "evidence does not match"
		admin := "admin-1"
		ok, err = store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:         claim.ID,
			FromStatuses:    domain.LiveClaimStatuses(),
			ToStatus:        domain.ClaimStatusRejected,
			ReviewedBy:      &admin,
			RejectionReason: &reason,
			At:              now,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		// Terminal: no further transition matches the guard
		ok, err = store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:      claim.ID,
			FromStatuses: domain.LiveClaimStatuses(),
			ToStatus:     domain.ClaimStatusUnderReview,
			At:           now,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetClaim(ctx, claim.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusRejected, got.Status)
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, reason, *got.RejectionReason)
		require.NotNil(t, got.ReviewedBy)
		assert.Equal(t, admin, *got.ReviewedBy)
	})

	t.Run("get missing claim returns nil", func(t *testing.T) {
		got, err := store.GetClaim(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)

		detail, err := store.GetClaimDetail(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, detail)
	})
}

// =============================================================================
// Test: ApproveClaim
// =============================================================================

func testApproveClaim(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("approval flips ownership atomically", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Jazzmaster")
		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		result, err := store.ApproveClaim(ctx, claim.ID, "admin-1", now)
		require.NoError(t, err)
		assert.False(t, result.AlreadyApproved)
		assert.Equal(t, domain.ClaimStatusApproved, result.Claim.Status)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CurrentOwnerID)
		assert.Equal(t, "user-1", *got.CurrentOwnerID)
		assert.False(t, got.IsClaimable)
		assert.Equal(t, int64(2), got.Version)

		gotClaim, err := store.GetClaim(ctx, claim.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusApproved, gotClaim.Status)
		require.NotNil(t, gotClaim.ReviewedBy)
		assert.Equal(t, "admin-1", *gotClaim.ReviewedBy)
		assert.NotNil(t, gotClaim.ReviewedAt)
	})

	t.Run("approving twice is a no-op", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Mustang")
		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, claim.ID, "admin-1", now)
		require.NoError(t, err)

		result, err := store.ApproveClaim(ctx, claim.ID, "admin-2", now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, result.AlreadyApproved)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)

		gotClaim, err := store.GetClaim(ctx, claim.ID)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", *gotClaim.ReviewedBy)
	})

	t.Run("second claimer fails closed after first approval", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gibson", "ES-335")
		first, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)
		second, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-2", now))
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, first.ID, "admin-1", now)
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, second.ID, "admin-1", now)
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

		gotSecond, err := store.GetClaim(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, gotSecond.Status)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.Equal(t, "user-1", *got.CurrentOwnerID)
	})

	t.Run("approving a withdrawn claim is an invalid transition", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Ibanez", "RG550")
		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		_, err = store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:      claim.ID,
			FromStatuses: domain.LiveClaimStatuses(),
			ToStatus:     domain.ClaimStatusWithdrawn,
			At:           now,
		})
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, claim.ID, "admin-1", now)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.True(t, got.IsClaimable)
		assert.Nil(t, got.CurrentOwnerID)
	})

	t.Run("approving a missing claim", func(t *testing.T) {
		_, err := store.ApproveClaim(ctx, uuid.NewString(), "admin-1", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("under review claim can be approved", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Guild", "D-55")
		claim, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-1", now))
		require.NoError(t, err)

		ok, err := store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:      claim.ID,
			FromStatuses: []domain.ClaimStatus{domain.ClaimStatusPending},
			ToStatus:     domain.ClaimStatusUnderReview,
			At:           now,
		})
		require.NoError(t, err)
		require.True(t, ok)

		_, err = store.ApproveClaim(ctx, claim.ID, "admin-1", now)
		assert.NoError(t, err)
	})
}

// =============================================================================
// Test: Claim queries
// =============================================================================

func testClaimQueries(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	strat := mustCreateInstrument(t, store, "Zebrawood", "Starfire")
	tele := mustCreateInstrument(t, store, "Zebrawood", "Teleporter")

	var ids []string
	for i, in := range []struct {
		instrumentID string
		claimer      string
	}{
		{strat.ID, "q-user-1"},
		{strat.ID, "q-user-2"},
		{tele.ID, "q-user-1"},
	} {
		claim, err := store.CreateClaim(ctx, buildTestClaim(in.instrumentID, in.claimer, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
		ids = append(ids, claim.ID)
	}

	_, err := store.ApproveClaim(ctx, ids[2], "admin-1", base)
	require.NoError(t, err)

	t.Run("list by search newest first with instrument details", func(t *testing.T) {
		claims, total, err := store.ListClaims(ctx, ClaimQueryFilter{Search: "zebrawood", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, claims, 3)
		assert.Equal(t, ids[2], claims[0].ID)
		assert.Equal(t, ids[0], claims[2].ID)
		assert.Equal(t, "Zebrawood", claims[0].InstrumentMake)
		assert.Equal(t, "Teleporter", claims[0].InstrumentModel)
	})

	t.Run("list by status and claimer", func(t *testing.T) {
		pending := domain.ClaimStatusPending
		claimer := "q-user-1"
		claims, total, err := store.ListClaims(ctx, ClaimQueryFilter{Status: &pending, ClaimerID: &claimer, Search: "zebrawood", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, claims, 1)
		assert.Equal(t, ids[0], claims[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		claims, total, err := store.ListClaims(ctx, ClaimQueryFilter{Search: "zebrawood", Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, claims, 1)
		assert.Equal(t, ids[0], claims[0].ID)
	})

	t.Run("search wildcards are literal", func(t *testing.T) {
		_, total, err := store.ListClaims(ctx, ClaimQueryFilter{Search: "zebra%wood", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})

	t.Run("claim detail", func(t *testing.T) {
		detail, err := store.GetClaimDetail(ctx, ids[1])
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "Starfire", detail.InstrumentModel)
		assert.Equal(t, "q-user-2", detail.ClaimerID)
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := store.CountClaimsByStatus(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counts[domain.ClaimStatusPending], uint64(2))
		assert.GreaterOrEqual(t, counts[domain.ClaimStatusApproved], uint64(1))
	})
}

// =============================================================================
// Test: Attribute changes
// =============================================================================

func testAttributeChanges(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("spec key merges without clobbering", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Precision Bass")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "pickups", strPtr("P"), now))
		require.NoError(t, err)
		assert.False(t, change.IsLocked)

		result, err := store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)
		assert.False(t, result.AlreadyApplied)
		assert.True(t, result.Change.IsLocked)
		assert.Equal(t, domain.ChangeOutcomeApplied, result.Change.Outcome)

		specs := decodeSpecs(t, result.Instrument)
		assert.Equal(t, "P", specs["pickups"])
		assert.Equal(t, "alder", specs["body_material"])
		assert.Equal(t, "Fender", result.Instrument.Make)
		assert.Equal(t, int64(2), result.Instrument.Version)
	})

	t.Run("top-level field overwrites column", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Jaguar")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "finish", strPtr("Sunburst"), now))
		require.NoError(t, err)

		result, err := store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)
		require.NotNil(t, result.Instrument.Finish)
		assert.Equal(t, "Sunburst", *result.Instrument.Finish)
		assert.Equal(t, decodeSpecs(t, instrument), decodeSpecs(t, result.Instrument))
	})

	t.Run("apply twice is idempotent", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gibson", "Flying V")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "model", strPtr("Flying V 67"), now))
		require.NoError(t, err)

		_, err = store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)

		result, err := store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)
		assert.True(t, result.AlreadyApplied)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Version)
	})

	t.Run("rejected change cannot be applied", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gibson", "Explorer")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "tuners", strPtr("Grover"), now))
		require.NoError(t, err)

		ok, err := store.RejectAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.RejectAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = store.ApplyAttributeChange(ctx, change.ID, now)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.NotContains(t, decodeSpecs(t, got), "tuners")

		gotChange, err := store.GetAttributeChange(ctx, change.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ChangeOutcomeRejected, gotChange.Outcome)
	})

	t.Run("grace period only on unlocked changes", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Martin", "000-18")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "weight", strPtr("4.1 lb"), now))
		require.NoError(t, err)

		ok, err := store.SetGracePeriod(ctx, change.ID, now.Add(30*24*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)

		ok, err = store.SetGracePeriod(ctx, change.ID, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("list open changes oldest first", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Taylor", "814ce")
		first, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "bridge", strPtr("ebony"), now.Add(-2*time.Hour)))
		require.NoError(t, err)
		second, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "fretboard", strPtr("ebony"), now.Add(-time.Hour)))
		require.NoError(t, err)
		applied, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "condition", strPtr("mint"), now))
		require.NoError(t, err)
		_, err = store.ApplyAttributeChange(ctx, applied.ID, now)
		require.NoError(t, err)

		changes, err := store.ListOpenAttributeChanges(ctx, &instrument.ID)
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, first.ID, changes[0].ID)
		assert.Equal(t, second.ID, changes[1].ID)
	})

	t.Run("list grace elapsed", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Yamaha", "SG2000")
		elapsed, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "neck_material", strPtr("maple"), now))
		require.NoError(t, err)
		future, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "scale_length", strPtr("24.75"), now))
		require.NoError(t, err)

		_, err = store.SetGracePeriod(ctx, elapsed.ID, now.Add(-time.Minute))
		require.NoError(t, err)
		_, err = store.SetGracePeriod(ctx, future.ID, now.Add(time.Hour))
		require.NoError(t, err)

		changes, err := store.ListGraceElapsedChanges(ctx, now, 100)
		require.NoError(t, err)
		found := map[string]bool{}
		for _, c := range changes {
			found[c.ID] = true
		}
		assert.True(t, found[elapsed.ID])
		assert.False(t, found[future.ID])
	})

	t.Run("apply missing change", func(t *testing.T) {
		_, err := store.ApplyAttributeChange(ctx, uuid.NewString(), now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejected instrument write leaves the change open", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gretsch", "White Falcon")
		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "model", nil, now))
		require.NoError(t, err)

		_, err = store.ApplyAttributeChange(ctx, change.ID, now)
		require.Error(t, err)
		assert.False(t, domain.IsPartialApply(err))
		assert.False(t, domain.IsTransient(err))

		got, err := store.GetAttributeChange(ctx, change.ID)
		require.NoError(t, err)
		assert.False(t, got.IsLocked)

		current, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.Equal(t, "White Falcon", current.Model)
		assert.Equal(t, instrument.Version, current.Version)
	})

	t.Run("failed auto apply is skipped until grace is set again", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Rickenbacker", "360")
		parked, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "tuners", strPtr("Grover"), now))
		require.NoError(t, err)
		_, err = store.SetGracePeriod(ctx, parked.ID, now.Add(-2*time.Hour))
		require.NoError(t, err)

		ok, err := store.MarkAutoApplyFailed(ctx, parked.ID, "boom", now)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetAttributeChange(ctx, parked.ID)
		require.NoError(t, err)
		require.NotNil(t, got.AutoApplyFailedAt)
		assert.Equal(t, "boom", *got.AutoApplyError)

		changes, err := store.ListGraceElapsedChanges(ctx, now, 100)
		require.NoError(t, err)
		for _, c := range changes {
			assert.NotEqual(t, parked.ID, c.ID)
		}

		_, err = store.SetGracePeriod(ctx, parked.ID, now.Add(-time.Minute))
		require.NoError(t, err)

		changes, err = store.ListGraceElapsedChanges(ctx, now, 100)
		require.NoError(t, err)
		found := false
		for _, c := range changes {
			found = found || c.ID == parked.ID
		}
		assert.True(t, found)

		_, err = store.ApplyAttributeChange(ctx, parked.ID, now)
		require.NoError(t, err)
		ok, err = store.MarkAutoApplyFailed(ctx, parked.ID, "late", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("history lists every change newest first", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Guild", "D-55")
		older, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "finish", strPtr("natural"), now.Add(-time.Hour)))
		require.NoError(t, err)
		_, err = store.RejectAttributeChange(ctx, older.ID, now)
		require.NoError(t, err)
		newer, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "bridge", strPtr("rosewood"), now))
		require.NoError(t, err)

		changes, err := store.ListAttributeChanges(ctx, instrument.ID)
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, newer.ID, changes[0].ID)
		assert.Equal(t, older.ID, changes[1].ID)
		assert.True(t, changes[1].IsLocked)
	})
}

// =============================================================================
// Test: Transfers
// =============================================================================

func testTransfers(t *testing.T, store Store) {
	ctx := context.Background()
	t0 := time.Date(2031, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sweep expires only stale pending transfers and is idempotent", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Epiphone", "Casino")

		stale, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-1"), ToOwnerID: strPtr("owner-2"), CreatedAt: t0})
		require.NoError(t, err)
		fresh, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-1"), CreatedAt: t0.Add(6 * 24 * time.Hour)})
		require.NoError(t, err)
		accepted, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-1"), ToOwnerID: strPtr("owner-3"), CreatedAt: t0})
		require.NoError(t, err)
		ok, err := store.UpdateTransferStatus(ctx, UpdateTransferStatusInput{
			TransferID:   accepted.ID,
			FromStatuses: []domain.TransferStatus{domain.TransferStatusPending},
			ToStatus:     domain.TransferStatusAccepted,
			At:           t0,
		})
		require.NoError(t, err)
		require.True(t, ok)

		now := t0.Add(8 * 24 * time.Hour)
		cutoff := now.Add(-7 * 24 * time.Hour)

		ids, err := store.ExpirePendingTransfers(ctx, cutoff, now)
		require.NoError(t, err)
		assert.Contains(t, ids, stale.ID)
		assert.NotContains(t, ids, fresh.ID)
		assert.NotContains(t, ids, accepted.ID)

		again, err := store.ExpirePendingTransfers(ctx, cutoff, now)
		require.NoError(t, err)
		assert.NotContains(t, again, stale.ID)

		got, err := store.GetTransfer(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TransferStatusExpired, got.Status)

		gotAccepted, err := store.GetTransfer(ctx, accepted.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TransferStatusAccepted, gotAccepted.Status)
	})

	t.Run("complete accepted transfer flips owner", func(t *testing.T) {
		input := buildTestInstrument("Fender", "Bass VI")
		input.CurrentOwnerID = strPtr("owner-1")
		input.IsClaimable = false
		instrument, err := store.CreateInstrument(ctx, input)
		require.NoError(t, err)

		transfer, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-1"), ToOwnerID: strPtr("owner-2"), CreatedAt: t0})
		require.NoError(t, err)

		has, err := store.HasOpenTransfer(ctx, instrument.ID)
		require.NoError(t, err)
		assert.True(t, has)

		_, err = store.CompleteTransfer(ctx, transfer.ID, t0)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		_, err = store.UpdateTransferStatus(ctx, UpdateTransferStatusInput{
			TransferID:   transfer.ID,
			FromStatuses: []domain.TransferStatus{domain.TransferStatusPending},
			ToStatus:     domain.TransferStatusAccepted,
			At:           t0,
		})
		require.NoError(t, err)

		result, err := store.CompleteTransfer(ctx, transfer.ID, t0.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, domain.TransferStatusCompleted, result.Transfer.Status)
		require.NotNil(t, result.Instrument)
		assert.Equal(t, "owner-2", *result.Instrument.CurrentOwnerID)

		again, err := store.CompleteTransfer(ctx, transfer.ID, t0.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, again.AlreadyCompleted)

		history, err := store.ListTransferHistory(ctx, instrument.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, transfer.ID, history[0].ID)

		has, err = store.HasOpenTransfer(ctx, instrument.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("user transfers in both directions newest first", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Collings", "OM2H")
		user := "owner-" + uuid.NewString()[:8]

		outgoing, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr(user), ToOwnerID: strPtr("owner-9"), CreatedAt: t0})
		require.NoError(t, err)
		incoming, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-8"), ToOwnerID: strPtr(user), CreatedAt: t0.Add(time.Hour)})
		require.NoError(t, err)
		_, err = store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, FromOwnerID: strPtr("owner-8"), ToOwnerID: strPtr("owner-9"), CreatedAt: t0})
		require.NoError(t, err)

		transfers, err := store.ListUserTransfers(ctx, user)
		require.NoError(t, err)
		require.Len(t, transfers, 2)
		assert.Equal(t, incoming.ID, transfers[0].ID)
		assert.Equal(t, outgoing.ID, transfers[1].ID)
	})

	t.Run("decline records reason", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Gibson", "Hummingbird")
		transfer, err := store.CreateTransfer(ctx, CreateTransferInput{ID: uuid.NewString(), InstrumentID: instrument.ID, ToOwnerID: strPtr("owner-2"), CreatedAt: t0})
		require.NoError(t, err)

		reason := "not mine"
		ok, err := store.UpdateTransferStatus(ctx, UpdateTransferStatusInput{
			TransferID:      transfer.ID,
			FromStatuses:    []domain.TransferStatus{domain.TransferStatusPending},
			ToStatus:        domain.TransferStatusDeclined,
			RejectionReason: &reason,
			At:              t0,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetTransfer(ctx, transfer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TransferStatusDeclined, got.Status)
		assert.NotNil(t, got.DeclinedAt)
		assert.Equal(t, reason, *got.RejectionReason)
	})
}

// =============================================================================
// Test: Sinks and markers
// =============================================================================

func testSinks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("notification insert is idempotent on id", func(t *testing.T) {
		n := &schema.Notification{
			ID:      "01JABCDEFGHJKMNPQRSTVWXYZ0",
			UserID:  "user-1",
			Type:    domain.NotificationClaimApproved,
			Title:   "Your ownership claim was approved!",
			Message: "Fender Stratocaster",
		}
		require.NoError(t, store.CreateNotification(ctx, n))
		require.NoError(t, store.CreateNotification(ctx, n))
	})

	t.Run("audit log insert", func(t *testing.T) {
		entry := &schema.AuditLog{
			ID:         "01JABCDEFGHJKMNPQRSTVWXYZ1",
			Action:     domain.AuditClaimApproved,
			ActorID:    "admin-1",
			TargetID:   uuid.NewString(),
			TargetType: domain.TargetClaim,
			Details:    []byte(`{"instrument_id":"x"}`),
		}
		require.NoError(t, store.CreateAuditLog(ctx, entry))
	})

	t.Run("sweep marker round trip", func(t *testing.T) {
		got, err := store.GetSweepMarker(ctx, "test-sweeper")
		require.NoError(t, err)
		assert.Nil(t, got)

		at := time.Date(2031, 1, 2, 3, 4, 5, 6000, time.UTC)
		require.NoError(t, store.SetSweepMarker(ctx, "test-sweeper", at))
		require.NoError(t, store.SetSweepMarker(ctx, "test-sweeper", at.Add(time.Hour)))

		got, err = store.GetSweepMarker(ctx, "test-sweeper")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(at.Add(time.Hour)))
	})
}

// =============================================================================
// Test: End-to-end scenarios
// =============================================================================

func testScenarios(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("claim then competing claim", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Stratocaster")

		a, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-a", now))
		require.NoError(t, err)
		b, err := store.CreateClaim(ctx, buildTestClaim(instrument.ID, "user-b", now))
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, a.ID, "admin-1", now)
		require.NoError(t, err)

		_, err = store.ApproveClaim(ctx, b.ID, "admin-1", now)
		require.ErrorIs(t, err, domain.ErrAlreadyClaimed)

		reason := "ownership already verified"
		admin := "admin-1"
		ok, err := store.UpdateClaimStatus(ctx, UpdateClaimStatusInput{
			ClaimID:         b.ID,
			FromStatuses:    domain.LiveClaimStatuses(),
			ToStatus:        domain.ClaimStatusRejected,
			ReviewedBy:      &admin,
			RejectionReason: &reason,
			At:              now,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		assert.Equal(t, "user-a", *got.CurrentOwnerID)
		assert.False(t, got.IsClaimable)
	})

	t.Run("grace edit", func(t *testing.T) {
		instrument := mustCreateInstrument(t, store, "Fender", "Stratocaster")

		change, err := store.CreateAttributeChange(ctx, buildTestChange(instrument.ID, "pickups", strPtr("HSS"), now))
		require.NoError(t, err)

		ok, err := store.SetGracePeriod(ctx, change.ID, now.Add(30*24*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		pending, err := store.ListOpenAttributeChanges(ctx, &instrument.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		_, err = store.ApplyAttributeChange(ctx, change.ID, now)
		require.NoError(t, err)

		got, err := store.GetInstrument(ctx, instrument.ID)
		require.NoError(t, err)
		specs := decodeSpecs(t, got)
		assert.Equal(t, "HSS", specs["pickups"])
		assert.Equal(t, "alder", specs["body_material"])

		pending, err = store.ListOpenAttributeChanges(ctx, &instrument.ID)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

// RunStoreTests runs all store tests against the provided store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Instruments", testInstruments},
		{"Claims", testClaims},
		{"ApproveClaim", testApproveClaim},
		{"ClaimQueries", testClaimQueries},
		{"AttributeChanges", testAttributeChanges},
		{"Transfers", testTransfers},
		{"Sinks", testSinks},
		{"Scenarios", testScenarios},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
