package rest_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/rest"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/mocks"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/transfers"
)

const testSubject = "user-1"

type handlerFixture struct {
	claims     *mocks.MockClaimsWorkflow
	claimQuery *mocks.MockClaimsQueryService
	attributes *mocks.MockAttributesWorkflow
	transfers  *mocks.MockTransfersWorkflow
	reaper     *mocks.MockTransferReaper
	clock      *mocks.MockClock
	router     *gin.Engine
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		claims:     mocks.NewMockClaimsWorkflow(ctrl),
		claimQuery: mocks.NewMockClaimsQueryService(ctrl),
		attributes: mocks.NewMockAttributesWorkflow(ctrl),
		transfers:  mocks.NewMockTransfersWorkflow(ctrl),
		reaper:     mocks.NewMockTransferReaper(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	h := rest.NewHandler(rest.Services{
		Claims:     f.claims,
		ClaimQuery: f.claimQuery,
		Attributes: f.attributes,
		Transfers:  f.transfers,
		Reaper:     f.reaper,
		Clock:      f.clock,
		Retry: retry.Config{
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
			MaxElapsedTime:  time.Second,
			MaxRetries:      2,
		},
		ExpiryDays: 7,
	})

	// Stands in for the bearer-token middleware
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(middleware.AUTH_SUBJECT_KEY), testSubject)
		c.Next()
	})

	router.GET("/health", h.HealthCheck)
	router.POST("/claims", h.SubmitClaim)
	router.GET("/claims", h.ListMyClaims)
	router.GET("/claims/pending", h.GetPendingClaim)
	router.POST("/claims/:id/withdraw", h.WithdrawClaim)
	router.GET("/admin/claims", h.ListClaims)
	router.GET("/admin/claims/stats", h.GetClaimStats)
	router.GET("/admin/claims/:id", h.GetClaim)
	router.POST("/admin/claims/:id/review", h.MarkClaimUnderReview)
	router.POST("/admin/claims/:id/approve", h.ApproveClaim)
	router.POST("/admin/claims/:id/reject", h.RejectClaim)
	router.POST("/admin/instruments/:id/claimable", h.SetInstrumentClaimable)
	router.POST("/instruments/:id/changes", h.ProposeChange)
	router.GET("/instruments/:id/changes", h.GetChangeHistory)
	router.GET("/changes/pending", h.ListPendingChanges)
	router.POST("/admin/changes/:id/grace", h.SetGracePeriod)
	router.POST("/admin/changes/:id/apply", h.ApplyChange)
	router.POST("/admin/changes/:id/reject", h.RejectChange)
	router.POST("/transfers", h.InitiateTransfer)
	router.GET("/transfers", h.ListMyTransfers)
	router.GET("/transfers/:id", h.GetTransfer)
	router.POST("/transfers/:id/accept", h.AcceptTransfer)
	router.POST("/transfers/:id/decline", h.DeclineTransfer)
	router.POST("/transfers/:id/cancel", h.CancelTransfer)
	router.GET("/instruments/:id/transfers", h.GetTransferHistory)
	router.POST("/admin/transfers/:id/complete", h.CompleteTransfer)
	router.POST("/admin/transfers/sweep", h.SweepExpiredTransfers)

	f.router = router
	return f
}

func (f *handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func pendingClaim() *schema.OwnershipClaim {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &schema.OwnershipClaim{
		ID:               "claim-1",
		InstrumentID:     "inst-1",
		ClaimerID:        testSubject,
		Status:           domain.ClaimStatusPending,
		VerificationType: domain.VerificationReceipt,
		VerificationData: []byte(`{"receipt_url":"https://example.com/r.pdf"}`),
		ClaimReason:      "bought it in 1998",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

const submitBody = `{"instrument_id":"inst-1","verification_type":"receipt","verification_data":{"receipt_url":"https://example.com/r.pdf"},"claim_reason":"bought it in 1998"}`

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestSubmitClaim(t *testing.T) {
	f := newHandlerFixture(t)

	f.claims.EXPECT().
		SubmitClaim(gomock.Any(), claims.SubmitClaimInput{
			InstrumentID:     "inst-1",
			ClaimerID:        testSubject,
			VerificationType: domain.VerificationReceipt,
			VerificationData: map[string]string{"receipt_url": "https://example.com/r.pdf"},
			ClaimReason:      "bought it in 1998",
		}).
		Return(pendingClaim(), nil)

	w := f.do(http.MethodPost, "/claims", submitBody)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "claim-1", body["id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "https://example.com/r.pdf", body["verification_data"].(map[string]interface{})["receipt_url"])
}

func TestSubmitClaim_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"instrument_id":`},
		{name: "missing instrument", body: `{"verification_type":"receipt"}`},
		{name: "unknown verification type", body: `{"instrument_id":"inst-1","verification_type":"dna"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			w := f.do(http.MethodPost, "/claims", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Equal(t, "validation_failed", decode(t, w)["code"])
		})
	}
}

func TestSubmitClaim_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "duplicate claim", err: domain.ErrDuplicateClaim, wantStatus: http.StatusConflict, wantCode: "conflict"},
		{name: "not claimable", err: domain.ErrAlreadyClaimed, wantStatus: http.StatusConflict, wantCode: "conflict"},
		{name: "instrument missing", err: fmt.Errorf("%w: instrument inst-1", domain.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "bad evidence", err: fmt.Errorf("%w: receipt_url must be an absolute URL", domain.ErrInvalidInput), wantStatus: http.StatusUnprocessableEntity, wantCode: "validation_failed"},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
		{
			name:       "partial apply",
			err:        &domain.PartialApplyError{Operation: "approve_claim", InstrumentID: "inst-1", RecordID: "claim-1", Err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "reconciliation_required",
		},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.claims.EXPECT().SubmitClaim(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)

			w := f.do(http.MethodPost, "/claims", submitBody)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decode(t, w)["code"])
		})
	}
}

func TestSubmitClaim_TransientIsRetried(t *testing.T) {
	f := newHandlerFixture(t)
	transient := domain.NewTransientError("create_claim", errors.New("connection reset"))

	gomock.InOrder(
		f.claims.EXPECT().SubmitClaim(gomock.Any(), gomock.Any()).Return(nil, transient),
		f.claims.EXPECT().SubmitClaim(gomock.Any(), gomock.Any()).Return(pendingClaim(), nil),
	)

	w := f.do(http.MethodPost, "/claims", submitBody)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmitClaim_TransientExhausted(t *testing.T) {
	f := newHandlerFixture(t)
	transient := domain.NewTransientError("create_claim", errors.New("connection reset"))

	f.claims.EXPECT().SubmitClaim(gomock.Any(), gomock.Any()).Return(nil, transient).Times(3)

	w := f.do(http.MethodPost, "/claims", submitBody)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "service_unavailable", decode(t, w)["code"])
}

func TestListMyClaims(t *testing.T) {
	f := newHandlerFixture(t)
	status := domain.ClaimStatusPending
	subject := testSubject

	f.claimQuery.EXPECT().
		ListClaims(gomock.Any(), claims.ClaimFilter{Status: &status, ClaimerID: &subject}, 2, 5).
		Return(&claims.ClaimPage{
			Items: []store.ClaimWithInstrument{{
				OwnershipClaim:  *pendingClaim(),
				InstrumentMake:  "Gibson",
				InstrumentModel: "Les Paul",
			}},
			Total:      6,
			Page:       2,
			PerPage:    5,
			TotalPages: 2,
		}, nil)

	w := f.do(http.MethodGet, "/claims?status=pending&page=2&per_page=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 6, body["total"])
	assert.EqualValues(t, 2, body["total_pages"])
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	instrument := items[0].(map[string]interface{})["instrument"].(map[string]interface{})
	assert.Equal(t, "Gibson", instrument["make"])
}

func TestListClaims_Admin(t *testing.T) {
	f := newHandlerFixture(t)

	f.claimQuery.EXPECT().
		ListClaims(gomock.Any(), claims.ClaimFilter{Search: "les paul"}, claims.DefaultPage, claims.DefaultPerPage).
		Return(&claims.ClaimPage{Items: []store.ClaimWithInstrument{}, Page: 1, PerPage: 20}, nil)

	w := f.do(http.MethodGet, "/admin/claims?status=all&search=les+paul", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestListClaims_InvalidQuery(t *testing.T) {
	for _, query := range []string{"status=lost", "page=0", "page=abc", "per_page=500"} {
		t.Run(query, func(t *testing.T) {
			f := newHandlerFixture(t)

			w := f.do(http.MethodGet, "/admin/claims?"+query, "")

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestGetPendingClaim(t *testing.T) {
	f := newHandlerFixture(t)
	f.claimQuery.EXPECT().HasPendingClaim(gomock.Any(), testSubject, "inst-1").Return(true, nil)

	w := f.do(http.MethodGet, "/claims/pending?instrument_id=inst-1", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["has_pending_claim"])
	assert.Equal(t, "inst-1", body["instrument_id"])
}

func TestGetPendingClaim_MissingInstrument(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodGet, "/claims/pending", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdrawClaim(t *testing.T) {
	f := newHandlerFixture(t)
	withdrawn := pendingClaim()
	withdrawn.Status = domain.ClaimStatusWithdrawn
	f.claims.EXPECT().WithdrawClaim(gomock.Any(), "claim-1", testSubject).Return(withdrawn, nil)

	w := f.do(http.MethodPost, "/claims/claim-1/withdraw", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "withdrawn", decode(t, w)["status"])
}

func TestGetClaimStats(t *testing.T) {
	f := newHandlerFixture(t)
	f.claimQuery.EXPECT().GetClaimStats(gomock.Any()).Return(&claims.ClaimStats{Total: 3, Pending: 2, Approved: 1}, nil)

	w := f.do(http.MethodGet, "/admin/claims/stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 2, body["pending"])
}

func TestGetClaim_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	f.claimQuery.EXPECT().GetClaim(gomock.Any(), "missing").Return(nil, fmt.Errorf("%w: claim missing", domain.ErrNotFound))

	w := f.do(http.MethodGet, "/admin/claims/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimAdjudication(t *testing.T) {
	t.Run("review", func(t *testing.T) {
		f := newHandlerFixture(t)
		reviewed := pendingClaim()
		reviewed.Status = domain.ClaimStatusUnderReview
		f.claims.EXPECT().MarkUnderReview(gomock.Any(), "claim-1", testSubject).Return(reviewed, nil)

		w := f.do(http.MethodPost, "/admin/claims/claim-1/review", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "under_review", decode(t, w)["status"])
	})

	t.Run("approve", func(t *testing.T) {
		f := newHandlerFixture(t)
		approved := pendingClaim()
		approved.Status = domain.ClaimStatusApproved
		f.claims.EXPECT().ApproveClaim(gomock.Any(), "claim-1", testSubject).Return(approved, nil)

		w := f.do(http.MethodPost, "/admin/claims/claim-1/approve", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "approved", decode(t, w)["status"])
	})

	t.Run("approve terminal claim", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.claims.EXPECT().ApproveClaim(gomock.Any(), "claim-1", testSubject).Return(nil, domain.ErrInvalidState)

		w := f.do(http.MethodPost, "/admin/claims/claim-1/approve", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reject", func(t *testing.T) {
		f := newHandlerFixture(t)
		rejected := pendingClaim()
		rejected.Status = domain.ClaimStatusRejected
		f.claims.EXPECT().RejectClaim(gomock.Any(), "claim-1", testSubject, "receipt is for another guitar").Return(rejected, nil)

		w := f.do(http.MethodPost, "/admin/claims/claim-1/reject", `{"reason":"receipt is for another guitar"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rejected", decode(t, w)["status"])
	})

	t.Run("reject without reason", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.claims.EXPECT().RejectClaim(gomock.Any(), "claim-1", testSubject, "").Return(nil, domain.ErrMissingReason)

		w := f.do(http.MethodPost, "/admin/claims/claim-1/reject", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSetInstrumentClaimable(t *testing.T) {
	t.Run("missing flag", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(http.MethodPost, "/admin/instruments/inst-1/claimable", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("close", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.claims.EXPECT().SetClaimable(gomock.Any(), "inst-1", false, testSubject).
			Return(&schema.Instrument{ID: "inst-1", Make: "Fender", Model: "Stratocaster", IsClaimable: false}, nil)

		w := f.do(http.MethodPost, "/admin/instruments/inst-1/claimable", `{"claimable":false}`)

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["is_claimable"])
		assert.Equal(t, map[string]interface{}{}, body["specs"])
	})
}

func openChange() *schema.AttributeChange {
	newValue := "Sunburst"
	return &schema.AttributeChange{
		ID:              "chg-1",
		InstrumentID:    "inst-1",
		FieldName:       "finish",
		NewValue:        &newValue,
		ChangeReason:    "refinished",
		ChangedByUserID: testSubject,
		ChangeType:      domain.ChangeTypeUpdate,
	}
}

func TestProposeChange(t *testing.T) {
	f := newHandlerFixture(t)
	newValue := "Sunburst"
	f.attributes.EXPECT().
		ProposeChange(gomock.Any(), attributes.ProposeChangeInput{
			InstrumentID: "inst-1",
			FieldName:    "finish",
			NewValue:     &newValue,
			Reason:       "refinished",
			UserID:       testSubject,
		}).
		Return(openChange(), nil)

	w := f.do(http.MethodPost, "/instruments/inst-1/changes", `{"field_name":"finish","new_value":"Sunburst","reason":"refinished"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "chg-1", body["id"])
	assert.Equal(t, false, body["is_locked"])
}

func TestProposeChange_MissingField(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodPost, "/instruments/inst-1/changes", `{"new_value":"Sunburst"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListPendingChanges(t *testing.T) {
	t.Run("all instruments", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().ListPending(gomock.Any(), (*string)(nil)).Return(nil, nil)

		w := f.do(http.MethodGet, "/changes/pending", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []interface{}{}, decode(t, w)["items"])
	})

	t.Run("one instrument", func(t *testing.T) {
		f := newHandlerFixture(t)
		instrumentID := "inst-1"
		f.attributes.EXPECT().ListPending(gomock.Any(), &instrumentID).Return([]schema.AttributeChange{*openChange()}, nil)

		w := f.do(http.MethodGet, "/changes/pending?instrument_id=inst-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["items"], 1)
	})
}

func TestSetGracePeriod(t *testing.T) {
	t.Run("default days", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().SetGracePeriod(gomock.Any(), "chg-1", 0, testSubject).Return(openChange(), nil)

		w := f.do(http.MethodPost, "/admin/changes/chg-1/grace", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit days", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().SetGracePeriod(gomock.Any(), "chg-1", 14, testSubject).Return(openChange(), nil)

		w := f.do(http.MethodPost, "/admin/changes/chg-1/grace", `{"days":14}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("locked change", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().SetGracePeriod(gomock.Any(), "chg-1", 0, testSubject).Return(nil, domain.ErrInvalidState)

		w := f.do(http.MethodPost, "/admin/changes/chg-1/grace", "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestApplyAndRejectChange(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		f := newHandlerFixture(t)
		applied := openChange()
		applied.IsLocked = true
		applied.Outcome = domain.ChangeOutcomeApplied
		f.attributes.EXPECT().ApplyChange(gomock.Any(), "chg-1", testSubject).Return(applied, nil)

		w := f.do(http.MethodPost, "/admin/changes/chg-1/apply", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["is_locked"])
		assert.Equal(t, "applied", body["outcome"])
	})

	t.Run("apply partially written", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().ApplyChange(gomock.Any(), "chg-1", testSubject).
			Return(nil, &domain.PartialApplyError{Operation: "apply_change", InstrumentID: "inst-1", RecordID: "chg-1", Err: errors.New("lock failed")})

		w := f.do(http.MethodPost, "/admin/changes/chg-1/apply", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "reconciliation_required", decode(t, w)["code"])
	})

	t.Run("reject", func(t *testing.T) {
		f := newHandlerFixture(t)
		rejected := openChange()
		rejected.IsLocked = true
		rejected.Outcome = domain.ChangeOutcomeRejected
		f.attributes.EXPECT().RejectChange(gomock.Any(), "chg-1", testSubject).Return(rejected, nil)

		w := f.do(http.MethodPost, "/admin/changes/chg-1/reject", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "rejected", decode(t, w)["outcome"])
	})
}

func TestGetChangeHistory(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		f := newHandlerFixture(t)
		parked := openChange()
		parked.ID = "chg-2"
		failedAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		reason := "failed to apply attribute change: null value in column"
		parked.AutoApplyFailedAt = &failedAt
		parked.AutoApplyError = &reason
		f.attributes.EXPECT().History(gomock.Any(), "inst-1").
			Return([]schema.AttributeChange{*parked, *openChange()}, nil)

		w := f.do(http.MethodGet, "/instruments/inst-1/changes", "")

		require.Equal(t, http.StatusOK, w.Code)
		items := decode(t, w)["items"].([]interface{})
		require.Len(t, items, 2)
		first := items[0].(map[string]interface{})
		assert.Equal(t, "chg-2", first["id"])
		assert.Equal(t, reason, first["auto_apply_error"])
		assert.NotContains(t, items[1].(map[string]interface{}), "auto_apply_error")
	})

	t.Run("unknown instrument", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.attributes.EXPECT().History(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

		w := f.do(http.MethodGet, "/instruments/missing/changes", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func pendingTransfer() *schema.OwnershipTransfer {
	owner := testSubject
	recipient := "user-2"
	return &schema.OwnershipTransfer{
		ID:           "tr-1",
		InstrumentID: "inst-1",
		FromOwnerID:  &owner,
		ToOwnerID:    &recipient,
		Status:       domain.TransferStatusPending,
	}
}

func TestInitiateTransfer(t *testing.T) {
	f := newHandlerFixture(t)
	recipient := "user-2"
	f.transfers.EXPECT().
		Initiate(gomock.Any(), transfers.InitiateInput{
			InstrumentID: "inst-1",
			OwnerID:      testSubject,
			RecipientID:  &recipient,
			Notes:        "sold at the show",
		}).
		Return(pendingTransfer(), nil)

	w := f.do(http.MethodPost, "/transfers", `{"instrument_id":"inst-1","recipient_id":"user-2","notes":"sold at the show"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "user-2", body["to_owner_id"])
}

func TestInitiateTransfer_EmptyRecipient(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodPost, "/transfers", `{"instrument_id":"inst-1","recipient_id":"  "}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTransferTransitions(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		f := newHandlerFixture(t)
		accepted := pendingTransfer()
		accepted.Status = domain.TransferStatusAccepted
		f.transfers.EXPECT().Accept(gomock.Any(), "tr-1", testSubject).Return(accepted, nil)

		w := f.do(http.MethodPost, "/transfers/tr-1/accept", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "accepted", decode(t, w)["status"])
	})

	t.Run("decline without body", func(t *testing.T) {
		f := newHandlerFixture(t)
		declined := pendingTransfer()
		declined.Status = domain.TransferStatusDeclined
		f.transfers.EXPECT().Decline(gomock.Any(), "tr-1", testSubject, "").Return(declined, nil)

		w := f.do(http.MethodPost, "/transfers/tr-1/decline", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("decline with reason", func(t *testing.T) {
		f := newHandlerFixture(t)
		declined := pendingTransfer()
		declined.Status = domain.TransferStatusDeclined
		f.transfers.EXPECT().Decline(gomock.Any(), "tr-1", testSubject, "not mine").Return(declined, nil)

		w := f.do(http.MethodPost, "/transfers/tr-1/decline", `{"reason":"not mine"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cancel by stranger", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.transfers.EXPECT().Cancel(gomock.Any(), "tr-1", testSubject).Return(nil, domain.ErrForbidden)

		w := f.do(http.MethodPost, "/transfers/tr-1/cancel", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("complete", func(t *testing.T) {
		f := newHandlerFixture(t)
		completed := pendingTransfer()
		completed.Status = domain.TransferStatusCompleted
		f.transfers.EXPECT().Complete(gomock.Any(), "tr-1", testSubject).Return(completed, nil)

		w := f.do(http.MethodPost, "/admin/transfers/tr-1/complete", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "completed", decode(t, w)["status"])
	})
}

func TestListMyTransfers(t *testing.T) {
	f := newHandlerFixture(t)
	incoming := pendingTransfer()
	incoming.ID = "tr-2"
	sender := "user-3"
	me := testSubject
	incoming.FromOwnerID = &sender
	incoming.ToOwnerID = &me
	f.transfers.EXPECT().ListMine(gomock.Any(), testSubject).
		Return(&transfers.UserTransfers{
			Outgoing: []schema.OwnershipTransfer{*pendingTransfer()},
			Incoming: []schema.OwnershipTransfer{*incoming},
		}, nil)

	w := f.do(http.MethodGet, "/transfers", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	outgoing := body["outgoing"].([]interface{})
	received := body["incoming"].([]interface{})
	require.Len(t, outgoing, 1)
	require.Len(t, received, 1)
	assert.Equal(t, "tr-1", outgoing[0].(map[string]interface{})["id"])
	assert.Equal(t, "tr-2", received[0].(map[string]interface{})["id"])
}

func TestListMyTransfers_Empty(t *testing.T) {
	f := newHandlerFixture(t)
	f.transfers.EXPECT().ListMine(gomock.Any(), testSubject).Return(&transfers.UserTransfers{}, nil)

	w := f.do(http.MethodGet, "/transfers", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"outgoing":[],"incoming":[]}`, w.Body.String())
}

func TestGetTransfer(t *testing.T) {
	t.Run("party", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.transfers.EXPECT().Get(gomock.Any(), "tr-1", testSubject).Return(pendingTransfer(), nil)

		w := f.do(http.MethodGet, "/transfers/tr-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tr-1", decode(t, w)["id"])
	})

	t.Run("stranger", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.transfers.EXPECT().Get(gomock.Any(), "tr-9", testSubject).Return(nil, domain.ErrForbidden)

		w := f.do(http.MethodGet, "/transfers/tr-9", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.transfers.EXPECT().Get(gomock.Any(), "tr-0", testSubject).Return(nil, domain.ErrNotFound)

		w := f.do(http.MethodGet, "/transfers/tr-0", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTransferHistory(t *testing.T) {
	f := newHandlerFixture(t)
	completed := pendingTransfer()
	completed.Status = domain.TransferStatusCompleted
	f.transfers.EXPECT().History(gomock.Any(), "inst-1").Return([]schema.OwnershipTransfer{*completed}, nil)

	w := f.do(http.MethodGet, "/instruments/inst-1/transfers", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)
}

func TestSweepExpiredTransfers(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("configured threshold", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.clock.EXPECT().Now().Return(now)
		f.reaper.EXPECT().SweepExpired(gomock.Any(), now, 7).
			Return(&sweeper.SweepResult{ExpiredCount: 1, ExpiredIDs: []string{"tr-1"}}, nil)

		w := f.do(http.MethodPost, "/admin/transfers/sweep", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.EqualValues(t, 1, body["expired_count"])
		assert.Equal(t, []interface{}{"tr-1"}, body["expired_ids"])
	})

	t.Run("explicit threshold", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.clock.EXPECT().Now().Return(now)
		f.reaper.EXPECT().SweepExpired(gomock.Any(), now, 3).
			Return(&sweeper.SweepResult{ExpiredIDs: []string{}}, nil)

		w := f.do(http.MethodPost, "/admin/transfers/sweep", `{"threshold_days":3}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decode(t, w)["expired_count"])
	})
}
