package server_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/server"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/mocks"
)

type routerFixture struct {
	handler    *mocks.MockAPIHandler
	gqlHandler *mocks.MockGraphQLHandler
	router     *gin.Engine
	key        *rsa.PrivateKey
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)
	gqlHandler := mocks.NewMockGraphQLHandler(ctrl)
	srv := server.New(server.Config{AllowedOrigins: []string{"https://twng.example"}}, handler, gqlHandler, auth)

	return &routerFixture{handler: handler, gqlHandler: gqlHandler, router: srv.Router(), key: key}
}

func (f *routerFixture) token(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(f.key)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func respondOK(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRouter_HealthNeedsNoToken(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.EXPECT().HealthCheck(gomock.Any()).Do(respondOK)

	w := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UserRoutes(t *testing.T) {
	f := newRouterFixture(t)
	token := f.token(t, "user")

	f.handler.EXPECT().SubmitClaim(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().GetPendingClaim(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().WithdrawClaim(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().ProposeChange(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().ListPendingChanges(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().InitiateTransfer(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().DeclineTransfer(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().GetTransferHistory(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().GetChangeHistory(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().ListMyTransfers(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().GetTransfer(gomock.Any()).Do(respondOK)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/claims"},
		{http.MethodGet, "/api/v1/claims/pending?instrument_id=inst-1"},
		{http.MethodPost, "/api/v1/claims/claim-1/withdraw"},
		{http.MethodPost, "/api/v1/instruments/inst-1/changes"},
		{http.MethodGet, "/api/v1/changes/pending"},
		{http.MethodPost, "/api/v1/transfers"},
		{http.MethodPost, "/api/v1/transfers/tr-1/decline"},
		{http.MethodGet, "/api/v1/instruments/inst-1/transfers"},
		{http.MethodGet, "/api/v1/instruments/inst-1/changes"},
		{http.MethodGet, "/api/v1/transfers"},
		{http.MethodGet, "/api/v1/transfers/tr-1"},
	} {
		w := f.do(route.method, route.path, token)
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodPost, "/api/v1/claims", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	f := newRouterFixture(t)

	f.handler.EXPECT().ApproveClaim(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().GetClaimStats(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().ApplyChange(gomock.Any()).Do(respondOK)
	f.handler.EXPECT().SweepExpiredTransfers(gomock.Any()).Do(respondOK)

	admin := f.token(t, "admin")
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/admin/claims/claim-1/approve", admin).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/admin/claims/stats", admin).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/admin/changes/chg-1/apply", admin).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/admin/transfers/sweep", admin).Code)

	user := f.token(t, "user")
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/admin/claims/claim-1/approve", user).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/admin/transfers/tr-1/complete", user).Code)
}

func TestRouter_GraphQLIsAdminOnly(t *testing.T) {
	f := newRouterFixture(t)
	f.gqlHandler.EXPECT().HandleGraphQL(gomock.Any()).Do(respondOK)

	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/v1/admin/graphql", f.token(t, "admin")).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/admin/graphql", f.token(t, "user")).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/v1/admin/graphql", "").Code)
}
