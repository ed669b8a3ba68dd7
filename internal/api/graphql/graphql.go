package graphql

import (
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/gin-gonic/gin"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
)

// Handler defines the interface for GraphQL API handlers
//
//go:generate mockgen -source=graphql.go -destination=../../mocks/graphql_handler.go -package=mocks -mock_names=Handler=MockGraphQLHandler
type Handler interface {
	// HandleGraphQL handles GraphQL queries
	HandleGraphQL(c *gin.Context)
}

// gqlHandler implements the Handler interface using gqlgen
type gqlHandler struct {
	server *handler.Server
}

// NewHandler creates a new GraphQL handler with gqlgen
func NewHandler(resolver *Resolver) Handler {
	srv := handler.New(NewExecutableSchema(resolver))
	srv.AddTransport(transport.POST{})
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)

	return &gqlHandler{server: srv}
}

// HandleGraphQL processes GraphQL queries
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	h.server.ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes.
// The claim read model is admin only, so the endpoint sits behind the admin guard.
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	router.POST("/api/v1/admin/graphql", auth.Auth(), auth.RequireAdmin(), handler.HandleGraphQL)
}
