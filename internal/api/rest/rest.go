package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes, every route requires a bearer token
	v1 := router.Group("/api/v1", auth.Auth())
	{
		// Ownership claims
		v1.POST("/claims", handler.SubmitClaim)
		v1.GET("/claims", handler.ListMyClaims)
		v1.GET("/claims/pending", handler.GetPendingClaim)
		v1.POST("/claims/:id/withdraw", handler.WithdrawClaim)

		// Attribute changes
		v1.POST("/instruments/:id/changes", handler.ProposeChange)
		v1.GET("/instruments/:id/changes", handler.GetChangeHistory)
		v1.GET("/changes/pending", handler.ListPendingChanges)

		// Ownership transfers
		v1.POST("/transfers", handler.InitiateTransfer)
		v1.GET("/transfers", handler.ListMyTransfers)
		v1.GET("/transfers/:id", handler.GetTransfer)
		v1.POST("/transfers/:id/accept", handler.AcceptTransfer)
		v1.POST("/transfers/:id/decline", handler.DeclineTransfer)
		v1.POST("/transfers/:id/cancel", handler.CancelTransfer)
		v1.GET("/instruments/:id/transfers", handler.GetTransferHistory)
	}

	// Admin routes
	admin := v1.Group("/admin", auth.RequireAdmin())
	{
		admin.GET("/claims", handler.ListClaims)
		admin.GET("/claims/stats", handler.GetClaimStats)
		admin.GET("/claims/:id", handler.GetClaim)
		admin.POST("/claims/:id/review", handler.MarkClaimUnderReview)
		admin.POST("/claims/:id/approve", handler.ApproveClaim)
		admin.POST("/claims/:id/reject", handler.RejectClaim)
		admin.POST("/instruments/:id/claimable", handler.SetInstrumentClaimable)

		admin.POST("/changes/:id/grace", handler.SetGracePeriod)
		admin.POST("/changes/:id/apply", handler.ApplyChange)
		admin.POST("/changes/:id/reject", handler.RejectChange)

		admin.POST("/transfers/:id/complete", handler.CompleteTransfer)
		admin.POST("/transfers/sweep", handler.SweepExpiredTransfers)
	}
}
