package api

import (
	"github.com/courtcms/courtcms/internal/cache"
	"github.com/courtcms/courtcms/internal/store"
	"github.com/courtcms/courtcms/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, s *store.Store, judges cache.JudgeCache, log *logger.Logger) {
	h := NewHandlers(s, judges, log)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Case endpoints
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:id", h.GetCase)
		api.POST("/cases", h.CreateCase)
		api.PUT("/cases/:id", h.UpdateCase)
		api.DELETE("/cases/:id", h.DeleteCase)

		// Hearings nested under their owning case
		api.POST("/cases/:id/hearings", h.CreateHearing)
		api.PUT("/cases/:id/hearings/:hearingId", h.UpdateHearing)
		api.DELETE("/cases/:id/hearings/:hearingId", h.DeleteHearing)

		// Case-party links
		api.POST("/cases/:id/parties", h.AddPartyToCase)
		api.DELETE("/cases/:id/parties/:partyId", h.RemovePartyFromCase)

		// Party endpoints
		api.GET("/parties", h.ListParties)
		api.GET("/parties/:id", h.GetParty)
		api.POST("/parties", h.CreateParty)
		api.PUT("/parties/:id", h.UpdateParty)
		api.DELETE("/parties/:id", h.DeleteParty)

		// Judge endpoints
		api.GET("/judges", h.ListJudges)
		api.GET("/judges/:id", h.GetJudge)
		api.POST("/judges", h.CreateJudge)
		api.PUT("/judges/:id", h.UpdateJudge)
		api.DELETE("/judges/:id", h.DeleteJudge)
	}
}
