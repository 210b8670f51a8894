package routes

import (
	"github.com/gin-gonic/gin"

	"blightwatch-be/middlewares"
)

// CaseRoutes sets up the citizen case routes
func CaseRoutes(citizen *gin.RouterGroup, d Deps) {
	h := d.Handler
	cfg := d.Config

	citizen.GET("/filters", h.FilterOptions)
	citizen.GET("/leaderboard", h.Leaderboard)
	citizen.GET("/profile", h.Profile)

	cases := citizen.Group("/cases")
	{
		cases.GET("", h.ListCases)
		cases.GET("/markers", h.CaseMarkers)
		cases.GET("/:id", h.GetCase)
		cases.POST("/:id/claim", h.ClaimCase)
		cases.POST("/:id/submit", h.SubmitReport)
		cases.POST("", middlewares.RateLimiter(
			d.Limiter, cfg.RateLimitPrefix, cfg.CaseSubmitLimit, cfg.CaseSubmitWindow, d.Logger,
		), h.CreateCase)
	}
}
