package routes

import (
	"github.com/gin-gonic/gin"

	"blightwatch-be/middlewares"
)

// AuthRoutes sets up citizen verification and admin sign-in.
func AuthRoutes(citizen, admin *gin.RouterGroup, d Deps) {
	h := d.Handler
	cfg := d.Config

	citizenLimit := middlewares.RateLimiter(d.Limiter, citizenAuthPrefix, cfg.AuthAttemptLimit, cfg.AuthAttemptWindow, d.Logger)
	auth := citizen.Group("/auth/citizen", citizenLimit)
	{
		auth.POST("/login", h.CitizenLogin)
		auth.POST("/verify", h.CitizenVerify)
	}
	citizen.GET("/session", h.GetSession)

	adminLimit := middlewares.RateLimiter(d.Limiter, adminAuthPrefix, cfg.AuthAttemptLimit, cfg.AuthAttemptWindow, d.Logger)
	admin.POST("/login", adminLimit, h.AdminLogin)
	admin.POST("/logout", h.AdminLogout)
	admin.POST("/signup", adminLimit, h.AdminSignup)
	admin.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret, d.Logger), h.AdminMe)
}
