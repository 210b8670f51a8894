package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blightwatch-be/config"
	"blightwatch-be/controllers"
	"blightwatch-be/limiter"
	"blightwatch-be/middlewares"
	"blightwatch-be/session"
	"blightwatch-be/utils"
)

// Deps is everything the router needs beyond the handler itself.
type Deps struct {
	Handler  *controllers.Handler
	Sessions session.Store
	Limiter  limiter.Counter
	Config   *config.Config
	Logger   *zap.Logger
}

// Rate limit key prefixes for the sign-in endpoints.
const (
	citizenAuthPrefix = "citizen_auth"
	adminAuthPrefix   = "admin_auth"
)

// NewRouter builds the engine with CORS, request logging and every route.
func NewRouter(d Deps) (*gin.Engine, error) {
	controllers.UseJSONFieldNames()

	r := gin.New()
	// Client IPs key the rate limiter, so X-Forwarded-For is honoured only
	// from configured proxies.
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.SessionHeader},
		ExposeHeaders:    []string{middlewares.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Session and auth cookies are sent cross-site in production, so every
	// API write must carry a JSON body to force a CORS preflight.
	api := r.Group("/api", middlewares.RequireJSON())

	citizen := api.Group("", middlewares.Session(
		d.Sessions,
		utils.CookieOptions{Domain: d.Config.Domain, Production: d.Config.IsProduction()},
		d.Config.SessionTTL,
		d.Logger,
	))
	AuthRoutes(citizen, api.Group("/admin"), d)
	CaseRoutes(citizen, d)
	AdminRoutes(api.Group("/admin",
		middlewares.AuthMiddleware(d.Config.JWTSecret, d.Logger),
		middlewares.RequireRole("admin"),
	), d)

	return r, nil
}
