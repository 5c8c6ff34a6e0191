package http

import (
	"drivexam_web/internal/backend"
	"drivexam_web/internal/config"
	"drivexam_web/internal/http/handlers"
	"drivexam_web/internal/http/middleware"
	"drivexam_web/internal/i18n"
	"drivexam_web/internal/referral"
	"drivexam_web/internal/session"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

// RegisterRoutes wires every page of the site. Page routes share one
// middleware chain: metrics, rate limit, visitor identity, referral capture.
// The capture middleware runs before any handler renders, so a referral
// link can land anywhere and the code is remembered.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store referral.Store, rdb *redis.Client, version string) {
	client := backend.New(cfg.BackendAPIURL)
	sessions := session.NewManager(cfg.SessionSecret)
	h := handlers.New(client, store, sessions, rdb, i18n.Lang(cfg.DefaultLang))
	healthHandler := handlers.NewHealthHandler(rdb, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)

	pages := r.Group("/")
	pages.Use(
		middleware.Metrics(),
		middleware.RedisRateLimit(cfg.PageRateLimit, cfg.PageRateWindow),
		middleware.Visitor(sessions),
		middleware.ReferralCapture(store),
	)

	// Public pages
	pages.GET("/", h.Home)
	pages.GET("/pricing", h.Pricing)
	pages.GET("/register", h.RegisterForm)
	pages.GET("/login", h.LoginForm)

	// Auth form posts carry their own brute-force limiter, in-memory so it
	// works even without Redis
	authRL := middleware.SimpleRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	pages.POST("/register", authRL, h.RegisterSubmit)
	pages.POST("/login", authRL, h.LoginSubmit)

	// Authenticated pages; a dead backend session redirects to /login
	pages.GET("/dashboard", h.Dashboard)
	pages.GET("/dashboard/subscription", h.SubscriptionPage)
	pages.GET("/dashboard/promo-codes", h.PromoCodesPage)
	pages.GET("/dashboard/referrals", h.ReferralsPage)
	pages.POST("/dashboard/referrals/create", h.ReferralCreate)

	// Language preference
	pages.POST("/lang", h.SetLang)
}
