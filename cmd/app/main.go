package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drivexam_web/internal/config"
	"drivexam_web/internal/db"
	httpServer "drivexam_web/internal/http"
	"drivexam_web/internal/http/middleware"
	"drivexam_web/internal/logger"
	"drivexam_web/internal/referral"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	rdb := db.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	middleware.InitRateLimiter(rdb)

	var store referral.Store
	if rdb != nil {
		store = referral.NewRedisStore(rdb, cfg.ReferralTTL)
	} else {
		store = referral.NewMemStore()
	}

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, cfg, store, rdb, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("server exited")
}
