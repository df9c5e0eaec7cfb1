package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/config"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/handler"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/seed"
	"github.com/Hiago-Cavalcante/furia-fan-chat/internal/service"
	pkglog "github.com/Hiago-Cavalcante/furia-fan-chat/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "furia-fan-chat",
	})
	logger := pkglog.L()

	// Load seed data (built-in defaults unless a seed file is configured)
	data, err := seed.Load(cfg.Seed.File)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("failed to load seed data")
	}
	logger.Info().Int("rooms", len(data.Rooms)).Int("matches", len(data.Matches)).Msg("seed data loaded")

	// Initialize session service
	session := service.NewSessionService(data, service.Options{
		BotInterval:    cfg.Bot.Interval,
		BotProbability: cfg.Bot.Probability,
		SimInterval:    cfg.Simulator.Interval,
		ScoreCap:       cfg.Simulator.ScoreCap,
	})

	// Start background schedulers (bot responder, score simulator)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session.Start(ctx)
	defer session.Stop()

	// Initialize HTTP handler
	httpHandler := handler.NewHandler(session)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Register routes
	httpHandler.RegisterRoutes(r)

	// Setup HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("addr", addr).Msg("furia-fan-chat starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("stopped")
}
