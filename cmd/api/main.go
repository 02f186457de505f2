package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/hotseat-connect4/internal/config"
	"github.com/iamasit07/hotseat-connect4/internal/logging"
	"github.com/iamasit07/hotseat-connect4/internal/service/cleanup"
	"github.com/iamasit07/hotseat-connect4/internal/service/game"
	transportHttp "github.com/iamasit07/hotseat-connect4/internal/transport/http"
	"github.com/iamasit07/hotseat-connect4/internal/transport/websocket"
	"github.com/iamasit07/hotseat-connect4/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Info("No .env file found")
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := quartz.NewReal()

	// 1. Services
	sessions := game.NewSessionManager(game.Settings{
		GameOptions: cfg.Game.Options(),
		IdleTTL:     cfg.SessionIdleTTL,
		MaxSessions: cfg.MaxSessions,
	}, clock, logger)
	signer := auth.NewSigner(cfg.JWTSecret, cfg.SeatTokenTTL)

	// 2. Background workers
	cleanup.NewWorker(sessions, cfg.CleanupInterval, clock, logger).Start(ctx)

	// 3. Transport
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, sessions, signer, cfg.AllowedOrigins, logger)
	gameHandler := transportHttp.NewGameHandler(sessions, signer, cfg.SeatTokenTTL, cfg.IsProduction(), logger)

	router := transportHttp.NewRouter(transportHttp.RouterOptions{
		Games:          gameHandler,
		Signer:         signer,
		WebSocket:      wsHandler.HandleWebSocket,
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "next_round_starter", cfg.Game.NextRoundStarter)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connManager.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", "err", err)
	}

	logger.Info("Server exited gracefully")
}
