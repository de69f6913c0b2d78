package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/config"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-hotseat/internal/transport/http"
	"github.com/iamasit07/connect4-hotseat/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-hotseat/internal/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	logFile, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("Failed to open log file")
	}
	defer logFile.Close()
	if envErr != nil {
		log.Info().Msg("No .env file found")
	}

	// 1. Connections + the single game session
	connManager := websocket.NewConnectionManager()
	session := game.NewSession(cfg.BoardWidth, cfg.BoardHeight, connManager)

	// 2. Handlers
	gameHandler := transportHttp.NewGameHandler(session)
	wsHandler := websocket.NewHandler(connManager, session, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || cfg.IsOriginAllowed(origin)
	})

	// 3. Router
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))

	gameHandler.Register(router)
	router.GET("/ws", wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("width", cfg.BoardWidth).Int("height", cfg.BoardHeight).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
