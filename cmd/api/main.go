package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/brain/internal/config"
	"github.com/iamasit07/4-in-a-row/brain/internal/service/brain"
	transportHttp "github.com/iamasit07/4-in-a-row/brain/internal/transport/http"
	"github.com/iamasit07/4-in-a-row/brain/internal/transport/websocket"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	config.SetupLogger(cfg)
	if envErr != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	moveHandler := transportHttp.NewMoveHandler(cfg.DefaultDepth, brain.FourInARow)
	wsHandler := websocket.NewHandler(cfg, brain.FourInARow)
	router := transportHttp.NewRouter(cfg, moveHandler, wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Int("default_depth", cfg.DefaultDepth).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
