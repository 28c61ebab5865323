package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-shop-api/internal/config"
	"go-shop-api/internal/router"
	"go-shop-api/internal/ws"
	"go-shop-api/pkg/database"
	"go-shop-api/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.IsProduction(), cfg.LogLevel)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer database.Close(db)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	// 4. Routes
	app, err := router.New(db, wsHub)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	// 5. Graceful Shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Str("addr", addr).Msg("shop api listening")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
