package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/atomdellow/gamingblocksite/internal/config"
	"github.com/atomdellow/gamingblocksite/internal/database"
	"github.com/atomdellow/gamingblocksite/internal/logging"
	"github.com/atomdellow/gamingblocksite/internal/metrics"
	"github.com/atomdellow/gamingblocksite/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Setup(cfg.LogLevel)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	poolStats := metrics.NewPoolStatsCollector(db.SQLDB())
	poolStats.Start(15 * time.Second)
	defer poolStats.Stop()

	srv := server.New(cfg, db).HTTPServer()

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server exited")
}
