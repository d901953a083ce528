package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/conectajovem/platform/internal/api/http"
	"github.com/conectajovem/platform/internal/config"
	"github.com/conectajovem/platform/internal/platform/logger"
	"github.com/conectajovem/platform/internal/store"
	"github.com/conectajovem/platform/internal/store/postgres"
	"github.com/conectajovem/platform/internal/store/sqlite"
)

func main() {
	// Optional driver flag override (sqlite | postgres)
	dbDriver := flag.String("db-driver", "", "Override CONECTA_DB_DRIVER (sqlite, postgres)")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		bootLog := logger.New("conecta-service", "")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New("conecta-service", cfg.Environment)
	if *dbDriver != "" {
		cfg.DBDriver = *dbDriver
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid db-driver override")
		}
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Entity service starting…")

	var st store.Store
	switch cfg.DBDriver {
	case "postgres":
		st, err = postgres.Open(cfg.PostgresDSN)
	default:
		st, err = sqlite.Open(cfg.SQLitePath)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}
	defer func() { _ = st.Close() }()

	router := httpapi.NewRouter(st, cfg.UploadDir, cfg.PublicBaseURL)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
