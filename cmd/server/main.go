// Command server runs the workspace REST API: auth, tasks, and notes backed
// by a JSON file (default) or SQLite.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/workboard/workspace/internal/api"
	"github.com/workboard/workspace/internal/infrastructure/config"
	"github.com/workboard/workspace/internal/infrastructure/db/jsonfile"
	"github.com/workboard/workspace/internal/infrastructure/db/sqlite"
	"github.com/workboard/workspace/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty || cfg.Env == "development",
	})

	repos, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}

	e := api.NewRouter(repos, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Store.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func buildRepositories(cfg *config.Config) (api.Repositories, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return api.Repositories{}, err
		}
		return api.Repositories{
			Auth:  sqlite.NewAuthRepository(db),
			Tasks: sqlite.NewTaskRepository(db),
			Notes: sqlite.NewNoteRepository(db),
		}, nil
	default:
		store, err := jsonfile.Open(cfg.Store.DataFile)
		if err != nil {
			return api.Repositories{}, err
		}
		return api.Repositories{
			Auth:  jsonfile.NewAuthRepository(store),
			Tasks: jsonfile.NewTaskRepository(store),
			Notes: jsonfile.NewNoteRepository(store),
		}, nil
	}
}
