package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	dashboardsvc "github.com/de-tools/rental-atlas/pkg/services/dashboard"
	"github.com/de-tools/rental-atlas/pkg/services/config"
	"github.com/de-tools/rental-atlas/pkg/services/dataset"
	"github.com/de-tools/rental-atlas/pkg/store/duckdb"
	"github.com/de-tools/rental-atlas/pkg/store/duckdb/rentals"
	"github.com/rs/zerolog"
)

// App is the loaded dataset together with the dashboard service built on it.
type App struct {
	Rentals   []domain.Rental
	Dashboard *dashboardsvc.Service

	db *sql.DB
}

// New loads the configured dataset and prepares the configured filter engine.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, registry dataset.Registry) (*App, error) {
	logger := zerolog.Ctx(ctx)

	data, err := dataset.Load(ctx, registry, cfg.Dataset)
	if err != nil {
		return nil, err
	}

	app := &App{Rentals: data}

	// A nil engine makes the service filter its own date-sorted copy in memory.
	var engine dashboardsvc.Engine
	switch cfg.EngineKind() {
	case domain.EngineDuckDB:
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.DuckDB.Path})
		if err != nil {
			return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		app.db = db

		store, err := rentals.NewStore(db)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to create rentals store: %w", err)
		}
		if err := store.Replace(ctx, data); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("failed to populate rentals store: %w", err)
		}
		engine = store
	}

	logger.Info().
		Str("engine", string(cfg.EngineKind())).
		Msg("filter engine ready")

	app.Dashboard = dashboardsvc.NewService(data, engine)
	return app, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
