package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/config"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/infrastructure/repository/memory"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/infrastructure/repository/postgres"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/loader"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/platform/logging"
	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/staging"
)

// App wires staging storage, the warehouse repositories and the load
// orchestrator for one loader process.
type App struct {
	cfg    config.Config
	logger *logging.Logger

	db           *sqlx.DB
	source       staging.Source
	writer       staging.BatchWriter
	orchestrator *loader.Orchestrator
}

// New builds the loader stack. With DB_URL set the warehouse lives in
// PostgreSQL behind traced connections; without it everything runs against
// seeded in-memory stores.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{cfg: cfg, logger: logger}

	if cfg.DBURL == "" {
		logger.Info("warehouse store", "backend", "memory")

		leagues := memory.NewLeagueRepository()
		teams := memory.NewTeamRepository(leagues)
		players := memory.NewPlayerRepository(teams)
		matches := memory.NewMatchRepository(leagues, teams)

		src := memory.SeedStagingSource()
		a.source = src
		a.writer = src
		a.orchestrator = loader.NewOrchestrator(loader.New(leagues, teams, players, matches, logger), logger)

		return a, nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect warehouse: %w", err)
	}

	logger.Info("warehouse store", "backend", "postgres", "database", dbNameFromURL(cfg.DBURL))

	store := postgres.NewStagingStore(db)
	a.db = db
	a.source = store
	a.writer = store
	a.orchestrator = loader.NewOrchestrator(loader.New(
		postgres.NewLeagueRepository(db),
		postgres.NewTeamRepository(db),
		postgres.NewPlayerRepository(db),
		postgres.NewMatchRepository(db),
		logger,
	), logger)

	return a, nil
}

// Run optionally ingests CSV extracts into staging, then executes a full
// dependency-ordered load and returns the per-entity reports.
func (a *App) Run(ctx context.Context) (loader.Result, error) {
	if a.cfg.CSVDir != "" {
		if err := a.ingestCSVDir(ctx); err != nil {
			return loader.Result{}, err
		}
	}

	return a.orchestrator.RunAll(ctx, a.source)
}

// ingestCSVDir writes <entity>s.csv extracts from CSVDir into staging. Missing
// files are skipped so partial drops still load.
func (a *App) ingestCSVDir(ctx context.Context) error {
	ingestor := staging.NewIngestor(a.writer, a.cfg.IngestWorkers, a.cfg.IngestChunkSize)

	for _, entity := range staging.LoadOrder() {
		path := filepath.Join(a.cfg.CSVDir, string(entity)+"s.csv")

		rows, err := staging.ReadCSVFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				a.logger.WarnContext(ctx, "csv extract missing, skipping", "entity", string(entity), "path", path)
				continue
			}
			return fmt.Errorf("read csv for %s: %w", entity, err)
		}

		written, err := ingestor.Ingest(ctx, entity, rows)
		if err != nil {
			return fmt.Errorf("ingest %s staging rows: %w", entity, err)
		}

		a.logger.InfoContext(ctx, "csv extract staged", "entity", string(entity), "rows", written)
	}

	return nil
}

// Close releases the warehouse connection when one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
