package schemasync

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"asset-manager-api/internal/infrastructure/db/postgres/migrations"
)

const runTimeout = 30 * time.Second

// Syncer applies the embedded schema migrations from a background
// worker. Requests are acknowledged first, applied later.
type Syncer struct {
	log      *zap.Logger
	db       *sql.DB
	mCounter *prometheus.CounterVec
	jobs     chan struct{}
}

func New(pool *pgxpool.Pool, logger *zap.Logger, mCounter *prometheus.CounterVec) *Syncer {
	return &Syncer{
		log:      logger,
		db:       stdlib.OpenDBFromPool(pool),
		mCounter: mCounter,
		jobs:     make(chan struct{}, 1),
	}
}

// Trigger schedules one background run. A request made while another
// is still pending coalesces into it and returns false.
func (s *Syncer) Trigger() bool {
	select {
	case s.jobs <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Syncer) SyncWorker(ctx context.Context) {
	s.log.Info("starting schema sync worker")

	defer func() {
		s.log.Info("schema sync worker gracefully stopped")
	}()

	for {
		select {
		case <-s.jobs:
			if err := s.run(ctx); err != nil {
				// alert
				s.log.Error("schema sync failed", zap.Error(err))
				s.mCounter.WithLabelValues("schema_sync_failures_total").Inc()
				continue
			}
			s.mCounter.WithLabelValues("schema_sync_runs_total").Inc()
		case <-ctx.Done():
			return
		}
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (s *Syncer) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	s.log.Info("applying schema migrations")

	return gooseUpContext(ctx, s.db, ".")
}
