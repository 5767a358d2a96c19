package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/crowdlaunch/challenge-backend/internal/config"
	"github.com/crowdlaunch/challenge-backend/internal/repository"
)

const (
	dbInitAttempts = 5
	dbInitDelay    = 5 * time.Second
)

// setupDatabase creates a new database connection pool
func setupDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	// Configure pool settings from config
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	poolConfig.MinConns = int32(cfg.DBMinConns)
	poolConfig.MaxConnLifetime = cfg.DBMaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.DBHealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	logger.Info("database connection pool created",
		zap.Int32("max_conns", poolConfig.MaxConns),
		zap.Int32("min_conns", poolConfig.MinConns),
		zap.Duration("max_conn_lifetime", poolConfig.MaxConnLifetime),
		zap.Duration("max_conn_idle_time", poolConfig.MaxConnIdleTime),
		zap.Duration("health_check_period", poolConfig.HealthCheckPeriod),
	)

	return pool, nil
}

// initDatabase pings the database, runs migrations and loads seed fixtures.
// The database container may still be coming up when the service starts, so
// the whole sequence is retried before failing the boot.
func initDatabase(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *zap.Logger) error {
	return retry.Do(
		func() error {
			if err := pool.Ping(ctx); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}

			logger.Info("Running database migrations", zap.Bool("reset", cfg.DBResetOnStart))
			if err := repository.RunMigrations(cfg.DatabaseURL, cfg.DBResetOnStart); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			logger.Info("Database migrations completed successfully")

			if err := repository.SeedFixtures(ctx, pool, cfg.SeedDataDir, logger); err != nil {
				return fmt.Errorf("seed fixtures: %w", err)
			}

			return nil
		},
		retry.Context(ctx),
		retry.Attempts(dbInitAttempts),
		retry.Delay(dbInitDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database not ready, retrying",
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
}
