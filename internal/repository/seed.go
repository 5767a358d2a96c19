package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// seedFiles are the optional fixture files looked up under the seed
// directory, executed in order. Absent files are skipped with a warning.
var seedFiles = []string{
	"init_db.sql",
	"mock_data.sql",
}

// SeedFixtures loads fixture SQL from the seed directory. A missing
// directory or file is not an error; a file that exists but fails to
// execute is.
func SeedFixtures(ctx context.Context, db *pgxpool.Pool, dir string, logger *zap.Logger) error {
	for _, name := range seedFiles {
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("seed file not found, skipping", zap.String("path", path))
				continue
			}
			return fmt.Errorf("read seed file %s: %w", path, err)
		}

		if _, err := db.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute seed file %s: %w", path, err)
		}

		logger.Info("seed file applied", zap.String("path", path))
	}

	return nil
}
