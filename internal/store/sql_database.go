// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/migrations"
)

// DB wraps the raw connection with the pieces repositories need: a statement
// builder configured for the driver's placeholder style and an error
// classifier for retry decisions.
type DB struct {
	*sql.DB
	sb                 sq.StatementBuilderType
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Connect opens a database connection for the configured driver and pings it.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

const maxExecAttempts = 3

// execWithRetry runs fn, retrying up to two more times when the error
// classifier marks the failure as transient. Without a classifier every
// error is final.
func (db *DB) execWithRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxExecAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
	return err
}
