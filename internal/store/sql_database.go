package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/migrations"
)

// DB wraps the history database connection.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// classify reports whether err is worth retrying. A DB built without a
// classifier uses [SQLiteErrorClassifier].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NewSQLiteErrorClassifier().Classify(err)
	}
	return db.errorClassificator.Classify(err)
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().
			Str("func", "DB.Migrate").
			Ints64("versions", applied).
			Msg("history schema migrated")
	}
	return nil
}
