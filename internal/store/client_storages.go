package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
)

// ClientStorages groups the local repositories into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// HistoryRepository is the SQLite-backed download history. When no
	// database is configured it records nothing and finds nothing.
	HistoryRepository HistoryRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. When cfg.DB.DSN is set it:
//  1. Opens an SQLite connection to the file path in cfg.DB.DSN, creating the
//     database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [HistoryRepository] to the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Debug().Str("func", "NewClientStorages").Msg("download history disabled")
		return &ClientStorages{HistoryRepository: nopHistoryRepository{}}, nil
	}

	logger.Debug().Str("func", "NewClientStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		HistoryRepository: NewHistoryRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
