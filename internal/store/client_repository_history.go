package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

type historyRepository struct {
	*DB
	// backoff is consulted when a write fails because another connection
	// holds the database lock.
	backoff func() retry.Backoff
	logger  *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:      db,
		backoff: defaultWriteBackoff,
		logger:  logger,
	}
}

func defaultWriteBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(20*time.Millisecond))
}

func (h *historyRepository) Save(ctx context.Context, rec models.DownloadRecord) error {
	query, args, err := buildSaveDownloadQuery(rec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = retry.Do(ctx, h.backoff(), func(ctx context.Context) error {
		var execErr error
		res, execErr = h.DB.ExecContext(ctx, query, args...)
		if execErr != nil && h.classify(execErr) == Retryable {
			h.logger.Warn().Err(execErr).
				Str("func", "historyRepository.Save").
				Str("paste_id", rec.PasteID).
				Msg("history database is busy, retrying")
			return retry.RetryableError(execErr)
		}
		return execErr
	})
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Save").
			Str("paste_id", rec.PasteID).
			Msg("failed to execute upsert for download record")
		return fmt.Errorf("%w: save download record (paste_id=%s): %w", ErrExecutingQuery, rec.PasteID, err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return ErrRecordNotSaved
	}

	return nil
}

func (h *historyRepository) Get(ctx context.Context, pasteID string) (models.DownloadRecord, error) {
	query, args, err := buildGetDownloadQuery(pasteID)
	if err != nil {
		return models.DownloadRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.DownloadRecord
	err = h.DB.QueryRowContext(ctx, query, args...).Scan(
		&rec.PasteID,
		&rec.AttachmentName,
		&rec.Path,
		&rec.Size,
		&rec.SHA256,
		&rec.DownloadedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DownloadRecord{}, ErrRecordNotFound
	}
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.Get").
			Str("paste_id", pasteID).
			Msg("failed to scan download row")
		return models.DownloadRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (h *historyRepository) List(ctx context.Context) ([]models.DownloadRecord, error) {
	query, args, err := buildListDownloadsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.DB.QueryContext(ctx, query, args...)
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyRepository.List").
			Msg("failed to execute query for listing downloads")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.DownloadRecord

	for rows.Next() {
		var rec models.DownloadRecord

		scanErr := rows.Scan(
			&rec.PasteID,
			&rec.AttachmentName,
			&rec.Path,
			&rec.Size,
			&rec.SHA256,
			&rec.DownloadedAt,
		)
		if scanErr != nil {
			h.logger.Err(scanErr).
				Str("func", "historyRepository.List").
				Msg("failed to scan download row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		h.logger.Err(rowsErr).
			Str("func", "historyRepository.List").
			Msg("error iterating download rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// nopHistoryRepository is used when no history database is configured.
type nopHistoryRepository struct{}

func (nopHistoryRepository) Save(context.Context, models.DownloadRecord) error { return nil }

func (nopHistoryRepository) Get(context.Context, string) (models.DownloadRecord, error) {
	return models.DownloadRecord{}, ErrRecordNotFound
}

func (nopHistoryRepository) List(context.Context) ([]models.DownloadRecord, error) { return nil, nil }
