package store

import (
	"context"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository records which pastes have been downloaded and where
// their attachments were written.
type HistoryRepository interface {
	// Save inserts rec, replacing an earlier record of the same paste.
	Save(ctx context.Context, rec models.DownloadRecord) error
	// Get returns the record of pasteID or [ErrRecordNotFound].
	Get(ctx context.Context, pasteID string) (models.DownloadRecord, error)
	// List returns every record, newest first.
	List(ctx context.Context) ([]models.DownloadRecord, error)
}
