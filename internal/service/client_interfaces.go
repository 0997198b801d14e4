package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-paste-decrypt/internal/crypto"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

// PasteCryptoService turns an encrypted envelope into its attachment and
// back. Implementations are pure: no I/O, no shared mutable state, safe for
// concurrent use.
type PasteCryptoService interface {
	// Decrypt runs the whole pipeline for one paste: metadata decoding, key
	// derivation, AES-256-GCM decryption bound to the canonical associated
	// data, optional inflation and attachment parsing. The first failing
	// stage aborts with its own error and no attachment is returned.
	Decrypt(secret crypto.Secret, env models.Envelope) (models.Attachment, error)

	// Encrypt is the inverse of Decrypt. Zero fields of opts are filled with
	// random nonce and salt and the protocol defaults.
	Encrypt(secret crypto.Secret, att models.Attachment, opts SealOptions) (models.Envelope, error)
}

// PasteDownloadService fetches pastes, decrypts them and writes their
// attachments to disk.
type PasteDownloadService interface {
	// Resolve decodes the base-58 key of link.
	Resolve(link models.Link) (crypto.Secret, error)

	// Download fetches and decrypts the paste identified by link.
	Download(ctx context.Context, link models.Link) (models.Attachment, error)

	// Save decodes the data URI of att, writes the payload to
	// {dir}/{attachment name} and records the download in the history.
	Save(ctx context.Context, link models.Link, att models.Attachment, dir string) (models.DownloadRecord, error)

	// DownloadAll downloads and saves every link in parallel. Links already
	// present in the history are skipped unless force is set. The result has
	// one entry per link, in input order.
	DownloadAll(ctx context.Context, links []models.Link, dir string, force bool) []DownloadResult
}

// HistoryService is a read view over the download history.
type HistoryService interface {
	// Seen reports whether pasteID has been downloaded before and returns
	// its record.
	Seen(ctx context.Context, pasteID string) (models.DownloadRecord, bool, error)

	// List returns every recorded download, newest first.
	List(ctx context.Context) ([]models.DownloadRecord, error)
}
