package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-paste-decrypt/internal/adapter"
	"github.com/MKhiriev/go-paste-decrypt/internal/crypto"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/store"
	"github.com/MKhiriev/go-paste-decrypt/internal/utils"
	"github.com/MKhiriev/go-paste-decrypt/internal/workers"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

// DownloadResult is the outcome of one link passed to DownloadAll.
type DownloadResult struct {
	Link models.Link
	// Record describes the saved file, or the earlier download when
	// Skipped is set.
	Record models.DownloadRecord
	// Skipped is set when the paste was already downloaded or appeared
	// earlier in the same batch.
	Skipped bool
	Err     error
}

type pasteDownloadService struct {
	fetcher       adapter.Fetcher
	cryptoService PasteCryptoService
	history       store.HistoryRepository
	pool          *workers.Pool
	ids           *utils.UUIDGenerator
	now           func() time.Time

	logger *logger.Logger
}

func NewPasteDownloadService(
	fetcher adapter.Fetcher,
	cryptoService PasteCryptoService,
	history store.HistoryRepository,
	pool *workers.Pool,
	logger *logger.Logger,
) PasteDownloadService {
	return &pasteDownloadService{
		fetcher:       fetcher,
		cryptoService: cryptoService,
		history:       history,
		pool:          pool,
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		logger:        logger,
	}
}

func (p *pasteDownloadService) Resolve(link models.Link) (crypto.Secret, error) {
	if link.PasteID == "" {
		return crypto.Secret{}, ErrEmptyPasteID
	}
	return crypto.DecodeSecret(link.Key)
}

func (p *pasteDownloadService) Download(ctx context.Context, link models.Link) (models.Attachment, error) {
	// the key is checked before anything goes over the wire
	secret, err := p.Resolve(link)
	if err != nil {
		return models.Attachment{}, err
	}

	if _, ok := utils.GetRequestIDFromContext(ctx); !ok {
		ctx = utils.WithRequestID(ctx, p.ids.Generate())
	}

	env, err := p.fetcher.Fetch(ctx, link)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("fetch paste %s: %w", link.PasteID, err)
	}

	att, err := p.cryptoService.Decrypt(secret, env)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("decrypt paste %s: %w", link.PasteID, err)
	}

	return att, nil
}

func (p *pasteDownloadService) Save(ctx context.Context, link models.Link, att models.Attachment, dir string) (models.DownloadRecord, error) {
	if dir == "" {
		return models.DownloadRecord{}, ErrEmptyOutputDir
	}

	name, err := att.FileName()
	if err != nil {
		return models.DownloadRecord{}, err
	}
	_, data, err := att.Decode()
	if err != nil {
		return models.DownloadRecord{}, err
	}

	path := filepath.Join(dir, name)
	if err = writeFileAtomic(dir, name, data); err != nil {
		p.logger.Err(err).
			Str("func", "pasteDownloadService.Save").
			Str("paste_id", link.PasteID).
			Str("path", path).
			Msg("error writing attachment")
		return models.DownloadRecord{}, fmt.Errorf("%w %s: %w", ErrWriteAttachment, path, err)
	}

	rec := models.DownloadRecord{
		PasteID:        link.PasteID,
		AttachmentName: name,
		Path:           path,
		SHA256:         utils.HashString(data),
		Size:           int64(len(data)),
		DownloadedAt:   p.now().UTC(),
	}

	// the file is already on disk, a history failure only costs a re-download
	if err = p.history.Save(ctx, rec); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "pasteDownloadService.Save").
			Str("paste_id", link.PasteID).
			Msg("download not recorded in history")
	}

	return rec, nil
}

func (p *pasteDownloadService) DownloadAll(ctx context.Context, links []models.Link, dir string, force bool) []DownloadResult {
	results := make([]DownloadResult, len(links))
	jobs := make([]workers.Worker, len(links))

	seen := make(map[string]struct{}, len(links))
	for i, link := range links {
		results[i].Link = link

		if _, dup := seen[link.PasteID]; dup && link.PasteID != "" {
			results[i].Skipped = true
			continue
		}
		seen[link.PasteID] = struct{}{}

		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			return p.downloadOne(ctx, &results[i], dir, force)
		})
	}

	for i, err := range p.pool.Run(ctx, jobs...) {
		if err != nil {
			results[i].Err = err
		}
	}

	return results
}

func (p *pasteDownloadService) downloadOne(ctx context.Context, res *DownloadResult, dir string, force bool) error {
	log := p.logger.With().Str("paste_id", res.Link.PasteID).Logger()

	if !force {
		rec, err := p.history.Get(ctx, res.Link.PasteID)
		switch {
		case err == nil:
			log.Info().Str("func", "pasteDownloadService.DownloadAll").
				Str("path", rec.Path).
				Msg("already downloaded, skipping")
			res.Record = rec
			res.Skipped = true
			return nil
		case !errors.Is(err, store.ErrRecordNotFound):
			log.Warn().Err(err).Str("func", "pasteDownloadService.DownloadAll").Msg("history lookup failed")
		}
	}

	att, err := p.Download(ctx, res.Link)
	if err != nil {
		log.Err(err).Str("func", "pasteDownloadService.DownloadAll").Msg("download failed")
		return err
	}

	rec, err := p.Save(ctx, res.Link, att, dir)
	if err != nil {
		return err
	}

	log.Info().Str("func", "pasteDownloadService.DownloadAll").
		Str("path", rec.Path).
		Int64("size", rec.Size).
		Msg("attachment saved")
	res.Record = rec
	return nil
}

// writeFileAtomic writes data to {dir}/{name} through a temporary file in the
// same directory, so a crash never leaves a truncated attachment behind.
func writeFileAtomic(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.part")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	// CreateTemp opens the file 0600 and the rename keeps that mode
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}
