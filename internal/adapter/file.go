// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

// envelopeExt is the extension of saved envelope files.
const envelopeExt = ".json"

type fileFetcher struct {
	dir string

	logger *logger.Logger
}

// NewFileFetcher constructs a [Fetcher] that reads the envelope of paste
// {id} from {dir}/{id}.json. The document has the same shape as the paste
// service reply. The base URL of a link is ignored.
func NewFileFetcher(dir string, logger *logger.Logger) (Fetcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("envelope dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("envelope dir %q is not a directory", dir)
	}

	return &fileFetcher{dir: dir, logger: logger}, nil
}

// Fetch implements [Fetcher].
func (f *fileFetcher) Fetch(ctx context.Context, link models.Link) (models.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return models.Envelope{}, err
	}

	path, err := f.envelopePath(link.PasteID)
	if err != nil {
		return models.Envelope{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Envelope{}, fmt.Errorf("%w: %s", ErrPasteNotFound, link.PasteID)
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileFetcher.Fetch").Str("path", path).Msg("error reading envelope file")
		return models.Envelope{}, fmt.Errorf("read envelope: %w", err)
	}

	var status pasteStatus
	if err = json.Unmarshal(data, &status); err == nil && status.Status != 0 {
		return models.Envelope{}, fmt.Errorf("%w: %s", ErrPasteUnavailable, status.Message)
	}

	return models.ParseEnvelope(data)
}

// envelopePath rejects IDs that would escape the envelope directory.
func (f *fileFetcher) envelopePath(pasteID string) (string, error) {
	if pasteID == "" || pasteID != filepath.Base(pasteID) || strings.ContainsAny(pasteID, `/\`) || pasteID == "." || pasteID == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPasteID, pasteID)
	}
	return filepath.Join(f.dir, pasteID+envelopeExt), nil
}
