// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/service"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

var _ Client = (*App)(nil)

// App is the decryptor command. It owns no resources: storages and the
// fetcher are created and closed by the caller.
type App struct {
	downloads service.PasteDownloadService
	history   service.HistoryService

	input     config.Input
	baseURL   string
	outputDir string
	buildInfo models.AppBuildInfo

	out           io.Writer
	readClipboard func() (string, error)

	logger *logger.Logger
}

// NewApp builds the application from wired services and the final
// configuration. Reports are written to out.
func NewApp(
	services *service.ClientServices,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	out io.Writer,
	logger *logger.Logger,
) (*App, error) {
	if services == nil {
		return nil, ErrNilServices
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &App{
		downloads:     services.DownloadService,
		history:       services.HistoryService,
		input:         cfg.Input,
		baseURL:       cfg.Adapter.BaseURL,
		outputDir:     cfg.Storage.OutputDir,
		buildInfo:     buildInfo,
		out:           out,
		readClipboard: clipboard.ReadAll,
		logger:        logger,
	}, nil
}

// Run executes the command selected by the input flags. For downloads it
// returns the joined errors of every failed paste, or nil when all of them
// were saved or skipped.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.input.ShowVersion:
		_, err := fmt.Fprintln(a.out, renderBuildInfo(a.buildInfo))
		return err
	case a.input.ShowHistory:
		return a.printHistory(ctx)
	}

	links, err := a.collectLinks()
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return ErrNoPastes
	}

	a.logger.Info().
		Str("func", "App.Run").
		Int("pastes", len(links)).
		Str("output_dir", a.outputDir).
		Bool("force", a.input.Force).
		Msg("downloading pastes")

	results := a.downloads.DownloadAll(ctx, links, a.outputDir, a.input.Force)
	if _, err = fmt.Fprintln(a.out, renderResults(results)); err != nil {
		return err
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("paste %s: %w", res.Link.PasteID, res.Err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) printHistory(ctx context.Context) error {
	records, err := a.history.List(ctx)
	if err != nil {
		return fmt.Errorf("list download history: %w", err)
	}

	_, err = fmt.Fprintln(a.out, renderHistory(records))
	return err
}

// collectLinks gathers links from every input source in a fixed order:
// -url values, then -key/-id, then the clipboard. Any malformed input fails
// the whole run before a request is made.
func (a *App) collectLinks() ([]models.Link, error) {
	links := make([]models.Link, 0, len(a.input.URLs)+2)

	for i, raw := range a.input.URLs {
		link, err := models.ParseLink(raw)
		if err != nil {
			return nil, fmt.Errorf("url #%d: %w", i+1, err)
		}
		links = append(links, link)
	}

	if a.input.Key != "" || a.input.PasteID != "" {
		if a.input.Key == "" || a.input.PasteID == "" {
			return nil, ErrIncompletePaste
		}
		links = append(links, models.Link{BaseURL: a.baseURL, PasteID: a.input.PasteID, Key: a.input.Key})
	}

	if a.input.FromClipboard {
		text, err := a.readClipboard()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrClipboard, err)
		}
		link, err := models.ParseLink(text)
		if err != nil {
			return nil, fmt.Errorf("clipboard: %w", err)
		}
		links = append(links, link)
	}

	return links, nil
}
