package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-paste-decrypt/internal/adapter"
	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/crypto"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/mock"
	"github.com/MKhiriev/go-paste-decrypt/internal/service"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

const (
	sampleKey = "SKYwGaZwZmRbN2fR4R9QQJzLTmzpctbDE7kZNpwesRW"
	sampleURL = "https://paste.fitgirl-repacks.site/?225484ced69df1d1#" + sampleKey
)

type appDeps struct {
	downloads *mock.MockPasteDownloadService
	history   *mock.MockHistoryService
	out       *bytes.Buffer
}

func newTestApp(t *testing.T, input config.Input) (*App, appDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := appDeps{
		downloads: mock.NewMockPasteDownloadService(ctrl),
		history:   mock.NewMockHistoryService(ctrl),
		out:       &bytes.Buffer{},
	}
	services := &service.ClientServices{
		DownloadService: deps.downloads,
		HistoryService:  deps.history,
	}
	cfg := &config.StructuredConfig{
		Adapter: config.Adapter{BaseURL: "https://paste.example/"},
		Storage: config.Storage{OutputDir: "/downloads"},
		Input:   input,
	}

	app, err := NewApp(services, cfg, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), deps.out, logger.Nop())
	require.NoError(t, err)
	app.readClipboard = func() (string, error) {
		t.Fatal("clipboard must not be read")
		return "", nil
	}

	return app, deps
}

func TestNewApp_NilArguments(t *testing.T) {
	_, err := NewApp(nil, &config.StructuredConfig{}, models.AppBuildInfo{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNilServices)

	_, err = NewApp(&service.ClientServices{}, nil, models.AppBuildInfo{}, &bytes.Buffer{}, logger.Nop())
	require.ErrorIs(t, err, ErrNilConfig)
}

func TestApp_Run_Version(t *testing.T) {
	app, deps := newTestApp(t, config.Input{ShowVersion: true, URLs: []string{sampleURL}})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "v1.2.3")
	assert.Contains(t, deps.out.String(), "abc123")
}

func TestApp_Run_History(t *testing.T) {
	app, deps := newTestApp(t, config.Input{ShowHistory: true})

	deps.history.EXPECT().List(gomock.Any()).Return([]models.DownloadRecord{
		{PasteID: "225484ced69df1d1", Path: "/downloads/game.torrent", Size: 2048, DownloadedAt: time.Now()},
	}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "225484ced69df1d1")
	assert.Contains(t, deps.out.String(), "/downloads/game.torrent")
	assert.Contains(t, deps.out.String(), "2.0 KiB")
}

func TestApp_Run_HistoryError(t *testing.T) {
	app, deps := newTestApp(t, config.Input{ShowHistory: true})

	boom := errors.New("disk I/O error")
	deps.history.EXPECT().List(gomock.Any()).Return(nil, boom)

	err := app.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestApp_Run_CollectsEveryInput(t *testing.T) {
	app, deps := newTestApp(t, config.Input{
		URLs:          []string{sampleURL},
		Key:           sampleKey,
		PasteID:       "bare",
		FromClipboard: true,
		Force:         true,
	})
	app.readClipboard = func() (string, error) {
		return "https://other.example/?clip#" + sampleKey + "\n", nil
	}

	want := []models.Link{
		{BaseURL: "https://paste.fitgirl-repacks.site/", PasteID: "225484ced69df1d1", Key: sampleKey},
		{BaseURL: "https://paste.example/", PasteID: "bare", Key: sampleKey},
		{BaseURL: "https://other.example/", PasteID: "clip", Key: sampleKey},
	}
	deps.downloads.EXPECT().
		DownloadAll(gomock.Any(), want, "/downloads", true).
		Return([]service.DownloadResult{
			{Link: want[0], Record: models.DownloadRecord{Path: "/downloads/a.torrent", Size: 10}},
			{Link: want[1], Skipped: true, Record: models.DownloadRecord{Path: "/downloads/b.torrent"}},
			{Link: want[2], Record: models.DownloadRecord{Path: "/downloads/c.torrent", Size: 20}},
		})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, deps.out.String(), "2 saved, 1 skipped, 0 failed")
}

func TestApp_Run_JoinsFailures(t *testing.T) {
	app, deps := newTestApp(t, config.Input{URLs: []string{sampleURL, "https://paste.example/?gone#" + sampleKey}})

	deps.downloads.EXPECT().DownloadAll(gomock.Any(), gomock.Len(2), "/downloads", false).
		DoAndReturn(func(_ context.Context, links []models.Link, _ string, _ bool) []service.DownloadResult {
			return []service.DownloadResult{
				{Link: links[0], Err: crypto.ErrDecryptionFailed},
				{Link: links[1], Err: adapter.ErrPasteNotFound},
			}
		})

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.ErrorIs(t, err, adapter.ErrPasteNotFound)
	assert.Contains(t, err.Error(), "225484ced69df1d1")
	assert.Contains(t, err.Error(), "gone")
	assert.Contains(t, deps.out.String(), "0 saved, 0 skipped, 2 failed")
}

func TestApp_Run_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   config.Input
		wantErr error
	}{
		{name: "nothing to do", input: config.Input{}, wantErr: ErrNoPastes},
		{name: "ill-formed url", input: config.Input{URLs: []string{"https://paste.example/#key"}}, wantErr: models.ErrIllFormedLink},
		{name: "key without id", input: config.Input{Key: sampleKey}, wantErr: ErrIncompletePaste},
		{name: "id without key", input: config.Input{PasteID: "abc"}, wantErr: ErrIncompletePaste},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no DownloadAll expectation: nothing may be fetched
			app, _ := newTestApp(t, tt.input)

			err := app.Run(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_ClipboardErrors(t *testing.T) {
	t.Run("read failure", func(t *testing.T) {
		app, _ := newTestApp(t, config.Input{FromClipboard: true})
		app.readClipboard = func() (string, error) { return "", errors.New("no clipboard utilities available") }

		err := app.Run(context.Background())
		require.ErrorIs(t, err, ErrClipboard)
	})

	t.Run("not a paste url", func(t *testing.T) {
		app, _ := newTestApp(t, config.Input{FromClipboard: true})
		app.readClipboard = func() (string, error) { return "shopping list", nil }

		err := app.Run(context.Background())
		require.ErrorIs(t, err, models.ErrIllFormedLink)
	})
}
