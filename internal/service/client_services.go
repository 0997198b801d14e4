package service

import (
	"github.com/MKhiriev/go-paste-decrypt/internal/adapter"
	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
	"github.com/MKhiriev/go-paste-decrypt/internal/store"
	"github.com/MKhiriev/go-paste-decrypt/internal/workers"
)

type ClientServices struct {
	CryptoService   PasteCryptoService
	DownloadService PasteDownloadService
	HistoryService  HistoryService
}

func NewClientServices(
	storages *store.ClientStorages,
	fetcher adapter.Fetcher,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *ClientServices {
	cryptoSvc := NewPasteCryptoService(cfg.App.MaxInflateSize, logger)
	pool := workers.NewPool(cfg.Workers.Concurrency, logger)

	return &ClientServices{
		CryptoService:   cryptoSvc,
		DownloadService: NewPasteDownloadService(fetcher, cryptoSvc, storages.HistoryRepository, pool, logger),
		HistoryService:  NewHistoryService(storages.HistoryRepository),
	}
}
