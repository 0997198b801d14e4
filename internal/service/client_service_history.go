package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-paste-decrypt/internal/store"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

type historyService struct {
	history store.HistoryRepository
}

func NewHistoryService(history store.HistoryRepository) HistoryService {
	return &historyService{history: history}
}

func (h *historyService) Seen(ctx context.Context, pasteID string) (models.DownloadRecord, bool, error) {
	rec, err := h.history.Get(ctx, pasteID)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.DownloadRecord{}, false, nil
	}
	if err != nil {
		return models.DownloadRecord{}, false, err
	}
	return rec, true, nil
}

func (h *historyService) List(ctx context.Context) ([]models.DownloadRecord, error) {
	return h.history.List(ctx)
}
