package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-paste-decrypt/internal/config"
	"github.com/MKhiriev/go-paste-decrypt/internal/logger"
)

// NewFetcher returns the [Fetcher] selected by adapterCfg.Backend.
func NewFetcher(adapterCfg config.Adapter, logger *logger.Logger) (Fetcher, error) {
	switch adapterCfg.Backend {
	case config.BackendHTTP, "":
		return NewHTTPFetcher(adapterCfg, logger)
	case config.BackendFile:
		return NewFileFetcher(adapterCfg.EnvelopeDir, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, adapterCfg.Backend)
	}
}
