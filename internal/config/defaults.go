package config

import (
	"time"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

// Backend names accepted by [Adapter.Backend].
const (
	BackendHTTP = "http"
	BackendFile = "file"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:       "info",
			MaxInflateSize: 256 << 20,
		},
		Adapter: Adapter{
			Backend:        BackendHTTP,
			BaseURL:        models.DefaultBaseURL,
			RequestTimeout: 30 * time.Second,
			RetryCount:     2,
			RetryWaitTime:  500 * time.Millisecond,
		},
		Storage: Storage{
			OutputDir: ".",
		},
		Workers: Workers{
			Concurrency: 4,
		},
	}
}
