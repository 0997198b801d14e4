// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}
	if cfg.App.MaxInflateSize < 0 {
		return fmt.Errorf("%w: max inflate size must not be negative", ErrInvalidAppConfigs)
	}

	switch cfg.Adapter.Backend {
	case BackendHTTP:
		u, err := url.Parse(cfg.Adapter.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
		}
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
		if cfg.Adapter.RetryCount < 0 {
			return fmt.Errorf("%w: retry count must not be negative", ErrInvalidAdapterConfigs)
		}
	case BackendFile:
		if cfg.Adapter.EnvelopeDir == "" {
			return fmt.Errorf("%w: envelope dir is required for the file backend", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidAdapterConfigs, cfg.Adapter.Backend)
	}

	if cfg.Storage.OutputDir == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.Concurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
