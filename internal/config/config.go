// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// decryptor. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: log level and decryption limits.
	App App `envPrefix:"APP_"`

	// Adapter selects and tunes the backend that fetches encrypted pastes.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the download history database and the output directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the batch download pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Input holds what to download. It is only filled from flags.
	Input Input

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// MaxInflateSize caps the decompressed size of a paste in bytes. Zero
	// disables the cap.
	// Env: APP_MAX_INFLATE_SIZE
	MaxInflateSize int64 `env:"MAX_INFLATE_SIZE"`
}

// Adapter holds settings for fetching envelopes.
type Adapter struct {
	// Backend is "http" (fetch from the paste service) or "file" (read
	// saved envelopes from EnvelopeDir).
	// Env: ADAPTER_BACKEND
	Backend string `env:"BACKEND"`

	// BaseURL is used for pastes given as a bare ID and key.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// EnvelopeDir is the directory read by the "file" backend; envelopes
	// are stored as {pasteid}.json.
	// Env: ADAPTER_ENVELOPE_DIR
	EnvelopeDir string `env:"ENVELOPE_DIR"`

	// RequestTimeout bounds a single HTTP request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed GET is retried on 429/5xx.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWaitTime is the initial back-off between retries.
	// Env: ADAPTER_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the download history database settings.
	DB DB `envPrefix:"DB_"`

	// OutputDir is where attachments are written.
	// Env: STORAGE_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the SQLite file path. Empty disables the history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds batch pool settings.
type Workers struct {
	// Concurrency is the number of pastes processed at the same time.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Input lists the pastes requested on the command line.
type Input struct {
	// URLs are full paste URLs ({base}?{pasteid}#{key}).
	URLs []string
	// Key and PasteID describe one paste on [Adapter.BaseURL].
	Key     string
	PasteID string
	// FromClipboard adds the paste URL currently on the clipboard.
	FromClipboard bool
	// Force re-downloads pastes already present in the history.
	Force bool
	// ShowHistory prints the download history and exits.
	ShowHistory bool
	// ShowVersion prints the build information and exits.
	ShowVersion bool
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override earlier non-zero fields; MaxInflateSize and RetryCount also take
// an explicit zero):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
