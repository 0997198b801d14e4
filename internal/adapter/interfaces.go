// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for obtaining
// encrypted paste envelopes.
//
// The primary abstraction is [Fetcher], which decouples the decryption
// pipeline from the place an envelope comes from. The package ships an
// HTTP implementation that talks to the paste service ([NewHTTPFetcher]) and
// a file implementation that reads envelopes saved on disk
// ([NewFileFetcher]). [NewFetcher] selects one from configuration.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrPasteNotFound] for a 404 or a missing file).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fetcher_mock.go -package=mock

// Fetcher retrieves the encrypted envelope of a paste. Implementations must
// not decrypt anything and never see the key: only link.BaseURL and
// link.PasteID are used.
type Fetcher interface {
	// Fetch returns the envelope identified by link. Malformed documents
	// yield an error matching [models.ErrMetadataParse].
	Fetch(ctx context.Context, link models.Link) (models.Envelope, error)
}
