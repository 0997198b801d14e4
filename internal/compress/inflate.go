// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package compress handles the optional DEFLATE layer of paste payloads.
//
// Pastes marked "zlib" carry raw DEFLATE streams without the zlib header and
// Adler-32 trailer, matching what browser clients produce with pako's
// deflateRaw / CompressionStream("deflate-raw").
package compress

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

// Inflate returns data unchanged for [models.CompressionNone] and the inflated
// stream for [models.CompressionZlib]. No size limit is applied.
func Inflate(data []byte, kind models.CompressionType) ([]byte, error) {
	return InflateLimit(data, kind, 0)
}

// InflateLimit behaves like [Inflate] but fails with [ErrInflatedTooLarge] once
// the output grows beyond maxSize bytes. A maxSize of zero or less disables
// the limit.
func InflateLimit(data []byte, kind models.CompressionType, maxSize int64) ([]byte, error) {
	switch kind {
	case models.CompressionNone:
		if maxSize > 0 && int64(len(data)) > maxSize {
			return nil, ErrInflatedTooLarge
		}
		return data, nil
	case models.CompressionZlib:
	default:
		return nil, fmt.Errorf("%w: unsupported compression type %q", ErrDecompressionFailed, kind)
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	var src io.Reader = r
	if maxSize > 0 {
		src = io.LimitReader(r, maxSize+1)
	}

	out, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	if maxSize > 0 && int64(len(out)) > maxSize {
		return nil, ErrInflatedTooLarge
	}

	return out, nil
}

// Deflate compresses data as raw DEFLATE for [models.CompressionZlib] and
// returns it unchanged for [models.CompressionNone].
func Deflate(data []byte, kind models.CompressionType) ([]byte, error) {
	switch kind {
	case models.CompressionNone:
		return data, nil
	case models.CompressionZlib:
	default:
		return nil, fmt.Errorf("unsupported compression type %q", kind)
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
