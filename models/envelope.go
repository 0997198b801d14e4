// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// CompressionType names the algorithm applied to the plaintext before it was
// encrypted.
type CompressionType string

const (
	// CompressionNone means the decrypted payload is used as-is.
	CompressionNone CompressionType = "none"
	// CompressionZlib means the decrypted payload is raw DEFLATE data
	// (no zlib header or trailer, despite the name used on the wire).
	CompressionZlib CompressionType = "zlib"
)

// UnmarshalJSON accepts only the two values known to the protocol.
func (c *CompressionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: compression_type: %v", ErrMetadataParse, err)
	}

	switch CompressionType(s) {
	case CompressionNone, CompressionZlib:
		*c = CompressionType(s)
		return nil
	default:
		return fmt.Errorf("%w: unknown compression_type %q", ErrMetadataParse, s)
	}
}

// Cipher holds the encryption parameters of a paste. Only IV, Salt,
// Iterations and Compression drive decryption; every field takes part in the
// associated data that the authentication tag covers.
type Cipher struct {
	IV          string          `json:"cipher_iv"`
	Salt        string          `json:"kdf_salt"`
	Iterations  uint32          `json:"kdf_iterations"`
	KeySize     uint32          `json:"kdf_keysize"`
	TagSize     uint32          `json:"cipher_tag_size"`
	Algorithm   string          `json:"cipher_algo"`
	Mode        string          `json:"cipher_mode"`
	Compression CompressionType `json:"compression_type"`
}

// requiredCipherFields is the number of leading positional parameters
// (iv, salt, iterations) that must be present and non-null.
const requiredCipherFields = 3

// cipherKeys are the member names of the keyed object form, in canonical
// order.
var cipherKeys = [...]string{
	"cipher_iv",
	"kdf_salt",
	"kdf_iterations",
	"kdf_keysize",
	"cipher_tag_size",
	"cipher_algo",
	"cipher_mode",
	"compression_type",
}

// cipherFields returns pointers to the fields of c in canonical order.
func (c *Cipher) cipherFields() []any {
	return []any{
		&c.IV,
		&c.Salt,
		&c.Iterations,
		&c.KeySize,
		&c.TagSize,
		&c.Algorithm,
		&c.Mode,
		&c.Compression,
	}
}

// MarshalJSON encodes c as the fixed-order array used on the wire and in the
// associated data. It never produces a keyed object.
func (c Cipher) MarshalJSON() ([]byte, error) {
	compression := c.Compression
	if compression == "" {
		compression = CompressionZlib
	}

	return marshalCompact([]any{
		c.IV,
		c.Salt,
		c.Iterations,
		c.KeySize,
		c.TagSize,
		c.Algorithm,
		c.Mode,
		compression,
	})
}

// UnmarshalJSON decodes either the positional array form
// [iv, salt, iterations, keysize, tagsize, algo, mode, compression] or a keyed
// object with the json field names of [Cipher]. Every parameter is part of the
// associated data, so the compression type is required in both forms.
func (c *Cipher) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("%w: empty cipher parameters", ErrMetadataParse)
	}

	var parsed Cipher
	switch b[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("%w: cipher parameters: %v", ErrMetadataParse, err)
		}
		fields := parsed.cipherFields()
		if len(items) != len(fields) {
			return fmt.Errorf("%w: cipher parameters: expected %d elements, got %d", ErrMetadataParse, len(fields), len(items))
		}
		for i, item := range items {
			if i < requiredCipherFields && bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
				return fmt.Errorf("%w: cipher parameter #%d is null", ErrMetadataParse, i)
			}
			if err := json.Unmarshal(item, fields[i]); err != nil {
				return wrapMetadataErr(fmt.Errorf("cipher parameter #%d: %w", i, err))
			}
		}
	case '{':
		obj, err := parseObject(b)
		if err != nil {
			return wrapMetadataErr(fmt.Errorf("cipher parameters: %w", err))
		}
		for i, field := range parsed.cipherFields() {
			key := cipherKeys[i]
			ok, err := obj.decode(key, field)
			if err != nil {
				return wrapMetadataErr(fmt.Errorf("cipher parameter %s: %w", key, err))
			}
			if !ok && (i < requiredCipherFields || i == len(cipherKeys)-1) {
				return fmt.Errorf("%w: missing %s", ErrMetadataParse, key)
			}
		}
	default:
		return fmt.Errorf("%w: cipher parameters must be an array or an object", ErrMetadataParse)
	}

	*c = parsed
	return nil
}

// DecodeIV returns the base64-decoded nonce.
func (c Cipher) DecodeIV() ([]byte, error) {
	return decodeField("cipher_iv", c.IV)
}

// DecodeSalt returns the base64-decoded KDF salt.
func (c Cipher) DecodeSalt() ([]byte, error) {
	return decodeField("kdf_salt", c.Salt)
}

// AData is the authenticated (but unencrypted) metadata of a paste:
// [cipher, formatter, open_discussion, burn_after_reading].
type AData struct {
	Cipher           Cipher
	Formatter        string
	OpenDiscussion   uint8
	BurnAfterReading uint8
}

// MarshalJSON encodes a as a four element array.
func (a AData) MarshalJSON() ([]byte, error) {
	return marshalCompact([]any{a.Cipher, a.Formatter, a.OpenDiscussion, a.BurnAfterReading})
}

// UnmarshalJSON decodes the four element array form.
func (a *AData) UnmarshalJSON(b []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("%w: adata: %v", ErrMetadataParse, err)
	}
	if len(items) != 4 {
		return fmt.Errorf("%w: adata: expected 4 elements, got %d", ErrMetadataParse, len(items))
	}

	var parsed AData
	if err := json.Unmarshal(items[0], &parsed.Cipher); err != nil {
		return wrapMetadataErr(err)
	}
	if err := json.Unmarshal(items[1], &parsed.Formatter); err != nil {
		return wrapMetadataErr(fmt.Errorf("adata formatter: %w", err))
	}
	if err := json.Unmarshal(items[2], &parsed.OpenDiscussion); err != nil {
		return wrapMetadataErr(fmt.Errorf("adata open discussion flag: %w", err))
	}
	if err := json.Unmarshal(items[3], &parsed.BurnAfterReading); err != nil {
		return wrapMetadataErr(fmt.Errorf("adata burn after reading flag: %w", err))
	}

	*a = parsed
	return nil
}

// Canonical returns the exact byte sequence the authentication tag was
// computed over: compact JSON, fixed element order, no HTML escaping.
// Re-encoding the metadata any other way (keyed object, different order,
// whitespace) makes every decryption fail.
func (a AData) Canonical() ([]byte, error) {
	return marshalCompact(a)
}

// Envelope is the encrypted paste as delivered by the server.
type Envelope struct {
	AData      AData  `json:"adata"`
	CipherText string `json:"ct"`
}

// UnmarshalJSON requires both adata and ct, matched by exact key; other keys
// are ignored.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	obj, err := parseObject(b)
	if err != nil {
		return wrapMetadataErr(err)
	}

	var parsed Envelope
	ok, err := obj.decode("adata", &parsed.AData)
	if err != nil {
		return wrapMetadataErr(err)
	}
	if !ok {
		return fmt.Errorf("%w: missing adata", ErrMetadataParse)
	}
	ok, err = obj.decode("ct", &parsed.CipherText)
	if err != nil {
		return wrapMetadataErr(fmt.Errorf("ct: %w", err))
	}
	if !ok {
		return fmt.Errorf("%w: missing ct", ErrMetadataParse)
	}

	*e = parsed
	return nil
}

// DecodeCipherText returns the base64-decoded ciphertext with its
// authentication tag appended.
func (e Envelope) DecodeCipherText() ([]byte, error) {
	return decodeField("ct", e.CipherText)
}

// ParseEnvelope decodes a server JSON document into an [Envelope]. Every
// failure matches [ErrMetadataParse].
func ParseEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, wrapMetadataErr(err)
	}
	return env, nil
}

func decodeField(name, value string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64: %v", ErrMetadataParse, name, err)
	}
	return decoded, nil
}

func wrapMetadataErr(err error) error {
	if errors.Is(err, ErrMetadataParse) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMetadataParse, err)
}
