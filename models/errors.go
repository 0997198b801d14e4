// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrMetadataParse is returned when the envelope JSON is malformed, a
	// required field (cipher_iv, kdf_salt, kdf_iterations, ct) is missing, or
	// one of the base64 fields cannot be decoded.
	ErrMetadataParse = errors.New("malformed paste metadata")

	// ErrAttachmentParse is returned when the decrypted plaintext is not the
	// expected {attachment, attachment_name} record.
	ErrAttachmentParse = errors.New("malformed attachment")

	// ErrInvalidDataURI is returned by [Attachment.Decode] when the content
	// is not a base64 data URI.
	ErrInvalidDataURI = errors.New("invalid data URI")

	// ErrInvalidAttachmentName is returned when the suggested file name
	// cannot be used as a file name.
	ErrInvalidAttachmentName = errors.New("invalid attachment name")

	// ErrIllFormedLink is returned when a paste URL is not of the form
	// {base}?{pasteid}#{key}.
	ErrIllFormedLink = errors.New("url must be like https://paste.fitgirl-repacks.site/?{pasteid}#{key_base58}")
)
