// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
)

const (
	// NonceSize is the GCM nonce length the protocol uses.
	NonceSize = 12
	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16
)

// OpenGCM decrypts ciphertext (with its tag appended) under key and nonce,
// authenticating aad. Any failure, including a nonce of the wrong length,
// yields [ErrDecryptionFailed] and no plaintext.
func OpenGCM(key DerivedKey, nonce, ciphertext, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize || len(ciphertext) < TagSize {
		return nil, ErrDecryptionFailed
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// SealGCM is the inverse of [OpenGCM]: it returns ciphertext || tag.
func SealGCM(key DerivedKey, nonce, plaintext, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

func newGCM(key DerivedKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithTagSize(block, TagSize)
}
