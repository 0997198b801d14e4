// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSecretEncoding is returned when the key token is not valid
	// base-58.
	ErrInvalidSecretEncoding = errors.New("base58 decode error")

	// ErrKeyLengthMismatch is matched by every [*KeyLengthError].
	ErrKeyLengthMismatch = errors.New("key length mismatch")

	// ErrZeroIterations is returned when the envelope asks for a KDF
	// iteration count of zero.
	ErrZeroIterations = errors.New("iterations must be non zero")

	// ErrDecryptionFailed covers every AES-GCM failure: wrong key, tampered
	// ciphertext or metadata, bad nonce length, truncated input. The causes
	// are deliberately not distinguished.
	ErrDecryptionFailed = errors.New("aes-256-gcm decryption error")

	// ErrInvalidNonceSize is returned when encrypting with a nonce that is
	// not [NonceSize] bytes long.
	ErrInvalidNonceSize = errors.New("invalid nonce size")
)

// KeyLengthError reports a decoded key of the wrong size.
type KeyLengthError struct {
	// Length is the number of bytes the token decoded to.
	Length int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("key length not match! expected %d, got %d", SecretSize, e.Length)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrKeyLengthMismatch
}
