// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DerivedKeySize is the AES-256 key length.
const DerivedKeySize = 32

// DerivedKey is the per-paste AES key. It is recomputed on every decryption
// and never stored.
type DerivedKey [DerivedKeySize]byte

// String keeps key material out of logs and fmt output.
func (k DerivedKey) String() string {
	return "DerivedKey(REDACTED)"
}

// DeriveKey runs PBKDF2-HMAC-SHA256 over the paste secret. The iteration count
// comes from the server, so zero is rejected with [ErrZeroIterations] before
// any work is done.
func DeriveKey(secret Secret, salt []byte, iterations uint32) (DerivedKey, error) {
	if iterations == 0 {
		return DerivedKey{}, ErrZeroIterations
	}

	var key DerivedKey
	copy(key[:], pbkdf2Key(secret[:], salt, iterations))
	return key, nil
}

func pbkdf2Key(password, salt []byte, iterations uint32) []byte {
	return pbkdf2.Key(password, salt, int(iterations), DerivedKeySize, sha256.New)
}
