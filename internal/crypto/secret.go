// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// SecretSize is the length of a paste master key in bytes.
const SecretSize = 32

// Secret is the paste master key taken from the URL fragment. It is a value
// type so that callers hold their own copy.
type Secret [SecretSize]byte

// DecodeSecret decodes a base-58 key token. It fails with
// [ErrInvalidSecretEncoding] on malformed input and with a [*KeyLengthError]
// when the token does not decode to exactly [SecretSize] bytes.
func DecodeSecret(token string) (Secret, error) {
	// an empty token is a zero-length key
	if token == "" {
		return Secret{}, &KeyLengthError{Length: 0}
	}

	raw, err := base58.Decode(token)
	if err != nil {
		return Secret{}, fmt.Errorf("%w: %v", ErrInvalidSecretEncoding, err)
	}
	return NewSecret(raw)
}

// NewSecret copies raw key bytes into a [Secret].
func NewSecret(raw []byte) (Secret, error) {
	if len(raw) != SecretSize {
		return Secret{}, &KeyLengthError{Length: len(raw)}
	}

	var s Secret
	copy(s[:], raw)
	return s, nil
}

// Encode returns the base-58 token for s, as it appears in a paste URL.
func (s Secret) Encode() string {
	return base58.Encode(s[:])
}

// String keeps key material out of logs and fmt output.
func (s Secret) String() string {
	return "Secret(REDACTED)"
}

// GoString keeps key material out of %#v output.
func (s Secret) GoString() string {
	return s.String()
}
