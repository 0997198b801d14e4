package crypto

import (
	"crypto/rand"
	"io"
)

// SaltSize is the KDF salt length used for new pastes.
const SaltSize = 8

// GenerateSalt reads [SaltSize] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// GenerateNonce reads [NonceSize] random bytes from the OS CSPRNG.
func GenerateNonce() ([]byte, error) {
	return randomBytes(NonceSize)
}

// GenerateSecret returns a fresh random paste key.
func GenerateSecret() (Secret, error) {
	raw, err := randomBytes(SecretSize)
	if err != nil {
		return Secret{}, err
	}
	return NewSecret(raw)
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
