package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"testing"
)

func testKey() DerivedKey {
	var k DerivedKey
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func TestSealGCM_MatchesStdlib(t *testing.T) {
	key := testKey()
	nonce := bytes.Repeat([]byte{0x01}, NonceSize)
	plaintext := []byte("attachment payload")
	aad := []byte(`[["iv","salt",1,256,128,"aes","gcm","none"],"plaintext",0,0]`)

	block, err := aes.NewCipher(key[:])
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("cipher.NewGCM: %v", err)
	}
	want := gcm.Seal(nil, nonce, plaintext, aad)

	got, err := SealGCM(key, nonce, plaintext, aad)
	if err != nil {
		t.Fatalf("SealGCM error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("SealGCM = %x, want %x", got, want)
	}
	if len(got) != len(plaintext)+TagSize {
		t.Fatalf("ciphertext length = %d, want %d", len(got), len(plaintext)+TagSize)
	}

	opened, err := OpenGCM(key, nonce, got, aad)
	if err != nil {
		t.Fatalf("OpenGCM error: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("OpenGCM = %q, want %q", opened, plaintext)
	}
}

func TestOpenGCM_EmptyPlaintext(t *testing.T) {
	key := testKey()
	nonce := make([]byte, NonceSize)

	ct, err := SealGCM(key, nonce, nil, nil)
	if err != nil {
		t.Fatalf("SealGCM error: %v", err)
	}
	pt, err := OpenGCM(key, nonce, ct, nil)
	if err != nil {
		t.Fatalf("OpenGCM error: %v", err)
	}
	if len(pt) != 0 {
		t.Fatalf("expected empty plaintext, got %q", pt)
	}
}

func TestOpenGCM_Failures(t *testing.T) {
	key := testKey()
	nonce := bytes.Repeat([]byte{0x02}, NonceSize)
	aad := []byte("metadata")

	ct, err := SealGCM(key, nonce, []byte("secret"), aad)
	if err != nil {
		t.Fatalf("SealGCM error: %v", err)
	}

	flip := func(b []byte, i int) []byte {
		out := bytes.Clone(b)
		out[i] ^= 0x01
		return out
	}
	otherKey := key
	otherKey[0] ^= 0xff

	tests := []struct {
		name  string
		key   DerivedKey
		nonce []byte
		ct    []byte
		aad   []byte
	}{
		{"wrong key", otherKey, nonce, ct, aad},
		{"flipped tag byte", key, nonce, flip(ct, len(ct)-1), aad},
		{"flipped ciphertext byte", key, nonce, flip(ct, 0), aad},
		{"other aad", key, nonce, ct, []byte("metadatA")},
		{"missing aad", key, nonce, ct, nil},
		{"other nonce", key, flip(nonce, 3), ct, aad},
		{"short nonce", key, nonce[:8], ct, aad},
		{"long nonce", key, append(bytes.Clone(nonce), 0), ct, aad},
		{"shorter than tag", key, nonce, ct[:TagSize-1], aad},
		{"empty", key, nonce, nil, aad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := OpenGCM(tt.key, tt.nonce, tt.ct, tt.aad)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("error = %v, want ErrDecryptionFailed", err)
			}
			if pt != nil {
				t.Fatalf("plaintext leaked on failure: %q", pt)
			}
		})
	}
}

func TestSealGCM_BadNonce(t *testing.T) {
	_, err := SealGCM(testKey(), []byte("short"), []byte("x"), nil)
	if !errors.Is(err, ErrInvalidNonceSize) {
		t.Fatalf("error = %v, want ErrInvalidNonceSize", err)
	}
}

func TestGenerateNonceAndSalt(t *testing.T) {
	n, err := GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}
	if len(n) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(n), NonceSize)
	}

	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ")
	}
}
