// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHash_MatchesSHA256(t *testing.T) {
	data := []byte("test-data")

	want := sha256.Sum256(data)
	got := Hash(data)

	if !bytes.Equal(want[:], got) {
		t.Fatalf("hash mismatch: want %x, got %x", want, got)
	}
}

func TestHash_Deterministic(t *testing.T) {
	data := []byte("test-data")

	if !bytes.Equal(Hash(data), Hash(data)) {
		t.Fatal("hash must be deterministic")
	}
}

func TestHash_Empty(t *testing.T) {
	want := sha256.Sum256(nil)

	if !bytes.Equal(want[:], Hash(nil)) {
		t.Fatal("unexpected digest of empty input")
	}
}

func TestHashString_KnownVector(t *testing.T) {
	// SHA-256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	if got := HashString([]byte("abc")); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHashString_IsHex(t *testing.T) {
	got := HashString([]byte("data"))

	if _, err := hex.DecodeString(got); err != nil {
		t.Fatalf("expected hex string, got %q", got)
	}
	if len(got) != sha256.Size*2 {
		t.Fatalf("expected %d chars, got %d", sha256.Size*2, len(got))
	}
}

func TestHash_Concurrent(t *testing.T) {
	data := []byte("concurrent")
	want := sha256.Sum256(data)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(want[:], Hash(data)) {
				t.Error("hash mismatch under concurrency")
			}
		}()
	}
	wg.Wait()
}
