// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "0192f0a4-7d3c-7b1e-9a55-0c1d2e3f4a5b")

	id, ok := GetRequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "0192f0a4-7d3c-7b1e-9a55-0c1d2e3f4a5b" {
		t.Errorf("unexpected id %q", id)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	id, ok := GetRequestIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id")
	}
}
