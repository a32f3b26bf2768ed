package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBackend_SetGet(t *testing.T) {
	mb := NewMemoryBackend()
	ctx := context.Background()

	if err := mb.Set(ctx, "k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := mb.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v1" {
		t.Errorf("Get returned %q, want %q", got, "v1")
	}
}

func TestMemoryBackend_GetMissing(t *testing.T) {
	mb := NewMemoryBackend()

	_, err := mb.Get(context.Background(), "absent")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get on missing key returned %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryBackend_Delete(t *testing.T) {
	mb := NewMemoryBackend()
	ctx := context.Background()

	mb.Set(ctx, "a", "1")
	mb.Set(ctx, "b", "2")
	mb.Set(ctx, "c", "3")

	if err := mb.Delete(ctx, "a", "c", "not-there"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if mb.Len() != 1 {
		t.Errorf("Len after delete = %d, want 1", mb.Len())
	}
	if _, err := mb.Get(ctx, "b"); err != nil {
		t.Errorf("surviving key should be readable, got %v", err)
	}
}

func TestMemoryBackend_FailNext(t *testing.T) {
	mb := NewMemoryBackend()
	ctx := context.Background()
	injected := errors.New("backend down")

	mb.Set(ctx, "k", "v")

	mb.FailNext(injected)
	if _, err := mb.Get(ctx, "k"); !errors.Is(err, injected) {
		t.Errorf("Get after FailNext returned %v, want injected error", err)
	}

	// The failure is one-shot; the next operation succeeds.
	if got, err := mb.Get(ctx, "k"); err != nil || got != "v" {
		t.Errorf("Get after injected failure consumed = (%q, %v), want (%q, nil)", got, err, "v")
	}

	mb.FailNext(injected)
	if err := mb.Set(ctx, "k2", "v2"); !errors.Is(err, injected) {
		t.Errorf("Set after FailNext returned %v, want injected error", err)
	}
	if _, err := mb.Get(ctx, "k2"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("failed Set should not have stored the value")
	}
}

func TestMemoryBackend_Keys(t *testing.T) {
	mb := NewMemoryBackend()
	ctx := context.Background()

	mb.Set(ctx, "x", "1")
	mb.Set(ctx, "y", "2")

	keys := mb.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys returned %d entries, want 2", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen["x"] || !seen["y"] {
		t.Errorf("Keys returned %v, want x and y", keys)
	}
}
