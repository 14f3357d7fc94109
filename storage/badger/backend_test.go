package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/vecshuffle/storage"
)

func TestOpenBackendInMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}

	if backend.IsClosed() {
		t.Fatal("Backend should not be closed")
	}

	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	if !backend.IsClosed() {
		t.Fatal("Backend should be closed")
	}
}

func TestOpenBackendOnDisk(t *testing.T) {
	dir := t.TempDir()

	backend, err := OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to open backend at %s: %v", dir, err)
	}
	defer backend.Close()

	if backend.IsClosed() {
		t.Fatal("Backend should not be closed")
	}
}

func TestFindSimilarEmpty(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	matches, err := backend.FindSimilar(context.Background(), []float32{1, 0}, 0.0, 10)
	if err != nil {
		t.Fatalf("FindSimilar failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("Expected no matches on empty store, got %d", len(matches))
	}
}

func TestWithTransactionRollback(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	wantErr := errors.New("boom")
	err = backend.WithTransaction(context.Background(), func(ctx context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected error to propagate, got %v", err)
	}
}

func TestWithTxAfterClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	err = backend.WithTransaction(context.Background(), func(ctx context.Context) error {
		return nil
	})
	if !errors.Is(err, storage.ErrStorageClosed) {
		t.Fatalf("Expected ErrStorageClosed after close, got %v", err)
	}
}
