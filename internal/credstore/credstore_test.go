package credstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "creds.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestGetEmptyStore(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	creds, err := store.Get(t.Context())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if creds.APIKey != nil {
		t.Errorf("APIKey = %q, want nil", *creds.APIKey)
	}
	if creds.UserID != nil {
		t.Errorf("UserID = %q, want nil", *creds.UserID)
	}
	if creds.Complete() {
		t.Error("Complete() = true, want false")
	}
}

func TestSaveThenGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Save(ctx, "k1", "u1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	creds, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !creds.Complete() {
		t.Fatal("Complete() = false, want true")
	}
	if *creds.APIKey != "k1" {
		t.Errorf("APIKey = %q, want %q", *creds.APIKey, "k1")
	}
	if *creds.UserID != "u1" {
		t.Errorf("UserID = %q, want %q", *creds.UserID, "u1")
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Save(ctx, "k1", "u1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, "k2", "u2"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	creds, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *creds.APIKey != "k2" || *creds.UserID != "u2" {
		t.Errorf("Get() = (%q, %q), want (%q, %q)", *creds.APIKey, *creds.UserID, "k2", "u2")
	}
}

func TestEmptyStringIsNotAbsence(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Save(ctx, "", ""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	creds, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if creds.APIKey == nil || *creds.APIKey != "" {
		t.Errorf("APIKey = %v, want present empty string", creds.APIKey)
	}
	if !creds.Complete() {
		t.Error("Complete() = false, want true for present empty strings")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Save(ctx, "k1", "u1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	creds, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if creds.APIKey != nil || creds.UserID != nil {
		t.Errorf("Get() after Clear() = %+v, want fully absent", creds)
	}

	// clearing twice is a no-op, not an error
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}
}

func TestAPIKeySource(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if _, err := store.APIKey(ctx); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("APIKey() error = %v, want ErrNoAPIKey", err)
	}

	if err := store.Save(ctx, "k1", "u1"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	key, err := store.APIKey(ctx)
	if err != nil {
		t.Fatalf("APIKey() error = %v", err)
	}
	if key != "k1" {
		t.Errorf("APIKey() = %q, want %q", key, "k1")
	}
}
