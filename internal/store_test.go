package internal

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/chatkeep/testutil"
)

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	if _, ok := store.Get("missing"); ok {
		t.Error("Get() on empty store should report absence")
	}

	store.Set("k", "v1")
	if v, ok := store.Get("k"); !ok || v != "v1" {
		t.Errorf("Get() = %q, %v, want %q, true", v, ok, "v1")
	}

	store.Set("k", "v2")
	if v, _ := store.Get("k"); v != "v2" {
		t.Errorf("Set() should overwrite, got %q", v)
	}

	store.Remove("k")
	if _, ok := store.Get("k"); ok {
		t.Error("Get() after Remove() should report absence")
	}

	// Removing an absent key is a no-op.
	store.Remove("k")
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := testutil.TempStorePath(t)

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}

	store.Set(KeyChatHistory, testutil.HistoryBlob)
	store.Set(KeyPreviousChats, testutil.SessionsBlob)
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopen: values must survive the restart.
	store, err = OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() reopen error = %v", err)
	}
	defer store.Close()

	if v, ok := store.Get(KeyChatHistory); !ok || v != testutil.HistoryBlob {
		t.Errorf("Get(%q) after reopen = %q, %v", KeyChatHistory, v, ok)
	}
	if v, ok := store.Get(KeyPreviousChats); !ok || v != testutil.SessionsBlob {
		t.Errorf("Get(%q) after reopen = %q, %v", KeyPreviousChats, v, ok)
	}
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	store, err := OpenStore(testutil.TempStorePath(t))
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer store.Close()

	store.Set("k", "first")
	store.Set("k", "second")
	if v, _ := store.Get("k"); v != "second" {
		t.Errorf("Set() should overwrite in place, got %q", v)
	}

	store.Remove("k")
	if _, ok := store.Get("k"); ok {
		t.Error("Get() after Remove() should report absence")
	}
}

func TestOpenStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "chatkeep.db")

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() should create the parent directory, error = %v", err)
	}
	store.Close()
}
