package cmd

import (
	"bytes"
	"testing"

	"github.com/iksnae/chatkeep/internal"
	"github.com/iksnae/chatkeep/testutil"
)

func seedStore(t *testing.T) string {
	t.Helper()
	path := testutil.TempStorePath(t)
	store, err := internal.OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	store.Set(internal.KeyPreviousChats, testutil.SessionsBlob)
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestListCommand_EmptyStore(t *testing.T) {
	rootCmd.SetArgs([]string{"list", "--store", testutil.TempStorePath(t)})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("list on an empty store error = %v", err)
	}
}

func TestListCommand_SeededStore(t *testing.T) {
	rootCmd.SetArgs([]string{"list", "--store", seedStore(t)})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Errorf("list on a seeded store error = %v", err)
	}
}

func TestShowCommand_UnknownTitle(t *testing.T) {
	rootCmd.SetArgs([]string{"show", "no such chat", "--store", testutil.TempStorePath(t)})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("show with an unknown title should fail")
	}
}

func TestDeleteCommand_RemovesSession(t *testing.T) {
	path := seedStore(t)

	rootCmd.SetArgs([]string{"delete", "Hello", "--store", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("delete error = %v", err)
	}

	store, err := internal.OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	defer store.Close()
	repo := internal.NewRepository(store, nil)
	if err := repo.Hydrate(); err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if repo.Find("Hello") != nil {
		t.Error("deleted session still present in the store")
	}
	if repo.Len() != 1 {
		t.Errorf("store has %d sessions, want 1", repo.Len())
	}
}
