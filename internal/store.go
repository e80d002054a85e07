package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Storage keys. These names are part of the persisted format and must
// not change without a migration.
const (
	KeyChatHistory   = "chatHistory"   // active transcript snapshot
	KeyPreviousChats = "previousChats" // full session repository snapshot
)

// Store is the durable key/value adapter the repository and transcript
// persist through. Writes are fire-and-forget: implementations log
// failures instead of returning them, so history loss on a failed write
// is a silent degraded mode rather than an error the caller handles.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// SQLiteStore persists key/value pairs in a single-table SQLite
// database. One database file corresponds to one browser-profile-like
// scope: all sessions live in it.
type SQLiteStore struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) the store database at path.
func OpenStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS chatstore (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create chatstore table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the value for key, or ok=false when the key is absent.
// Read errors are treated as absence and logged.
func (s *SQLiteStore) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM chatstore WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		LogWarn("store read failed for %q: %v", key, err)
		return "", false
	}
	return value, true
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteStore) Set(key, value string) {
	_, err := s.db.Exec(
		"INSERT INTO chatstore (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		LogWarn("store write failed for %q: %v", key, err)
	}
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec("DELETE FROM chatstore WHERE key = ?", key); err != nil {
		LogWarn("store delete failed for %q: %v", key, err)
	}
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}
