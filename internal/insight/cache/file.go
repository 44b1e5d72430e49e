package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// cacheFileExtension is the file extension used for cache entries.
const cacheFileExtension = ".json"

// entry is the on-disk shape of a cached insight.
type entry struct {
	// Key is the composite cache key (material id + rounded scores).
	Key string `json:"key"`
	// Value is the cached insight text.
	Value string `json:"value"`
	// CreatedAt is when the entry was written.
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is when the entry stops being served.
	ExpiresAt time.Time `json:"expires_at"`
}

// expired reports whether the entry is past its TTL.
func (e entry) expired() bool {
	return time.Now().After(e.ExpiresAt)
}

// FileStore caches entries as JSON files with TTL expiration, one file per
// key. Thread-safe. All I/O failures surface as cache misses per the Store
// contract.
type FileStore struct {
	directory string
	ttl       time.Duration

	mu sync.RWMutex
}

// NewFileStore creates the cache directory if needed. Directory creation is
// the one operation allowed to fail loudly: a store that can never persist
// should be replaced with Disabled by the caller, not silently used.
func NewFileStore(directory string, ttl time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, err
	}
	return &FileStore{directory: directory, ttl: ttl}, nil
}

// Get returns the cached value for key. Unknown keys, expired entries, and
// unreadable or corrupt files all report a miss.
func (s *FileStore) Get(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.keyToFilePath(key))
	s.mu.RUnlock()
	if err != nil {
		return "", false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false
	}

	if e.expired() {
		s.mu.Lock()
		_ = os.Remove(s.keyToFilePath(key))
		s.mu.Unlock()
		return "", false
	}

	return e.Value, true
}

// Set stores value under key, overwriting any existing entry. Failures are
// swallowed: the next Get simply misses.
func (s *FileStore) Set(key, value string) {
	if key == "" {
		return
	}

	now := time.Now()
	data, err := json.Marshal(entry{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	})
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)

	// Write-then-rename keeps concurrent readers from seeing partial files.
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
	}
}

// CleanupExpired removes expired entries and returns how many were deleted.
func (s *FileStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0
	}

	removed := 0
	for _, dirEntry := range entries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != cacheFileExtension {
			continue
		}
		path := filepath.Join(s.directory, dirEntry.Name())
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}
		var e entry
		if json.Unmarshal(data, &e) != nil || e.expired() {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}
	return removed
}

// keyToFilePath hashes the key so arbitrary composite keys map to safe
// filenames.
func (s *FileStore) keyToFilePath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.directory, hex.EncodeToString(sum[:])+cacheFileExtension)
}
