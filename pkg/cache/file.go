package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries as JSON files under a directory, fanned out by
// key hash to keep directories small. Suitable for a single server
// instance or local experimentation.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// entry wraps cached data with its expiration time.
type entry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves the value stored under key. Expired or unreadable entries
// are removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return e.Data, true, nil
}

// Set stores data under key. A ttl of zero means the entry never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{Data: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes the entry stored under key, if any.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for a file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its file, using the first two hash chars as a fan-out
// subdirectory.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
