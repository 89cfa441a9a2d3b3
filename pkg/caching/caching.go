// Package caching is a file-based TTL cache for downloaded papers, keyed
// by source URL. Re-parsing a paper should not re-download it.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates the cache directory if it doesn't exist.
// A zero ttl means entries never expire.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		dir: dir,
		ttl: ttl,
	}, nil
}

// key hashes the source URL to a stable filename.
func (c *Cache) key(source string) string {
	hash := sha256.Sum256([]byte(source))
	return fmt.Sprintf("%x", hash)
}

// Get returns the cached document for a source and true on a fresh hit.
func (c *Cache) Get(source string) ([]byte, bool) {
	path := filepath.Join(c.dir, c.key(source))

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return data, true
}

// Set stores a downloaded document.
func (c *Cache) Set(source string, data []byte) error {
	path := filepath.Join(c.dir, c.key(source))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Purge removes expired entries and returns how many were deleted.
func (c *Cache) Purge() (int, error) {
	if c.ttl <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) > c.ttl {
			if err := os.Remove(filepath.Join(c.dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
