package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// DefaultDirName is the directory below the user cache root.
const DefaultDirName = "epntex"

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live (TTL). The stale file stays on disk until the
// next [Cache.Set] overwrites it.
var ErrExpired = errors.New("cache entry expired")

// Cache is a file-based cache of JSON-marshalable values.
//
// Each entry is a file named after the SHA-256 of its key, so any string
// (a URL, say) is a valid key. Freshness is judged by file modification time;
// a TTL of 0 means entries never expire.
//
// A Cache is not goroutine-safe, but several processes may share a directory.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// DefaultDir returns $XDG_CACHE_HOME/epntex, falling back to ~/.cache/epntex.
func DefaultDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, DefaultDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", DefaultDirName), nil
}

// NewCache creates a Cache in dir, creating the directory if needed.
// An empty dir means DefaultDir().
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get looks key up and unmarshals the entry into v.
//
//   - (true, nil): hit, v is populated.
//   - (false, nil): miss, v is unchanged.
//   - (false, ErrExpired): the entry is older than the TTL.
//   - (false, err): I/O or decoding failure.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores v under key, replacing any previous entry and restarting its
// TTL. It returns the number of bytes written.
func (c *Cache) Set(key string, v any) (int, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(c.keyPath(c.prefix+key), data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (c *Cache) Delete(key string) error {
	err := os.Remove(c.keyPath(c.prefix + key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry in the cache directory, whatever its namespace,
// and returns how many were removed. Files not named like an entry are left
// alone, so the directory may be shared.
func (c *Cache) Clear() (int, error) {
	names, err := c.entryNames()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, name := range names {
		if err := os.Remove(filepath.Join(c.dir, name)); err == nil {
			count++
		}
	}
	return count, nil
}

// Len returns the number of entries on disk, expired ones included.
func (c *Cache) Len() (int, error) {
	names, err := c.entryNames()
	return len(names), err
}

func (c *Cache) entryNames() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && isEntryName(e.Name()) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// isEntryName reports whether name is a hex SHA-256 as made by keyPath.
func isEntryName(name string) bool {
	if len(name) != hex.EncodedLen(sha256.Size) {
		return false
	}
	for _, r := range name {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Namespace returns a view of the cache whose keys are prefixed with prefix.
// Views share directory and TTL and can be chained.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
