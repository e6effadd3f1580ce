package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Cache memoizes formatted documents by the sha256 of their normalized
// input, so repeated check runs over an unchanged tree skip re-formatting.
// The cache is advisory: every miss or IO problem degrades to formatting
// from scratch. Thread-safe for concurrent access. A nil *Cache is a valid
// always-miss cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema    uint16
	InputHash []byte
	Formatted []byte
}

// OpenCache initializes a disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheDir initializes a disk cache at an explicit directory.
func OpenCacheDir(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [sha256.Size]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "docs", hexKey+".bin")
}

// Lookup returns the cached formatted output for input, if present and
// structurally valid.
func (c *Cache) Lookup(input []byte) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	key := sha256.Sum256(input)

	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	if len(payload.InputHash) != sha256.Size || !hashEqual(payload.InputHash, key) {
		return nil, false
	}
	return payload.Formatted, true
}

// Store records the formatted output for input. Failures are swallowed:
// losing a cache entry only costs a future re-format.
func (c *Cache) Store(input, formatted []byte) {
	if c == nil {
		return
	}
	key := sha256.Sum256(input)
	payload := cachePayload{
		Schema:    cacheSchemaVersion,
		InputHash: key[:],
		Formatted: formatted,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

func hashEqual(stored []byte, key [sha256.Size]byte) bool {
	for i := range key {
		if stored[i] != key[i] {
			return false
		}
	}
	return true
}
