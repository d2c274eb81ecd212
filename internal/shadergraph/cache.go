package shadergraph

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// CacheFileName is the hash cache stored under the output root.
const CacheFileName = ".shaderhashes.json"

// hashCache records, per source, the content hash of every input that went
// into the last successful compile. It is shared by concurrent jobs.
type hashCache struct {
	path string

	mu      sync.Mutex
	entries map[string]map[string]string
}

// loadHashCache reads the cache file. A missing or corrupt file yields an
// empty cache, which simply marks every job stale.
func loadHashCache(path string) *hashCache {
	c := &hashCache{
		path:    path,
		entries: make(map[string]map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var entries map[string]map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return c
	}
	c.entries = entries
	return c
}

// lookup returns the recorded input hashes for source, or nil.
func (c *hashCache) lookup(source string) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[source]
}

// store replaces the recorded input hashes for source.
func (c *hashCache) store(source string, inputs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[source] = inputs
}

// save writes the cache atomically next to the artifacts it describes.
func (c *hashCache) save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}

// hashFile returns the hex SHA-256 of a file's contents.
func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
