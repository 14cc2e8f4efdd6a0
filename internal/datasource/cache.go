package datasource

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache is a file-backed response cache keyed by request identity. Entries
// expire by file modification time, so a restart keeps the cache warm.
type Cache struct {
	dir string
	ttl time.Duration
	mu  sync.RWMutex
}

type cacheRecord struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// NewCache creates the cache directory if needed.
func NewCache(dir string, ttl time.Duration) *Cache {
	if dir == "" {
		dir = "cache/data"
	}
	os.MkdirAll(dir, 0755)
	return &Cache{dir: dir, ttl: ttl}
}

// Get returns the cached payload for key if present and unexpired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath(key)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		os.Remove(path)
		return nil, false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var rec cacheRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false
	}
	return rec.Data, true
}

// Set stores a payload under key.
func (c *Cache) Set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(cacheRecord{
		Key:       key,
		Data:      data,
		Timestamp: time.Now(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(c.filePath(key), raw, 0644)
}

func (c *Cache) filePath(key string) string {
	hash := md5.Sum([]byte(key))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", hash))
}
