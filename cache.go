package playlearn

import "sync"

// AssetCache holds generated binary assets (prospectus PDF, QR codes) for the
// newest content version seen. Requests for an older version are built but
// never stored, so they cannot evict newer entries.
type AssetCache struct {
	mu      sync.RWMutex
	version uint64
	items   map[string][]byte
}

// NewAssetCache creates an empty AssetCache.
func NewAssetCache() *AssetCache {
	return &AssetCache{items: make(map[string][]byte)}
}

func (c *AssetCache) lookup(version uint64, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.version != version {
		return nil, false
	}
	b, ok := c.items[key]
	return b, ok
}

// Get returns the asset stored under key for version, calling build when it
// is missing. Build runs without holding the lock; errors are not cached.
func (c *AssetCache) Get(version uint64, key string, build func() ([]byte, error)) ([]byte, error) {
	if b, ok := c.lookup(version, key); ok {
		return b, nil
	}

	b, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case version < c.version:
		return b, nil
	case version > c.version:
		c.items = make(map[string][]byte)
		c.version = version
	}
	// A concurrent build may have stored first; keep one copy.
	if cached, ok := c.items[key]; ok {
		return cached, nil
	}
	c.items[key] = b
	return b, nil
}

// Invalidate clears the cache so the next read rebuilds.
func (c *AssetCache) Invalidate() {
	c.mu.Lock()
	c.items = make(map[string][]byte)
	c.mu.Unlock()
}
