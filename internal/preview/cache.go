package preview

import (
	"image"
	"sync"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// Key identifies one rendered tile.
type Key struct {
	Piece     track.ElemType
	Sequence  uint8
	Direction paint.Direction
	Inverted  bool
	Chain     bool
	Closed    bool
}

// Cache keeps rendered previews. When full it drops the oldest quarter of
// its entries in one go.
type Cache struct {
	cache      map[Key]*image.RGBA
	mutex      sync.RWMutex
	cacheOrder []Key
	maxSize    int
	targetSize int
}

// NewCache creates a cache holding at most maxSize previews.
func NewCache(maxSize int) *Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Cache{
		cache:      make(map[Key]*image.RGBA, maxSize),
		cacheOrder: make([]Key, 0, maxSize),
		maxSize:    maxSize,
		targetSize: maxSize * 3 / 4,
	}
}

// Get returns a cached preview.
func (c *Cache) Get(key Key) (*image.RGBA, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	img, ok := c.cache[key]
	return img, ok
}

// GetOrCreate returns the cached preview for key, rendering it with create
// on a miss. It is safe for concurrent use; create may run more than once
// for the same key but only the first result is kept.
func (c *Cache) GetOrCreate(key Key, create func() *image.RGBA) *image.RGBA {
	if img, ok := c.Get(key); ok {
		return img
	}

	img := create()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if cached, ok := c.cache[key]; ok {
		return cached
	}

	if len(c.cache) >= c.maxSize {
		evictCount := len(c.cacheOrder) - c.targetSize
		if evictCount > 0 && evictCount <= len(c.cacheOrder) {
			for i := 0; i < evictCount; i++ {
				delete(c.cache, c.cacheOrder[i])
			}
			c.cacheOrder = c.cacheOrder[evictCount:]
		}
	}

	c.cache[key] = img
	c.cacheOrder = append(c.cacheOrder, key)
	return img
}

// Len returns the number of cached previews.
func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.cache)
}
