package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// DocumentCache keeps tokenized word material keyed by content hash, so a
// document seen twice (common in server mode, where the same reference text
// arrives with every request) skips retokenization.
type DocumentCache struct {
	mu     sync.RWMutex
	items  map[string]cacheEntry
	hits   int
	misses int
}

// CachedDocument is the tokenizer output worth keeping. Names are not cached;
// the same text may arrive under different names.
type CachedDocument struct {
	Tokens  []string
	WordSet map[string]bool
}

type cacheEntry struct {
	doc        CachedDocument
	hits       int
	lastAccess time.Time
}

// HashText returns the cache key for a document body.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		items:  make(map[string]cacheEntry),
		hits:   0,
		misses: 0,
	}
}

func (c *DocumentCache) Get(key string) (CachedDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses += 1
		return CachedDocument{}, false
	}

	c.hits += 1
	entry.hits += 1
	entry.lastAccess = time.Now()
	c.items[key] = entry

	return entry.doc, true
}

func (c *DocumentCache) Add(key string, doc CachedDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheEntry{
		doc:        doc,
		hits:       0,
		lastAccess: time.Now(),
	}
}

func (c *DocumentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *DocumentCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	} else {
		return 0.0
	}
}
