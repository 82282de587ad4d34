package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclesight/internal/logger"
)

// ReportCache keeps computed calendars and reports per user. Every key embeds
// the user's generation counter, so a write for that user makes all earlier
// entries unreachable without scanning the cache.
type ReportCache struct {
	client *ristretto.Cache
	ttl    time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

// New returns a cache holding up to maxItems entries, each costing 1. A
// disabled cache is valid and simply never hits.
func New(enabled bool, ttl time.Duration, maxItems int64) (*ReportCache, error) {
	reportCache := &ReportCache{
		ttl:         ttl,
		generations: make(map[string]uint64),
	}
	if !enabled {
		logger.Get().Info("report cache disabled")
		return reportCache, nil
	}
	if maxItems <= 0 {
		return nil, fmt.Errorf("cache max items must be positive, got %d", maxItems)
	}

	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxItems * 10,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create ristretto cache: %w", err)
	}
	reportCache.client = client

	logger.Get().WithFields(logrus.Fields{
		"max_items":   maxItems,
		"ttl_seconds": int(ttl.Seconds()),
	}).Info("report cache initialized")
	return reportCache, nil
}

func (c *ReportCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Key builds a lookup key scoped to the user's current generation.
func (c *ReportCache) Key(userID string, kind string, parts ...string) string {
	c.mu.Lock()
	generation := c.generations[userID]
	c.mu.Unlock()

	return fmt.Sprintf("%s|%d|%s|%s", userID, generation, kind, strings.Join(parts, "|"))
}

func (c *ReportCache) Get(key string) (interface{}, bool) {
	if !c.Enabled() {
		return nil, false
	}
	return c.client.Get(key)
}

// Set stores value and waits for the write buffer to drain so the next Get
// observes it.
func (c *ReportCache) Set(key string, value interface{}) bool {
	if !c.Enabled() {
		return false
	}

	var stored bool
	if c.ttl > 0 {
		stored = c.client.SetWithTTL(key, value, 1, c.ttl)
	} else {
		stored = c.client.Set(key, value, 1)
	}
	c.client.Wait()
	return stored
}

// Invalidate drops every cached entry for userID.
func (c *ReportCache) Invalidate(userID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.generations[userID]++
	c.mu.Unlock()
}

func (c *ReportCache) Close() {
	if c.Enabled() {
		c.client.Close()
		logger.Get().Info("report cache closed")
	}
}

// Load returns the cached value for key or computes, stores and returns it.
// Values of an unexpected type are treated as misses.
func Load[T any](c *ReportCache, key string, compute func() (T, error)) (T, error) {
	if cached, ok := c.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}
