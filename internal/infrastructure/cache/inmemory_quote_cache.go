package cache

import (
	"context"
	"sync"
	"time"

	apppricing "github.com/meatrics/backend/internal/application/pricing"
)

// quoteEntry represents a cached quote with expiration
type quoteEntry struct {
	quote     *apppricing.ItemCalculationResponse
	expiresAt time.Time
}

// InMemoryQuoteCache implements the quote cache using an in-memory map.
// This is suitable for single-instance deployments and testing.
type InMemoryQuoteCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[string]quoteEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryQuoteCache creates a new in-memory quote cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryQuoteCache(ttl time.Duration) *InMemoryQuoteCache {
	cache := &InMemoryQuoteCache{
		ttl:      ttl,
		entries:  make(map[string]quoteEntry),
		stopChan: make(chan struct{}),
	}

	cache.wg.Add(1)
	go cache.cleanupLoop()

	return cache
}

func quoteKey(customerCode, productCode string, asOf time.Time) string {
	return customerCode + ":" + productCode + ":" + asOf.Format("2006-01-02")
}

// Get returns the cached quote for a customer/product/date triple
func (c *InMemoryQuoteCache) Get(ctx context.Context, customerCode, productCode string, asOf time.Time) (*apppricing.ItemCalculationResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[quoteKey(customerCode, productCode, asOf)]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.quote, true
}

// Set stores a quote
func (c *InMemoryQuoteCache) Set(ctx context.Context, customerCode, productCode string, asOf time.Time, quote *apppricing.ItemCalculationResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[quoteKey(customerCode, productCode, asOf)] = quoteEntry{
		quote:     quote,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// InvalidateAll drops every cached quote
func (c *InMemoryQuoteCache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]quoteEntry)
	return nil
}

// Size returns the number of entries including expired ones not yet cleaned up
func (c *InMemoryQuoteCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine
func (c *InMemoryQuoteCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryQuoteCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopChan:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *InMemoryQuoteCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Ensure InMemoryQuoteCache implements QuoteCache
var _ apppricing.QuoteCache = (*InMemoryQuoteCache)(nil)
