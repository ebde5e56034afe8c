package cache

import (
	"context"
	"testing"
	"time"

	apppricing "github.com/meatrics/backend/internal/application/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote(price string) *apppricing.ItemCalculationResponse {
	return &apppricing.ItemCalculationResponse{
		CustomerCode:    "CUST-A",
		ProductCode:     "BEEF-001",
		Cost:            decimal.RequireFromString("10.00"),
		CalculatedPrice: decimal.RequireFromString(price),
		Description:     "Standard Markup (+20.0%)",
	}
}

func TestInMemoryQuoteCache_GetSet(t *testing.T) {
	cache := NewInMemoryQuoteCache(1 * time.Hour)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("misses on empty cache", func(t *testing.T) {
		_, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
		assert.False(t, ok)
	})

	t.Run("returns stored quote", func(t *testing.T) {
		cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))

		quote, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
		require.True(t, ok)
		assert.True(t, quote.CalculatedPrice.Equal(decimal.RequireFromString("12.00")))
	})

	t.Run("different dates are different entries", func(t *testing.T) {
		cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))

		_, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf.AddDate(0, 0, 1))
		assert.False(t, ok)
	})

	t.Run("overwrites an existing entry", func(t *testing.T) {
		cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))
		cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("11.50"))

		quote, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
		require.True(t, ok)
		assert.True(t, quote.CalculatedPrice.Equal(decimal.RequireFromString("11.50")))
	})
}

func TestInMemoryQuoteCache_Expiration(t *testing.T) {
	cache := NewInMemoryQuoteCache(10 * time.Millisecond)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))

	_, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
	assert.False(t, ok, "expired quote should miss")
}

func TestInMemoryQuoteCache_InvalidateAll(t *testing.T) {
	cache := NewInMemoryQuoteCache(1 * time.Hour)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))
	cache.Set(ctx, "CUST-B", "LAMB-001", asOf, sampleQuote("9.60"))
	require.Equal(t, 2, cache.Size())

	require.NoError(t, cache.InvalidateAll(ctx))

	assert.Equal(t, 0, cache.Size())
	_, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
	assert.False(t, ok)
}

func TestInMemoryQuoteCache_ConcurrentAccess(t *testing.T) {
	cache := NewInMemoryQuoteCache(1 * time.Hour)
	defer cache.Close()

	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				cache.Set(ctx, "CUST-A", "BEEF-001", asOf, sampleQuote("12.00"))
				cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	quote, ok := cache.Get(ctx, "CUST-A", "BEEF-001", asOf)
	require.True(t, ok)
	assert.True(t, quote.CalculatedPrice.Equal(decimal.RequireFromString("12.00")))
}

func TestInMemoryQuoteCache_CloseIsIdempotent(t *testing.T) {
	cache := NewInMemoryQuoteCache(1 * time.Hour)

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}
