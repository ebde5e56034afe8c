package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apppricing "github.com/meatrics/backend/internal/application/pricing"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisQuoteCache implements the quote cache using Redis.
// This is suitable for distributed deployments where multiple instances
// need to share cached quotes.
type RedisQuoteCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisQuoteCache creates a new Redis-backed quote cache
func NewRedisQuoteCache(cfg RedisConfig, keyPrefix string, ttl time.Duration, logger *zap.Logger) (*RedisQuoteCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisQuoteCacheWithClient(client, keyPrefix, ttl, logger), nil
}

// NewRedisQuoteCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisQuoteCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration, logger *zap.Logger) *RedisQuoteCache {
	if keyPrefix == "" {
		keyPrefix = "pricing:quote:"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisQuoteCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *RedisQuoteCache) key(customerCode, productCode string, asOf time.Time) string {
	return c.keyPrefix + quoteKey(customerCode, productCode, asOf)
}

// Get returns the cached quote for a customer/product/date triple.
// Redis errors are treated as cache misses so that pricing keeps working
// when the cache is down.
func (c *RedisQuoteCache) Get(ctx context.Context, customerCode, productCode string, asOf time.Time) (*apppricing.ItemCalculationResponse, bool) {
	payload, err := c.client.Get(ctx, c.key(customerCode, productCode, asOf)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("quote cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var quote apppricing.ItemCalculationResponse
	if err := json.Unmarshal(payload, &quote); err != nil {
		c.logger.Warn("quote cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &quote, true
}

// Set stores a quote with the configured TTL
func (c *RedisQuoteCache) Set(ctx context.Context, customerCode, productCode string, asOf time.Time, quote *apppricing.ItemCalculationResponse) {
	payload, err := json.Marshal(quote)
	if err != nil {
		c.logger.Warn("quote cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.key(customerCode, productCode, asOf), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("quote cache write failed", zap.Error(err))
	}
}

// InvalidateAll drops every cached quote under the key prefix.
// Uses SCAN to avoid blocking Redis on large keyspaces.
func (c *RedisQuoteCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to invalidate quote cache: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan quote cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate quote cache: %w", err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisQuoteCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisQuoteCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisQuoteCache implements QuoteCache
var _ apppricing.QuoteCache = (*RedisQuoteCache)(nil)
