package cache

import (
	"fmt"

	apppricing "github.com/meatrics/backend/internal/application/pricing"
	"github.com/meatrics/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// QuoteCacheFactory creates quote caches based on configuration
type QuoteCacheFactory struct {
	pricingConfig         config.PricingConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// QuoteCacheFactoryOption is a functional option for configuring the factory
type QuoteCacheFactoryOption func(*QuoteCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) QuoteCacheFactoryOption {
	return func(f *QuoteCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory cache
// when Redis is unavailable. Default is true (allow fallback).
func WithInMemoryFallback(allow bool) QuoteCacheFactoryOption {
	return func(f *QuoteCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewQuoteCacheFactory creates a new factory
func NewQuoteCacheFactory(pricingCfg config.PricingConfig, redisCfg config.RedisConfig, opts ...QuoteCacheFactoryOption) *QuoteCacheFactory {
	f := &QuoteCacheFactory{
		pricingConfig:         pricingCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed quote cache
func (f *QuoteCacheFactory) CreateRedisCache() (apppricing.QuoteCache, error) {
	redisCfg := RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}

	cache, err := NewRedisQuoteCache(redisCfg, f.pricingConfig.QuoteCachePrefix, f.pricingConfig.QuoteCacheTTL, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis quote cache: %w", err)
	}

	return cache, nil
}

// CreateInMemoryCache creates an in-memory quote cache.
// WARNING: in-memory caches do not share state across process instances,
// so rule changes on one instance do not invalidate quotes on another.
func (f *QuoteCacheFactory) CreateInMemoryCache() apppricing.QuoteCache {
	return NewInMemoryQuoteCache(f.pricingConfig.QuoteCacheTTL)
}

// CreateCache creates a quote cache based on the configured backend.
// For the redis backend it falls back to in-memory when Redis is not
// available and AllowInMemoryFallback is true.
func (f *QuoteCacheFactory) CreateCache() (apppricing.QuoteCache, error) {
	if f.pricingConfig.QuoteCacheBackend == "memory" {
		f.logger.Info("using in-memory quote cache")
		return f.CreateInMemoryCache(), nil
	}

	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis quote cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for quote cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory quote cache. "+
		"Rule changes on other instances will not invalidate local quotes.",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
