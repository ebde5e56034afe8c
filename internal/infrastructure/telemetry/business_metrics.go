// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics provides business metrics for the pricing engine.
// It tracks calculation runs, rule applications, quote cache activity,
// and the current active rule population.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	calculationRunsTotal   *Counter
	itemsPricedTotal       *Counter
	rulesAppliedTotal      *Counter
	ruleSkipsTotal         *Counter
	quoteCacheRequestTotal *Counter

	// Histogram metrics
	calculationDuration *Histogram

	// Gauge metrics (point-in-time values)
	activeRuleCount *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	ruleProvider RuleMetricsProvider
}

// RuleMetricsProvider provides rule data for periodic metrics collection.
// This interface lets the telemetry layer query the rule population without
// depending on the pricing domain directly.
type RuleMetricsProvider interface {
	// GetActiveRuleCountByCategory returns the number of active rules per category.
	GetActiveRuleCountByCategory(ctx context.Context) (map[string]int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	RuleProvider    RuleMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:        cfg.Meter,
		logger:       logger,
		stopChan:     make(chan struct{}),
		ruleProvider: cfg.RuleProvider,
	}

	var err error

	// Calculation metrics
	bm.calculationRunsTotal, err = NewCounter(
		cfg.Meter,
		"pricing_calculation_runs_total",
		"Total number of full pricing calculation runs",
		"{runs}",
	)
	if err != nil {
		return nil, err
	}

	bm.itemsPricedTotal, err = NewCounter(
		cfg.Meter,
		"pricing_items_priced_total",
		"Total number of line items priced",
		"{items}",
	)
	if err != nil {
		return nil, err
	}

	// Rule metrics
	bm.rulesAppliedTotal, err = NewCounter(
		cfg.Meter,
		"pricing_rules_applied_total",
		"Total number of rule applications across all calculations",
		"{applications}",
	)
	if err != nil {
		return nil, err
	}

	bm.ruleSkipsTotal, err = NewCounter(
		cfg.Meter,
		"pricing_rule_skips_total",
		"Total number of rules skipped due to anomalous inputs",
		"{skips}",
	)
	if err != nil {
		return nil, err
	}

	// Quote cache metrics
	bm.quoteCacheRequestTotal, err = NewCounter(
		cfg.Meter,
		"pricing_quote_cache_requests_total",
		"Total number of quote cache lookups, labeled hit or miss",
		"{requests}",
	)
	if err != nil {
		return nil, err
	}

	bm.calculationDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "pricing_calculation_duration_seconds",
		Description: "Duration of full pricing calculation runs",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	// Rule population gauge
	bm.activeRuleCount, err = NewGauge(
		cfg.Meter,
		"pricing_active_rule_count",
		"Current number of active pricing rules",
		"{rules}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Calculation Metrics
// =============================================================================

// RecordCalculationRun records a completed full calculation run.
func (bm *BusinessMetrics) RecordCalculationRun(ctx context.Context, itemCount int64, duration time.Duration) {
	bm.calculationRunsTotal.Inc(ctx)
	bm.itemsPricedTotal.Add(ctx, itemCount)
	bm.calculationDuration.RecordDuration(ctx, duration)
}

// RecordRuleApplied records a single rule application.
func (bm *BusinessMetrics) RecordRuleApplied(ctx context.Context, category, method string) {
	bm.rulesAppliedTotal.Inc(ctx,
		AttrRuleCategory.String(category),
		AttrPricingMethod.String(method),
	)
}

// RecordRuleSkipped records a rule that matched an item but was skipped
// because applying it would have produced an anomalous price.
func (bm *BusinessMetrics) RecordRuleSkipped(ctx context.Context, category, method string) {
	bm.ruleSkipsTotal.Inc(ctx,
		AttrRuleCategory.String(category),
		AttrPricingMethod.String(method),
	)
}

// =============================================================================
// Quote Cache Metrics
// =============================================================================

// CacheResult labels the outcome of a quote cache lookup.
type CacheResult string

const (
	CacheResultHit  CacheResult = "hit"
	CacheResultMiss CacheResult = "miss"
)

// RecordQuoteCacheLookup records a quote cache lookup outcome.
func (bm *BusinessMetrics) RecordQuoteCacheLookup(ctx context.Context, result CacheResult) {
	bm.quoteCacheRequestTotal.Inc(ctx,
		AttrCacheResult.String(string(result)),
	)
}

// =============================================================================
// Rule Population Metrics
// =============================================================================

// RecordActiveRuleCount records the current active rule count for a category.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordActiveRuleCount(ctx context.Context, category string, count int64) {
	bm.activeRuleCount.Record(ctx, count,
		AttrRuleCategory.String(category),
	)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects the active rule count every interval (default: 5 minutes).
// This is non-blocking. Use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectRuleMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectRuleMetrics(ctx)
		}
	}
}

// collectRuleMetrics collects the active rule count gauge.
func (bm *BusinessMetrics) collectRuleMetrics(ctx context.Context) {
	if bm.ruleProvider == nil {
		bm.logger.Debug("No rule provider configured, skipping rule metrics collection")
		return
	}

	countsByCategory, err := bm.ruleProvider.GetActiveRuleCountByCategory(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get active rule counts", zap.Error(err))
		return
	}

	for category, count := range countsByCategory {
		bm.RecordActiveRuleCount(ctx, category, count)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
