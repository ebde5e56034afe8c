package pricing

import (
	"context"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// QuoteCacheInvalidator drops cached quotes whenever the rule set changes
type QuoteCacheInvalidator struct {
	cache  QuoteCache
	logger *zap.Logger
}

// NewQuoteCacheInvalidator creates an invalidator for the given cache
func NewQuoteCacheInvalidator(cache QuoteCache, logger *zap.Logger) *QuoteCacheInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteCacheInvalidator{cache: cache, logger: logger}
}

// EventTypes returns the rule mutation events that invalidate quotes
func (h *QuoteCacheInvalidator) EventTypes() []string {
	return []string{
		pricing.EventTypeRuleCreated,
		pricing.EventTypeRuleUpdated,
		pricing.EventTypeRuleDeleted,
	}
}

// Handle invalidates every cached quote
func (h *QuoteCacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	if err := h.cache.InvalidateAll(ctx); err != nil {
		h.logger.Warn("quote cache invalidation failed",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
		return err
	}
	h.logger.Debug("quote cache invalidated", zap.String("event_type", event.EventType()))
	return nil
}

var _ shared.EventHandler = (*QuoteCacheInvalidator)(nil)
