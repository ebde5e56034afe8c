package pricing

import (
	"context"

	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RuleRepository defines the interface for pricing rule persistence
type RuleRepository interface {
	// FindByID finds a rule by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PricingRule, error)

	// FindAll finds all rules matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PricingRule, error)

	// FindAllActive finds every active rule, ordered by category and layer order.
	// This is the rule set the calculation engine works from.
	FindAllActive(ctx context.Context) ([]PricingRule, error)

	// CountActiveStandardFallbacks counts active rules with no customer
	// scope and an ALL_PRODUCTS condition. The last such rule must never
	// be deleted.
	CountActiveStandardFallbacks(ctx context.Context) (int64, error)

	// Save creates or updates a rule
	Save(ctx context.Context, rule *PricingRule) error

	// Delete removes a rule
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts rules matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// LineItemRepository defines the interface for grouped line item persistence
type LineItemRepository interface {
	// FindByID finds a line item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*GroupedLineItem, error)

	// FindAll finds all line items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]GroupedLineItem, error)

	// FindByCustomer finds all line items for a customer
	FindByCustomer(ctx context.Context, customerCode string) ([]GroupedLineItem, error)

	// FindByProduct finds all line items for a product
	FindByProduct(ctx context.Context, productCode string) ([]GroupedLineItem, error)

	// FindByCustomerAndProduct finds the line item for a customer/product pair
	FindByCustomerAndProduct(ctx context.Context, customerCode, productCode string) (*GroupedLineItem, error)

	// Save creates or updates a line item
	Save(ctx context.Context, item *GroupedLineItem) error

	// SaveBatch creates or updates line items in bulk
	SaveBatch(ctx context.Context, items []*GroupedLineItem) error

	// Delete removes a line item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts line items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SessionRepository defines the interface for pricing session and
// applied-rule snapshot persistence
type SessionRepository interface {
	// SaveSession creates or updates a pricing session
	SaveSession(ctx context.Context, session *PricingSession) error

	// FindSessionByID finds a session by its ID
	FindSessionByID(ctx context.Context, id uuid.UUID) (*PricingSession, error)

	// FindRecentSessions lists the most recent sessions
	FindRecentSessions(ctx context.Context, limit int) ([]PricingSession, error)

	// SaveSnapshots persists the applied-rule snapshots of a calculation
	SaveSnapshots(ctx context.Context, snapshots []AppliedRuleSnapshot) error

	// FindSnapshotsBySession lists a session's snapshots in application order
	FindSnapshotsBySession(ctx context.Context, sessionID uuid.UUID) ([]AppliedRuleSnapshot, error)
}
