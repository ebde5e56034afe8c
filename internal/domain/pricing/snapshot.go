package pricing

import (
	"time"

	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingSession groups the snapshots of one calculation run so a past
// run can be replayed and audited even after rules change
type PricingSession struct {
	shared.BaseAggregateRoot
	AsOfDate  time.Time `gorm:"type:date;not null;index"`
	ItemCount int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (PricingSession) TableName() string {
	return "pricing_sessions"
}

// NewPricingSession creates a session for a calculation run on a date
func NewPricingSession(asOf time.Time) *PricingSession {
	return &PricingSession{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AsOfDate:          asOf,
	}
}

// AppliedRuleSnapshot is the immutable record of one rule application
// within a calculation. It copies the rule's identity and the prices
// around the application, so the trail stays intact when the rule is
// later edited or deleted (RuleID then dangles to nil).
type AppliedRuleSnapshot struct {
	shared.BaseEntity
	SessionID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerCode     string           `gorm:"type:varchar(50);not null;index"`
	ProductCode      string           `gorm:"type:varchar(50);not null;index"`
	RuleID           *uuid.UUID       `gorm:"type:uuid"`
	RuleName         string           `gorm:"type:varchar(200);not null"`
	PricingMethod    PricingMethod    `gorm:"type:varchar(30);not null"`
	PricingValue     *decimal.Decimal `gorm:"type:decimal(18,6)"`
	ApplicationOrder int              `gorm:"not null"`
	InputPrice       decimal.Decimal  `gorm:"type:decimal(18,6);not null"`
	OutputPrice      decimal.Decimal  `gorm:"type:decimal(18,6);not null"`
	AppliedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AppliedRuleSnapshot) TableName() string {
	return "applied_rule_snapshots"
}

// IsRebate reports whether the snapshotted application reduced the price
// via a percent multiplier below 1
func (s *AppliedRuleSnapshot) IsRebate() bool {
	return s.PricingMethod == MethodCostPlusPercent &&
		s.PricingValue != nil &&
		s.PricingValue.LessThan(decimal.NewFromInt(1))
}

// SnapshotsFromResult converts a pricing result's trail into persistable
// snapshots for an item within a session
func SnapshotsFromResult(sessionID uuid.UUID, item PriceableItem, result PricingResult, appliedAt time.Time) []AppliedRuleSnapshot {
	rules := result.AppliedRules()
	trail := result.IntermediateResults()

	snapshots := make([]AppliedRuleSnapshot, 0, len(rules))
	for i, rule := range rules {
		ruleID := rule.ID
		snapshots = append(snapshots, AppliedRuleSnapshot{
			BaseEntity:       shared.NewBaseEntity(),
			SessionID:        sessionID,
			CustomerCode:     item.GetCustomerCode(),
			ProductCode:      item.GetProductCode(),
			RuleID:           &ruleID,
			RuleName:         rule.RuleName,
			PricingMethod:    rule.PricingMethod,
			PricingValue:     rule.PricingValue,
			ApplicationOrder: i + 1,
			InputPrice:       trail[i],
			OutputPrice:      trail[i+1],
			AppliedAt:        appliedAt,
		})
	}
	return snapshots
}
