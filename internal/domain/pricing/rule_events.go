package pricing

import (
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypePricingRule = "PricingRule"

// Event type constants
const (
	EventTypeRuleCreated = "PricingRuleCreated"
	EventTypeRuleUpdated = "PricingRuleUpdated"
	EventTypeRuleDeleted = "PricingRuleDeleted"
)

// RuleCreatedEvent is published when a new pricing rule is created
type RuleCreatedEvent struct {
	shared.BaseDomainEvent
	RuleID       uuid.UUID    `json:"rule_id"`
	RuleName     string       `json:"rule_name"`
	RuleCategory RuleCategory `json:"rule_category"`
	CustomerCode *string      `json:"customer_code,omitempty"`
}

// NewRuleCreatedEvent creates a new RuleCreatedEvent
func NewRuleCreatedEvent(rule *PricingRule) *RuleCreatedEvent {
	return &RuleCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRuleCreated, AggregateTypePricingRule, rule.ID),
		RuleID:          rule.ID,
		RuleName:        rule.RuleName,
		RuleCategory:    rule.RuleCategory,
		CustomerCode:    rule.CustomerCode,
	}
}

// RuleUpdatedEvent is published when a pricing rule is updated,
// activated or deactivated
type RuleUpdatedEvent struct {
	shared.BaseDomainEvent
	RuleID       uuid.UUID    `json:"rule_id"`
	RuleName     string       `json:"rule_name"`
	RuleCategory RuleCategory `json:"rule_category"`
	IsActive     bool         `json:"is_active"`
}

// NewRuleUpdatedEvent creates a new RuleUpdatedEvent
func NewRuleUpdatedEvent(rule *PricingRule) *RuleUpdatedEvent {
	return &RuleUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRuleUpdated, AggregateTypePricingRule, rule.ID),
		RuleID:          rule.ID,
		RuleName:        rule.RuleName,
		RuleCategory:    rule.RuleCategory,
		IsActive:        rule.IsActive,
	}
}

// RuleDeletedEvent is published when a pricing rule is deleted
type RuleDeletedEvent struct {
	shared.BaseDomainEvent
	RuleID   uuid.UUID `json:"rule_id"`
	RuleName string    `json:"rule_name"`
}

// NewRuleDeletedEvent creates a new RuleDeletedEvent
func NewRuleDeletedEvent(rule *PricingRule) *RuleDeletedEvent {
	return &RuleDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRuleDeleted, AggregateTypePricingRule, rule.ID),
		RuleID:          rule.ID,
		RuleName:        rule.RuleName,
	}
}
