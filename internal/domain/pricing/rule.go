package pricing

import (
	"strings"
	"time"

	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ConditionType determines what a rule's product condition is matched against
type ConditionType string

const (
	ConditionAllProducts ConditionType = "ALL_PRODUCTS"
	ConditionCategory    ConditionType = "CATEGORY"
	ConditionProductCode ConditionType = "PRODUCT_CODE"
)

// IsValid reports whether the condition type is one of the known values
func (c ConditionType) IsValid() bool {
	switch c {
	case ConditionAllProducts, ConditionCategory, ConditionProductCode:
		return true
	}
	return false
}

// RequiresValue reports whether the condition type needs a condition value
func (c ConditionType) RequiresValue() bool {
	return c == ConditionCategory || c == ConditionProductCode
}

// PricingMethod determines how a rule transforms the running price
type PricingMethod string

const (
	MethodCostPlusPercent   PricingMethod = "COST_PLUS_PERCENT"
	MethodCostPlusFixed     PricingMethod = "COST_PLUS_FIXED"
	MethodFixedPrice        PricingMethod = "FIXED_PRICE"
	MethodMaintainGPPercent PricingMethod = "MAINTAIN_GP_PERCENT"
)

// IsValid reports whether the pricing method is one of the known values
func (m PricingMethod) IsValid() bool {
	switch m {
	case MethodCostPlusPercent, MethodCostPlusFixed, MethodFixedPrice, MethodMaintainGPPercent:
		return true
	}
	return false
}

// RequiresValue reports whether the method needs a pricing value.
// MAINTAIN_GP_PERCENT can fall back to historical GP, so its value is optional.
func (m PricingMethod) RequiresValue() bool {
	return m != MethodMaintainGPPercent
}

// RuleCategory is the pricing layer a rule belongs to. Layers are applied
// in a fixed order: base price first, promotional last.
type RuleCategory string

const (
	CategoryBasePrice          RuleCategory = "BASE_PRICE"
	CategoryCustomerAdjustment RuleCategory = "CUSTOMER_ADJUSTMENT"
	CategoryProductAdjustment  RuleCategory = "PRODUCT_ADJUSTMENT"
	CategoryPromotional        RuleCategory = "PROMOTIONAL"
)

// CategoriesInOrder returns all rule categories in application order
func CategoriesInOrder() []RuleCategory {
	return []RuleCategory{
		CategoryBasePrice,
		CategoryCustomerAdjustment,
		CategoryProductAdjustment,
		CategoryPromotional,
	}
}

// IsValid reports whether the category is one of the known values
func (c RuleCategory) IsValid() bool {
	switch c {
	case CategoryBasePrice, CategoryCustomerAdjustment, CategoryProductAdjustment, CategoryPromotional:
		return true
	}
	return false
}

// Order returns the application order of the category (1-based)
func (c RuleCategory) Order() int {
	switch c {
	case CategoryBasePrice:
		return 1
	case CategoryCustomerAdjustment:
		return 2
	case CategoryProductAdjustment:
		return 3
	case CategoryPromotional:
		return 4
	}
	return 0
}

// DisplayName returns the human-readable category name
func (c RuleCategory) DisplayName() string {
	switch c {
	case CategoryBasePrice:
		return "Base Price"
	case CategoryCustomerAdjustment:
		return "Customer Adjustment"
	case CategoryProductAdjustment:
		return "Product Adjustment"
	case CategoryPromotional:
		return "Promotional"
	}
	return string(c)
}

// SingleRuleOnly reports whether at most one rule from this category may
// apply per calculation. Only the base-price layer is exclusive.
func (c RuleCategory) SingleRuleOnly() bool {
	return c == CategoryBasePrice
}

// PricingRule is a configured pricing instruction. It is the aggregate root
// for rule management; the calculation engine treats rules as immutable.
type PricingRule struct {
	shared.BaseAggregateRoot
	RuleName       string           `gorm:"type:varchar(200);not null"`
	CustomerCode   *string          `gorm:"type:varchar(50);index"` // nil = standard rule, applies to all customers
	ConditionType  ConditionType    `gorm:"type:varchar(20);not null"`
	ConditionValue *string          `gorm:"type:varchar(100)"`
	PricingMethod  PricingMethod    `gorm:"type:varchar(30);not null"`
	PricingValue   *decimal.Decimal `gorm:"type:decimal(18,6)"`
	Priority       int              `gorm:"not null;default:100"` // legacy tie-break, not read by the layered engine
	RuleCategory   RuleCategory     `gorm:"type:varchar(30);not null;index"`
	LayerOrder     *int             `gorm:"type:int"`
	IsActive       bool             `gorm:"not null;default:true;index"`
	ValidFrom      *time.Time       `gorm:"type:date"`
	ValidTo        *time.Time       `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (PricingRule) TableName() string {
	return "pricing_rules"
}

// RuleAttributes carries the user-editable fields of a pricing rule
type RuleAttributes struct {
	RuleName       string
	CustomerCode   *string
	ConditionType  ConditionType
	ConditionValue *string
	PricingMethod  PricingMethod
	PricingValue   *decimal.Decimal
	Priority       int
	RuleCategory   RuleCategory
	LayerOrder     *int
	IsActive       bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

// NewPricingRule creates a new pricing rule, validating the closed enums and
// the per-method value requirements
func NewPricingRule(attrs RuleAttributes) (*PricingRule, error) {
	if err := validateRuleAttributes(attrs); err != nil {
		return nil, err
	}

	rule := &PricingRule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RuleName:          strings.TrimSpace(attrs.RuleName),
		CustomerCode:      normalizeOptional(attrs.CustomerCode),
		ConditionType:     attrs.ConditionType,
		ConditionValue:    normalizeOptional(attrs.ConditionValue),
		PricingMethod:     attrs.PricingMethod,
		PricingValue:      attrs.PricingValue,
		Priority:          attrs.Priority,
		RuleCategory:      attrs.RuleCategory,
		LayerOrder:        attrs.LayerOrder,
		IsActive:          attrs.IsActive,
		ValidFrom:         attrs.ValidFrom,
		ValidTo:           attrs.ValidTo,
	}

	rule.AddDomainEvent(NewRuleCreatedEvent(rule))

	return rule, nil
}

// Update replaces the rule's editable attributes after validation
func (r *PricingRule) Update(attrs RuleAttributes) error {
	if err := validateRuleAttributes(attrs); err != nil {
		return err
	}

	r.RuleName = strings.TrimSpace(attrs.RuleName)
	r.CustomerCode = normalizeOptional(attrs.CustomerCode)
	r.ConditionType = attrs.ConditionType
	r.ConditionValue = normalizeOptional(attrs.ConditionValue)
	r.PricingMethod = attrs.PricingMethod
	r.PricingValue = attrs.PricingValue
	r.Priority = attrs.Priority
	r.RuleCategory = attrs.RuleCategory
	r.LayerOrder = attrs.LayerOrder
	r.IsActive = attrs.IsActive
	r.ValidFrom = attrs.ValidFrom
	r.ValidTo = attrs.ValidTo
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRuleUpdatedEvent(r))

	return nil
}

// Activate marks the rule as active
func (r *PricingRule) Activate() {
	if r.IsActive {
		return
	}
	r.IsActive = true
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewRuleUpdatedEvent(r))
}

// Deactivate marks the rule as inactive. Inactive rules never match.
func (r *PricingRule) Deactivate() {
	if !r.IsActive {
		return
	}
	r.IsActive = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	r.AddDomainEvent(NewRuleUpdatedEvent(r))
}

// IsStandard reports whether the rule applies to all customers
func (r *PricingRule) IsStandard() bool {
	return r.CustomerCode == nil || strings.TrimSpace(*r.CustomerCode) == ""
}

// IsValidOn reports whether the rule is within its validity window on the
// given date. Bounds are inclusive; a nil bound is unbounded. A nil date
// skips the check entirely.
func (r *PricingRule) IsValidOn(asOf *time.Time) bool {
	if asOf == nil {
		return true
	}
	if r.ValidFrom != nil && asOf.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && asOf.After(*r.ValidTo) {
		return false
	}
	return true
}

// IsRebate reports whether the rule reduces the running price
// (a percent multiplier below 1)
func (r *PricingRule) IsRebate() bool {
	return r.PricingMethod == MethodCostPlusPercent &&
		r.PricingValue != nil &&
		r.PricingValue.LessThan(decimal.NewFromInt(1))
}

func validateRuleAttributes(attrs RuleAttributes) error {
	if strings.TrimSpace(attrs.RuleName) == "" {
		return shared.NewDomainError("INVALID_RULE_NAME", "Rule name is required")
	}
	if !attrs.ConditionType.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION_TYPE", "Condition type must be ALL_PRODUCTS, CATEGORY or PRODUCT_CODE")
	}
	if attrs.ConditionType.RequiresValue() && normalizeOptional(attrs.ConditionValue) == nil {
		return shared.NewDomainError("MISSING_CONDITION_VALUE", "Condition value is required for category and product-code conditions")
	}
	if !attrs.PricingMethod.IsValid() {
		return shared.NewDomainError("INVALID_PRICING_METHOD", "Unknown pricing method")
	}
	if attrs.PricingMethod.RequiresValue() && attrs.PricingValue == nil {
		return shared.NewDomainError("MISSING_PRICING_VALUE", "Pricing value is required for this pricing method")
	}
	if !attrs.RuleCategory.IsValid() {
		return shared.NewDomainError("INVALID_RULE_CATEGORY", "Unknown rule category")
	}
	if attrs.ValidFrom != nil && attrs.ValidTo != nil && attrs.ValidTo.Before(*attrs.ValidFrom) {
		return shared.NewDomainError("INVALID_VALIDITY_WINDOW", "Valid-to date cannot be before valid-from date")
	}
	return nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
