package pricing

import (
	"time"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRuleRequest represents a request to create a pricing rule
type CreateRuleRequest struct {
	RuleName       string           `json:"rule_name" binding:"required,min=1,max=200"`
	CustomerCode   *string          `json:"customer_code" binding:"omitempty,max=50"`
	ConditionType  string           `json:"condition_type" binding:"required,oneof=ALL_PRODUCTS CATEGORY PRODUCT_CODE"`
	ConditionValue *string          `json:"condition_value" binding:"omitempty,max=100"`
	PricingMethod  string           `json:"pricing_method" binding:"required,oneof=COST_PLUS_PERCENT COST_PLUS_FIXED FIXED_PRICE MAINTAIN_GP_PERCENT"`
	PricingValue   *decimal.Decimal `json:"pricing_value"`
	Priority       *int             `json:"priority"`
	RuleCategory   string           `json:"rule_category" binding:"required,oneof=BASE_PRICE CUSTOMER_ADJUSTMENT PRODUCT_ADJUSTMENT PROMOTIONAL"`
	LayerOrder     *int             `json:"layer_order"`
	IsActive       *bool            `json:"is_active"`
	ValidFrom      *time.Time       `json:"valid_from"`
	ValidTo        *time.Time       `json:"valid_to"`
}

// UpdateRuleRequest represents a request to update a pricing rule
type UpdateRuleRequest = CreateRuleRequest

// RuleResponse represents a pricing rule in API responses
type RuleResponse struct {
	ID             uuid.UUID        `json:"id"`
	RuleName       string           `json:"rule_name"`
	CustomerCode   *string          `json:"customer_code,omitempty"`
	ConditionType  string           `json:"condition_type"`
	ConditionValue *string          `json:"condition_value,omitempty"`
	PricingMethod  string           `json:"pricing_method"`
	PricingValue   *decimal.Decimal `json:"pricing_value,omitempty"`
	Priority       int              `json:"priority"`
	RuleCategory   string           `json:"rule_category"`
	LayerOrder     *int             `json:"layer_order,omitempty"`
	IsActive       bool             `json:"is_active"`
	ValidFrom      *time.Time       `json:"valid_from,omitempty"`
	ValidTo        *time.Time       `json:"valid_to,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Version        int              `json:"version"`
}

// RuleListFilter represents filter options for the rule list
type RuleListFilter struct {
	CustomerCode string `form:"customer_code"`
	RuleCategory string `form:"rule_category" binding:"omitempty,oneof=BASE_PRICE CUSTOMER_ADJUSTMENT PRODUCT_ADJUSTMENT PROMOTIONAL"`
	ActiveOnly   bool   `form:"active_only"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PreviewRuleRequest previews the effect of a candidate rule before saving.
// RuleID, when set, marks the stored rule the candidate would replace.
type PreviewRuleRequest struct {
	RuleID   *uuid.UUID `json:"rule_id"`
	AsOfDate *time.Time `json:"as_of_date"`
	CreateRuleRequest
}

// PricePreview is the projected price change for one line item
type PricePreview struct {
	CustomerCode       string          `json:"customer_code"`
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description"`
	CurrentPrice       decimal.Decimal `json:"current_price"`
	ProposedPrice      decimal.Decimal `json:"proposed_price"`
	PriceChange        decimal.Decimal `json:"price_change"`
}

// RulePreviewResponse summarizes what a candidate rule would affect
type RulePreviewResponse struct {
	AffectedItemCount int            `json:"affected_item_count"`
	Previews          []PricePreview `json:"previews,omitempty"`
}

// CalculateRequest represents a request to run a pricing calculation
type CalculateRequest struct {
	AsOfDate     *time.Time `json:"as_of_date"`
	CustomerCode string     `json:"customer_code" binding:"omitempty,max=50"`
	ProductCode  string     `json:"product_code" binding:"omitempty,max=50"`
}

// AppliedRuleDTO is one trail entry in a calculation response
type AppliedRuleDTO struct {
	RuleID        uuid.UUID        `json:"rule_id"`
	RuleName      string           `json:"rule_name"`
	RuleCategory  string           `json:"rule_category"`
	PricingMethod string           `json:"pricing_method"`
	PricingValue  *decimal.Decimal `json:"pricing_value,omitempty"`
	InputPrice    decimal.Decimal  `json:"input_price"`
	OutputPrice   decimal.Decimal  `json:"output_price"`
}

// ItemCalculationResponse is the calculation outcome for one line item
type ItemCalculationResponse struct {
	CustomerCode    string           `json:"customer_code"`
	ProductCode     string           `json:"product_code"`
	Cost            decimal.Decimal  `json:"cost"`
	CalculatedPrice decimal.Decimal  `json:"calculated_price"`
	Description     string           `json:"description"`
	AppliedRules    []AppliedRuleDTO `json:"applied_rules"`
}

// CalculationResponse is the outcome of a calculation run
type CalculationResponse struct {
	SessionID uuid.UUID                 `json:"session_id"`
	AsOfDate  time.Time                 `json:"as_of_date"`
	ItemCount int                       `json:"item_count"`
	Items     []ItemCalculationResponse `json:"items"`
}

// SessionResponse represents a persisted pricing session
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	AsOfDate  time.Time `json:"as_of_date"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotResponse represents a persisted applied-rule snapshot
type SnapshotResponse struct {
	ID               uuid.UUID        `json:"id"`
	SessionID        uuid.UUID        `json:"session_id"`
	CustomerCode     string           `json:"customer_code"`
	ProductCode      string           `json:"product_code"`
	RuleID           *uuid.UUID       `json:"rule_id,omitempty"`
	RuleName         string           `json:"rule_name"`
	PricingMethod    string           `json:"pricing_method"`
	PricingValue     *decimal.Decimal `json:"pricing_value,omitempty"`
	ApplicationOrder int              `json:"application_order"`
	InputPrice       decimal.Decimal  `json:"input_price"`
	OutputPrice      decimal.Decimal  `json:"output_price"`
	IsRebate         bool             `json:"is_rebate"`
	AppliedAt        time.Time        `json:"applied_at"`
}

// LineItemResponse represents a grouped line item in API responses
type LineItemResponse struct {
	ID                 uuid.UUID        `json:"id"`
	CustomerCode       string           `json:"customer_code"`
	CustomerName       string           `json:"customer_name"`
	ProductCode        string           `json:"product_code"`
	ProductDescription string           `json:"product_description"`
	PrimaryGroup       string           `json:"primary_group"`
	CustomerRating     string           `json:"customer_rating"`
	TotalQuantity      decimal.Decimal  `json:"total_quantity"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	TotalCost          decimal.Decimal  `json:"total_cost"`
	IncomingCost       *decimal.Decimal `json:"incoming_cost,omitempty"`
	LastCost           *decimal.Decimal `json:"last_cost,omitempty"`
	LastGrossProfit    *decimal.Decimal `json:"last_gross_profit,omitempty"`
	LastAmount         *decimal.Decimal `json:"last_amount,omitempty"`
}

// ToRuleResponse converts a domain rule to its API representation
func ToRuleResponse(rule *pricing.PricingRule) *RuleResponse {
	return &RuleResponse{
		ID:             rule.ID,
		RuleName:       rule.RuleName,
		CustomerCode:   rule.CustomerCode,
		ConditionType:  string(rule.ConditionType),
		ConditionValue: rule.ConditionValue,
		PricingMethod:  string(rule.PricingMethod),
		PricingValue:   rule.PricingValue,
		Priority:       rule.Priority,
		RuleCategory:   string(rule.RuleCategory),
		LayerOrder:     rule.LayerOrder,
		IsActive:       rule.IsActive,
		ValidFrom:      rule.ValidFrom,
		ValidTo:        rule.ValidTo,
		CreatedAt:      rule.CreatedAt,
		UpdatedAt:      rule.UpdatedAt,
		Version:        rule.GetVersion(),
	}
}

// ToLineItemResponse converts a domain line item to its API representation
func ToLineItemResponse(item *pricing.GroupedLineItem) *LineItemResponse {
	return &LineItemResponse{
		ID:                 item.ID,
		CustomerCode:       item.CustomerCode,
		CustomerName:       item.CustomerName,
		ProductCode:        item.ProductCode,
		ProductDescription: item.ProductDescription,
		PrimaryGroup:       item.PrimaryGroup,
		CustomerRating:     item.CustomerRating,
		TotalQuantity:      item.TotalQuantity,
		TotalAmount:        item.TotalAmount,
		TotalCost:          item.TotalCost,
		IncomingCost:       item.IncomingCost,
		LastCost:           item.LastCost,
		LastGrossProfit:    item.LastGrossProfit,
		LastAmount:         item.LastAmount,
	}
}

// ToSnapshotResponse converts a domain snapshot to its API representation
func ToSnapshotResponse(s *pricing.AppliedRuleSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:               s.ID,
		SessionID:        s.SessionID,
		CustomerCode:     s.CustomerCode,
		ProductCode:      s.ProductCode,
		RuleID:           s.RuleID,
		RuleName:         s.RuleName,
		PricingMethod:    string(s.PricingMethod),
		PricingValue:     s.PricingValue,
		ApplicationOrder: s.ApplicationOrder,
		InputPrice:       s.InputPrice,
		OutputPrice:      s.OutputPrice,
		IsRebate:         s.IsRebate(),
		AppliedAt:        s.AppliedAt,
	}
}

// toRuleAttributes maps a create/update request onto domain attributes
func toRuleAttributes(req CreateRuleRequest) pricing.RuleAttributes {
	priority := 100
	if req.Priority != nil {
		priority = *req.Priority
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return pricing.RuleAttributes{
		RuleName:       req.RuleName,
		CustomerCode:   req.CustomerCode,
		ConditionType:  pricing.ConditionType(req.ConditionType),
		ConditionValue: req.ConditionValue,
		PricingMethod:  pricing.PricingMethod(req.PricingMethod),
		PricingValue:   req.PricingValue,
		Priority:       priority,
		RuleCategory:   pricing.RuleCategory(req.RuleCategory),
		LayerOrder:     req.LayerOrder,
		IsActive:       active,
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
	}
}
