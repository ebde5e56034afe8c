package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Common allowed sort fields for entities with base fields
// These are the common fields present in most entities

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// PricingRuleSortFields contains allowed sort fields for pricing rules
var PricingRuleSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"rule_name":      true,
	"customer_code":  true,
	"condition_type": true,
	"pricing_method": true,
	"priority":       true,
	"rule_category":  true,
	"layer_order":    true,
	"is_active":      true,
	"valid_from":     true,
	"valid_to":       true,
}

// LineItemSortFields contains allowed sort fields for grouped line items
var LineItemSortFields = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"customer_code":     true,
	"customer_name":     true,
	"product_code":      true,
	"primary_group":     true,
	"customer_rating":   true,
	"total_quantity":    true,
	"total_amount":      true,
	"total_cost":        true,
	"incoming_cost":     true,
	"last_cost":         true,
	"last_gross_profit": true,
	"last_amount":       true,
}

// SessionSortFields contains allowed sort fields for pricing sessions
var SessionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"as_of_date": true,
	"item_count": true,
}
