package pricing

import (
	"sort"
	"strings"
	"time"
)

// Matches reports whether a rule's conditions apply to an item.
// Customer scope is an exact, case-sensitive comparison; the product
// condition is matched case-insensitively. An unknown or empty condition
// type never matches (such rules are rejected at save time).
func Matches(rule *PricingRule, item PriceableItem) bool {
	if rule == nil || item == nil {
		return false
	}

	if rule.CustomerCode != nil && *rule.CustomerCode != item.GetCustomerCode() {
		return false
	}

	switch rule.ConditionType {
	case ConditionAllProducts:
		return true
	case ConditionCategory:
		return equalsIgnoreCase(rule.ConditionValue, item.GetPrimaryGroup())
	case ConditionProductCode:
		return equalsIgnoreCase(rule.ConditionValue, item.GetProductCode())
	default:
		return false
	}
}

// MatchingRulesInLayer returns the rules of one category that are active,
// valid on the given date, and match the item, ordered by layer order
// ascending with nil layer orders last. The sort is stable, so rules with
// equal layer order keep their input order.
func MatchingRulesInLayer(rules []*PricingRule, item PriceableItem, category RuleCategory, asOf *time.Time) []*PricingRule {
	var candidates []*PricingRule
	for _, rule := range rules {
		if rule == nil || rule.RuleCategory != category {
			continue
		}
		if !rule.IsActive {
			continue
		}
		if !rule.IsValidOn(asOf) {
			continue
		}
		candidates = append(candidates, rule)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].LayerOrder, candidates[j].LayerOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	matched := candidates[:0]
	for _, rule := range candidates {
		if Matches(rule, item) {
			matched = append(matched, rule)
		}
	}
	return matched
}

func equalsIgnoreCase(condition *string, value string) bool {
	if condition == nil || value == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(*condition), strings.TrimSpace(value))
}
