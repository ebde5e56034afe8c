package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PricingResult is the outcome of one price calculation: the input cost,
// the final price, and the full trail of applied rules with the price
// after each application. It is a pure value owned by the caller.
//
// The trail invariant holds for every result with applied rules:
// len(IntermediateResults()) == len(AppliedRules()) + 1, element 0 being
// the starting cost and the last element the final (pre-rounding never
// escapes; the final element equals CalculatedPrice).
type PricingResult struct {
	cost                decimal.Decimal
	calculatedPrice     decimal.Decimal
	appliedRules        []*PricingRule
	intermediateResults []decimal.Decimal
	description         string
}

// NewPricingResult creates a result for a calculation that applied one or
// more rules. The intermediates slice must already include the starting
// cost at index 0.
func NewPricingResult(cost, calculatedPrice decimal.Decimal, appliedRules []*PricingRule, intermediates []decimal.Decimal, description string) PricingResult {
	return PricingResult{
		cost:                cost,
		calculatedPrice:     calculatedPrice,
		appliedRules:        append([]*PricingRule(nil), appliedRules...),
		intermediateResults: append([]decimal.Decimal(nil), intermediates...),
		description:         description,
	}
}

// NewUnpricedResult creates a result for a calculation where no rule
// applied: the price equals the cost and the trail holds only the cost
func NewUnpricedResult(cost decimal.Decimal, description string) PricingResult {
	return PricingResult{
		cost:                cost,
		calculatedPrice:     cost,
		intermediateResults: []decimal.Decimal{cost},
		description:         description,
	}
}

// Cost returns the input cost
func (r PricingResult) Cost() decimal.Decimal {
	return r.cost
}

// CalculatedPrice returns the final price after all applied rules,
// rounded to six decimal places
func (r PricingResult) CalculatedPrice() decimal.Decimal {
	return r.calculatedPrice
}

// AppliedRules returns the rules that were applied, in application order
func (r PricingResult) AppliedRules() []*PricingRule {
	return append([]*PricingRule(nil), r.appliedRules...)
}

// IntermediateResults returns the price trail: element 0 is the starting
// cost, element i+1 the price after applying rule i
func (r PricingResult) IntermediateResults() []decimal.Decimal {
	return append([]decimal.Decimal(nil), r.intermediateResults...)
}

// Description returns the human-readable summary of the applied rules
func (r PricingResult) Description() string {
	return r.description
}

// IsMultiRule reports whether more than one rule was applied
func (r PricingResult) IsMultiRule() bool {
	return len(r.appliedRules) > 1
}

// HasAppliedRules reports whether any rule was applied
func (r PricingResult) HasAppliedRules() bool {
	return len(r.appliedRules) > 0
}

// FirstRule returns the first applied rule, or nil when none applied
func (r PricingResult) FirstRule() *PricingRule {
	if len(r.appliedRules) == 0 {
		return nil
	}
	return r.appliedRules[0]
}

// composeDescription groups per-rule application notes by category display
// name and joins the groups with " + ", e.g.
// "Base Price: Standard (+20.0%) + Promotional: Summer Sale (-15.0%)"
func composeDescription(rules []*PricingRule, notes []string) string {
	if len(rules) == 0 {
		return "No rules matched"
	}
	if len(rules) == 1 {
		return notes[0]
	}

	var parts []string
	var currentCategory RuleCategory
	var group []string
	flush := func() {
		if len(group) > 0 {
			parts = append(parts, currentCategory.DisplayName()+": "+strings.Join(group, ", "))
			group = nil
		}
	}
	for i, rule := range rules {
		if rule.RuleCategory != currentCategory {
			flush()
			currentCategory = rule.RuleCategory
		}
		group = append(group, notes[i])
	}
	flush()

	return strings.Join(parts, " + ")
}
