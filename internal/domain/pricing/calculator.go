package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// priceScale is the precision every stored price is rounded to. Rounding
// happens once at the result boundary; intermediate layer prices carry
// full precision.
const priceScale = 6

var one = decimal.NewFromInt(1)

// Calculator is the layered price calculation engine. Given a rule set,
// an item and a calculation date it walks the four rule categories in
// fixed order, applies every matching rule to the running price and
// returns the final price with the complete application trail.
//
// Calculation is pure: the engine never persists anything and may be
// invoked concurrently. Data-quality anomalies (missing values, invalid
// GP, a maintain-GP rule after the base layer) skip the offending rule
// with a warning and continue.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a calculation engine
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// CalculatePrice computes the sell price for an item against a rule set.
// A nil item or missing incoming cost yields a zero, empty-trail result
// rather than an error; that situation is a data-quality condition for
// the caller to surface, not a failure of the engine.
func (c *Calculator) CalculatePrice(rules []*PricingRule, item PriceableItem, asOf *time.Time) PricingResult {
	if item == nil {
		c.logger.Warn("price calculation invoked without an item")
		return NewUnpricedResult(decimal.Zero, "No item data")
	}
	cost := item.GetIncomingCost()
	if cost == nil {
		c.logger.Warn("price calculation skipped, item has no incoming cost",
			zap.String("customer_code", item.GetCustomerCode()),
			zap.String("product_code", item.GetProductCode()),
		)
		return NewUnpricedResult(decimal.Zero, "No incoming cost")
	}

	currentPrice := *cost
	var appliedRules []*PricingRule
	var notes []string
	intermediates := []decimal.Decimal{currentPrice}

	apply := func(rule *PricingRule) {
		newPrice, note, applied := c.applyRule(currentPrice, rule, item)
		if !applied {
			return
		}
		currentPrice = newPrice
		appliedRules = append(appliedRules, rule)
		notes = append(notes, note)
		intermediates = append(intermediates, currentPrice)
	}

	for _, category := range CategoriesInOrder() {
		layerRules := MatchingRulesInLayer(rules, item, category, asOf)
		if len(layerRules) == 0 {
			continue
		}
		if category.SingleRuleOnly() {
			apply(layerRules[0])
			continue
		}
		for _, rule := range layerRules {
			apply(rule)
		}
	}

	if len(appliedRules) == 0 {
		return NewUnpricedResult(*cost, "No rules matched")
	}

	finalPrice := currentPrice.Round(priceScale)
	intermediates[len(intermediates)-1] = finalPrice

	return NewPricingResult(*cost, finalPrice, appliedRules, intermediates, composeDescription(appliedRules, notes))
}

// applyRule applies one rule's pricing method to the running price. It
// reports whether the rule actually applied; skipped rules leave the
// running price untouched.
func (c *Calculator) applyRule(currentPrice decimal.Decimal, rule *PricingRule, item PriceableItem) (decimal.Decimal, string, bool) {
	switch rule.PricingMethod {
	case MethodCostPlusPercent:
		if rule.PricingValue == nil {
			c.warnSkipped(rule, "pricing value missing")
			return currentPrice, "", false
		}
		return currentPrice.Mul(*rule.PricingValue), rule.RuleName + " (" + formatPercentDelta(*rule.PricingValue) + ")", true

	case MethodCostPlusFixed:
		if rule.PricingValue == nil {
			c.warnSkipped(rule, "pricing value missing")
			return currentPrice, "", false
		}
		return currentPrice.Add(*rule.PricingValue), rule.RuleName + " (Cost+$" + rule.PricingValue.StringFixed(2) + ")", true

	case MethodFixedPrice:
		if rule.PricingValue == nil {
			c.warnSkipped(rule, "pricing value missing")
			return currentPrice, "", false
		}
		return *rule.PricingValue, rule.RuleName + " (Fixed)", true

	case MethodMaintainGPPercent:
		return c.applyMaintainGP(currentPrice, rule, item)
	}

	c.warnSkipped(rule, "unknown pricing method")
	return currentPrice, "", false
}

// applyMaintainGP establishes the base price from the item's historical
// gross-profit fraction, falling back to the rule's configured default.
// It is only meaningful as the very first applied rule because it prices
// from the incoming cost, not the running price.
func (c *Calculator) applyMaintainGP(currentPrice decimal.Decimal, rule *PricingRule, item PriceableItem) (decimal.Decimal, string, bool) {
	cost := item.GetIncomingCost()
	if cost == nil || !currentPrice.Equal(*cost) {
		c.warnSkipped(rule, "maintain-GP rule is only valid as the first applied rule")
		return currentPrice, "", false
	}

	gp, usedHistory := historicalGP(item)
	if !usedHistory {
		if rule.PricingValue == nil {
			c.warnSkipped(rule, "no historical GP and no default GP configured")
			return currentPrice, "", false
		}
		gp = *rule.PricingValue
	}

	// GP at or above 100% has no finite price
	divisor := one.Sub(gp)
	if divisor.LessThanOrEqual(decimal.Zero) {
		c.warnSkipped(rule, "GP fraction at or above 100%")
		return currentPrice, "", false
	}

	newPrice := cost.DivRound(divisor, priceScale)

	var note string
	if usedHistory {
		note = rule.RuleName + " (Maintained " + formatGP(gp) + " GP)" + gpWarning(gp)
	} else {
		note = rule.RuleName + " (Maintain GP (default " + gp.Mul(decimal.NewFromInt(100)).String() + "%))"
	}
	return newPrice, note, true
}

func (c *Calculator) warnSkipped(rule *PricingRule, reason string) {
	c.logger.Warn("pricing rule skipped",
		zap.String("rule_id", rule.ID.String()),
		zap.String("rule_name", rule.RuleName),
		zap.String("pricing_method", string(rule.PricingMethod)),
		zap.String("reason", reason),
	)
}

// historicalGP derives the prior cycle's gross-profit fraction
// (lastGrossProfit / lastAmount at six decimal places). It is
// intentionally not clamped: negative GP reproduces loss-leader pricing.
func historicalGP(item PriceableItem) (decimal.Decimal, bool) {
	profit := item.GetLastGrossProfit()
	amount := item.GetLastAmount()
	if profit == nil || amount == nil || amount.IsZero() {
		return decimal.Zero, false
	}
	return profit.DivRound(*amount, priceScale), true
}

// formatPercentDelta renders a multiplier as a signed percentage,
// e.g. 1.20 -> "+20.0%", 0.90 -> "-10.0%"
func formatPercentDelta(multiplier decimal.Decimal) string {
	delta := multiplier.Sub(one).Mul(decimal.NewFromInt(100))
	if delta.IsNegative() {
		return delta.StringFixed(1) + "%"
	}
	return "+" + delta.StringFixed(1) + "%"
}

// formatGP renders a GP fraction as a percentage, e.g. 0.185 -> "18.5%"
func formatGP(gp decimal.Decimal) string {
	return gp.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// gpWarning annotates unusually low or high historical margins
func gpWarning(gp decimal.Decimal) string {
	switch {
	case gp.LessThan(decimal.NewFromFloat(0.05)):
		return " (Low GP)"
	case gp.GreaterThan(decimal.NewFromFloat(0.70)):
		return " (High GP)"
	}
	return ""
}
