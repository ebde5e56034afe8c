package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(customerCode, productCode, primaryGroup string) *GroupedLineItem {
	item, err := NewGroupedLineItem(customerCode, productCode)
	if err != nil {
		panic(err)
	}
	item.PrimaryGroup = primaryGroup
	item.IncomingCost = decPtr("10.00")
	return item
}

func testRule(name string, category RuleCategory, conditionType ConditionType, conditionValue *string) *PricingRule {
	attrs := validAttrs()
	attrs.RuleName = name
	attrs.RuleCategory = category
	attrs.ConditionType = conditionType
	attrs.ConditionValue = conditionValue
	rule, err := NewPricingRule(attrs)
	if err != nil {
		panic(err)
	}
	return rule
}

func TestMatches(t *testing.T) {
	item := testItem("CUST01", "RIB-001", "Beef")

	t.Run("all-products rule matches any item", func(t *testing.T) {
		rule := testRule("Fallback", CategoryBasePrice, ConditionAllProducts, nil)
		assert.True(t, Matches(rule, item))
	})

	t.Run("customer scope is exact and case-sensitive", func(t *testing.T) {
		rule := testRule("Scoped", CategoryBasePrice, ConditionAllProducts, nil)
		rule.CustomerCode = strPtr("CUST01")
		assert.True(t, Matches(rule, item))

		rule.CustomerCode = strPtr("cust01")
		assert.False(t, Matches(rule, item))

		rule.CustomerCode = strPtr("CUST02")
		assert.False(t, Matches(rule, item))
	})

	t.Run("category condition matches case-insensitively", func(t *testing.T) {
		rule := testRule("Beef Rule", CategoryProductAdjustment, ConditionCategory, strPtr("BEEF"))
		assert.True(t, Matches(rule, item))

		rule = testRule("Pork Rule", CategoryProductAdjustment, ConditionCategory, strPtr("Pork"))
		assert.False(t, Matches(rule, item))
	})

	t.Run("category condition never matches an item without a group", func(t *testing.T) {
		rule := testRule("Beef Rule", CategoryProductAdjustment, ConditionCategory, strPtr("Beef"))
		ungrouped := testItem("CUST01", "RIB-001", "")
		assert.False(t, Matches(rule, ungrouped))
	})

	t.Run("product-code condition matches case-insensitively", func(t *testing.T) {
		rule := testRule("Ribeye Rule", CategoryProductAdjustment, ConditionProductCode, strPtr("rib-001"))
		assert.True(t, Matches(rule, item))

		rule = testRule("Other Rule", CategoryProductAdjustment, ConditionProductCode, strPtr("RIB-002"))
		assert.False(t, Matches(rule, item))
	})

	t.Run("unknown condition type never matches", func(t *testing.T) {
		rule := testRule("Odd", CategoryBasePrice, ConditionAllProducts, nil)
		rule.ConditionType = "SOMETHING_ELSE"
		assert.False(t, Matches(rule, item))

		rule.ConditionType = ""
		assert.False(t, Matches(rule, item))
	})

	t.Run("nil rule or item never matches", func(t *testing.T) {
		rule := testRule("Fallback", CategoryBasePrice, ConditionAllProducts, nil)
		assert.False(t, Matches(nil, item))
		assert.False(t, Matches(rule, nil))
	})
}

func TestMatchingRulesInLayer(t *testing.T) {
	item := testItem("CUST01", "RIB-001", "Beef")
	asOf := datePtr(2026, time.June, 15)

	t.Run("filters to the requested category", func(t *testing.T) {
		base := testRule("Base", CategoryBasePrice, ConditionAllProducts, nil)
		promo := testRule("Promo", CategoryPromotional, ConditionAllProducts, nil)

		matched := MatchingRulesInLayer([]*PricingRule{base, promo}, item, CategoryPromotional, asOf)
		require.Len(t, matched, 1)
		assert.Equal(t, "Promo", matched[0].RuleName)
	})

	t.Run("excludes inactive rules", func(t *testing.T) {
		rule := testRule("Disabled", CategoryBasePrice, ConditionAllProducts, nil)
		rule.IsActive = false

		matched := MatchingRulesInLayer([]*PricingRule{rule}, item, CategoryBasePrice, asOf)
		assert.Empty(t, matched)
	})

	t.Run("excludes rules outside their validity window", func(t *testing.T) {
		expired := testRule("Expired", CategoryBasePrice, ConditionAllProducts, nil)
		expired.ValidTo = datePtr(2026, time.June, 14)
		future := testRule("Future", CategoryBasePrice, ConditionAllProducts, nil)
		future.ValidFrom = datePtr(2026, time.June, 16)
		current := testRule("Current", CategoryBasePrice, ConditionAllProducts, nil)
		current.ValidFrom = datePtr(2026, time.June, 15)
		current.ValidTo = datePtr(2026, time.June, 15)

		matched := MatchingRulesInLayer([]*PricingRule{expired, future, current}, item, CategoryBasePrice, asOf)
		require.Len(t, matched, 1)
		assert.Equal(t, "Current", matched[0].RuleName)
	})

	t.Run("nil date skips the validity filter", func(t *testing.T) {
		expired := testRule("Expired", CategoryBasePrice, ConditionAllProducts, nil)
		expired.ValidTo = datePtr(2020, time.January, 1)

		matched := MatchingRulesInLayer([]*PricingRule{expired}, item, CategoryBasePrice, nil)
		assert.Len(t, matched, 1)
	})

	t.Run("orders by layer order with nils last", func(t *testing.T) {
		third := testRule("Third", CategoryCustomerAdjustment, ConditionAllProducts, nil)
		third.LayerOrder = nil
		first := testRule("First", CategoryCustomerAdjustment, ConditionAllProducts, nil)
		first.LayerOrder = intPtr(1)
		second := testRule("Second", CategoryCustomerAdjustment, ConditionAllProducts, nil)
		second.LayerOrder = intPtr(5)

		matched := MatchingRulesInLayer([]*PricingRule{third, second, first}, item, CategoryCustomerAdjustment, asOf)
		require.Len(t, matched, 3)
		assert.Equal(t, "First", matched[0].RuleName)
		assert.Equal(t, "Second", matched[1].RuleName)
		assert.Equal(t, "Third", matched[2].RuleName)
	})

	t.Run("equal layer orders keep input order", func(t *testing.T) {
		a := testRule("A", CategoryCustomerAdjustment, ConditionAllProducts, nil)
		a.LayerOrder = intPtr(1)
		b := testRule("B", CategoryCustomerAdjustment, ConditionAllProducts, nil)
		b.LayerOrder = intPtr(1)

		matched := MatchingRulesInLayer([]*PricingRule{a, b}, item, CategoryCustomerAdjustment, asOf)
		require.Len(t, matched, 2)
		assert.Equal(t, "A", matched[0].RuleName)
		assert.Equal(t, "B", matched[1].RuleName)
	})

	t.Run("filters by item match after ordering", func(t *testing.T) {
		beef := testRule("Beef Only", CategoryProductAdjustment, ConditionCategory, strPtr("Beef"))
		pork := testRule("Pork Only", CategoryProductAdjustment, ConditionCategory, strPtr("Pork"))
		scoped := testRule("Other Customer", CategoryProductAdjustment, ConditionAllProducts, nil)
		scoped.CustomerCode = strPtr("CUST99")

		matched := MatchingRulesInLayer([]*PricingRule{beef, pork, scoped}, item, CategoryProductAdjustment, asOf)
		require.Len(t, matched, 1)
		assert.Equal(t, "Beef Only", matched[0].RuleName)
	})
}
