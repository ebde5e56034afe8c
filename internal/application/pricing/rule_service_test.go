package pricing

import (
	"context"
	"testing"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuleServiceForTest() (*RuleService, *mockRuleRepository, *mockLineItemRepository, *mockEventBus) {
	ruleRepo := newMockRuleRepository()
	lineItemRepo := newMockLineItemRepository()
	bus := &mockEventBus{}
	service := NewRuleService(ruleRepo, lineItemRepo, pricing.NewCalculator(nil), bus, nil)
	return service, ruleRepo, lineItemRepo, bus
}

func TestRuleService_Create(t *testing.T) {
	t.Run("creates and publishes event", func(t *testing.T) {
		service, ruleRepo, _, bus := newRuleServiceForTest()

		value := decimal.RequireFromString("1.2")
		response, err := service.Create(context.Background(), CreateRuleRequest{
			RuleName:      "Standard Markup",
			ConditionType: "ALL_PRODUCTS",
			PricingMethod: "COST_PLUS_PERCENT",
			PricingValue:  &value,
			RuleCategory:  "BASE_PRICE",
		})
		require.NoError(t, err)
		require.NotNil(t, response)

		assert.Equal(t, "Standard Markup", response.RuleName)
		assert.Equal(t, 100, response.Priority)
		assert.True(t, response.IsActive)
		assert.Equal(t, 1, ruleRepo.saveCount)
		assert.Equal(t, []string{pricing.EventTypeRuleCreated}, bus.eventTypes())
	})

	t.Run("rejects invalid attributes", func(t *testing.T) {
		service, ruleRepo, _, _ := newRuleServiceForTest()

		_, err := service.Create(context.Background(), CreateRuleRequest{
			RuleName:      "Broken",
			ConditionType: "CATEGORY",
			PricingMethod: "FIXED_PRICE",
			RuleCategory:  "BASE_PRICE",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "MISSING_CONDITION_VALUE", domainErr.Code)
		assert.Equal(t, 0, ruleRepo.saveCount)
	})
}

func TestRuleService_Update(t *testing.T) {
	service, ruleRepo, _, bus := newRuleServiceForTest()

	rule := fixtureRule("Old Name", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2")
	ruleRepo.addRule(rule)

	value := decimal.RequireFromString("1.3")
	response, err := service.Update(context.Background(), rule.ID, UpdateRuleRequest{
		RuleName:      "New Name",
		ConditionType: "ALL_PRODUCTS",
		PricingMethod: "COST_PLUS_PERCENT",
		PricingValue:  &value,
		RuleCategory:  "BASE_PRICE",
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", response.RuleName)
	assert.True(t, response.PricingValue.Equal(value))
	assert.Equal(t, []string{pricing.EventTypeRuleUpdated}, bus.eventTypes())

	t.Run("unknown rule", func(t *testing.T) {
		_, err := service.Update(context.Background(), uuid.New(), UpdateRuleRequest{
			RuleName:      "X",
			ConditionType: "ALL_PRODUCTS",
			PricingMethod: "FIXED_PRICE",
			PricingValue:  &value,
			RuleCategory:  "BASE_PRICE",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRuleService_Delete(t *testing.T) {
	t.Run("refuses to delete the last standard fallback", func(t *testing.T) {
		service, ruleRepo, _, _ := newRuleServiceForTest()

		fallback := fixtureRule("Fallback", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2")
		ruleRepo.addRule(fallback)

		err := service.Delete(context.Background(), fallback.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LAST_FALLBACK_RULE", domainErr.Code)
		assert.Equal(t, 0, ruleRepo.deleteCount)
	})

	t.Run("deletes when another fallback remains", func(t *testing.T) {
		service, ruleRepo, _, bus := newRuleServiceForTest()

		first := fixtureRule("Fallback A", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2")
		second := fixtureRule("Fallback B", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.25")
		ruleRepo.addRule(first)
		ruleRepo.addRule(second)

		err := service.Delete(context.Background(), first.ID)
		require.NoError(t, err)

		assert.Equal(t, 1, ruleRepo.deleteCount)
		assert.Equal(t, []string{pricing.EventTypeRuleDeleted}, bus.eventTypes())
	})

	t.Run("deletes scoped rules without guard", func(t *testing.T) {
		service, ruleRepo, _, _ := newRuleServiceForTest()

		fallback := fixtureRule("Fallback", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2")
		scoped := fixtureRule("Lamb Discount", "PRODUCT_ADJUSTMENT", "CATEGORY", strRef("Lamb"), "COST_PLUS_PERCENT", "0.9")
		ruleRepo.addRule(fallback)
		ruleRepo.addRule(scoped)

		err := service.Delete(context.Background(), scoped.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, ruleRepo.deleteCount)
	})
}

func TestRuleService_List(t *testing.T) {
	service, ruleRepo, _, _ := newRuleServiceForTest()

	ruleRepo.addRule(fixtureRule("Promo", "PROMOTIONAL", "CATEGORY", strRef("Beef"), "COST_PLUS_PERCENT", "0.85"))
	ruleRepo.addRule(fixtureRule("Base", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2"))

	responses, total, err := service.List(context.Background(), RuleListFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	require.Len(t, responses, 2)
	assert.Equal(t, "Base", responses[0].RuleName)
	assert.Equal(t, "Promo", responses[1].RuleName)
}

func TestRuleService_EnsureDefaultRule(t *testing.T) {
	t.Run("creates the fallback on an empty rule set", func(t *testing.T) {
		service, ruleRepo, _, _ := newRuleServiceForTest()

		require.NoError(t, service.EnsureDefaultRule(context.Background()))

		assert.Equal(t, 1, ruleRepo.saveCount)
		exists, err := service.HasDefaultRule(context.Background())
		require.NoError(t, err)
		assert.True(t, exists)

		for _, rule := range ruleRepo.rules {
			assert.Equal(t, DefaultRuleName, rule.RuleName)
			assert.Equal(t, pricing.MethodMaintainGPPercent, rule.PricingMethod)
			assert.Equal(t, pricing.CategoryBasePrice, rule.RuleCategory)
			require.NotNil(t, rule.PricingValue)
			assert.True(t, rule.PricingValue.Equal(decimal.RequireFromString("0.25")))
		}
	})

	t.Run("does nothing when a fallback exists", func(t *testing.T) {
		service, ruleRepo, _, _ := newRuleServiceForTest()
		ruleRepo.addRule(fixtureRule("Fallback", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2"))

		require.NoError(t, service.EnsureDefaultRule(context.Background()))
		assert.Equal(t, 0, ruleRepo.saveCount)
	})
}

func TestRuleService_Preview(t *testing.T) {
	t.Run("standard fallback reports count only", func(t *testing.T) {
		service, _, lineItemRepo, _ := newRuleServiceForTest()

		lineItemRepo.addItem(fixtureItem("CUST-A", "BEEF-001", "10.00"))
		lineItemRepo.addItem(fixtureItem("CUST-B", "LAMB-001", "8.00"))

		value := decimal.RequireFromString("1.25")
		response, err := service.Preview(context.Background(), PreviewRuleRequest{
			CreateRuleRequest: CreateRuleRequest{
				RuleName:      "New Fallback",
				ConditionType: "ALL_PRODUCTS",
				PricingMethod: "COST_PLUS_PERCENT",
				PricingValue:  &value,
				RuleCategory:  "BASE_PRICE",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, response.AffectedItemCount)
		assert.Empty(t, response.Previews)
	})

	t.Run("scoped rule projects the price change", func(t *testing.T) {
		service, ruleRepo, lineItemRepo, _ := newRuleServiceForTest()

		ruleRepo.addRule(fixtureRule("Base", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2"))
		item := fixtureItem("CUST-A", "BEEF-001", "10.00")
		item.PrimaryGroup = "Beef"
		lineItemRepo.addItem(item)
		other := fixtureItem("CUST-B", "LAMB-001", "8.00")
		other.PrimaryGroup = "Lamb"
		lineItemRepo.addItem(other)

		value := decimal.RequireFromString("0.9")
		response, err := service.Preview(context.Background(), PreviewRuleRequest{
			CreateRuleRequest: CreateRuleRequest{
				RuleName:       "Beef Discount",
				ConditionType:  "CATEGORY",
				ConditionValue: strRef("Beef"),
				PricingMethod:  "COST_PLUS_PERCENT",
				PricingValue:   &value,
				RuleCategory:   "PRODUCT_ADJUSTMENT",
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, response.AffectedItemCount)
		require.Len(t, response.Previews, 1)

		preview := response.Previews[0]
		assert.Equal(t, "CUST-A", preview.CustomerCode)
		assert.True(t, preview.CurrentPrice.Equal(decimal.RequireFromString("12")), "current %s", preview.CurrentPrice)
		assert.True(t, preview.ProposedPrice.Equal(decimal.RequireFromString("10.8")), "proposed %s", preview.ProposedPrice)
		assert.True(t, preview.PriceChange.Equal(decimal.RequireFromString("-1.2")), "change %s", preview.PriceChange)
	})

	t.Run("replacing a stored rule compares against the replacement", func(t *testing.T) {
		service, ruleRepo, lineItemRepo, _ := newRuleServiceForTest()

		ruleRepo.addRule(fixtureRule("Base", "BASE_PRICE", "ALL_PRODUCTS", nil, "COST_PLUS_PERCENT", "1.2"))
		existing := fixtureRule("Beef Discount", "PRODUCT_ADJUSTMENT", "CATEGORY", strRef("Beef"), "COST_PLUS_PERCENT", "0.9")
		ruleRepo.addRule(existing)

		item := fixtureItem("CUST-A", "BEEF-001", "10.00")
		item.PrimaryGroup = "Beef"
		lineItemRepo.addItem(item)

		value := decimal.RequireFromString("0.95")
		response, err := service.Preview(context.Background(), PreviewRuleRequest{
			RuleID: &existing.ID,
			CreateRuleRequest: CreateRuleRequest{
				RuleName:       "Beef Discount",
				ConditionType:  "CATEGORY",
				ConditionValue: strRef("Beef"),
				PricingMethod:  "COST_PLUS_PERCENT",
				PricingValue:   &value,
				RuleCategory:   "PRODUCT_ADJUSTMENT",
			},
		})
		require.NoError(t, err)
		require.Len(t, response.Previews, 1)

		preview := response.Previews[0]
		assert.True(t, preview.CurrentPrice.Equal(decimal.RequireFromString("10.8")), "current %s", preview.CurrentPrice)
		assert.True(t, preview.ProposedPrice.Equal(decimal.RequireFromString("11.4")), "proposed %s", preview.ProposedPrice)
	})
}
