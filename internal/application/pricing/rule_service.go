package pricing

import (
	"context"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultRuleName is the name of the system-created fallback rule
const DefaultRuleName = "System Default - Maintain GP%"

// defaultRuleOrder pushes the fallback behind every user-configured rule
const defaultRuleOrder = 999999

// RuleService handles pricing rule management: CRUD, the last-fallback
// delete guard, the system default initializer and rule previews
type RuleService struct {
	ruleRepo     pricing.RuleRepository
	lineItemRepo pricing.LineItemRepository
	calculator   *pricing.Calculator
	eventBus     shared.EventPublisher
	logger       *zap.Logger
}

// NewRuleService creates a new RuleService
func NewRuleService(
	ruleRepo pricing.RuleRepository,
	lineItemRepo pricing.LineItemRepository,
	calculator *pricing.Calculator,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *RuleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleService{
		ruleRepo:     ruleRepo,
		lineItemRepo: lineItemRepo,
		calculator:   calculator,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// Create creates a new pricing rule
func (s *RuleService) Create(ctx context.Context, req CreateRuleRequest) (*RuleResponse, error) {
	rule, err := pricing.NewPricingRule(toRuleAttributes(req))
	if err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, rule)

	s.logger.Info("pricing rule created",
		zap.String("rule_id", rule.ID.String()),
		zap.String("rule_name", rule.RuleName),
		zap.String("rule_category", string(rule.RuleCategory)),
	)

	return ToRuleResponse(rule), nil
}

// GetByID retrieves a pricing rule by ID
func (s *RuleService) GetByID(ctx context.Context, id uuid.UUID) (*RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRuleResponse(rule), nil
}

// List retrieves pricing rules matching the filter
func (s *RuleService) List(ctx context.Context, filter RuleListFilter) ([]RuleResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "rule_category"
	domainFilter.OrderDir = "asc"

	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.CustomerCode != "" {
		domainFilter.Filters["customer_code"] = filter.CustomerCode
	}
	if filter.RuleCategory != "" {
		domainFilter.Filters["rule_category"] = filter.RuleCategory
	}
	if filter.ActiveOnly {
		domainFilter.Filters["is_active"] = true
	}

	rules, err := s.ruleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ruleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]RuleResponse, len(rules))
	for i := range rules {
		responses[i] = *ToRuleResponse(&rules[i])
	}
	return responses, total, nil
}

// Update updates an existing pricing rule
func (s *RuleService) Update(ctx context.Context, id uuid.UUID, req UpdateRuleRequest) (*RuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rule.Update(toRuleAttributes(req)); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, rule)

	return ToRuleResponse(rule), nil
}

// Delete removes a pricing rule. Deleting the last active standard
// ALL_PRODUCTS rule is refused: without it the calculation engine would
// have no base-price fallback and items could go entirely unpriced.
func (s *RuleService) Delete(ctx context.Context, id uuid.UUID) error {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if rule.IsActive && rule.IsStandard() && rule.ConditionType == pricing.ConditionAllProducts {
		count, err := s.ruleRepo.CountActiveStandardFallbacks(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return shared.NewDomainError("LAST_FALLBACK_RULE", "Cannot delete the last active standard pricing rule")
		}
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.eventBus != nil {
		event := pricing.NewRuleDeletedEvent(rule)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish rule deleted event", zap.Error(err))
		}
	}

	s.logger.Info("pricing rule deleted",
		zap.String("rule_id", rule.ID.String()),
		zap.String("rule_name", rule.RuleName),
	)

	return nil
}

// HasDefaultRule reports whether an active standard ALL_PRODUCTS fallback exists
func (s *RuleService) HasDefaultRule(ctx context.Context) (bool, error) {
	count, err := s.ruleRepo.CountActiveStandardFallbacks(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureDefaultRule creates the system default maintain-GP rule when no
// standard fallback exists, so a fresh installation prices every item.
// It is called once at startup.
func (s *RuleService) EnsureDefaultRule(ctx context.Context) error {
	exists, err := s.HasDefaultRule(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	gp := decimal.NewFromFloat(0.25)
	order := defaultRuleOrder
	rule, err := pricing.NewPricingRule(pricing.RuleAttributes{
		RuleName:      DefaultRuleName,
		ConditionType: pricing.ConditionAllProducts,
		PricingMethod: pricing.MethodMaintainGPPercent,
		PricingValue:  &gp,
		Priority:      defaultRuleOrder,
		RuleCategory:  pricing.CategoryBasePrice,
		LayerOrder:    &order,
		IsActive:      true,
	})
	if err != nil {
		return err
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return err
	}

	s.publishEvents(ctx, rule)

	s.logger.Info("system default pricing rule created",
		zap.String("rule_id", rule.ID.String()),
	)

	return nil
}

// Preview reports what a candidate rule would affect without saving it.
// All-products candidates only report the affected item count; scoped
// candidates additionally project the price change per matching item.
func (s *RuleService) Preview(ctx context.Context, req PreviewRuleRequest) (*RulePreviewResponse, error) {
	candidate, err := pricing.NewPricingRule(toRuleAttributes(req.CreateRuleRequest))
	if err != nil {
		return nil, err
	}
	if req.RuleID != nil {
		candidate.ID = *req.RuleID
	}

	items, err := s.lineItemRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	var matching []*pricing.GroupedLineItem
	for i := range items {
		if pricing.Matches(candidate, &items[i]) {
			matching = append(matching, &items[i])
		}
	}

	response := &RulePreviewResponse{AffectedItemCount: len(matching)}

	// For the global scope a per-item projection adds nothing a count
	// does not already say
	if candidate.ConditionType == pricing.ConditionAllProducts && candidate.IsStandard() {
		return response, nil
	}

	stored, err := s.ruleRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	current := make([]*pricing.PricingRule, 0, len(stored))
	proposed := make([]*pricing.PricingRule, 0, len(stored)+1)
	for i := range stored {
		current = append(current, &stored[i])
		if stored[i].ID != candidate.ID {
			proposed = append(proposed, &stored[i])
		}
	}
	proposed = append(proposed, candidate)

	for _, item := range matching {
		currentResult := s.calculator.CalculatePrice(current, item, req.AsOfDate)
		proposedResult := s.calculator.CalculatePrice(proposed, item, req.AsOfDate)
		response.Previews = append(response.Previews, PricePreview{
			CustomerCode:       item.CustomerCode,
			ProductCode:        item.ProductCode,
			ProductDescription: item.ProductDescription,
			CurrentPrice:       currentResult.CalculatedPrice(),
			ProposedPrice:      proposedResult.CalculatedPrice(),
			PriceChange:        proposedResult.CalculatedPrice().Sub(currentResult.CalculatedPrice()),
		})
	}

	return response, nil
}

func (s *RuleService) publishEvents(ctx context.Context, rule *pricing.PricingRule) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, rule.GetDomainEvents()...); err != nil {
		s.logger.Warn("failed to publish rule events", zap.Error(err))
	}
	rule.ClearDomainEvents()
}
