package pricing

import (
	"context"
	"time"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/meatrics/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteCache caches single-item calculation results between rule changes.
// Implementations must be safe for concurrent use.
type QuoteCache interface {
	// Get returns the cached quote for a customer/product/date triple
	Get(ctx context.Context, customerCode, productCode string, asOf time.Time) (*ItemCalculationResponse, bool)

	// Set stores a quote
	Set(ctx context.Context, customerCode, productCode string, asOf time.Time, quote *ItemCalculationResponse)

	// InvalidateAll drops every cached quote
	InvalidateAll(ctx context.Context) error
}

// CalculationService runs the pricing engine over stored line items and
// persists the resulting applied-rule snapshots per session
type CalculationService struct {
	ruleRepo        pricing.RuleRepository
	lineItemRepo    pricing.LineItemRepository
	sessionRepo     pricing.SessionRepository
	calculator      *pricing.Calculator
	cache           QuoteCache
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewCalculationService creates a new CalculationService. The cache is
// optional; without one every quote is computed fresh.
func NewCalculationService(
	ruleRepo pricing.RuleRepository,
	lineItemRepo pricing.LineItemRepository,
	sessionRepo pricing.SessionRepository,
	calculator *pricing.Calculator,
	cache QuoteCache,
	logger *zap.Logger,
) *CalculationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculationService{
		ruleRepo:     ruleRepo,
		lineItemRepo: lineItemRepo,
		sessionRepo:  sessionRepo,
		calculator:   calculator,
		cache:        cache,
		logger:       logger,
	}
}

// SetBusinessMetrics sets the business metrics collector
func (s *CalculationService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// CalculateAll prices every stored line item as of the given date and
// persists the run as a session with one snapshot per applied rule
func (s *CalculationService) CalculateAll(ctx context.Context, asOf time.Time) (*CalculationResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "pricing", "calculate_all")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrAsOfDate, asOf.Format("2006-01-02"),
	)

	started := time.Now()

	rules, err := s.activeRules(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	items, err := s.lineItemRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	session := pricing.NewPricingSession(asOf)
	appliedAt := time.Now()

	var snapshots []pricing.AppliedRuleSnapshot
	responses := make([]ItemCalculationResponse, 0, len(items))
	for i := range items {
		item := &items[i]
		result := s.calculator.CalculatePrice(rules, item, &asOf)
		responses = append(responses, toItemCalculation(item, result))
		snapshots = append(snapshots, pricing.SnapshotsFromResult(session.ID, item, result, appliedAt)...)
		s.recordAppliedRules(ctx, result)
	}
	session.ItemCount = len(items)

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.sessionRepo.SaveSnapshots(ctx, snapshots); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrSessionID, session.ID.String(),
		telemetry.SpanAttrItemCount, len(items),
		telemetry.SpanAttrRulesApplied, len(snapshots),
	)
	telemetry.SetOK(span)

	s.logger.Info("pricing run completed",
		zap.String("session_id", session.ID.String()),
		zap.Int("item_count", len(items)),
		zap.Int("snapshot_count", len(snapshots)),
	)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordCalculationRun(ctx, int64(len(items)), time.Since(started))
	}

	return &CalculationResponse{
		SessionID: session.ID,
		AsOfDate:  asOf,
		ItemCount: len(items),
		Items:     responses,
	}, nil
}

// CalculateForItem prices a single stored line item as of the given date.
// Results are cached until the rule set changes.
func (s *CalculationService) CalculateForItem(ctx context.Context, customerCode, productCode string, asOf time.Time) (*ItemCalculationResponse, error) {
	if s.cache != nil {
		if quote, ok := s.cache.Get(ctx, customerCode, productCode, asOf); ok {
			if s.businessMetrics != nil {
				s.businessMetrics.RecordQuoteCacheLookup(ctx, telemetry.CacheResultHit)
			}
			return quote, nil
		}
		if s.businessMetrics != nil {
			s.businessMetrics.RecordQuoteCacheLookup(ctx, telemetry.CacheResultMiss)
		}
	}

	item, err := s.lineItemRepo.FindByCustomerAndProduct(ctx, customerCode, productCode)
	if err != nil {
		return nil, err
	}

	rules, err := s.activeRules(ctx)
	if err != nil {
		return nil, err
	}

	result := s.calculator.CalculatePrice(rules, item, &asOf)
	response := toItemCalculation(item, result)

	if s.cache != nil {
		s.cache.Set(ctx, customerCode, productCode, asOf, &response)
	}

	return &response, nil
}

// GetSessionSnapshots returns the applied-rule trail persisted for a session
func (s *CalculationService) GetSessionSnapshots(ctx context.Context, sessionID uuid.UUID) ([]SnapshotResponse, error) {
	if _, err := s.sessionRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}

	snapshots, err := s.sessionRepo.FindSnapshotsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	responses := make([]SnapshotResponse, len(snapshots))
	for i := range snapshots {
		responses[i] = ToSnapshotResponse(&snapshots[i])
	}
	return responses, nil
}

// ListSessions returns the most recent pricing sessions
func (s *CalculationService) ListSessions(ctx context.Context, limit int) ([]SessionResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	sessions, err := s.sessionRepo.FindRecentSessions(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = SessionResponse{
			ID:        sessions[i].ID,
			AsOfDate:  sessions[i].AsOfDate,
			ItemCount: sessions[i].ItemCount,
			CreatedAt: sessions[i].CreatedAt,
		}
	}
	return responses, nil
}

func (s *CalculationService) recordAppliedRules(ctx context.Context, result pricing.PricingResult) {
	if s.businessMetrics == nil {
		return
	}
	for _, rule := range result.AppliedRules() {
		s.businessMetrics.RecordRuleApplied(ctx, string(rule.RuleCategory), string(rule.PricingMethod))
	}
}

func (s *CalculationService) activeRules(ctx context.Context) ([]*pricing.PricingRule, error) {
	stored, err := s.ruleRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	rules := make([]*pricing.PricingRule, len(stored))
	for i := range stored {
		rules[i] = &stored[i]
	}
	return rules, nil
}

func toItemCalculation(item *pricing.GroupedLineItem, result pricing.PricingResult) ItemCalculationResponse {
	rules := result.AppliedRules()
	trail := result.IntermediateResults()

	applied := make([]AppliedRuleDTO, len(rules))
	for i, rule := range rules {
		applied[i] = AppliedRuleDTO{
			RuleID:        rule.ID,
			RuleName:      rule.RuleName,
			RuleCategory:  string(rule.RuleCategory),
			PricingMethod: string(rule.PricingMethod),
			PricingValue:  rule.PricingValue,
			InputPrice:    trail[i],
			OutputPrice:   trail[i+1],
		}
	}

	return ItemCalculationResponse{
		CustomerCode:    item.CustomerCode,
		ProductCode:     item.ProductCode,
		Cost:            result.Cost(),
		CalculatedPrice: result.CalculatedPrice(),
		Description:     result.Description(),
		AppliedRules:    applied,
	}
}
