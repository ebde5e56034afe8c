package pricing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockRuleRepository is a map-backed pricing.RuleRepository for testing
type mockRuleRepository struct {
	rules       map[uuid.UUID]*pricing.PricingRule
	returnError error
	saveCount   int
	deleteCount int
}

func newMockRuleRepository() *mockRuleRepository {
	return &mockRuleRepository{rules: make(map[uuid.UUID]*pricing.PricingRule)}
}

func (m *mockRuleRepository) addRule(rule *pricing.PricingRule) {
	m.rules[rule.ID] = rule
}

func (m *mockRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	rule, ok := m.rules[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return rule, nil
}

func (m *mockRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PricingRule, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.sorted(), nil
}

func (m *mockRuleRepository) FindAllActive(ctx context.Context) ([]pricing.PricingRule, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	var active []pricing.PricingRule
	for _, rule := range m.sorted() {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

func (m *mockRuleRepository) CountActiveStandardFallbacks(ctx context.Context) (int64, error) {
	if m.returnError != nil {
		return 0, m.returnError
	}
	var count int64
	for _, rule := range m.rules {
		if rule.IsActive && rule.IsStandard() && rule.ConditionType == pricing.ConditionAllProducts {
			count++
		}
	}
	return count, nil
}

func (m *mockRuleRepository) Save(ctx context.Context, rule *pricing.PricingRule) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.saveCount++
	m.rules[rule.ID] = rule
	return nil
}

func (m *mockRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.deleteCount++
	delete(m.rules, id)
	return nil
}

func (m *mockRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	if m.returnError != nil {
		return 0, m.returnError
	}
	return int64(len(m.rules)), nil
}

func (m *mockRuleRepository) sorted() []pricing.PricingRule {
	rules := make([]pricing.PricingRule, 0, len(m.rules))
	for _, rule := range m.rules {
		rules = append(rules, *rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		oi, oj := rules[i].RuleCategory.Order(), rules[j].RuleCategory.Order()
		if oi != oj {
			return oi < oj
		}
		return rules[i].RuleName < rules[j].RuleName
	})
	return rules
}

var _ pricing.RuleRepository = (*mockRuleRepository)(nil)

// mockLineItemRepository is a map-backed pricing.LineItemRepository for testing
type mockLineItemRepository struct {
	items       map[string]*pricing.GroupedLineItem
	returnError error
}

func newMockLineItemRepository() *mockLineItemRepository {
	return &mockLineItemRepository{items: make(map[string]*pricing.GroupedLineItem)}
}

func (m *mockLineItemRepository) addItem(item *pricing.GroupedLineItem) {
	m.items[item.CustomerCode+":"+item.ProductCode] = item
}

func (m *mockLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.GroupedLineItem, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *mockLineItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.GroupedLineItem, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	keys := make([]string, 0, len(m.items))
	for key := range m.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	items := make([]pricing.GroupedLineItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, *m.items[key])
	}
	return items, nil
}

func (m *mockLineItemRepository) FindByCustomer(ctx context.Context, customerCode string) ([]pricing.GroupedLineItem, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	var items []pricing.GroupedLineItem
	for _, item := range m.items {
		if item.CustomerCode == customerCode {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockLineItemRepository) FindByProduct(ctx context.Context, productCode string) ([]pricing.GroupedLineItem, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	var items []pricing.GroupedLineItem
	for _, item := range m.items {
		if item.ProductCode == productCode {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (m *mockLineItemRepository) FindByCustomerAndProduct(ctx context.Context, customerCode, productCode string) (*pricing.GroupedLineItem, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	item, ok := m.items[customerCode+":"+productCode]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (m *mockLineItemRepository) Save(ctx context.Context, item *pricing.GroupedLineItem) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.addItem(item)
	return nil
}

func (m *mockLineItemRepository) SaveBatch(ctx context.Context, items []*pricing.GroupedLineItem) error {
	if m.returnError != nil {
		return m.returnError
	}
	for _, item := range items {
		m.addItem(item)
	}
	return nil
}

func (m *mockLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.returnError != nil {
		return m.returnError
	}
	for key, item := range m.items {
		if item.ID == id {
			delete(m.items, key)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (m *mockLineItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	if m.returnError != nil {
		return 0, m.returnError
	}
	return int64(len(m.items)), nil
}

var _ pricing.LineItemRepository = (*mockLineItemRepository)(nil)

// mockSessionRepository is a map-backed pricing.SessionRepository for testing
type mockSessionRepository struct {
	sessions    map[uuid.UUID]*pricing.PricingSession
	snapshots   map[uuid.UUID][]pricing.AppliedRuleSnapshot
	returnError error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{
		sessions:  make(map[uuid.UUID]*pricing.PricingSession),
		snapshots: make(map[uuid.UUID][]pricing.AppliedRuleSnapshot),
	}
}

func (m *mockSessionRepository) SaveSession(ctx context.Context, session *pricing.PricingSession) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*pricing.PricingSession, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) FindRecentSessions(ctx context.Context, limit int) ([]pricing.PricingSession, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	sessions := make([]pricing.PricingSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, *session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (m *mockSessionRepository) SaveSnapshots(ctx context.Context, snapshots []pricing.AppliedRuleSnapshot) error {
	if m.returnError != nil {
		return m.returnError
	}
	for _, snapshot := range snapshots {
		m.snapshots[snapshot.SessionID] = append(m.snapshots[snapshot.SessionID], snapshot)
	}
	return nil
}

func (m *mockSessionRepository) FindSnapshotsBySession(ctx context.Context, sessionID uuid.UUID) ([]pricing.AppliedRuleSnapshot, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.snapshots[sessionID], nil
}

var _ pricing.SessionRepository = (*mockSessionRepository)(nil)

// mockEventBus records published events
type mockEventBus struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (m *mockEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *mockEventBus) eventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.events))
	for i, event := range m.events {
		types[i] = event.EventType()
	}
	return types
}

var _ shared.EventPublisher = (*mockEventBus)(nil)

// mockQuoteCache is a map-backed QuoteCache recording hit and set counts
type mockQuoteCache struct {
	mu          sync.Mutex
	quotes      map[string]*ItemCalculationResponse
	invalidated int
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{quotes: make(map[string]*ItemCalculationResponse)}
}

func (m *mockQuoteCache) key(customerCode, productCode string, asOf time.Time) string {
	return customerCode + ":" + productCode + ":" + asOf.Format("2006-01-02")
}

func (m *mockQuoteCache) Get(ctx context.Context, customerCode, productCode string, asOf time.Time) (*ItemCalculationResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	quote, ok := m.quotes[m.key(customerCode, productCode, asOf)]
	return quote, ok
}

func (m *mockQuoteCache) Set(ctx context.Context, customerCode, productCode string, asOf time.Time, quote *ItemCalculationResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[m.key(customerCode, productCode, asOf)] = quote
}

func (m *mockQuoteCache) InvalidateAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = make(map[string]*ItemCalculationResponse)
	m.invalidated++
	return nil
}

var _ QuoteCache = (*mockQuoteCache)(nil)

// test fixture helpers

func decRef(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func strRef(value string) *string {
	return &value
}

func fixtureItem(customerCode, productCode, incomingCost string) *pricing.GroupedLineItem {
	item, err := pricing.NewGroupedLineItem(customerCode, productCode)
	if err != nil {
		panic(err)
	}
	item.IncomingCost = decRef(incomingCost)
	return item
}

func fixtureRule(name, category, conditionType string, conditionValue *string, method, value string) *pricing.PricingRule {
	attrs := pricing.RuleAttributes{
		RuleName:       name,
		ConditionType:  pricing.ConditionType(conditionType),
		ConditionValue: conditionValue,
		PricingMethod:  pricing.PricingMethod(method),
		Priority:       100,
		RuleCategory:   pricing.RuleCategory(category),
		IsActive:       true,
	}
	if value != "" {
		attrs.PricingValue = decRef(value)
	}
	rule, err := pricing.NewPricingRule(attrs)
	if err != nil {
		panic(err)
	}
	rule.ClearDomainEvents()
	return rule
}
