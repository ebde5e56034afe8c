package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pricingapp "github.com/meatrics/backend/internal/application/pricing"
	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRuleRepository implements pricing.RuleRepository for testing
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PricingRule), args.Error(1)
}

func (m *MockRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PricingRule, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pricing.PricingRule), args.Error(1)
}

func (m *MockRuleRepository) FindAllActive(ctx context.Context) ([]pricing.PricingRule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]pricing.PricingRule), args.Error(1)
}

func (m *MockRuleRepository) CountActiveStandardFallbacks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRuleRepository) Save(ctx context.Context, rule *pricing.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockLineItemRepository implements pricing.LineItemRepository for testing
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.GroupedLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.GroupedLineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.GroupedLineItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pricing.GroupedLineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindByCustomer(ctx context.Context, customerCode string) ([]pricing.GroupedLineItem, error) {
	args := m.Called(ctx, customerCode)
	return args.Get(0).([]pricing.GroupedLineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindByProduct(ctx context.Context, productCode string) ([]pricing.GroupedLineItem, error) {
	args := m.Called(ctx, productCode)
	return args.Get(0).([]pricing.GroupedLineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindByCustomerAndProduct(ctx context.Context, customerCode, productCode string) (*pricing.GroupedLineItem, error) {
	args := m.Called(ctx, customerCode, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.GroupedLineItem), args.Error(1)
}

func (m *MockLineItemRepository) Save(ctx context.Context, item *pricing.GroupedLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) SaveBatch(ctx context.Context, items []*pricing.GroupedLineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLineItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionRepository implements pricing.SessionRepository for testing
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session *pricing.PricingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*pricing.PricingSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PricingSession), args.Error(1)
}

func (m *MockSessionRepository) FindRecentSessions(ctx context.Context, limit int) ([]pricing.PricingSession, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]pricing.PricingSession), args.Error(1)
}

func (m *MockSessionRepository) SaveSnapshots(ctx context.Context, snapshots []pricing.AppliedRuleSnapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSnapshotsBySession(ctx context.Context, sessionID uuid.UUID) ([]pricing.AppliedRuleSnapshot, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]pricing.AppliedRuleSnapshot), args.Error(1)
}

// Test setup helpers

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupPricingRuleHandler(ruleRepo *MockRuleRepository, lineItemRepo *MockLineItemRepository) *PricingRuleHandler {
	calculator := pricing.NewCalculator(nil)
	ruleService := pricingapp.NewRuleService(ruleRepo, lineItemRepo, calculator, nil, nil)
	return NewPricingRuleHandler(ruleService)
}

func newTestRule(name, category string) *pricing.PricingRule {
	value := decimal.RequireFromString("1.25")
	rule, err := pricing.NewPricingRule(pricing.RuleAttributes{
		RuleName:      name,
		ConditionType: pricing.ConditionAllProducts,
		PricingMethod: pricing.MethodCostPlusPercent,
		PricingValue:  &value,
		Priority:      100,
		RuleCategory:  pricing.RuleCategory(category),
		IsActive:      true,
	})
	if err != nil {
		panic(err)
	}
	rule.ClearDomainEvents()
	return rule
}

// Tests

func TestPricingRuleHandler_Create_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	ruleRepo.On("Save", mock.Anything, mock.AnythingOfType("*pricing.PricingRule")).Return(nil)

	router := newTestRouter()
	router.POST("/pricing/rules", handler.Create)

	value := decimal.RequireFromString("1.30")
	reqBody := pricingapp.CreateRuleRequest{
		RuleName:      "Standard markup",
		ConditionType: "ALL_PRODUCTS",
		PricingMethod: "COST_PLUS_PERCENT",
		PricingValue:  &value,
		RuleCategory:  "BASE_PRICE",
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/pricing/rules", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	ruleRepo.AssertExpectations(t)
}

func TestPricingRuleHandler_Create_InvalidCategory(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	router := newTestRouter()
	router.POST("/pricing/rules", handler.Create)

	value := decimal.RequireFromString("1.30")
	reqBody := pricingapp.CreateRuleRequest{
		RuleName:      "Standard markup",
		ConditionType: "ALL_PRODUCTS",
		PricingMethod: "COST_PLUS_PERCENT",
		PricingValue:  &value,
		RuleCategory:  "NOT_A_CATEGORY",
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/pricing/rules", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	ruleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPricingRuleHandler_Create_InvalidJSON(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	router := newTestRouter()
	router.POST("/pricing/rules", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/pricing/rules", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPricingRuleHandler_GetByID_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	rule := newTestRule("Standard markup", "BASE_PRICE")
	ruleRepo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)

	router := newTestRouter()
	router.GET("/pricing/rules/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules/"+rule.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			RuleName string `json:"rule_name"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Standard markup", resp.Data.RuleName)
	ruleRepo.AssertExpectations(t)
}

func TestPricingRuleHandler_GetByID_NotFound(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	ruleID := uuid.New()
	ruleRepo.On("FindByID", mock.Anything, ruleID).Return(nil, shared.ErrNotFound)

	router := newTestRouter()
	router.GET("/pricing/rules/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules/"+ruleID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPricingRuleHandler_GetByID_InvalidID(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	router := newTestRouter()
	router.GET("/pricing/rules/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPricingRuleHandler_List_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	rules := []pricing.PricingRule{
		*newTestRule("Standard markup", "BASE_PRICE"),
		*newTestRule("Summer promo", "PROMOTIONAL"),
	}
	ruleRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(rules, nil)
	ruleRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

	router := newTestRouter()
	router.GET("/pricing/rules", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules?page=1&page_size=10", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
		Meta    struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Meta.Total)
}

func TestPricingRuleHandler_List_InvalidCategory(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	router := newTestRouter()
	router.GET("/pricing/rules", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules?rule_category=BOGUS", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPricingRuleHandler_Update_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	rule := newTestRule("Standard markup", "BASE_PRICE")
	ruleRepo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
	ruleRepo.On("Save", mock.Anything, mock.AnythingOfType("*pricing.PricingRule")).Return(nil)

	router := newTestRouter()
	router.PUT("/pricing/rules/:id", handler.Update)

	value := decimal.RequireFromString("1.35")
	reqBody := pricingapp.UpdateRuleRequest{
		RuleName:      "Standard markup v2",
		ConditionType: "ALL_PRODUCTS",
		PricingMethod: "COST_PLUS_PERCENT",
		PricingValue:  &value,
		RuleCategory:  "BASE_PRICE",
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPut, "/pricing/rules/"+rule.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	ruleRepo.AssertExpectations(t)
}

func TestPricingRuleHandler_Delete_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	rule := newTestRule("Standard markup", "BASE_PRICE")
	ruleRepo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
	ruleRepo.On("CountActiveStandardFallbacks", mock.Anything).Return(int64(2), nil)
	ruleRepo.On("Delete", mock.Anything, rule.ID).Return(nil)

	router := newTestRouter()
	router.DELETE("/pricing/rules/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/pricing/rules/"+rule.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	ruleRepo.AssertExpectations(t)
}

func TestPricingRuleHandler_Delete_LastFallback(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	rule := newTestRule("Standard markup", "BASE_PRICE")
	ruleRepo.On("FindByID", mock.Anything, rule.ID).Return(rule, nil)
	ruleRepo.On("CountActiveStandardFallbacks", mock.Anything).Return(int64(1), nil)

	router := newTestRouter()
	router.DELETE("/pricing/rules/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/pricing/rules/"+rule.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	ruleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPricingRuleHandler_DefaultExists(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	ruleRepo.On("CountActiveStandardFallbacks", mock.Anything).Return(int64(1), nil)

	router := newTestRouter()
	router.GET("/pricing/rules/default/exists", handler.DefaultExists)

	req := httptest.NewRequest(http.MethodGet, "/pricing/rules/default/exists", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Exists bool `json:"exists"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Exists)
}

func TestPricingRuleHandler_Preview_Success(t *testing.T) {
	ruleRepo := new(MockRuleRepository)
	lineItemRepo := new(MockLineItemRepository)
	handler := setupPricingRuleHandler(ruleRepo, lineItemRepo)

	cost := decimal.RequireFromString("10.00")
	item, err := pricing.NewGroupedLineItem("FOODSERVICE-A", "BEEF-RIBEYE")
	if err != nil {
		t.Fatal(err)
	}
	item.IncomingCost = &cost

	lineItemRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]pricing.GroupedLineItem{*item}, nil)

	router := newTestRouter()
	router.POST("/pricing/rules/preview", handler.Preview)

	value := decimal.RequireFromString("1.30")
	reqBody := pricingapp.PreviewRuleRequest{
		CreateRuleRequest: pricingapp.CreateRuleRequest{
			RuleName:      "Candidate markup",
			ConditionType: "ALL_PRODUCTS",
			PricingMethod: "COST_PLUS_PERCENT",
			PricingValue:  &value,
			RuleCategory:  "BASE_PRICE",
		},
	}
	body, _ := json.Marshal(reqBody)

	req := httptest.NewRequest(http.MethodPost, "/pricing/rules/preview", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			AffectedItemCount int `json:"affected_item_count"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.AffectedItemCount)
}
