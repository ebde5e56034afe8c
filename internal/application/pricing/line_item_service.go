package pricing

import (
	"context"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LineItemService exposes the grouped line item store: the per
// customer/product aggregates the pricing engine runs against.
type LineItemService struct {
	lineItemRepo pricing.LineItemRepository
	logger       *zap.Logger
}

// NewLineItemService creates a new LineItemService
func NewLineItemService(lineItemRepo pricing.LineItemRepository, logger *zap.Logger) *LineItemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LineItemService{
		lineItemRepo: lineItemRepo,
		logger:       logger,
	}
}

// LineItemListFilter represents filter options for the line item list
type LineItemListFilter struct {
	CustomerCode string `form:"customer_code" binding:"omitempty,max=50"`
	ProductCode  string `form:"product_code" binding:"omitempty,max=50"`
	PrimaryGroup string `form:"primary_group" binding:"omitempty,max=100"`
	Search       string `form:"search" binding:"omitempty,max=200"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpsertLineItemsRequest is the bulk line item load payload
type UpsertLineItemsRequest struct {
	Items []UpsertLineItemRequest `json:"items" binding:"required,min=1,max=5000,dive"`
}

// UpsertLineItemsResponse reports how many rows a bulk load wrote
type UpsertLineItemsResponse struct {
	Loaded int `json:"loaded"`
}

// UpsertLineItemRequest is one row of a bulk line item load
type UpsertLineItemRequest struct {
	CustomerCode       string           `json:"customer_code" binding:"required,max=50"`
	CustomerName       string           `json:"customer_name" binding:"omitempty,max=200"`
	ProductCode        string           `json:"product_code" binding:"required,max=50"`
	ProductDescription string           `json:"product_description" binding:"omitempty,max=500"`
	PrimaryGroup       string           `json:"primary_group" binding:"omitempty,max=100"`
	CustomerRating     string           `json:"customer_rating" binding:"omitempty,max=20"`
	TotalQuantity      decimal.Decimal  `json:"total_quantity"`
	TotalAmount        decimal.Decimal  `json:"total_amount"`
	TotalCost          decimal.Decimal  `json:"total_cost"`
	IncomingCost       *decimal.Decimal `json:"incoming_cost"`
	LastCost           *decimal.Decimal `json:"last_cost"`
	LastGrossProfit    *decimal.Decimal `json:"last_gross_profit"`
	LastAmount         *decimal.Decimal `json:"last_amount"`
}

// GetByID returns a single line item
func (s *LineItemService) GetByID(ctx context.Context, id uuid.UUID) (*LineItemResponse, error) {
	item, err := s.lineItemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToLineItemResponse(item), nil
}

// List returns line items matching the filter, plus the unpaginated total
func (s *LineItemService) List(ctx context.Context, filter LineItemListFilter) ([]LineItemResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "customer_code"
	domainFilter.OrderDir = "asc"

	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.CustomerCode != "" {
		domainFilter.Filters["customer_code"] = filter.CustomerCode
	}
	if filter.ProductCode != "" {
		domainFilter.Filters["product_code"] = filter.ProductCode
	}
	if filter.PrimaryGroup != "" {
		domainFilter.Filters["primary_group"] = filter.PrimaryGroup
	}
	domainFilter.Search = filter.Search

	items, err := s.lineItemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.lineItemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LineItemResponse, len(items))
	for i := range items {
		responses[i] = *ToLineItemResponse(&items[i])
	}
	return responses, total, nil
}

// Upsert loads a batch of line item rows, replacing any existing row for
// the same customer/product pair. Returns the number of rows written.
func (s *LineItemService) Upsert(ctx context.Context, rows []UpsertLineItemRequest) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	items := make([]*pricing.GroupedLineItem, 0, len(rows))
	for _, row := range rows {
		item, err := pricing.NewGroupedLineItem(row.CustomerCode, row.ProductCode)
		if err != nil {
			return 0, err
		}
		item.CustomerName = row.CustomerName
		item.ProductDescription = row.ProductDescription
		item.PrimaryGroup = row.PrimaryGroup
		item.CustomerRating = row.CustomerRating
		item.TotalQuantity = row.TotalQuantity
		item.TotalAmount = row.TotalAmount
		item.TotalCost = row.TotalCost
		item.IncomingCost = row.IncomingCost
		item.LastCost = row.LastCost
		item.LastGrossProfit = row.LastGrossProfit
		item.LastAmount = row.LastAmount
		items = append(items, item)
	}

	if err := s.lineItemRepo.SaveBatch(ctx, items); err != nil {
		return 0, err
	}

	s.logger.Info("Line item batch loaded", zap.Int("rows", len(items)))
	return len(items), nil
}
