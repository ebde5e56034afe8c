package pricing

import (
	"strings"

	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PriceableItem is the engine's view of a customer/product aggregate.
// IncomingCost is the calculation's starting price; the Last* accessors
// carry the prior cycle's totals used to derive historical GP. All of
// them may be nil when the source data is incomplete.
type PriceableItem interface {
	GetCustomerCode() string
	GetProductCode() string
	GetPrimaryGroup() string
	GetIncomingCost() *decimal.Decimal
	GetLastGrossProfit() *decimal.Decimal
	GetLastAmount() *decimal.Decimal
}

// GroupedLineItem is one (customer, product) aggregate produced by the
// sales-history import: quantities and amounts summed across the cycle,
// plus the incoming cost for the next one. It is what the engine prices.
type GroupedLineItem struct {
	shared.BaseAggregateRoot
	CustomerCode       string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_line_item_customer_product,priority:1"`
	CustomerName       string           `gorm:"type:varchar(200)"`
	ProductCode        string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_line_item_customer_product,priority:2"`
	ProductDescription string           `gorm:"type:varchar(500)"`
	PrimaryGroup       string           `gorm:"type:varchar(100);index"`
	CustomerRating     string           `gorm:"type:varchar(20)"`
	TotalQuantity      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount        decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	TotalCost          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	IncomingCost       *decimal.Decimal `gorm:"type:decimal(18,6)"`
	LastCost           *decimal.Decimal `gorm:"type:decimal(18,6)"`
	LastGrossProfit    *decimal.Decimal `gorm:"type:decimal(18,4)"`
	LastAmount         *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (GroupedLineItem) TableName() string {
	return "grouped_line_items"
}

// NewGroupedLineItem creates a new grouped line item for a customer/product pair
func NewGroupedLineItem(customerCode, productCode string) (*GroupedLineItem, error) {
	customerCode = strings.TrimSpace(customerCode)
	productCode = strings.TrimSpace(productCode)
	if customerCode == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_CODE", "Customer code is required")
	}
	if productCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code is required")
	}

	return &GroupedLineItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerCode:      customerCode,
		ProductCode:       productCode,
	}, nil
}

// GetCustomerCode returns the customer code
func (i *GroupedLineItem) GetCustomerCode() string {
	return i.CustomerCode
}

// GetProductCode returns the product code
func (i *GroupedLineItem) GetProductCode() string {
	return i.ProductCode
}

// GetPrimaryGroup returns the product's primary group (category)
func (i *GroupedLineItem) GetPrimaryGroup() string {
	return i.PrimaryGroup
}

// GetIncomingCost returns the current unit cost, if known
func (i *GroupedLineItem) GetIncomingCost() *decimal.Decimal {
	return i.IncomingCost
}

// GetLastGrossProfit returns the prior cycle's gross profit total, if known
func (i *GroupedLineItem) GetLastGrossProfit() *decimal.Decimal {
	return i.LastGrossProfit
}

// GetLastAmount returns the prior cycle's sales amount total, if known
func (i *GroupedLineItem) GetLastAmount() *decimal.Decimal {
	return i.LastAmount
}

// HistoricalGP returns the prior cycle's gross-profit fraction
// (lastGrossProfit / lastAmount at 6 decimal places) and whether it could
// be derived. It cannot when either total is missing or the amount is zero.
func (i *GroupedLineItem) HistoricalGP() (decimal.Decimal, bool) {
	if i.LastGrossProfit == nil || i.LastAmount == nil || i.LastAmount.IsZero() {
		return decimal.Zero, false
	}
	return i.LastGrossProfit.DivRound(*i.LastAmount, 6), true
}

var _ PriceableItem = (*GroupedLineItem)(nil)
