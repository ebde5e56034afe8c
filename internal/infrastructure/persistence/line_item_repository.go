package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLineItemRepository implements pricing.LineItemRepository using GORM
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GormLineItemRepository
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// FindByID finds a line item by its ID
func (r *GormLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.GroupedLineItem, error) {
	var item pricing.GroupedLineItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all line items matching the filter
func (r *GormLineItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.GroupedLineItem, error) {
	var items []pricing.GroupedLineItem
	query := r.applyFilter(r.db.WithContext(ctx).Model(&pricing.GroupedLineItem{}), filter)

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, LineItemSortFields, "customer_code")
		dir := ValidateSortOrder(filter.OrderDir)
		query = query.Order(field + " " + dir)
	}

	if err := query.Order("customer_code ASC, product_code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCustomer finds all line items for a customer
func (r *GormLineItemRepository) FindByCustomer(ctx context.Context, customerCode string) ([]pricing.GroupedLineItem, error) {
	var items []pricing.GroupedLineItem
	if err := r.db.WithContext(ctx).
		Where("customer_code = ?", customerCode).
		Order("product_code ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByProduct finds all line items for a product
func (r *GormLineItemRepository) FindByProduct(ctx context.Context, productCode string) ([]pricing.GroupedLineItem, error) {
	var items []pricing.GroupedLineItem
	if err := r.db.WithContext(ctx).
		Where("product_code = ?", productCode).
		Order("customer_code ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCustomerAndProduct finds the line item for a customer/product pair
func (r *GormLineItemRepository) FindByCustomerAndProduct(ctx context.Context, customerCode, productCode string) (*pricing.GroupedLineItem, error) {
	var item pricing.GroupedLineItem
	if err := r.db.WithContext(ctx).
		Where("customer_code = ? AND product_code = ?", customerCode, productCode).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Save creates or updates a line item
func (r *GormLineItemRepository) Save(ctx context.Context, item *pricing.GroupedLineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// SaveBatch creates or updates line items in bulk, upserting on the
// customer/product unique index
func (r *GormLineItemRepository) SaveBatch(ctx context.Context, items []*pricing.GroupedLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_code"}, {Name: "product_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_name", "product_description", "primary_group", "customer_rating",
				"total_quantity", "total_amount", "total_cost",
				"incoming_cost", "last_cost", "last_gross_profit", "last_amount",
				"updated_at", "version",
			}),
		}).
		CreateInBatches(items, 200).Error
}

// Delete removes a line item
func (r *GormLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.GroupedLineItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts line items matching the filter
func (r *GormLineItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&pricing.GroupedLineItem{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormLineItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormLineItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("customer_code ILIKE ? OR product_code ILIKE ? OR product_description ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_code":
			query = query.Where("customer_code = ?", value)
		case "product_code":
			query = query.Where("product_code = ?", value)
		case "primary_group":
			if s, ok := value.(string); ok {
				query = query.Where("LOWER(primary_group) = ?", strings.ToLower(s))
			} else {
				query = query.Where("primary_group = ?", value)
			}
		}
	}

	return query
}

// Ensure GormLineItemRepository implements LineItemRepository
var _ pricing.LineItemRepository = (*GormLineItemRepository)(nil)
