package persistence

import (
	"context"
	"errors"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRuleRepository implements pricing.RuleRepository using GORM
type GormRuleRepository struct {
	db *gorm.DB
}

// NewGormRuleRepository creates a new GormRuleRepository
func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{db: db}
}

// FindByID finds a rule by its ID
func (r *GormRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PricingRule, error) {
	var rule pricing.PricingRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rule, nil
}

// FindAll finds all rules matching the filter
func (r *GormRuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pricing.PricingRule, error) {
	var rules []pricing.PricingRule
	query := r.applyFilter(r.db.WithContext(ctx).Model(&pricing.PricingRule{}), filter)

	if err := query.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// FindAllActive finds every active rule ordered by category and layer order.
// Layer order sorts nulls last so rules without one apply after ordered rules.
func (r *GormRuleRepository) FindAllActive(ctx context.Context) ([]pricing.PricingRule, error) {
	var rules []pricing.PricingRule
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rule_category ASC, layer_order ASC NULLS LAST, created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// CountActiveStandardFallbacks counts active rules with no customer scope
// and an ALL_PRODUCTS condition
func (r *GormRuleRepository) CountActiveStandardFallbacks(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&pricing.PricingRule{}).
		Where("is_active = ? AND customer_code IS NULL AND condition_type = ?", true, pricing.ConditionAllProducts).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetActiveRuleCountByCategory returns the number of active rules per
// category. It backs the periodic telemetry collector.
func (r *GormRuleRepository) GetActiveRuleCountByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		RuleCategory string
		Count        int64
	}
	if err := r.db.WithContext(ctx).
		Model(&pricing.PricingRule{}).
		Select("rule_category, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("rule_category").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RuleCategory] = row.Count
	}
	return counts, nil
}

// Save creates or updates a rule
func (r *GormRuleRepository) Save(ctx context.Context, rule *pricing.PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

// Delete removes a rule
func (r *GormRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.PricingRule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts rules matching the filter
func (r *GormRuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&pricing.PricingRule{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormRuleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PricingRuleSortFields, "created_at")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRuleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("rule_name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "customer_code":
			query = query.Where("customer_code = ?", value)
		case "rule_category":
			query = query.Where("rule_category = ?", value)
		case "condition_type":
			query = query.Where("condition_type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormRuleRepository implements RuleRepository
var _ pricing.RuleRepository = (*GormRuleRepository)(nil)
