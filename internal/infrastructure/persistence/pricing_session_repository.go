package persistence

import (
	"context"
	"errors"

	"github.com/meatrics/backend/internal/domain/pricing"
	"github.com/meatrics/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSessionRepository implements pricing.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// SaveSession creates or updates a pricing session
func (r *GormSessionRepository) SaveSession(ctx context.Context, session *pricing.PricingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// FindSessionByID finds a session by its ID
func (r *GormSessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*pricing.PricingSession, error) {
	var session pricing.PricingSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// FindRecentSessions lists the most recent sessions
func (r *GormSessionRepository) FindRecentSessions(ctx context.Context, limit int) ([]pricing.PricingSession, error) {
	var sessions []pricing.PricingSession
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// SaveSnapshots persists the applied-rule snapshots of a calculation run
func (r *GormSessionRepository) SaveSnapshots(ctx context.Context, snapshots []pricing.AppliedRuleSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(snapshots, 500).Error
}

// FindSnapshotsBySession lists a session's snapshots in application order
func (r *GormSessionRepository) FindSnapshotsBySession(ctx context.Context, sessionID uuid.UUID) ([]pricing.AppliedRuleSnapshot, error) {
	var snapshots []pricing.AppliedRuleSnapshot
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("customer_code ASC, product_code ASC, application_order ASC").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Ensure GormSessionRepository implements SessionRepository
var _ pricing.SessionRepository = (*GormSessionRepository)(nil)
