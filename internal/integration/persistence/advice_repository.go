// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/integration/persistence/model"
)

// adviceRepository implements the adapter.AdviceRepository interface.
type adviceRepository struct {
	db *gorm.DB
}

// NewAdviceRepository creates a new advice repository instance.
func NewAdviceRepository(db *gorm.DB) adapter.AdviceRepository {
	return &adviceRepository{
		db: db,
	}
}

// Save persists a generated piece of advice.
func (r *adviceRepository) Save(ctx context.Context, advice *entity.Advice) error {
	adviceModel := model.AdviceFromEntity(advice)
	return r.db.WithContext(ctx).Create(adviceModel).Error
}

// ListByUser retrieves advice history for a user, newest first.
func (r *adviceRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Advice, error) {
	var models []model.AdviceModel
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	advice := make([]*entity.Advice, len(models))
	for i := range models {
		advice[i] = models[i].ToEntity()
	}
	return advice, nil
}
