package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// CompetitorRepository provides access to the append-only competitor price log
type CompetitorRepository interface {
	Create(ctx context.Context, rec *model.CompetitorPriceRecord) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CompetitorPriceRecord, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.CompetitorPriceRecord, int64, error)
	All(ctx context.Context) ([]model.CompetitorPriceRecord, error)
}

type competitorRepository struct {
	db *gorm.DB
}

// NewCompetitorRepository returns a new instance of CompetitorRepository
func NewCompetitorRepository(db *gorm.DB) CompetitorRepository {
	return &competitorRepository{db: db}
}

func (r *competitorRepository) Create(ctx context.Context, rec *model.CompetitorPriceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *competitorRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CompetitorPriceRecord, int64, error) {
	var records []model.CompetitorPriceRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&model.CompetitorPriceRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Items").
		Order("timestamp desc").
		Offset(offset).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *competitorRepository) ListAll(ctx context.Context, offset, limit int) ([]model.CompetitorPriceRecord, int64, error) {
	var records []model.CompetitorPriceRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.CompetitorPriceRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Preload("Items").
		Order("timestamp desc").
		Offset(offset).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *competitorRepository) All(ctx context.Context) ([]model.CompetitorPriceRecord, error) {
	var records []model.CompetitorPriceRecord
	err := r.db.WithContext(ctx).Preload("Items").Order("timestamp desc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
