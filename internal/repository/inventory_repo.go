package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// InventoryRepository provides access to the append-only inventory log
type InventoryRepository interface {
	Create(ctx context.Context, rec *model.InventoryRecord) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.InventoryRecord, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.InventoryRecord, int64, error)
	All(ctx context.Context) ([]model.InventoryRecord, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository returns a new instance of InventoryRepository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, rec *model.InventoryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *inventoryRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.InventoryRecord, int64, error) {
	var records []model.InventoryRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&model.InventoryRecord{}).Where("user_id = ?", userID)
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

func (r *inventoryRepository) ListAll(ctx context.Context, offset, limit int) ([]model.InventoryRecord, int64, error) {
	var records []model.InventoryRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.InventoryRecord{}).Count(&total).Error; err != nil {
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

func (r *inventoryRepository) All(ctx context.Context) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	err := r.db.WithContext(ctx).Preload("Items").Order("timestamp desc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
