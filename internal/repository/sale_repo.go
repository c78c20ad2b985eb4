package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// SaleRepository provides access to the append-only sales ledger.
// There is deliberately no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *model.SaleRecord) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.SaleRecord, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]model.SaleRecord, int64, error)
	All(ctx context.Context) ([]model.SaleRecord, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository returns a new instance of SaleRepository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.SaleRecord) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.SaleRecord, int64, error) {
	var sales []model.SaleRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&model.SaleRecord{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Items").
		Order("timestamp desc").
		Offset(offset).Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *saleRepository) ListAll(ctx context.Context, offset, limit int) ([]model.SaleRecord, int64, error) {
	var sales []model.SaleRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.SaleRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Preload("Items").
		Order("timestamp desc").
		Offset(offset).Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func (r *saleRepository) All(ctx context.Context) ([]model.SaleRecord, error) {
	var sales []model.SaleRecord
	err := r.db.WithContext(ctx).Preload("Items").Order("timestamp desc").Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
