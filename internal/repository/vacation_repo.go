package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// VacationRepository provides access to the vacation request log
type VacationRepository interface {
	Create(ctx context.Context, req *model.VacationRequest) error
	GetByID(ctx context.Context, id string) (*model.VacationRequest, error)
	Delete(ctx context.Context, id string) error
	ListInPeriod(ctx context.Context, userID string, start, end string) ([]model.VacationRequest, error)
	All(ctx context.Context) ([]model.VacationRequest, error)
}

type vacationRepository struct {
	db *gorm.DB
}

// NewVacationRepository returns a new instance of VacationRepository
func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db: db}
}

func (r *vacationRepository) Create(ctx context.Context, req *model.VacationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *vacationRepository) GetByID(ctx context.Context, id string) (*model.VacationRequest, error) {
	var req model.VacationRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *vacationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VacationRequest{}).Error
}

// ListInPeriod returns requests with date inside [start, end], both
// inclusive. An empty userID returns requests for all users.
func (r *vacationRepository) ListInPeriod(ctx context.Context, userID string, start, end string) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("timestamp desc")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *vacationRepository) All(ctx context.Context) ([]model.VacationRequest, error) {
	var requests []model.VacationRequest
	if err := r.db.WithContext(ctx).Order("timestamp desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
