package repository

import (
	"backend/internal/model"
	"context"

	"gorm.io/gorm"
)

// MarketRepository provides access to the market reference list
type MarketRepository interface {
	Create(ctx context.Context, market *model.Market) error
	List(ctx context.Context) ([]model.Market, error)
}

// CompanyRepository provides access to the company reference list
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	List(ctx context.Context) ([]model.Company, error)
}

type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository returns a new instance of MarketRepository
func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{db: db}
}

func (r *marketRepository) Create(ctx context.Context, market *model.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

func (r *marketRepository) List(ctx context.Context) ([]model.Market, error) {
	var markets []model.Market
	if err := r.db.WithContext(ctx).Order("name asc").Find(&markets).Error; err != nil {
		return nil, err
	}
	return markets, nil
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository returns a new instance of CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Order("name asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
