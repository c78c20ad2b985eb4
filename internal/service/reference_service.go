package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"
)

// AddReferenceRequest contributes a new market or company entry
type AddReferenceRequest struct {
	Name string `json:"name" binding:"required"`
}

// ReferenceService manages the market and company reference lists
type ReferenceService interface {
	ListMarkets(ctx context.Context, viewer *model.User) ([]model.Market, error)
	AddMarket(ctx context.Context, caller *model.User, req AddReferenceRequest) (*model.Market, error)
	ListCompanies(ctx context.Context, viewer *model.User) ([]model.Company, error)
	AddCompany(ctx context.Context, caller *model.User, req AddReferenceRequest) (*model.Company, error)
}

type referenceService struct {
	markets   repository.MarketRepository
	companies repository.CompanyRepository
	hub       Broadcaster
}

// NewReferenceService returns a new instance of ReferenceService
func NewReferenceService(markets repository.MarketRepository, companies repository.CompanyRepository, hub Broadcaster) ReferenceService {
	return &referenceService{markets: markets, companies: companies, hub: orNoop(hub)}
}

// ReferenceVisible is the visibility rule for reference entries: admins see
// everything, other users see defaults plus their own contributions.
func ReferenceVisible(isDefault bool, addedBy string, viewer *model.User) bool {
	return viewer.IsAdmin() || isDefault || addedBy == viewer.ID.String()
}

func (s *referenceService) ListMarkets(ctx context.Context, viewer *model.User) ([]model.Market, error) {
	if viewer == nil {
		return nil, errors.New("viewer required")
	}
	all, err := s.markets.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]model.Market, 0, len(all))
	for _, m := range all {
		if ReferenceVisible(m.IsDefault, m.AddedBy, viewer) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

func (s *referenceService) AddMarket(ctx context.Context, caller *model.User, req AddReferenceRequest) (*model.Market, error) {
	market := &model.Market{
		Name:      req.Name,
		AddedBy:   caller.ID.String(),
		IsDefault: false,
	}
	if err := s.markets.Create(ctx, market); err != nil {
		return nil, err
	}
	s.hub.Publish("markets", ws.ActionCreated, market)
	return market, nil
}

func (s *referenceService) ListCompanies(ctx context.Context, viewer *model.User) ([]model.Company, error) {
	if viewer == nil {
		return nil, errors.New("viewer required")
	}
	all, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]model.Company, 0, len(all))
	for _, c := range all {
		if ReferenceVisible(c.IsDefault, c.AddedBy, viewer) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (s *referenceService) AddCompany(ctx context.Context, caller *model.User, req AddReferenceRequest) (*model.Company, error) {
	company := &model.Company{
		Name:      req.Name,
		AddedBy:   caller.ID.String(),
		IsDefault: false,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	s.hub.Publish("companies", ws.ActionCreated, company)
	return company, nil
}
