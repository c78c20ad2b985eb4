package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DTOs
type CompetitorItemRequest struct {
	Category    string  `json:"category"`
	ProductName string  `json:"product_name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type CreateCompetitorRequest struct {
	MarketID    string                  `json:"market_id"`
	MarketName  string                  `json:"market_name" binding:"required"`
	CompanyID   string                  `json:"company_id"`
	CompanyName string                  `json:"company_name" binding:"required"`
	Date        string                  `json:"date"`
	Items       []CompetitorItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CompetitorService implements the append-only competitor price log
type CompetitorService interface {
	CreateRecord(ctx context.Context, author *model.User, req CreateCompetitorRequest) (*model.CompetitorPriceRecord, error)
	ListRecords(ctx context.Context, viewer *model.User, page, limit int) ([]model.CompetitorPriceRecord, int64, error)
}

type competitorService struct {
	repo repository.CompetitorRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewCompetitorService returns a new instance of CompetitorService
func NewCompetitorService(repo repository.CompetitorRepository, hub Broadcaster) CompetitorService {
	return &competitorService{repo: repo, hub: orNoop(hub), now: time.Now}
}

func (s *competitorService) CreateRecord(ctx context.Context, author *model.User, req CreateCompetitorRequest) (*model.CompetitorPriceRecord, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	items := make([]model.CompetitorPriceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CompetitorPriceItem{
			Category:    item.Category,
			ProductName: item.ProductName,
			Price:       decimal.NewFromFloat(item.Price),
		})
	}

	rec := &model.CompetitorPriceRecord{
		MarketID:    req.MarketID,
		MarketName:  req.MarketName,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
		Items:       items,
		Date:        date,
		Timestamp:   now.UnixMilli(),
		UserID:      author.ID,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.hub.Publish("competitor_prices/"+author.ID.String(), ws.ActionCreated, rec)
	return rec, nil
}

// ListRecords widens to all users for admins and holders of the
// show_competitor_reports flag; otherwise the viewer sees only their own.
func (s *competitorService) ListRecords(ctx context.Context, viewer *model.User, page, limit int) ([]model.CompetitorPriceRecord, int64, error) {
	if viewer == nil {
		return nil, 0, errors.New("viewer required")
	}
	offset := (page - 1) * limit
	if viewer.IsAdmin() || viewer.Permissions.ShowCompetitorReports {
		return s.repo.ListAll(ctx, offset, limit)
	}
	return s.repo.ListByUser(ctx, viewer.ID.String(), offset, limit)
}
