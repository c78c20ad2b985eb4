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
type SaleItemRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
}

type CreateSaleRequest struct {
	MarketID   string            `json:"market_id"`
	MarketName string            `json:"market_name" binding:"required"`
	Date       string            `json:"date"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleTotal computes the denormalized record total from its line items
func SaleTotal(items []SaleItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// SalesService implements the append-only daily sales ledger
type SalesService interface {
	CreateSale(ctx context.Context, author *model.User, req CreateSaleRequest) (*model.SaleRecord, error)
	ListSales(ctx context.Context, viewer *model.User, page, limit int) ([]model.SaleRecord, int64, error)
}

type salesService struct {
	repo repository.SaleRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewSalesService returns a new instance of SalesService
func NewSalesService(repo repository.SaleRepository, hub Broadcaster) SalesService {
	return &salesService{repo: repo, hub: orNoop(hub), now: time.Now}
}

func (s *salesService) CreateSale(ctx context.Context, author *model.User, req CreateSaleRequest) (*model.SaleRecord, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	items := make([]model.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.SaleItem{
			ProductName: item.ProductName,
			Price:       decimal.NewFromFloat(item.Price),
			Quantity:    item.Quantity,
		})
	}

	sale := &model.SaleRecord{
		MarketID:   req.MarketID,
		MarketName: req.MarketName,
		Items:      items,
		Total:      SaleTotal(req.Items),
		Date:       date,
		Timestamp:  now.UnixMilli(),
		UserID:     author.ID,
		Username:   author.Username,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.hub.Publish("sales/"+author.ID.String(), ws.ActionCreated, sale)
	return sale, nil
}

// ListSales returns the viewer's own records; admins and users holding the
// show_all_sales flag see everyone's, flattened newest first.
func (s *salesService) ListSales(ctx context.Context, viewer *model.User, page, limit int) ([]model.SaleRecord, int64, error) {
	if viewer == nil {
		return nil, 0, errors.New("viewer required")
	}
	offset := (page - 1) * limit
	if viewer.IsAdmin() || viewer.Permissions.ShowAllSales {
		return s.repo.ListAll(ctx, offset, limit)
	}
	return s.repo.ListByUser(ctx, viewer.ID.String(), offset, limit)
}
