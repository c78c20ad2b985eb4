package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"
	"time"
)

// DTOs
type InventoryItemRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gte=0"`
}

type CreateInventoryRequest struct {
	MarketID   string                 `json:"market_id"`
	MarketName string                 `json:"market_name" binding:"required"`
	Date       string                 `json:"date"`
	Items      []InventoryItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InventoryService implements the append-only stock count log
type InventoryService interface {
	CreateRecord(ctx context.Context, author *model.User, req CreateInventoryRequest) (*model.InventoryRecord, error)
	ListRecords(ctx context.Context, viewer *model.User, page, limit int) ([]model.InventoryRecord, int64, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewInventoryService returns a new instance of InventoryService
func NewInventoryService(repo repository.InventoryRepository, hub Broadcaster) InventoryService {
	return &inventoryService{repo: repo, hub: orNoop(hub), now: time.Now}
}

func (s *inventoryService) CreateRecord(ctx context.Context, author *model.User, req CreateInventoryRequest) (*model.InventoryRecord, error) {
	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	items := make([]model.InventoryItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.InventoryItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	rec := &model.InventoryRecord{
		MarketID:   req.MarketID,
		MarketName: req.MarketName,
		Items:      items,
		Date:       date,
		Timestamp:  now.UnixMilli(),
		UserID:     author.ID,
		Username:   author.Username,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.hub.Publish("inventory/"+author.ID.String(), ws.ActionCreated, rec)
	return rec, nil
}

// ListRecords widens to all users for admins and holders of the
// show_inventory_log flag; otherwise the viewer sees only their own.
func (s *inventoryService) ListRecords(ctx context.Context, viewer *model.User, page, limit int) ([]model.InventoryRecord, int64, error) {
	if viewer == nil {
		return nil, 0, errors.New("viewer required")
	}
	offset := (page - 1) * limit
	if viewer.IsAdmin() || viewer.Permissions.ShowInventoryLog {
		return s.repo.ListAll(ctx, offset, limit)
	}
	return s.repo.ListByUser(ctx, viewer.ID.String(), offset, limit)
}
