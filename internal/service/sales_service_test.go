package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct {
	records []model.SaleRecord
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *model.SaleRecord) error {
	r.records = append(r.records, *sale)
	return nil
}

func (r *fakeSaleRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.SaleRecord, int64, error) {
	var out []model.SaleRecord
	for _, rec := range r.records {
		if rec.UserID.String() == userID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListAll(ctx context.Context, offset, limit int) ([]model.SaleRecord, int64, error) {
	return r.records, int64(len(r.records)), nil
}

func (r *fakeSaleRepo) All(ctx context.Context) ([]model.SaleRecord, error) {
	return r.records, nil
}

func TestSaleTotal(t *testing.T) {
	items := []SaleItemRequest{
		{ProductName: "sugar", Price: 10, Quantity: 2},
		{ProductName: "tea", Price: 5, Quantity: 3},
	}
	assert.True(t, SaleTotal(items).Equal(decimal.NewFromInt(35)))

	// Float-hostile prices must still sum exactly
	items = []SaleItemRequest{
		{ProductName: "a", Price: 0.1, Quantity: 1},
		{ProductName: "b", Price: 0.2, Quantity: 1},
	}
	assert.True(t, SaleTotal(items).Equal(decimal.NewFromFloat(0.3)))

	assert.True(t, SaleTotal(nil).Equal(decimal.Zero))
}

func TestCreateSale_DefaultsDateAndDenormalizes(t *testing.T) {
	repo := &fakeSaleRepo{}
	hub := &fakeBroadcaster{}
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	svc := &salesService{repo: repo, hub: orNoop(hub), now: fixedClock(now)}
	author := testUser(model.RoleUser)

	sale, err := svc.CreateSale(context.Background(), author, CreateSaleRequest{
		MarketName: "سوق المدينة",
		Items: []SaleItemRequest{
			{ProductName: "sugar", Price: 10, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", sale.Date)
	assert.Equal(t, now.UnixMilli(), sale.Timestamp)
	assert.Equal(t, author.ID, sale.UserID)
	assert.Equal(t, author.Username, sale.Username)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(20)))

	events := hub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "sales/"+author.ID.String(), events[0].Topic)
}

func TestListSales_ScopeByRoleAndPermission(t *testing.T) {
	mine := testUser(model.RoleUser)
	other := testUser(model.RoleUser)

	repo := &fakeSaleRepo{records: []model.SaleRecord{
		{UserID: mine.ID, Username: mine.Username},
		{UserID: other.ID, Username: other.Username},
	}}
	svc := &salesService{repo: repo, hub: orNoop(nil), now: time.Now}
	ctx := context.Background()

	// Plain user sees only their own
	records, total, err := svc.ListSales(ctx, mine, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)
	assert.Equal(t, mine.ID, records[0].UserID)

	// Admin sees everything
	admin := testUser(model.RoleAdmin)
	_, total, err = svc.ListSales(ctx, admin, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// show_all_sales widens a plain user's view
	mine.Permissions.ShowAllSales = true
	_, total, err = svc.ListSales(ctx, mine, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
