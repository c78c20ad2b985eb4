package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepo struct {
	records []model.InventoryRecord
}

func (r *fakeInventoryRepo) Create(ctx context.Context, rec *model.InventoryRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeInventoryRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.InventoryRecord, int64, error) {
	var out []model.InventoryRecord
	for _, rec := range r.records {
		if rec.UserID.String() == userID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeInventoryRepo) ListAll(ctx context.Context, offset, limit int) ([]model.InventoryRecord, int64, error) {
	return r.records, int64(len(r.records)), nil
}

func (r *fakeInventoryRepo) All(ctx context.Context) ([]model.InventoryRecord, error) {
	return r.records, nil
}

func TestCreateInventoryRecord(t *testing.T) {
	repo := &fakeInventoryRepo{}
	hub := &fakeBroadcaster{}
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	svc := &inventoryService{repo: repo, hub: orNoop(hub), now: fixedClock(now)}
	author := testUser(model.RoleUser)

	rec, err := svc.CreateRecord(context.Background(), author, CreateInventoryRequest{
		MarketName: "سوق المدينة",
		Items: []InventoryItemRequest{
			{ProductName: "sugar", Quantity: 40},
			{ProductName: "tea", Quantity: 0}, // zero stock is a valid count
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", rec.Date)
	assert.Len(t, rec.Items, 2)

	events := hub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "inventory/"+author.ID.String(), events[0].Topic)
}

func TestListInventory_ScopeByFlag(t *testing.T) {
	mine := testUser(model.RoleUser)
	other := testUser(model.RoleUser)

	repo := &fakeInventoryRepo{records: []model.InventoryRecord{
		{UserID: mine.ID},
		{UserID: other.ID},
	}}
	svc := &inventoryService{repo: repo, hub: orNoop(nil), now: time.Now}
	ctx := context.Background()

	_, total, err := svc.ListRecords(ctx, mine, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	mine.Permissions.ShowInventoryLog = true
	_, total, err = svc.ListRecords(ctx, mine, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
