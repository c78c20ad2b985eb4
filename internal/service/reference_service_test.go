package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketRepo struct {
	markets []model.Market
}

func (r *fakeMarketRepo) Create(ctx context.Context, market *model.Market) error {
	if market.ID == uuid.Nil {
		market.ID = uuid.New()
	}
	r.markets = append(r.markets, *market)
	return nil
}

func (r *fakeMarketRepo) List(ctx context.Context) ([]model.Market, error) {
	return r.markets, nil
}

type fakeCompanyRepo struct {
	companies []model.Company
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *model.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	r.companies = append(r.companies, *company)
	return nil
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]model.Company, error) {
	return r.companies, nil
}

func TestReferenceVisible(t *testing.T) {
	viewer := testUser(model.RoleUser)
	admin := testUser(model.RoleAdmin)

	assert.True(t, ReferenceVisible(true, model.SystemAddedBy, viewer), "defaults visible to everyone")
	assert.True(t, ReferenceVisible(false, viewer.ID.String(), viewer), "own contributions visible")
	assert.False(t, ReferenceVisible(false, uuid.New().String(), viewer), "others' contributions hidden")
	assert.True(t, ReferenceVisible(false, uuid.New().String(), admin), "admins see everything")
}

func TestListMarkets_FiltersByViewer(t *testing.T) {
	viewer := testUser(model.RoleUser)
	stranger := uuid.New().String()

	markets := &fakeMarketRepo{markets: []model.Market{
		{ID: uuid.New(), Name: "default", AddedBy: model.SystemAddedBy, IsDefault: true},
		{ID: uuid.New(), Name: "mine", AddedBy: viewer.ID.String()},
		{ID: uuid.New(), Name: "theirs", AddedBy: stranger},
	}}
	svc := NewReferenceService(markets, &fakeCompanyRepo{}, nil)

	visible, err := svc.ListMarkets(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "default", visible[0].Name)
	assert.Equal(t, "mine", visible[1].Name)

	// Admin sees all three
	all, err := svc.ListMarkets(context.Background(), testUser(model.RoleAdmin))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAddMarket_StampsAuthor(t *testing.T) {
	markets := &fakeMarketRepo{}
	hub := &fakeBroadcaster{}
	svc := NewReferenceService(markets, &fakeCompanyRepo{}, hub)

	caller := testUser(model.RoleUser)
	market, err := svc.AddMarket(context.Background(), caller, AddReferenceRequest{Name: "سوق الجمعة"})
	require.NoError(t, err)
	assert.Equal(t, caller.ID.String(), market.AddedBy)
	assert.False(t, market.IsDefault)

	events := hub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "markets", events[0].Topic)
}

func TestAddCompany_StampsAuthor(t *testing.T) {
	companies := &fakeCompanyRepo{}
	hub := &fakeBroadcaster{}
	svc := NewReferenceService(&fakeMarketRepo{}, companies, hub)

	caller := testUser(model.RoleUser)
	company, err := svc.AddCompany(context.Background(), caller, AddReferenceRequest{Name: "شركة المراعي"})
	require.NoError(t, err)
	assert.Equal(t, caller.ID.String(), company.AddedBy)

	events := hub.all()
	require.Len(t, events, 1)
	assert.Equal(t, "companies", events[0].Topic)
}
