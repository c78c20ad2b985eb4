package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSettingsRepo struct {
	stored *model.AppSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*model.AppSettings, error) {
	if r.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.stored, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *model.AppSettings) error {
	settings.ID = model.SettingsID
	r.stored = settings
	return nil
}

func TestSettingsGet_DefaultWhenAbsent(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{}, nil)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), *settings)
}

func TestSettingsUpdate_FullOverwrite(t *testing.T) {
	repo := &fakeSettingsRepo{}
	hub := &fakeBroadcaster{}
	svc := NewSettingsService(repo, hub)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateSettingsRequest{
		ProgramName:          "Soft Rose",
		TickerText:           "عروض اليوم",
		ShowDailySalesTicker: true,
		WhatsAppNumber:       "+201000000000",
	})
	require.NoError(t, err)

	// The second write replaces every field, merged nothing
	_, err = svc.Update(ctx, UpdateSettingsRequest{ProgramName: "Soft Rose"})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Soft Rose", got.ProgramName)
	assert.Empty(t, got.TickerText)
	assert.False(t, got.ShowDailySalesTicker)
	assert.Empty(t, got.WhatsAppNumber)

	events := hub.all()
	require.Len(t, events, 2)
	assert.Equal(t, "settings", events[0].Topic)
}
