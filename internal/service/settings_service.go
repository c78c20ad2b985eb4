package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UpdateSettingsRequest is a full-record overwrite; every field is written.
// Concurrent admin edits resolve last-writer-wins with no merge.
type UpdateSettingsRequest struct {
	ProgramName            string `json:"program_name" binding:"required"`
	TickerText             string `json:"ticker_text"`
	ShowDailySalesTicker   bool   `json:"show_daily_sales_ticker"`
	ShowMonthlySalesTicker bool   `json:"show_monthly_sales_ticker"`
	WhatsAppNumber         string `json:"whatsapp_number"`
}

// SettingsService maintains the shared AppSettings singleton
type SettingsService interface {
	Get(ctx context.Context) (*model.AppSettings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (*model.AppSettings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
	hub  Broadcaster
}

// NewSettingsService returns a new instance of SettingsService
func NewSettingsService(repo repository.SettingsRepository, hub Broadcaster) SettingsService {
	return &settingsService{repo: repo, hub: orNoop(hub)}
}

// Get returns the stored settings, falling back to the hardcoded default
// when the row is absent
func (s *settingsService) Get(ctx context.Context) (*model.AppSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := model.DefaultSettings()
			return &def, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*model.AppSettings, error) {
	settings := &model.AppSettings{
		ID:                     model.SettingsID,
		ProgramName:            req.ProgramName,
		TickerText:             req.TickerText,
		ShowDailySalesTicker:   req.ShowDailySalesTicker,
		ShowMonthlySalesTicker: req.ShowMonthlySalesTicker,
		WhatsAppNumber:         req.WhatsAppNumber,
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	s.hub.Publish("settings", ws.ActionUpdated, settings)
	return settings, nil
}
