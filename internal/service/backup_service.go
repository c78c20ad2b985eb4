package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

// BackupService serializes the whole store into one JSON-friendly document,
// keyed the way the tree paths are laid out. Single blocking read, no
// streaming. There is no restore path.
type BackupService interface {
	Snapshot(ctx context.Context) (map[string]interface{}, error)
}

type backupService struct {
	users         repository.UserRepository
	settings      repository.SettingsRepository
	notifications repository.NotificationRepository
	sales         repository.SaleRepository
	inventory     repository.InventoryRepository
	competitors   repository.CompetitorRepository
	vacations     repository.VacationRepository
	markets       repository.MarketRepository
	companies     repository.CompanyRepository
}

// NewBackupService returns a new instance of BackupService
func NewBackupService(
	users repository.UserRepository,
	settings repository.SettingsRepository,
	notifications repository.NotificationRepository,
	sales repository.SaleRepository,
	inventory repository.InventoryRepository,
	competitors repository.CompetitorRepository,
	vacations repository.VacationRepository,
	markets repository.MarketRepository,
	companies repository.CompanyRepository,
) BackupService {
	return &backupService{
		users:         users,
		settings:      settings,
		notifications: notifications,
		sales:         sales,
		inventory:     inventory,
		competitors:   competitors,
		vacations:     vacations,
		markets:       markets,
		companies:     companies,
	}
}

func (s *backupService) Snapshot(ctx context.Context) (map[string]interface{}, error) {
	snapshot := make(map[string]interface{}, 9)

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	userTree := make(map[string]model.User, len(users))
	for _, u := range users {
		userTree[u.ID.String()] = u
	}
	snapshot["users"] = userTree

	settings, err := s.settings.Get(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if settings != nil {
		snapshot["settings"] = settings
	}

	// Inboxes are keyed per recipient like the store paths
	inboxes := make(map[string][]model.NotificationMessage)
	for id := range userTree {
		messages, err := s.notifications.ListByRecipient(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(messages) > 0 {
			inboxes[id] = messages
		}
	}
	snapshot["notifications"] = inboxes

	sales, err := s.sales.All(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["sales"] = sales

	inventory, err := s.inventory.All(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["inventory"] = inventory

	competitors, err := s.competitors.All(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["competitor_prices"] = competitors

	vacations, err := s.vacations.All(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["vacations"] = vacations

	markets, err := s.markets.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["markets"] = markets

	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot["companies"] = companies

	return snapshot, nil
}
