package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"backend/pkg/period"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CreateVacationRequest logs a leave entry. UserID may only differ from the
// caller when the caller is an admin.
type CreateVacationRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date" binding:"required"`
	Days   int    `json:"days" binding:"required,gt=0"`
	Type   string `json:"type" binding:"required,oneof=annual casual sick exam"`
}

// VacationListResponse carries the period window alongside its entries
type VacationListResponse struct {
	Period   period.Period           `json:"period"`
	Requests []model.VacationRequest `json:"requests"`
}

// VacationService implements the leave request log. Filing a request does
// not touch the profile balance counters; admins adjust those manually.
type VacationService interface {
	Create(ctx context.Context, caller *model.User, req CreateVacationRequest) (*model.VacationRequest, error)
	ListCurrentPeriod(ctx context.Context, viewer *model.User) (*VacationListResponse, error)
	Delete(ctx context.Context, caller *model.User, id string) error
}

type vacationService struct {
	repo     repository.VacationRepository
	userRepo repository.UserRepository
	hub      Broadcaster
	now      func() time.Time
}

// NewVacationService returns a new instance of VacationService
func NewVacationService(repo repository.VacationRepository, userRepo repository.UserRepository, hub Broadcaster) VacationService {
	return &vacationService{repo: repo, userRepo: userRepo, hub: orNoop(hub), now: time.Now}
}

func (s *vacationService) Create(ctx context.Context, caller *model.User, req CreateVacationRequest) (*model.VacationRequest, error) {
	target := caller
	if req.UserID != "" && req.UserID != caller.ID.String() {
		if !caller.IsAdmin() {
			return nil, errors.New("only admins may file vacations for other users")
		}
		other, err := s.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return nil, errors.New("user not found")
		}
		target = other
	}

	vacation := &model.VacationRequest{
		ID:        uuid.New(),
		UserID:    target.ID,
		Username:  target.Username,
		Date:      req.Date,
		Days:      req.Days,
		Type:      req.Type,
		Timestamp: s.now().UnixMilli(),
	}

	if err := s.repo.Create(ctx, vacation); err != nil {
		return nil, err
	}

	s.hub.Publish("vacations/"+target.ID.String(), ws.ActionCreated, vacation)
	return vacation, nil
}

// ListCurrentPeriod returns entries whose date falls inside the running
// 21st-to-20th pay period; non-admins see only their own.
func (s *vacationService) ListCurrentPeriod(ctx context.Context, viewer *model.User) (*VacationListResponse, error) {
	if viewer == nil {
		return nil, errors.New("viewer required")
	}
	p := period.At(s.now())

	userID := viewer.ID.String()
	if viewer.IsAdmin() {
		userID = ""
	}

	requests, err := s.repo.ListInPeriod(ctx, userID, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	return &VacationListResponse{Period: p, Requests: requests}, nil
}

func (s *vacationService) Delete(ctx context.Context, caller *model.User, id string) error {
	if !caller.IsAdmin() {
		return errors.New("only admins may delete vacations")
	}

	vacation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.New("vacation not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.hub.Publish("vacations/"+vacation.UserID.String(), ws.ActionDeleted, map[string]string{"id": id})
	return nil
}
