package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	ws "backend/internal/websocket"
	"context"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for Request validation
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,oneof=admin user"`
	EmployeeCode string `json:"employee_code"`
	Phone        string `json:"phone"`
}

// UpdateUserRequest carries the admin-editable profile fields. Pointer
// fields distinguish "leave unchanged" from explicit zero values.
type UpdateUserRequest struct {
	Username        string                 `json:"username"`
	Password        string                 `json:"password"` // empty means keep current
	Role            string                 `json:"role" binding:"omitempty,oneof=admin user"`
	EmployeeCode    *string                `json:"employee_code"`
	Phone           *string                `json:"phone"`
	Permissions     *model.Permissions     `json:"permissions"`
	VacationBalance *model.VacationBalance `json:"vacation_balance"`
}

type TokenResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// UserResponse exposes the profile without credentials; Online carries the
// derived presence value.
type UserResponse struct {
	ID              uuid.UUID             `json:"id"`
	Username        string                `json:"username"`
	Role            string                `json:"role"`
	EmployeeCode    string                `json:"employee_code"`
	Phone           string                `json:"phone"`
	IsOnline        bool                  `json:"is_online"`
	LastActive      int64                 `json:"last_active"`
	Online          bool                  `json:"online"`
	Permissions     model.Permissions     `json:"permissions"`
	VacationBalance model.VacationBalance `json:"vacation_balance"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	hub  Broadcaster
	now  func() time.Time
}

// NewUserService returns a new instance of UserService
func NewUserService(repo repository.UserRepository, hub Broadcaster) UserService {
	return &userService{repo: repo, hub: orNoop(hub), now: time.Now}
}

// Helper: parse model to standard json API response
func (s *userService) mapToResponse(user *model.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		Role:            user.Role,
		EmployeeCode:    user.EmployeeCode,
		Phone:           user.Phone,
		IsOnline:        user.IsOnline,
		LastActive:      user.LastActive,
		Online:          Online(user.IsOnline, user.LastActive, s.now()),
		Permissions:     user.Permissions,
		VacationBalance: user.VacationBalance,
	}
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid username or password")
	}

	// Generate JWT Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
	})

	// Use same fallback strategy as middleware for simplicity here or get from env centrally
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString, User: s.mapToResponse(user)}, nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, errors.New("username already exists")
	}

	// Hash password automatically
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &model.User{
		Username:     req.Username,
		Password:     string(hashedPassword),
		Role:         req.Role,
		EmployeeCode: req.EmployeeCode,
		Phone:        req.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.hub.Publish("users/"+user.ID.String(), ws.ActionCreated, s.mapToResponse(user))
	return s.mapToResponse(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return s.mapToResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *s.mapToResponse(&users[i]))
	}
	return responses, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
			return nil, errors.New("username already exists")
		}
		user.Username = req.Username
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		user.Password = string(hashedPassword)
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if req.EmployeeCode != nil {
		user.EmployeeCode = *req.EmployeeCode
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}
	if req.VacationBalance != nil {
		user.VacationBalance = *req.VacationBalance
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	res := s.mapToResponse(user)
	s.hub.Publish("users/"+user.ID.String(), ws.ActionUpdated, res)
	return res, nil
}
