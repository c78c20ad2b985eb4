package service

import (
	"context"
	"testing"

	"backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test_secret")

	user := &model.User{ID: uuid.New(), Username: "sara", Password: string(hash), Role: model.RoleAdmin}
	svc := NewUserService(newFakeUserRepo(user), nil)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginRequest{Username: "sara", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	// The token must carry the subject and role claims the websocket gate checks
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])

	_, err = svc.Login(ctx, LoginRequest{Username: "sara", Password: "wrong"})
	assert.Error(t, err)
	_, err = svc.Login(ctx, LoginRequest{Username: "nobody", Password: "secret123"})
	assert.Error(t, err)
}

func TestCreateUser_RejectsDuplicateUsername(t *testing.T) {
	existing := &model.User{ID: uuid.New(), Username: "sara", Role: model.RoleUser}
	svc := NewUserService(newFakeUserRepo(existing), nil)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Username: "sara", Password: "secret123", Role: model.RoleUser})
	assert.Error(t, err)

	created, err := svc.CreateUser(ctx, CreateUserRequest{Username: "omar", Password: "secret123", Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "omar", created.Username)
	// Fresh accounts get the default balance from column defaults, not here
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	user := &model.User{
		ID:       uuid.New(),
		Username: "sara",
		Role:     model.RoleUser,
		Phone:    "0100",
		Permissions: model.Permissions{
			ShowSalesLog: true,
		},
		VacationBalance: model.VacationBalance{Annual: 21, Casual: 7},
	}
	hub := &fakeBroadcaster{}
	svc := NewUserService(newFakeUserRepo(user), hub)
	ctx := context.Background()

	// Only the balance changes; everything omitted stays put
	updated, err := svc.UpdateUser(ctx, user.ID.String(), UpdateUserRequest{
		VacationBalance: &model.VacationBalance{Annual: 18, Casual: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, "sara", updated.Username)
	assert.Equal(t, "0100", updated.Phone)
	assert.True(t, updated.Permissions.ShowSalesLog)
	assert.Equal(t, 18, updated.VacationBalance.Annual)

	// Explicit empty phone clears the field
	empty := ""
	updated, err = svc.UpdateUser(ctx, user.ID.String(), UpdateUserRequest{Phone: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Phone)

	events := hub.all()
	require.Len(t, events, 2)
	assert.Equal(t, "users/"+user.ID.String(), events[0].Topic)
}
