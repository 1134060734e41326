package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/transport"
)

func TestCreateUser_DefaultsToCustomer(t *testing.T) {
	_, users, _, _ := newTestServices(t)

	user, err := users.CreateUser(context.Background(), transport.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotZero(t, user.ID)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	_, users, _, _ := newTestServices(t)

	_, err := users.CreateUser(context.Background(), transport.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	_, users, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, transport.CreateUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, transport.CreateUserRequest{
		Name:     "Another Alice",
		Email:    "alice@example.com",
		Password: "hunter2",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateUser_Validation(t *testing.T) {
	_, users, _, _ := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateUserRequest
	}{
		{name: "empty name", req: transport.CreateUserRequest{Email: "a@b.c", Password: "x"}},
		{name: "empty email", req: transport.CreateUserRequest{Name: "A", Password: "x"}},
		{name: "empty password", req: transport.CreateUserRequest{Name: "A", Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.CreateUser(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListUsers(t *testing.T) {
	db, users, _, _ := newTestServices(t)
	seedUser(t, db)

	got, err := users.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "test_user", got[0].Name)
}
