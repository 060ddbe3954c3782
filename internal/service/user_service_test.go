package service

import (
	"context"
	"testing"
	"time"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewUserRepo(kvstore.NewMemory()), nil).(*userService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }

	u, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Sari", Email: "sari@cafe.id"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCashier, u.Role)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "2024-05-01T08:00:00Z", u.CreatedAt.Format(time.RFC3339))

	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "Budi", Email: "budi@cafe.id", Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Name: "Budi", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Email: "x@cafe.id"})
	assert.ErrorIs(t, err, ErrRequiredFieldMissing)

	admin, err := svc.CreateUser(ctx, CreateUserRequest{Name: "Ayu", Email: "ayu@cafe.id", Role: model.RoleAdministrator})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))
	_, err = svc.GetUser(ctx, u.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	got, err := svc.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ayu", got.Name)
}
