package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kadima-pos/models"
	"kadima-pos/utils"
)

func TestUserService_CreateUserDefaultsToCashier(t *testing.T) {
	users := &mockUserStore{}
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleCashier && u.MerchantID == testMerchant &&
			u.Email == "baru@toko.id" && u.Password != "rahasia123"
	})).Return(nil)

	svc := NewUserService(users)
	user, err := svc.CreateUser(context.Background(), testMerchant, models.CreateUserRequest{
		Email: "Baru@toko.id", Password: "rahasia123", FullName: "Kasir Baru",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCashier, user.Role)
	users.AssertExpectations(t)

	ok, err := utils.VerifyPassword(user.Password, "rahasia123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserService_CreateUserEmailTaken(t *testing.T) {
	users := &mockUserStore{}
	users.On("Create", mock.Anything, mock.Anything).Return(models.ErrEmailTaken)

	svc := NewUserService(users)
	_, err := svc.CreateUser(context.Background(), testMerchant, models.CreateUserRequest{
		Email: "dobel@toko.id", Password: "rahasia123", FullName: "Dobel", Role: models.RoleAdmin,
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestUserService_ListUsersPagination(t *testing.T) {
	users := &mockUserStore{}
	users.On("ListByMerchant", mock.Anything, testMerchant, 1, 10).
		Return([]models.User{{ID: 1}, {ID: 2}}, 12, nil)

	svc := NewUserService(users)
	list, meta, err := svc.ListUsers(context.Background(), testMerchant, 0, -5)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, models.PaginationMeta{Page: 1, Limit: 10, TotalItems: 12, TotalPages: 2}, meta)
}
