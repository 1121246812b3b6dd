package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kadima-pos/models"
	"kadima-pos/utils"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("rahasia123")
	require.NoError(t, err)

	users := &mockUserStore{}
	users.On("FindByEmail", mock.Anything, "kasir@toko.id").Return(&models.User{
		ID: 3, Email: "kasir@toko.id", Password: hash, Role: models.RoleCashier, MerchantID: testMerchant,
	}, nil)
	users.On("FindByEmail", mock.Anything, "ghost@toko.id").Return(nil, models.ErrNotFound)

	svc := NewAuthService(users, "s3cret", time.Hour, zap.NewNop())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: " Kasir@Toko.id", Password: "rahasia123"})
	require.NoError(t, err)
	claims, err := utils.ValidateToken("s3cret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, testMerchant, claims.MerchantID)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "kasir@toko.id", Password: "salah"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ghost@toko.id", Password: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthService_GetProfile(t *testing.T) {
	users := &mockUserStore{}
	users.On("FindByID", mock.Anything, 3).Return(&models.User{ID: 3, Email: "kasir@toko.id"}, nil)
	users.On("FindByID", mock.Anything, 9).Return(nil, models.ErrNotFound)

	svc := NewAuthService(users, "s3cret", time.Hour, zap.NewNop())

	user, err := svc.GetProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "kasir@toko.id", user.Email)

	_, err = svc.GetProfile(context.Background(), 9)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
