package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("s3cret", time.Hour, 7, "kasir@toko.id", "cashier", "m-1")
	require.NoError(t, err)

	claims, err := ValidateToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "kasir@toko.id", claims.Email)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, "m-1", claims.MerchantID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("s3cret", time.Hour, 1, "a@b.c", "admin", "")
	require.NoError(t, err)

	_, err = ValidateToken("other", token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("s3cret", -time.Minute, 1, "a@b.c", "admin", "")
	require.NoError(t, err)

	_, err = ValidateToken("s3cret", token)
	assert.Error(t, err)
}
