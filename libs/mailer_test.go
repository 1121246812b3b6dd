package libs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadima-pos/config"
	"kadima-pos/models"
)

func TestNewMailerRequiresSMTP(t *testing.T) {
	_, err := NewMailer(&config.Config{SMTPHost: "smtp.example.com"})
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}

func TestRenderReceipt(t *testing.T) {
	tx := &models.Transaction{
		ID:       "tx-1",
		Subtotal: decimal.RequireFromString("30.00"),
		Tax:      decimal.RequireFromString("3.30"),
		Total:    decimal.RequireFromString("33.30"),
		Items: []models.TransactionItem{
			{Name: "Kopi Susu", Quantity: 2, LineTotal: decimal.RequireFromString("30")},
		},
	}
	store := &models.Store{Name: "Toko Kadima", Address: "Jl. Merdeka 1"}

	html, err := RenderReceipt(tx, store)
	require.NoError(t, err)
	assert.Contains(t, html, "Toko Kadima")
	assert.Contains(t, html, "Kopi Susu x 2")
	assert.Contains(t, html, "30.00")
	assert.Contains(t, html, "33.30")
}
