package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentStatusPendingPayment, PaymentStatusProcessing, true},
		{PaymentStatusPendingPayment, PaymentStatusPaid, true},
		{PaymentStatusProcessing, PaymentStatusPaid, true},
		{PaymentStatusProcessing, PaymentStatusPendingPayment, false},
		{PaymentStatusPaid, PaymentStatusProcessing, false},
		{PaymentStatusPaid, PaymentStatusPaid, false},
		{PaymentStatusPendingPayment, PaymentStatusPendingPayment, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.Valid())
	assert.False(t, PaymentStatus("REFUNDED").Valid())
	assert.False(t, PaymentStatus("").Valid())
}
