package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1.00"},
		{"-1.005", "-1.01"},
		{"2.5", "2.50"},
		{"0.0049", "0.00"},
	}

	for _, tt := range tests {
		got := RoundMoney(decimal.RequireFromString(tt.in))
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("RoundMoney(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"30", "30.00"},
		{"1.000", "1.00"},
		{"2.5", "2.50"},
		{"-0.1", "-0.10"},
		{"0.07425", "0.07425"},
	}

	for _, tt := range tests {
		if got := MoneyString(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("MoneyString(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
