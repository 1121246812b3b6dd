package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPendingPayment PaymentStatus = "PENDING_PAYMENT"
	PaymentStatusProcessing     PaymentStatus = "PROCESSING"
	PaymentStatusPaid           PaymentStatus = "PAID"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPendingPayment: {PaymentStatusProcessing, PaymentStatusPaid},
	PaymentStatusProcessing:     {PaymentStatusPaid},
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPendingPayment, PaymentStatusProcessing, PaymentStatusPaid:
		return true
	}
	return false
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID            string            `json:"transaction_id"`
	MerchantID    string            `json:"merchant_id"`
	StoreID       string            `json:"store_id"`
	CashierID     int               `json:"cashier_id"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Total         decimal.Decimal   `json:"total"`
	CustomerEmail *string           `json:"customer_email,omitempty"`
	Items         []TransactionItem `json:"items,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
}

type TransactionItem struct {
	ID            int             `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	UnitTax       decimal.Decimal `json:"unit_tax"`
	Quantity      int             `json:"quantity"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// MarshalJSON prints money with two decimal places for the till.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type transaction Transaction
	return json.Marshal(struct {
		transaction
		Subtotal string `json:"subtotal"`
		Tax      string `json:"tax"`
		Total    string `json:"total"`
	}{
		transaction: transaction(t),
		Subtotal:    MoneyString(t.Subtotal),
		Tax:         MoneyString(t.Tax),
		Total:       MoneyString(t.Total),
	})
}

func (i TransactionItem) MarshalJSON() ([]byte, error) {
	type item TransactionItem
	return json.Marshal(struct {
		item
		UnitPrice string `json:"unit_price"`
		UnitTax   string `json:"unit_tax"`
		LineTotal string `json:"line_total"`
	}{
		item:      item(i),
		UnitPrice: MoneyString(i.UnitPrice),
		UnitTax:   MoneyString(i.UnitTax),
		LineTotal: MoneyString(i.LineTotal),
	})
}
