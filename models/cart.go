package models

import "time"

// CartView is what the API returns for a checkout session.
type CartView struct {
	ID         string       `json:"cart_id"`
	MerchantID string       `json:"merchant_id"`
	StoreID    string       `json:"store_id"`
	CashierID  int          `json:"cashier_id"`
	IsEmpty    bool         `json:"is_empty"`
	Summary    *CartSummary `json:"summary"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
