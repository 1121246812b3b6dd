package models

import "time"

type Store struct {
	ID            string    `json:"store_id"`
	MerchantID    string    `json:"merchant_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Image         string    `json:"image,omitempty"`
	ImagePublicID string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
