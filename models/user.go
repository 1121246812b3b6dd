package models

import "time"

const (
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Role       string    `json:"role"`
	MerchantID string    `json:"merchant_id"`
	FullName   string    `json:"full_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
