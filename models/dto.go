package models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=cashier admin"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" form:"name" binding:"required"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate" form:"tax_rate"`
	ImageURL    string          `json:"image_url" form:"image_url"`
	IsActive    *bool           `json:"is_active" form:"is_active"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" form:"name"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	TaxRate     *decimal.Decimal `json:"tax_rate" form:"tax_rate"`
	ImageURL    *string          `json:"image_url" form:"image_url"`
	IsActive    *bool            `json:"is_active" form:"is_active"`
}

type CreateCartRequest struct {
	MerchantID string `json:"merchant_id" binding:"required"`
	StoreID    string `json:"store_id" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

type CheckoutResponse struct {
	Transaction    *Transaction `json:"transaction"`
	QRPayload      string       `json:"qr_payload"`
	PollIntervalMs int64        `json:"poll_interval_ms"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" binding:"required"`
}

type HistoryFilter struct {
	MerchantID string
	StoreID    string
	Status     PaymentStatus
	Page       int
	Limit      int
}
