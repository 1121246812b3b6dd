package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   string          `json:"product_id"`
	StoreID     string          `json:"store_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TaxAmount is the unrounded tax charged on a single unit.
func (p *Product) TaxAmount() decimal.Decimal {
	return p.Price.Mul(p.TaxRate)
}

// ProductCatalog resolves products by id.
type ProductCatalog interface {
	GetProductByID(id string) (*Product, error)
}
