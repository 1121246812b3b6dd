package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CheckoutCart maps product ids to quantities for one checkout session.
// Every stored quantity is at least 1. It is not safe for concurrent use.
type CheckoutCart struct {
	cart map[string]int
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func NewCheckoutCart() *CheckoutCart {
	return &CheckoutCart{cart: make(map[string]int)}
}

// AddItem puts one unit of product in the cart. Products without an id are ignored.
func (c *CheckoutCart) AddItem(product *Product) {
	if product == nil || product.ProductID == "" {
		return
	}
	if _, ok := c.cart[product.ProductID]; ok {
		c.IncrementQuantity(product.ProductID)
		return
	}
	c.cart[product.ProductID] = 1
}

func (c *CheckoutCart) RemoveItem(id string) {
	delete(c.cart, id)
}

// Quantity reports the quantity for id and whether id is in the cart at all.
func (c *CheckoutCart) Quantity(id string) (int, bool) {
	q, ok := c.cart[id]
	return q, ok
}

func (c *CheckoutCart) IsEmpty() bool {
	return len(c.cart) == 0
}

func (c *CheckoutCart) Len() int {
	return len(c.cart)
}

func (c *CheckoutCart) IncrementQuantity(id string) {
	if q, ok := c.cart[id]; ok {
		c.cart[id] = q + 1
	}
}

// DecrementQuantity lowers the quantity by one, dropping the item when it reaches zero.
func (c *CheckoutCart) DecrementQuantity(id string) {
	q, ok := c.cart[id]
	if !ok {
		return
	}
	if q == 1 {
		c.RemoveItem(id)
		return
	}
	c.cart[id] = q - 1
}

func (c *CheckoutCart) Clear() {
	c.cart = make(map[string]int)
}

// Clone returns an independent copy of the cart.
func (c *CheckoutCart) Clone() *CheckoutCart {
	cart := make(map[string]int, len(c.cart))
	for id, q := range c.cart {
		cart[id] = q
	}
	return &CheckoutCart{cart: cart}
}

// Items returns the cart contents ordered by product id.
func (c *CheckoutCart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.cart))
	for id, q := range c.cart {
		items = append(items, CartItem{ProductID: id, Quantity: q})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}

// Subtotal is the raw sum of price × quantity, without rounding.
func (c *CheckoutCart) Subtotal(catalog ProductCatalog) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for id, q := range c.cart {
		product, err := catalog.GetProductByID(id)
		if err != nil {
			return decimal.Zero, err
		}
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(q))))
	}
	return subtotal, nil
}

func (c *CheckoutCart) RoundedSubtotal(catalog ProductCatalog) (decimal.Decimal, error) {
	subtotal, err := c.Subtotal(catalog)
	if err != nil {
		return decimal.Zero, err
	}
	return RoundMoney(subtotal), nil
}

// Total sums (price + unit tax) × quantity over the cart and rounds once at the end.
func (c *CheckoutCart) Total(catalog ProductCatalog) (decimal.Decimal, error) {
	total := decimal.Zero
	for id, q := range c.cart {
		product, err := catalog.GetProductByID(id)
		if err != nil {
			return decimal.Zero, err
		}
		unit := product.Price.Add(product.TaxAmount())
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(q))))
	}
	return RoundMoney(total), nil
}

// TotalTax is the rounded total minus the rounded subtotal, not a sum of
// per-item tax. The two can differ by a cent.
func (c *CheckoutCart) TotalTax(catalog ProductCatalog) (decimal.Decimal, error) {
	total, err := c.Total(catalog)
	if err != nil {
		return decimal.Zero, err
	}
	subtotal, err := c.RoundedSubtotal(catalog)
	if err != nil {
		return decimal.Zero, err
	}
	return RoundMoney(total.Sub(subtotal)), nil
}
