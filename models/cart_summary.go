package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitTax   decimal.Decimal `json:"unit_tax"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartSummary struct {
	Lines    []CartLine      `json:"lines"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	type line CartLine
	return json.Marshal(struct {
		line
		UnitPrice string `json:"unit_price"`
		UnitTax   string `json:"unit_tax"`
		LineTotal string `json:"line_total"`
	}{
		line:      line(l),
		UnitPrice: MoneyString(l.UnitPrice),
		UnitTax:   MoneyString(l.UnitTax),
		LineTotal: MoneyString(l.LineTotal),
	})
}

func (s CartSummary) MarshalJSON() ([]byte, error) {
	type summary CartSummary
	return json.Marshal(struct {
		summary
		Subtotal string `json:"subtotal"`
		Tax      string `json:"tax"`
		Total    string `json:"total"`
	}{
		summary:  summary(s),
		Subtotal: MoneyString(s.Subtotal),
		Tax:      MoneyString(s.Tax),
		Total:    MoneyString(s.Total),
	})
}

// Summarize prices every line of the cart against catalog. Subtotal, Tax and
// Total come from the cart's own aggregate methods.
func Summarize(cart *CheckoutCart, catalog ProductCatalog) (*CartSummary, error) {
	items := cart.Items()
	summary := &CartSummary{Lines: make([]CartLine, 0, len(items))}

	for _, item := range items {
		product, err := catalog.GetProductByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		summary.Lines = append(summary.Lines, CartLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			UnitTax:   product.TaxAmount(),
			Quantity:  item.Quantity,
			LineTotal: product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
		summary.Count += item.Quantity
	}

	var err error
	if summary.Subtotal, err = cart.RoundedSubtotal(catalog); err != nil {
		return nil, err
	}
	if summary.Total, err = cart.Total(catalog); err != nil {
		return nil, err
	}
	if summary.Tax, err = cart.TotalTax(catalog); err != nil {
		return nil, err
	}
	return summary, nil
}
