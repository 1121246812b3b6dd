package models

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, price, taxRate string) Product {
	return Product{
		ProductID: id,
		Name:      "Product " + id,
		Price:     decimal.RequireFromString(price),
		TaxRate:   decimal.RequireFromString(taxRate),
		IsActive:  true,
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCheckoutCart_AddItemCountsCalls(t *testing.T) {
	cart := NewCheckoutCart()
	p := product("P1", "10.00", "0.1")

	for i := 0; i < 5; i++ {
		cart.AddItem(&p)
	}

	q, ok := cart.Quantity("P1")
	require.True(t, ok)
	assert.Equal(t, 5, q)
	assert.Equal(t, 1, cart.Len())
}

func TestCheckoutCart_AddItemWithoutIDIsIgnored(t *testing.T) {
	cart := NewCheckoutCart()

	cart.AddItem(&Product{Price: decimal.NewFromInt(1)})
	cart.AddItem(nil)

	assert.True(t, cart.IsEmpty())
}

func TestCheckoutCart_QuantityOfAbsentItem(t *testing.T) {
	cart := NewCheckoutCart()

	q, ok := cart.Quantity("missing")
	assert.False(t, ok)
	assert.Zero(t, q)
}

func TestCheckoutCart_IncrementThenDecrement(t *testing.T) {
	cart := NewCheckoutCart()
	p := product("P1", "1", "0")
	cart.AddItem(&p)
	cart.AddItem(&p)

	cart.IncrementQuantity("P1")
	cart.DecrementQuantity("P1")

	q, _ := cart.Quantity("P1")
	assert.Equal(t, 2, q)
}

func TestCheckoutCart_IncrementDecrementAbsentIsNoop(t *testing.T) {
	cart := NewCheckoutCart()

	cart.IncrementQuantity("P1")
	_, ok := cart.Quantity("P1")
	assert.False(t, ok)

	cart.DecrementQuantity("P1")
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutCart_DecrementAtOneRemoves(t *testing.T) {
	cart := NewCheckoutCart()
	p := product("P1", "1", "0")
	cart.AddItem(&p)

	cart.DecrementQuantity("P1")

	_, ok := cart.Quantity("P1")
	assert.False(t, ok)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutCart_RemoveMissingLeavesCartUnchanged(t *testing.T) {
	cart := NewCheckoutCart()
	p1 := product("P1", "1", "0")
	p2 := product("P2", "2", "0")
	cart.AddItem(&p1)
	cart.AddItem(&p2)
	cart.AddItem(&p2)
	before := cart.Items()

	cart.RemoveItem("nope")

	assert.Equal(t, before, cart.Items())
}

func TestCheckoutCart_ItemsSortedByID(t *testing.T) {
	cart := NewCheckoutCart()
	for _, id := range []string{"c", "a", "b"} {
		p := product(id, "1", "0")
		cart.AddItem(&p)
	}

	assert.Equal(t, []CartItem{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 1},
		{ProductID: "c", Quantity: 1},
	}, cart.Items())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutCart_Totals(t *testing.T) {
	catalog := NewProductList("s1", []Product{product("P1", "10.00", "0.1")})
	cart := NewCheckoutCart()
	p, err := catalog.GetProductByID("P1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		cart.AddItem(p)
	}

	subtotal, err := cart.Subtotal(catalog)
	require.NoError(t, err)
	assertMoney(t, "30.00", subtotal)

	rounded, err := cart.RoundedSubtotal(catalog)
	require.NoError(t, err)
	assertMoney(t, "30.00", rounded)

	total, err := cart.Total(catalog)
	require.NoError(t, err)
	assertMoney(t, "33.00", total)

	tax, err := cart.TotalTax(catalog)
	require.NoError(t, err)
	assertMoney(t, "3.00", tax)
}

func TestCheckoutCart_RoundsOnlyAtTheEnd(t *testing.T) {
	catalog := NewProductList("s1", []Product{
		product("P1", "9.995", "0"),
		product("P2", "0.005", "0"),
	})
	cart := NewCheckoutCart()
	for _, id := range []string{"P1", "P2"} {
		p, err := catalog.GetProductByID(id)
		require.NoError(t, err)
		cart.AddItem(p)
	}

	subtotal, err := cart.Subtotal(catalog)
	require.NoError(t, err)
	assertMoney(t, "10.000", subtotal)

	rounded, err := cart.RoundedSubtotal(catalog)
	require.NoError(t, err)
	assertMoney(t, "10.00", rounded)
}

func TestCheckoutCart_TaxIsDifferenceOfRoundedAmounts(t *testing.T) {
	// Unit tax 0.005 rounds to 0.01 on its own, but total and subtotal
	// both round to 0.01, so the reported tax is zero.
	catalog := NewProductList("s1", []Product{product("P1", "0.005", "1")})
	cart := NewCheckoutCart()
	p, err := catalog.GetProductByID("P1")
	require.NoError(t, err)
	cart.AddItem(p)

	total, err := cart.Total(catalog)
	require.NoError(t, err)
	assertMoney(t, "0.01", total)

	tax, err := cart.TotalTax(catalog)
	require.NoError(t, err)
	assertMoney(t, "0", tax)
	assertMoney(t, "0.01", RoundMoney(p.TaxAmount()))
}

func TestCheckoutCart_UnknownProductFailsFast(t *testing.T) {
	catalog := NewProductList("s1", []Product{product("P1", "1", "0")})
	cart := NewCheckoutCart()
	p1 := product("P1", "1", "0")
	ghost := product("ghost", "5", "0")
	cart.AddItem(&p1)
	cart.AddItem(&ghost)

	_, err := cart.Total(catalog)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProductNotFound))

	var notFound *ProductNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.ProductID)

	_, err = cart.Subtotal(catalog)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = cart.TotalTax(catalog)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCheckoutCart_NoDriftAcrossSessions(t *testing.T) {
	catalog := NewProductList("s1", []Product{product("P1", "0.10", "0.11")})
	cart := NewCheckoutCart()
	p, err := catalog.GetProductByID("P1")
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		cart.AddItem(p)
		cart.AddItem(p)
		cart.DecrementQuantity("P1")
	}

	subtotal, err := cart.Subtotal(catalog)
	require.NoError(t, err)
	assertMoney(t, "100", subtotal)

	total, err := cart.Total(catalog)
	require.NoError(t, err)
	assertMoney(t, "111.00", total)
}

func TestCheckoutCart_CloneIsIndependent(t *testing.T) {
	cart := NewCheckoutCart()
	p := product("P1", "2.00", "0")
	cart.AddItem(&p)

	clone := cart.Clone()
	clone.IncrementQuantity("P1")
	clone.AddItem(&Product{ProductID: "P2"})

	q, _ := cart.Quantity("P1")
	assert.Equal(t, 1, q)
	assert.Equal(t, 1, cart.Len())

	q, _ = clone.Quantity("P1")
	assert.Equal(t, 2, q)
	assert.Equal(t, 2, clone.Len())
}
