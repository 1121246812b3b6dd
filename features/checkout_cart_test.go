package features

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"kadima-pos/models"
)

type cartTestContext struct {
	catalog *models.ProductList
	cart    *models.CheckoutCart
}

func (c *cartTestContext) reset() {
	c.catalog = models.NewProductList("store", nil)
	c.cart = nil
}

func (c *cartTestContext) aProductListWith(table *godog.Table) error {
	products := []models.Product{}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		price, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return err
		}
		rate, err := decimal.NewFromString(row.Cells[2].Value)
		if err != nil {
			return err
		}
		products = append(products, models.Product{
			ProductID: row.Cells[0].Value,
			Price:     price,
			TaxRate:   rate,
			IsActive:  true,
		})
	}
	c.catalog = models.NewProductList("store", products)
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = models.NewCheckoutCart()
	return nil
}

func (c *cartTestContext) iAddProductTimes(id string, n int) error {
	p, err := c.catalog.GetProductByID(id)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		c.cart.AddItem(p)
	}
	return nil
}

func (c *cartTestContext) iAddAnUnlistedProduct(id string) error {
	c.cart.AddItem(&models.Product{ProductID: id, Price: decimal.NewFromInt(1)})
	return nil
}

func (c *cartTestContext) iIncrementProduct(id string) error {
	c.cart.IncrementQuantity(id)
	return nil
}

func (c *cartTestContext) iDecrementProduct(id string) error {
	c.cart.DecrementQuantity(id)
	return nil
}

func (c *cartTestContext) iRemoveProduct(id string) error {
	c.cart.RemoveItem(id)
	return nil
}

func (c *cartTestContext) theQuantityOfIs(id string, want int) error {
	got, ok := c.cart.Quantity(id)
	if !ok {
		return fmt.Errorf("product %s is not in the cart", id)
	}
	if got != want {
		return fmt.Errorf("expected quantity %d, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(want int) error {
	if got := c.cart.Len(); got != want {
		return fmt.Errorf("expected %d lines, got %d", want, got)
	}
	return nil
}

func (c *cartTestContext) productIsNotInTheCart(id string) error {
	if _, ok := c.cart.Quantity(id); ok {
		return fmt.Errorf("expected %s to be absent", id)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.cart.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d lines", c.cart.Len())
	}
	return nil
}

func expectAmount(name, want string, got decimal.Decimal, err error) error {
	if err != nil {
		return err
	}
	if !decimal.RequireFromString(want).Equal(got) {
		return fmt.Errorf("expected %s %s, got %s", name, want, got)
	}
	return nil
}

func (c *cartTestContext) theSubtotalIs(want string) error {
	got, err := c.cart.Subtotal(c.catalog)
	return expectAmount("subtotal", want, got, err)
}

func (c *cartTestContext) theRoundedSubtotalIs(want string) error {
	got, err := c.cart.RoundedSubtotal(c.catalog)
	return expectAmount("rounded subtotal", want, got, err)
}

func (c *cartTestContext) theTotalIs(want string) error {
	got, err := c.cart.Total(c.catalog)
	return expectAmount("total", want, got, err)
}

func (c *cartTestContext) theTotalTaxIs(want string) error {
	got, err := c.cart.TotalTax(c.catalog)
	return expectAmount("total tax", want, got, err)
}

func (c *cartTestContext) computingTheTotalFailsWithProductNotFound(id string) error {
	_, err := c.cart.Total(c.catalog)
	if !errors.Is(err, models.ErrProductNotFound) {
		return fmt.Errorf("expected product not found, got %v", err)
	}
	var notFound *models.ProductNotFoundError
	if !errors.As(err, &notFound) || notFound.ProductID != id {
		return fmt.Errorf("expected missing product %s, got %v", id, err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a product list with:$`, tc.aProductListWith)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add product "([^"]*)" (\d+) times$`, tc.iAddProductTimes)
	ctx.Step(`^I add an unlisted product "([^"]*)"$`, tc.iAddAnUnlistedProduct)
	ctx.Step(`^I increment product "([^"]*)"$`, tc.iIncrementProduct)
	ctx.Step(`^I decrement product "([^"]*)"$`, tc.iDecrementProduct)
	ctx.Step(`^I remove product "([^"]*)"$`, tc.iRemoveProduct)

	// Then steps
	ctx.Step(`^the quantity of "([^"]*)" is (\d+)$`, tc.theQuantityOfIs)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^product "([^"]*)" is not in the cart$`, tc.productIsNotInTheCart)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the rounded subtotal is "([^"]*)"$`, tc.theRoundedSubtotalIs)
	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^the total tax is "([^"]*)"$`, tc.theTotalTaxIs)
	ctx.Step(`^computing the total fails with product not found for "([^"]*)"$`, tc.computingTheTotalFailsWithProductNotFound)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"checkout_cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
