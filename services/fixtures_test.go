package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"kadima-pos/models"
)

const (
	testMerchant = "m-1"
	testStore    = "s-1"
	testCashier  = 42
)

// fakeCatalog is an in-memory Catalog for cart and checkout tests.
type fakeCatalog struct {
	mu       sync.Mutex
	stores   map[string]*models.Store
	products map[string]models.Product
	listErr  error
	// stale products are sold but missing from ProductList, like a cached list
	// that predates them.
	stale    map[string]bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		stores: map[string]*models.Store{
			testStore: {ID: testStore, MerchantID: testMerchant, Name: "Toko Kadima"},
		},
		products: map[string]models.Product{
			"kopi": {ProductID: "kopi", StoreID: testStore, Name: "Kopi", Price: decimal.RequireFromString("10.00"), TaxRate: decimal.RequireFromString("0.1"), IsActive: true},
			"teh":  {ProductID: "teh", StoreID: testStore, Name: "Teh", Price: decimal.RequireFromString("4.50"), TaxRate: decimal.Zero, IsActive: true},
			"old":  {ProductID: "old", StoreID: testStore, Name: "Old", Price: decimal.RequireFromString("1.00"), IsActive: false},
		},
		stale: map[string]bool{},
	}
}

func (f *fakeCatalog) GetStore(_ context.Context, merchantID, storeID string) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stores[storeID]
	if !ok || s.MerchantID != merchantID {
		return nil, models.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, storeID, productID string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[productID]
	if !ok || p.StoreID != storeID {
		return nil, &models.ProductNotFoundError{ProductID: productID}
	}
	if !p.IsActive {
		return nil, models.ErrInvalidInput
	}
	return &p, nil
}

func (f *fakeCatalog) ProductList(_ context.Context, storeID string) (*models.ProductList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	products := []models.Product{}
	for _, p := range f.products {
		if p.StoreID == storeID && p.IsActive && !f.stale[p.ProductID] {
			products = append(products, p)
		}
	}
	return models.NewProductList(storeID, products), nil
}

func (f *fakeCatalog) deactivate(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.products[id]
	p.IsActive = false
	f.products[id] = p
}

func (f *fakeCatalog) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func (f *fakeCatalog) markStale(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stale[id] = true
}
