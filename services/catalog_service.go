package services

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"kadima-pos/models"
	"kadima-pos/repositories"
)

type CatalogService struct {
	products ProductStore
	stores   StoreStore
	cache    ProductListCache
	uploader ImageUploader
	logger   *zap.Logger
}

// NewCatalogService accepts a nil cache or uploader. Without an uploader
// logo uploads fail.
func NewCatalogService(products ProductStore, stores StoreStore, cache ProductListCache, uploader ImageUploader, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		stores:   stores,
		cache:    cache,
		uploader: uploader,
		logger:   logger.Named("catalog"),
	}
}

func (s *CatalogService) GetStore(ctx context.Context, merchantID, storeID string) (*models.Store, error) {
	store, err := s.stores.GetByID(ctx, merchantID, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "get store")
	}
	return store, nil
}

// ProductList loads the active products of a store, reading through the cache.
func (s *CatalogService) ProductList(ctx context.Context, storeID string) (*models.ProductList, error) {
	if s.cache != nil {
		products, err := s.cache.Get(ctx, storeID)
		if err == nil {
			return models.NewProductList(storeID, products), nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("product cache read failed", zap.String("store_id", storeID), zap.Error(err))
		}
	}

	products, err := s.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, storeID, products); err != nil {
			s.logger.Warn("product cache write failed", zap.String("store_id", storeID), zap.Error(err))
		}
	}
	return models.NewProductList(storeID, products), nil
}

func (s *CatalogService) ListProducts(ctx context.Context, merchantID, storeID string) ([]models.Product, error) {
	if _, err := s.GetStore(ctx, merchantID, storeID); err != nil {
		return nil, err
	}
	list, err := s.ProductList(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return list.Products(), nil
}

// GetProduct resolves a product of storeID for adding to a cart.
func (s *CatalogService) GetProduct(ctx context.Context, storeID, productID string) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &models.ProductNotFoundError{ProductID: productID}
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	if product.StoreID != storeID {
		return nil, &models.ProductNotFoundError{ProductID: productID}
	}
	if !product.IsActive {
		return nil, errors.Wrapf(models.ErrInvalidInput, "product %s is not active", productID)
	}
	return product, nil
}

func validatePricing(price, taxRate decimal.Decimal) error {
	if price.IsNegative() {
		return errors.Wrap(models.ErrInvalidInput, "price must not be negative")
	}
	if taxRate.IsNegative() {
		return errors.Wrap(models.ErrInvalidInput, "tax_rate must not be negative")
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, merchantID, storeID string, req models.CreateProductRequest) (*models.Product, error) {
	if _, err := s.GetStore(ctx, merchantID, storeID); err != nil {
		return nil, err
	}
	if err := validatePricing(req.Price, req.TaxRate); err != nil {
		return nil, err
	}

	product := &models.Product{
		StoreID:     storeID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		TaxRate:     req.TaxRate,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, storeID)
	return product, nil
}

// ownedProduct loads a product and checks that its store belongs to merchantID.
func (s *CatalogService) ownedProduct(ctx context.Context, merchantID, productID string) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetStore(ctx, merchantID, product.StoreID); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, merchantID, productID string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.TaxRate != nil {
		product.TaxRate = *req.TaxRate
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if err := validatePricing(product.Price, product.TaxRate); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.StoreID)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, merchantID, productID string) error {
	if _, err := s.ownedProduct(ctx, merchantID, productID); err != nil {
		return err
	}
	storeID, err := s.products.Deactivate(ctx, productID)
	if err != nil {
		return err
	}
	s.invalidate(ctx, storeID)
	return nil
}

func (s *CatalogService) UpdateStoreLogo(ctx context.Context, merchantID, storeID string, file io.Reader, filename string) (*models.Store, error) {
	if s.uploader == nil {
		return nil, errors.Wrap(models.ErrUnavailable, "image upload")
	}

	store, err := s.GetStore(ctx, merchantID, storeID)
	if err != nil {
		return nil, err
	}

	url, publicID, err := s.uploader.UploadImage(ctx, file, filename, "stores")
	if err != nil {
		return nil, err
	}

	oldPublicID := store.ImagePublicID
	store.Image = url
	store.ImagePublicID = publicID
	if err := s.stores.UpdateImage(ctx, store); err != nil {
		if delErr := s.uploader.DeleteImage(ctx, publicID); delErr != nil {
			s.logger.Warn("orphaned upload", zap.String("public_id", publicID), zap.Error(delErr))
		}
		return nil, err
	}

	if oldPublicID != "" {
		if err := s.uploader.DeleteImage(ctx, oldPublicID); err != nil {
			s.logger.Warn("old logo not deleted", zap.String("public_id", oldPublicID), zap.Error(err))
		}
	}
	return store, nil
}

func (s *CatalogService) invalidate(ctx context.Context, storeID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, storeID); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.String("store_id", storeID), zap.Error(err))
	}
}
