package services

import (
	"context"
	"io"

	"kadima-pos/models"
)

type ProductStore interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Deactivate(ctx context.Context, id string) (string, error)
}

type ProductListCache interface {
	Get(ctx context.Context, storeID string) ([]models.Product, error)
	Set(ctx context.Context, storeID string, products []models.Product) error
	Invalidate(ctx context.Context, storeID string) error
}

type StoreStore interface {
	GetByID(ctx context.Context, merchantID, storeID string) (*models.Store, error)
	UpdateImage(ctx context.Context, s *models.Store) error
}

type TransactionStore interface {
	Create(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id string, from, to models.PaymentStatus) (*models.Transaction, error)
	History(ctx context.Context, f models.HistoryFilter) ([]models.Transaction, int, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	ListByMerchant(ctx context.Context, merchantID string, page, limit int) ([]models.User, int, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename, folder string) (url, publicID string, err error)
	DeleteImage(ctx context.Context, publicID string) error
}

type ReceiptMailer interface {
	SendReceipt(ctx context.Context, tx *models.Transaction, store *models.Store) error
}
