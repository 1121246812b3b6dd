package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"kadima-pos/models"
)

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	args := m.Called(ctx, storeID)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductStore) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductStore) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductStore) Deactivate(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockProductCache struct{ mock.Mock }

func (m *mockProductCache) Get(ctx context.Context, storeID string) ([]models.Product, error) {
	args := m.Called(ctx, storeID)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductCache) Set(ctx context.Context, storeID string, products []models.Product) error {
	return m.Called(ctx, storeID, products).Error(0)
}

func (m *mockProductCache) Invalidate(ctx context.Context, storeID string) error {
	return m.Called(ctx, storeID).Error(0)
}

type mockStoreStore struct{ mock.Mock }

func (m *mockStoreStore) GetByID(ctx context.Context, merchantID, storeID string) (*models.Store, error) {
	args := m.Called(ctx, merchantID, storeID)
	s, _ := args.Get(0).(*models.Store)
	return s, args.Error(1)
}

func (m *mockStoreStore) UpdateImage(ctx context.Context, s *models.Store) error {
	return m.Called(ctx, s).Error(0)
}

type mockTransactionStore struct{ mock.Mock }

func (m *mockTransactionStore) Create(ctx context.Context, t *models.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTransactionStore) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionStore) UpdateStatus(ctx context.Context, id string, from, to models.PaymentStatus) (*models.Transaction, error) {
	args := m.Called(ctx, id, from, to)
	t, _ := args.Get(0).(*models.Transaction)
	return t, args.Error(1)
}

func (m *mockTransactionStore) History(ctx context.Context, f models.HistoryFilter) ([]models.Transaction, int, error) {
	args := m.Called(ctx, f)
	ts, _ := args.Get(0).([]models.Transaction)
	return ts, args.Int(1), args.Error(2)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) ListByMerchant(ctx context.Context, merchantID string, page, limit int) ([]models.User, int, error) {
	args := m.Called(ctx, merchantID, page, limit)
	users, _ := args.Get(0).([]models.User)
	return users, args.Int(1), args.Error(2)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, string, error) {
	args := m.Called(ctx, file, filename, folder)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockUploader) DeleteImage(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendReceipt(ctx context.Context, tx *models.Transaction, store *models.Store) error {
	return m.Called(ctx, tx, store).Error(0)
}
