package services

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kadima-pos/models"
)

type CheckoutService struct {
	carts        *CartService
	catalog      Catalog
	transactions TransactionStore
	pollInterval time.Duration
	logger       *zap.Logger
}

func NewCheckoutService(carts *CartService, catalog Catalog, transactions TransactionStore, pollInterval time.Duration, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		catalog:      catalog,
		transactions: transactions,
		pollInterval: pollInterval,
		logger:       logger.Named("checkout"),
	}
}

// Checkout turns a cart into a PENDING_PAYMENT transaction. The cart session
// is dropped only once the transaction is stored.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string, cashierID int, customerEmail string) (*models.CheckoutResponse, error) {
	var tx *models.Transaction

	err := s.carts.Consume(cartID, cashierID, func(session *CartSession) error {
		cart := session.Cart()
		if cart.IsEmpty() {
			return models.ErrEmptyCart
		}

		var (
			store *models.Store
			list  *models.ProductList
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			store, err = s.catalog.GetStore(gctx, session.MerchantID, session.StoreID)
			return err
		})
		g.Go(func() error {
			var err error
			list, err = s.catalog.ProductList(gctx, session.StoreID)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		summary, err := models.Summarize(cart, list)
		if err != nil {
			return err
		}

		tx = newTransaction(store, session.CashierID, summary, customerEmail)
		if err := s.transactions.Create(ctx, tx); err != nil {
			return errors.Wrap(err, "store transaction")
		}
		return nil
	})
	if err != nil {
		checkoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
		return nil, err
	}

	checkoutsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("checkout completed",
		zap.String("cart_id", cartID),
		zap.String("transaction_id", tx.ID),
		zap.String("total", tx.Total.StringFixed(models.MoneyPlaces)),
	)

	return &models.CheckoutResponse{
		Transaction:    tx,
		QRPayload:      tx.ID,
		PollIntervalMs: s.pollInterval.Milliseconds(),
	}, nil
}

func newTransaction(store *models.Store, cashierID int, summary *models.CartSummary, customerEmail string) *models.Transaction {
	tx := &models.Transaction{
		ID:            uuid.NewString(),
		MerchantID:    store.MerchantID,
		StoreID:       store.ID,
		CashierID:     cashierID,
		PaymentStatus: models.PaymentStatusPendingPayment,
		Subtotal:      summary.Subtotal,
		Tax:           summary.Tax,
		Total:         summary.Total,
		Items:         make([]models.TransactionItem, 0, len(summary.Lines)),
	}
	if email := strings.TrimSpace(customerEmail); email != "" {
		tx.CustomerEmail = &email
	}
	for _, line := range summary.Lines {
		tx.Items = append(tx.Items, models.TransactionItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			UnitTax:   line.UnitTax,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		})
	}
	return tx
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, models.ErrCartNotFound):
		return "cart_not_found"
	case errors.Is(err, models.ErrProductNotFound):
		return "product_not_found"
	default:
		return "error"
	}
}
