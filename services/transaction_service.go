package services

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"kadima-pos/models"
)

const (
	receiptTimeout      = 30 * time.Second
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type TransactionService struct {
	transactions TransactionStore
	catalog      Catalog
	mailer       ReceiptMailer
	logger       *zap.Logger

	wg sync.WaitGroup
}

// NewTransactionService accepts a nil mailer, in which case no receipts are sent.
func NewTransactionService(transactions TransactionStore, catalog Catalog, mailer ReceiptMailer, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		catalog:      catalog,
		mailer:       mailer,
		logger:       logger.Named("transaction"),
	}
}

// GetDetails hides transactions of other merchants behind ErrNotFound.
func (s *TransactionService) GetDetails(ctx context.Context, merchantID, id string) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.MerchantID != merchantID {
		return nil, models.ErrNotFound
	}
	return tx, nil
}

func (s *TransactionService) UpdatePaymentStatus(ctx context.Context, merchantID, id string, next models.PaymentStatus) (*models.Transaction, error) {
	if !next.Valid() {
		return nil, errors.Wrapf(models.ErrInvalidInput, "unknown payment status %q", next)
	}

	current, err := s.GetDetails(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if !current.PaymentStatus.CanTransitionTo(next) {
		return nil, errors.Wrapf(models.ErrInvalidStatusTransition, "%s to %s", current.PaymentStatus, next)
	}

	updated, err := s.transactions.UpdateStatus(ctx, id, current.PaymentStatus, next)
	if err != nil {
		return nil, err
	}
	updated.Items = current.Items
	paymentStatusUpdates.WithLabelValues(string(next)).Inc()

	s.logger.Info("payment status updated",
		zap.String("transaction_id", id),
		zap.String("from", string(current.PaymentStatus)),
		zap.String("to", string(next)),
	)

	if next == models.PaymentStatusPaid {
		s.sendReceipt(updated)
	}
	return updated, nil
}

// sendReceipt mails in the background. Failures are logged and never undo
// the status change.
func (s *TransactionService) sendReceipt(tx *models.Transaction) {
	if s.mailer == nil || tx.CustomerEmail == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), receiptTimeout)
		defer cancel()

		store, err := s.catalog.GetStore(ctx, tx.MerchantID, tx.StoreID)
		if err != nil {
			s.logger.Warn("receipt skipped, store lookup failed", zap.String("transaction_id", tx.ID), zap.Error(err))
			return
		}
		if err := s.mailer.SendReceipt(ctx, tx, store); err != nil {
			s.logger.Warn("receipt email failed", zap.String("transaction_id", tx.ID), zap.Error(err))
			return
		}
		s.logger.Info("receipt sent", zap.String("transaction_id", tx.ID))
	}()
}

// Wait blocks until pending receipt emails are done.
func (s *TransactionService) Wait() {
	s.wg.Wait()
}

func (s *TransactionService) History(ctx context.Context, filter models.HistoryFilter) ([]models.Transaction, models.PaginationMeta, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultHistoryLimit
	}
	if filter.Limit > maxHistoryLimit {
		filter.Limit = maxHistoryLimit
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, models.PaginationMeta{}, errors.Wrapf(models.ErrInvalidInput, "unknown payment status %q", filter.Status)
	}
	if _, err := s.catalog.GetStore(ctx, filter.MerchantID, filter.StoreID); err != nil {
		return nil, models.PaginationMeta{}, err
	}

	transactions, total, err := s.transactions.History(ctx, filter)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}
	return transactions, models.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}
