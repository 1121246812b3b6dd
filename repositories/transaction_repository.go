package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kadima-pos/models"
)

const transactionColumns = `id::text, merchant_id::text, store_id::text, cashier_id, payment_status,
	subtotal, tax, total, customer_email, created_at, updated_at, paid_at`

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(row pgx.Row, t *models.Transaction) error {
	return row.Scan(
		&t.ID, &t.MerchantID, &t.StoreID, &t.CashierID, &t.PaymentStatus,
		&t.Subtotal, &t.Tax, &t.Total, &t.CustomerEmail, &t.CreatedAt, &t.UpdatedAt, &t.PaidAt,
	)
}

// Create stores the transaction header and its items atomically.
func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO transactions (id, merchant_id, store_id, cashier_id, payment_status, subtotal, tax, total, customer_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		t.ID, t.MerchantID, t.StoreID, t.CashierID, t.PaymentStatus,
		t.Subtotal, t.Tax, t.Total, t.CustomerEmail,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "insert transaction")
	}

	batch := &pgx.Batch{}
	for _, item := range t.Items {
		batch.Queue(`
			INSERT INTO transaction_items (transaction_id, product_id, name, unit_price, unit_tax, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, t.ID, item.ProductID, item.Name, item.UnitPrice, item.UnitTax, item.Quantity, item.LineTotal)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range t.Items {
		if err := results.QueryRow().Scan(&t.Items[i].ID); err != nil {
			results.Close()
			return errors.Wrapf(err, "insert item %s", t.Items[i].ProductID)
		}
		t.Items[i].TransactionID = t.ID
	}
	if err := results.Close(); err != nil {
		return errors.Wrap(err, "close batch")
	}

	return errors.Wrap(tx.Commit(ctx), "commit")
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	err := scanTransaction(r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id), &t)
	if err != nil {
		return nil, mapNoRows(err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, transaction_id::text, product_id::text, name, unit_price, unit_tax, quantity, line_total
		FROM transaction_items WHERE transaction_id = $1 ORDER BY id
	`, id)
	if err != nil {
		return nil, errors.Wrap(err, "query items")
	}
	defer rows.Close()

	t.Items = []models.TransactionItem{}
	for rows.Next() {
		var item models.TransactionItem
		if err := rows.Scan(
			&item.ID, &item.TransactionID, &item.ProductID, &item.Name,
			&item.UnitPrice, &item.UnitTax, &item.Quantity, &item.LineTotal,
		); err != nil {
			return nil, errors.Wrap(err, "scan item")
		}
		t.Items = append(t.Items, item)
	}
	return &t, rows.Err()
}

// UpdateStatus moves a transaction from one status to another. It returns
// models.ErrInvalidStatusTransition when the row is no longer in from, so two
// concurrent updates cannot both succeed.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, from, to models.PaymentStatus) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET payment_status = $1,
		    paid_at = CASE WHEN $1 = 'PAID' THEN NOW() ELSE paid_at END,
		    updated_at = NOW()
		WHERE id = $2 AND payment_status = $3
		RETURNING ` + transactionColumns

	var t models.Transaction
	err := scanTransaction(r.db.QueryRow(ctx, query, string(to), id, string(from)), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, errors.Wrap(err, "update status")
	}
	return &t, nil
}

func (r *TransactionRepository) History(ctx context.Context, f models.HistoryFilter) ([]models.Transaction, int, error) {
	conds := []string{"merchant_id = $1", "store_id = $2"}
	args := []any{f.MerchantID, f.StoreID}
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count transactions")
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "query transactions")
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, 0, errors.Wrap(err, "scan transaction")
		}
		transactions = append(transactions, t)
	}
	return transactions, total, rows.Err()
}
