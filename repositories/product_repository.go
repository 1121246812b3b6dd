package repositories

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kadima-pos/models"
)

const productColumns = `id::text, store_id::text, name, description, price, tax_rate, image_url, is_active, created_at, updated_at`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ProductID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.TaxRate,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

// ListByStore returns the active products of a store ordered by name.
func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
	          WHERE store_id = $1 AND is_active = true ORDER BY name, id`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	if err := scanProduct(r.db.QueryRow(ctx, query, id), &p); err != nil {
		return nil, mapNoRows(err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (store_id, name, description, price, tax_rate, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.StoreID, p.Name, p.Description, p.Price, p.TaxRate, p.ImageURL, p.IsActive,
	).Scan(&p.ProductID, &p.CreatedAt, &p.UpdatedAt)
	return errors.Wrap(err, "insert product")
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, tax_rate = $4, image_url = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.TaxRate, p.ImageURL, p.IsActive, p.ProductID,
	).Scan(&p.UpdatedAt)
	return mapNoRows(err)
}

// Deactivate hides the product from the catalog. Past transactions keep
// their copy of its name and price.
func (r *ProductRepository) Deactivate(ctx context.Context, id string) (string, error) {
	var storeID string
	err := r.db.QueryRow(ctx,
		`UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1 RETURNING store_id::text`, id,
	).Scan(&storeID)
	return storeID, mapNoRows(err)
}
