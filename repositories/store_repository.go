package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kadima-pos/models"
)

type StoreRepository struct {
	db *pgxpool.Pool
}

func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

// GetByID only matches a store that belongs to merchantID.
func (r *StoreRepository) GetByID(ctx context.Context, merchantID, storeID string) (*models.Store, error) {
	query := `
		SELECT id::text, merchant_id::text, name, address, image, image_public_id, created_at, updated_at
		FROM stores WHERE id = $1 AND merchant_id = $2
	`
	var s models.Store
	err := r.db.QueryRow(ctx, query, storeID, merchantID).Scan(
		&s.ID, &s.MerchantID, &s.Name, &s.Address, &s.Image, &s.ImagePublicID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &s, nil
}

func (r *StoreRepository) UpdateImage(ctx context.Context, s *models.Store) error {
	err := r.db.QueryRow(ctx,
		`UPDATE stores SET image = $1, image_public_id = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`,
		s.Image, s.ImagePublicID, s.ID,
	).Scan(&s.UpdatedAt)
	return mapNoRows(err)
}
