package repositories

import (
	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"kadima-pos/models"
)

const (
	uniqueViolation        = "23505"
	invalidTextRepresented = "22P02"
)

// mapNoRows turns a missing row, or an id that is not a valid uuid, into
// models.ErrNotFound.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == invalidTextRepresented {
		return models.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == uniqueViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
