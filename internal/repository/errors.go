package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrStorageExhausted means the database refused a write for lack of space
// or because the row exceeds a hard limit. The record was not stored.
var ErrStorageExhausted = errors.New("storage limit reached")

// storageError wraps write failures, classifying resource exhaustion.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 53: insufficient resources. 54000: program limit exceeded.
		if len(pgErr.Code) == 5 && (pgErr.Code[:2] == "53" || pgErr.Code == "54000") {
			return fmt.Errorf("%s: %w: %s", op, ErrStorageExhausted, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
