package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"starwars/internal/domain"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"

	duplicateFavorite = "already exists for this user"
)

// checkReferences fails with a ValidationError naming the first reference
// that does not resolve to an existing row.
func checkReferences(ctx context.Context, tx *gorm.DB, refs []domain.Reference) error {
	for _, ref := range refs {
		var n int64
		if err := tx.WithContext(ctx).Model(ref.Model).Where("id = ?", ref.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.NewValidationError(ref.Field, fmt.Sprintf("%s %d does not exist", ref.Entity, ref.ID))
		}
	}
	return nil
}

// translateStorageError maps constraint violations raised by databases whose
// schema carries real foreign keys or unique indexes.
func translateStorageError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return domain.NewValidationError(pgErr.ColumnName, "references a missing row")
	case pgUniqueViolation:
		return domain.NewValidationError("favorite", duplicateFavorite)
	default:
		return err
	}
}
