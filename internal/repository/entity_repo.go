package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starwars/internal/domain"
)

// EntityRepository is the gorm-backed table access shared by every entity.
// Associations are never written through it; preloads only affect reads.
type EntityRepository[T any] struct {
	db       *gorm.DB
	preloads []string
}

func NewEntityRepository[T any](db *gorm.DB, preloads ...string) *EntityRepository[T] {
	return &EntityRepository[T]{db: db, preloads: preloads}
}

// WithTx returns a copy bound to tx.
func (r *EntityRepository[T]) WithTx(tx *gorm.DB) *EntityRepository[T] {
	return &EntityRepository[T]{db: tx, preloads: r.preloads}
}

func (r *EntityRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *EntityRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
}

// GetByID returns domain.ErrNotFound when no row has the id.
func (r *EntityRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	if err := r.query(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *EntityRepository[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := r.query(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Save writes every column of rec.
func (r *EntityRepository[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error
}

// Delete returns the number of removed rows.
func (r *EntityRepository[T]) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	return result.RowsAffected, result.Error
}

// Count returns the rows matching conds, ignoring the row with excludeID.
func (r *EntityRepository[T]) Count(ctx context.Context, conds map[string]any, excludeID int64) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(new(T)).Where(conds)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}
