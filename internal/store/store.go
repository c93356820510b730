// Package store is the only mutator of persisted entities. Every write runs
// in its own transaction; association references are checked inside it.
package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"starwars/internal/domain"
	"starwars/internal/pkg/logger"
	"starwars/internal/pkg/validator"
	"starwars/internal/repository"
)

// Draft is a creation payload. Required fields are pointers tagged
// `validate:"required"`.
type Draft[T any] interface {
	Build() (T, error)
}

// Patch is a partial update applied to a loaded record.
type Patch[T any] interface {
	Apply(*T) error
}

// Dependent is a table holding rows that point at an entity through Column.
type Dependent struct {
	Model  any
	Column string
}

type Service[T domain.Entity, D Draft[T], P Patch[T]] struct {
	name       string
	db         *gorm.DB
	repo       *repository.EntityRepository[T]
	opts       Options
	dependents []Dependent
}

func NewService[T domain.Entity, D Draft[T], P Patch[T]](name string, db *gorm.DB, opts Options, preloads ...string) *Service[T, D, P] {
	return &Service[T, D, P]{
		name: name,
		db:   db,
		repo: repository.NewEntityRepository[T](db, preloads...),
		opts: opts,
	}
}

// Name is the singular entity name used in errors and logs.
func (s *Service[T, D, P]) Name() string {
	return s.name
}

func (s *Service[T, D, P]) Create(ctx context.Context, draft D) (*T, error) {
	if fields := validator.Validate(draft); fields != nil {
		return nil, &domain.ValidationError{Fields: fields}
	}

	rec, err := draft.Build()
	if err != nil {
		return nil, err
	}

	var created *T
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkWrite(ctx, tx, rec); err != nil {
			return err
		}
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, &rec); err != nil {
			return translateStorageError(err)
		}
		created, err = repo.GetByID(ctx, rec.EntityID())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx, rec.EntityID()).Debug("created")
	return created, nil
}

func (s *Service[T, D, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrap(err, id)
	}
	return rec, nil
}

// List returns every row; an empty table is domain.ErrEmpty.
func (s *Service[T, D, P]) List(ctx context.Context) ([]T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: %w", s.name, domain.ErrEmpty)
	}
	return recs, nil
}

func (s *Service[T, D, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	var updated *T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		rec, err := repo.GetByID(ctx, id)
		if err != nil {
			return s.wrap(err, id)
		}
		if err := patch.Apply(rec); err != nil {
			return err
		}
		if err := s.checkWrite(ctx, tx, *rec); err != nil {
			return err
		}
		if err := repo.Save(ctx, rec); err != nil {
			return translateStorageError(err)
		}
		updated, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx, id).Debug("updated")
	return updated, nil
}

// Delete removes the row. Rows in dependent tables are removed too when the
// delete policy is DeleteCascade, and left orphaned otherwise.
func (s *Service[T, D, P]) Delete(ctx context.Context, id int64) error {
	var cascaded int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return s.wrap(domain.ErrNotFound, id)
		}
		if s.opts.DeletePolicy != DeleteCascade {
			return nil
		}
		for _, dep := range s.dependents {
			result := tx.Where(dep.Column+" = ?", id).Delete(dep.Model)
			if result.Error != nil {
				return result.Error
			}
			cascaded += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log(ctx, id).WithField("cascaded", cascaded).Debug("deleted")
	return nil
}

func (s *Service[T, D, P]) checkWrite(ctx context.Context, tx *gorm.DB, rec T) error {
	if r, ok := any(rec).(domain.Referrer); ok {
		if err := checkReferences(ctx, tx, r.References()); err != nil {
			return err
		}
	}
	if !s.opts.UniqueFavorites {
		return nil
	}
	d, ok := any(rec).(domain.Deduplicator)
	if !ok {
		return nil
	}
	n, err := s.repo.WithTx(tx).Count(ctx, d.DuplicateScope(), rec.EntityID())
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.NewValidationError("favorite", duplicateFavorite)
	}
	return nil
}

func (s *Service[T, D, P]) wrap(err error, id int64) error {
	return fmt.Errorf("%s %d: %w", s.name, id, err)
}

func (s *Service[T, D, P]) log(ctx context.Context, id int64) *logrus.Entry {
	return logger.FromContext(ctx).WithFields(logrus.Fields{"entity": s.name, "id": id})
}
