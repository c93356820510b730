package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"starwars/internal/domain"
)

// FavoriteRepository reads users together with their favorites and the
// favorited rows.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) withFavorites(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("CharacterFavorites", orderByID).
		Preload("CharacterFavorites.Character").
		Preload("PlanetFavorites", orderByID).
		Preload("PlanetFavorites.Planet").
		Preload("StarshipFavorites", orderByID).
		Preload("StarshipFavorites.Starship")
}

// ListUsers returns every user, ordered by id.
func (r *FavoriteRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.withFavorites(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns domain.ErrNotFound when the user does not exist.
func (r *FavoriteRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	if err := r.withFavorites(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
