package store

import (
	"context"
	"fmt"

	"starwars/internal/domain"
	"starwars/internal/repository"
)

// FavoritesView builds the per-user favorites aggregate.
type FavoritesView struct {
	repo *repository.FavoriteRepository
}

func NewFavoritesView(repo *repository.FavoriteRepository) *FavoritesView {
	return &FavoritesView{repo: repo}
}

// All returns one entry per user, including users without favorites.
func (v *FavoritesView) All(ctx context.Context) ([]domain.UserFavorites, error) {
	users, err := v.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.UserFavorites, 0, len(users))
	for _, u := range users {
		views = append(views, domain.NewUserFavorites(u))
	}
	return views, nil
}

func (v *FavoritesView) ForUser(ctx context.Context, userID int64) (*domain.UserFavorites, error) {
	u, err := v.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	view := domain.NewUserFavorites(*u)
	return &view, nil
}
