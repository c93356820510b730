package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type uniqueIndex struct {
	name    string
	table   string
	columns string
}

var favoriteIndexes = []uniqueIndex{
	{name: "uq_character_favorites_user_target", table: "character_favorites", columns: "user_id, character_id"},
	{name: "uq_planet_favorites_user_target", table: "planet_favorites", columns: "user_id, planet_id"},
	{name: "uq_starship_favorites_user_target", table: "starship_favorites", columns: "user_id, starship_id"},
}

// EnsureIndexes adds the unique (user, target) indexes when UniqueFavorites
// is on, so concurrent inserts that both pass the duplicate check cannot
// both commit. Fails if duplicates already exist.
func EnsureIndexes(ctx context.Context, db *gorm.DB, opts Options) error {
	if !opts.UniqueFavorites {
		return nil
	}
	for _, idx := range favoriteIndexes {
		stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("unique index on %s: %w", idx.table, err)
		}
	}
	return nil
}
