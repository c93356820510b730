// Package seed loads YAML fixtures into the stores.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/store"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the YAML document. Favorites refer to users by username and
// to targets by name.
type Fixtures struct {
	Users      []domain.UserDraft      `yaml:"users"`
	Characters []domain.CharacterDraft `yaml:"characters"`
	Planets    []domain.PlanetDraft    `yaml:"planets"`
	Starships  []domain.StarshipDraft  `yaml:"starships"`
	Favorites  []FavoriteSet           `yaml:"favorites"`
}

type FavoriteSet struct {
	User       string   `yaml:"user"`
	Characters []string `yaml:"characters"`
	Planets    []string `yaml:"planets"`
	Starships  []string `yaml:"starships"`
}

// Summary counts created rows.
type Summary struct {
	Users, Characters, Planets, Starships, Favorites int
}

func Default() (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(defaultFixtures, &f); err != nil {
		return nil, fmt.Errorf("parse embedded fixtures: %w", err)
	}
	return &f, nil
}

func Load(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// Reset deletes every row, associations first.
func Reset(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for i := len(database.Models) - 1; i >= 0; i-- {
			if err := all.Delete(database.Models[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Apply creates every fixture through the stores, so drafts are validated
// and references are checked like any API write.
func Apply(ctx context.Context, reg *store.Registry, f *Fixtures) (Summary, error) {
	var sum Summary
	users := map[string]int64{}
	characters := map[string]int64{}
	planets := map[string]int64{}
	starships := map[string]int64{}

	for i, d := range f.Users {
		u, err := reg.Users.Create(ctx, d)
		if err != nil {
			return sum, fmt.Errorf("users[%d]: %w", i, err)
		}
		users[u.Username] = u.ID
		sum.Users++
	}
	for i, d := range f.Characters {
		c, err := reg.Characters.Create(ctx, d)
		if err != nil {
			return sum, fmt.Errorf("characters[%d]: %w", i, err)
		}
		characters[c.Name] = c.ID
		sum.Characters++
	}
	for i, d := range f.Planets {
		p, err := reg.Planets.Create(ctx, d)
		if err != nil {
			return sum, fmt.Errorf("planets[%d]: %w", i, err)
		}
		planets[p.Name] = p.ID
		sum.Planets++
	}
	for i, d := range f.Starships {
		s, err := reg.Starships.Create(ctx, d)
		if err != nil {
			return sum, fmt.Errorf("starships[%d]: %w", i, err)
		}
		starships[s.Name] = s.ID
		sum.Starships++
	}

	for _, set := range f.Favorites {
		userID, ok := users[set.User]
		if !ok {
			return sum, fmt.Errorf("favorites: unknown user %q", set.User)
		}
		for _, name := range set.Characters {
			id, err := lookup(characters, "character", name)
			if err != nil {
				return sum, err
			}
			if _, err := reg.CharacterFavorites.Create(ctx, domain.CharacterFavoriteDraft{UserID: &userID, CharacterID: &id}); err != nil {
				return sum, fmt.Errorf("favorites of %s: %w", set.User, err)
			}
			sum.Favorites++
		}
		for _, name := range set.Planets {
			id, err := lookup(planets, "planet", name)
			if err != nil {
				return sum, err
			}
			if _, err := reg.PlanetFavorites.Create(ctx, domain.PlanetFavoriteDraft{UserID: &userID, PlanetID: &id}); err != nil {
				return sum, fmt.Errorf("favorites of %s: %w", set.User, err)
			}
			sum.Favorites++
		}
		for _, name := range set.Starships {
			id, err := lookup(starships, "starship", name)
			if err != nil {
				return sum, err
			}
			if _, err := reg.StarshipFavorites.Create(ctx, domain.StarshipFavoriteDraft{UserID: &userID, StarshipID: &id}); err != nil {
				return sum, fmt.Errorf("favorites of %s: %w", set.User, err)
			}
			sum.Favorites++
		}
	}
	return sum, nil
}

func lookup(ids map[string]int64, entity, name string) (int64, error) {
	id, ok := ids[name]
	if !ok {
		return 0, fmt.Errorf("favorites: unknown %s %q", entity, name)
	}
	return id, nil
}
