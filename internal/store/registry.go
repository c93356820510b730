package store

import (
	"gorm.io/gorm"

	"starwars/internal/domain"
	"starwars/internal/repository"
)

type (
	UserService              = Service[domain.User, domain.UserDraft, domain.UserPatch]
	CharacterService         = Service[domain.Character, domain.CharacterDraft, domain.CharacterPatch]
	PlanetService            = Service[domain.Planet, domain.PlanetDraft, domain.PlanetPatch]
	StarshipService          = Service[domain.Starship, domain.StarshipDraft, domain.StarshipPatch]
	CharacterFavoriteService = Service[domain.CharacterFavorite, domain.CharacterFavoriteDraft, domain.CharacterFavoritePatch]
	PlanetFavoriteService    = Service[domain.PlanetFavorite, domain.PlanetFavoriteDraft, domain.PlanetFavoritePatch]
	StarshipFavoriteService  = Service[domain.StarshipFavorite, domain.StarshipFavoriteDraft, domain.StarshipFavoritePatch]
)

// Registry holds one store per entity type over a shared connection pool.
type Registry struct {
	Users              *UserService
	Characters         *CharacterService
	Planets            *PlanetService
	Starships          *StarshipService
	CharacterFavorites *CharacterFavoriteService
	PlanetFavorites    *PlanetFavoriteService
	StarshipFavorites  *StarshipFavoriteService
	Favorites          *FavoritesView
}

func NewRegistry(db *gorm.DB, opts Options) *Registry {
	if opts.DeletePolicy == "" {
		opts.DeletePolicy = DeleteOrphan
	}

	r := &Registry{
		Users:              NewService[domain.User, domain.UserDraft, domain.UserPatch]("user", db, opts),
		Characters:         NewService[domain.Character, domain.CharacterDraft, domain.CharacterPatch]("character", db, opts),
		Planets:            NewService[domain.Planet, domain.PlanetDraft, domain.PlanetPatch]("planet", db, opts),
		Starships:          NewService[domain.Starship, domain.StarshipDraft, domain.StarshipPatch]("starship", db, opts),
		CharacterFavorites: NewService[domain.CharacterFavorite, domain.CharacterFavoriteDraft, domain.CharacterFavoritePatch]("character favorite", db, opts, "Character"),
		PlanetFavorites:    NewService[domain.PlanetFavorite, domain.PlanetFavoriteDraft, domain.PlanetFavoritePatch]("planet favorite", db, opts, "Planet"),
		StarshipFavorites:  NewService[domain.StarshipFavorite, domain.StarshipFavoriteDraft, domain.StarshipFavoritePatch]("starship favorite", db, opts, "Starship"),
		Favorites:          NewFavoritesView(repository.NewFavoriteRepository(db)),
	}

	r.Users.dependents = []Dependent{
		{Model: &domain.CharacterFavorite{}, Column: "user_id"},
		{Model: &domain.PlanetFavorite{}, Column: "user_id"},
		{Model: &domain.StarshipFavorite{}, Column: "user_id"},
	}
	r.Characters.dependents = []Dependent{{Model: &domain.CharacterFavorite{}, Column: "character_id"}}
	r.Planets.dependents = []Dependent{{Model: &domain.PlanetFavorite{}, Column: "planet_id"}}
	r.Starships.dependents = []Dependent{{Model: &domain.StarshipFavorite{}, Column: "starship_id"}}

	return r
}
