// Package api assembles the HTTP surface.
package api

import (
	"github.com/gin-gonic/gin"

	"starwars/internal/domain"
	"starwars/internal/middleware"
	"starwars/internal/modules/favorite"
	"starwars/internal/modules/resource"
	"starwars/internal/modules/sitemap"
	"starwars/internal/store"
)

func NewRouter(reg *store.Registry, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(middleware.RequestLogger(), middleware.ErrorLogger(), middleware.CORS(corsOrigins))

	sitemap.NewHandler(r).RegisterRoutes(&r.RouterGroup)

	users := r.Group("/user")
	resource.NewHandler[domain.User, domain.UserDraft, domain.UserPatch](
		reg.Users, resource.Names{Singular: "User", Plural: "users"},
	).RegisterRoutes(users)
	favorite.NewHandler(reg.Favorites).RegisterRoutes(users)

	resource.NewHandler[domain.Character, domain.CharacterDraft, domain.CharacterPatch](
		reg.Characters, resource.Names{Singular: "Character", Plural: "characters"},
	).RegisterRoutes(r.Group("/character"))

	resource.NewHandler[domain.Planet, domain.PlanetDraft, domain.PlanetPatch](
		reg.Planets, resource.Names{Singular: "Planet", Plural: "planets"},
	).RegisterRoutes(r.Group("/planet"))

	resource.NewHandler[domain.Starship, domain.StarshipDraft, domain.StarshipPatch](
		reg.Starships, resource.Names{Singular: "Starship", Plural: "starships"},
	).RegisterRoutes(r.Group("/starship"))

	resource.NewHandler[domain.CharacterFavorite, domain.CharacterFavoriteDraft, domain.CharacterFavoritePatch](
		reg.CharacterFavorites, resource.Names{Singular: "Favorite character", Plural: "favorite characters"},
	).RegisterRoutes(r.Group("/character_fav"))

	resource.NewHandler[domain.PlanetFavorite, domain.PlanetFavoriteDraft, domain.PlanetFavoritePatch](
		reg.PlanetFavorites, resource.Names{Singular: "Favorite planet", Plural: "favorite planets"},
	).RegisterRoutes(r.Group("/planet_fav"))

	resource.NewHandler[domain.StarshipFavorite, domain.StarshipFavoriteDraft, domain.StarshipFavoritePatch](
		reg.StarshipFavorites, resource.Names{Singular: "Favorite starship", Plural: "favorite starships"},
	).RegisterRoutes(r.Group("/starship_fav"))

	return r
}
