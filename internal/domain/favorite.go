package domain

// CharacterFavorite links a user to a favorited character.
type CharacterFavorite struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	UserID      int64 `json:"user_id" gorm:"not null;index"`
	CharacterID int64 `json:"character_id" gorm:"not null;index"`

	Character *Character `json:"character,omitempty" gorm:"foreignKey:CharacterID"`
}

func (CharacterFavorite) TableName() string {
	return "character_favorites"
}

func (f CharacterFavorite) EntityID() int64 { return f.ID }

func (f CharacterFavorite) References() []Reference {
	return []Reference{
		{Field: "user_id", Entity: "user", Model: &User{}, ID: f.UserID},
		{Field: "character_id", Entity: "character", Model: &Character{}, ID: f.CharacterID},
	}
}

func (f CharacterFavorite) DuplicateScope() map[string]any {
	return map[string]any{"user_id": f.UserID, "character_id": f.CharacterID}
}

type CharacterFavoriteDraft struct {
	UserID      *int64 `json:"user_id" validate:"required"`
	CharacterID *int64 `json:"character_id" validate:"required"`
}

func (d CharacterFavoriteDraft) Build() (CharacterFavorite, error) {
	return CharacterFavorite{UserID: *d.UserID, CharacterID: *d.CharacterID}, nil
}

type CharacterFavoritePatch struct {
	UserID      Optional[int64] `json:"user_id"`
	CharacterID Optional[int64] `json:"character_id"`
}

func (p CharacterFavoritePatch) Apply(f *CharacterFavorite) error {
	errs := patchErrors{}
	assign(errs, "user_id", p.UserID, &f.UserID)
	assign(errs, "character_id", p.CharacterID, &f.CharacterID)
	return errs.err()
}

// PlanetFavorite links a user to a favorited planet.
type PlanetFavorite struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	UserID   int64 `json:"user_id" gorm:"not null;index"`
	PlanetID int64 `json:"planet_id" gorm:"not null;index"`

	Planet *Planet `json:"planet,omitempty" gorm:"foreignKey:PlanetID"`
}

func (PlanetFavorite) TableName() string {
	return "planet_favorites"
}

func (f PlanetFavorite) EntityID() int64 { return f.ID }

func (f PlanetFavorite) References() []Reference {
	return []Reference{
		{Field: "user_id", Entity: "user", Model: &User{}, ID: f.UserID},
		{Field: "planet_id", Entity: "planet", Model: &Planet{}, ID: f.PlanetID},
	}
}

func (f PlanetFavorite) DuplicateScope() map[string]any {
	return map[string]any{"user_id": f.UserID, "planet_id": f.PlanetID}
}

type PlanetFavoriteDraft struct {
	UserID   *int64 `json:"user_id" validate:"required"`
	PlanetID *int64 `json:"planet_id" validate:"required"`
}

func (d PlanetFavoriteDraft) Build() (PlanetFavorite, error) {
	return PlanetFavorite{UserID: *d.UserID, PlanetID: *d.PlanetID}, nil
}

type PlanetFavoritePatch struct {
	UserID   Optional[int64] `json:"user_id"`
	PlanetID Optional[int64] `json:"planet_id"`
}

func (p PlanetFavoritePatch) Apply(f *PlanetFavorite) error {
	errs := patchErrors{}
	assign(errs, "user_id", p.UserID, &f.UserID)
	assign(errs, "planet_id", p.PlanetID, &f.PlanetID)
	return errs.err()
}

// StarshipFavorite links a user to a favorited starship.
type StarshipFavorite struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	UserID     int64 `json:"user_id" gorm:"not null;index"`
	StarshipID int64 `json:"starship_id" gorm:"not null;index"`

	Starship *Starship `json:"starship,omitempty" gorm:"foreignKey:StarshipID"`
}

func (StarshipFavorite) TableName() string {
	return "starship_favorites"
}

func (f StarshipFavorite) EntityID() int64 { return f.ID }

func (f StarshipFavorite) References() []Reference {
	return []Reference{
		{Field: "user_id", Entity: "user", Model: &User{}, ID: f.UserID},
		{Field: "starship_id", Entity: "starship", Model: &Starship{}, ID: f.StarshipID},
	}
}

func (f StarshipFavorite) DuplicateScope() map[string]any {
	return map[string]any{"user_id": f.UserID, "starship_id": f.StarshipID}
}

type StarshipFavoriteDraft struct {
	UserID     *int64 `json:"user_id" validate:"required"`
	StarshipID *int64 `json:"starship_id" validate:"required"`
}

func (d StarshipFavoriteDraft) Build() (StarshipFavorite, error) {
	return StarshipFavorite{UserID: *d.UserID, StarshipID: *d.StarshipID}, nil
}

type StarshipFavoritePatch struct {
	UserID     Optional[int64] `json:"user_id"`
	StarshipID Optional[int64] `json:"starship_id"`
}

func (p StarshipFavoritePatch) Apply(f *StarshipFavorite) error {
	errs := patchErrors{}
	assign(errs, "user_id", p.UserID, &f.UserID)
	assign(errs, "starship_id", p.StarshipID, &f.StarshipID)
	return errs.err()
}

// UserFavorites is the aggregate view of everything a user has favorited.
// Favorites whose target row no longer exists are left out.
type UserFavorites struct {
	UserID             int64       `json:"user_id"`
	Username           string      `json:"username"`
	CharacterFavorites []Character `json:"character_favorites"`
	PlanetFavorites    []Planet    `json:"planet_favorites"`
	StarshipFavorites  []Starship  `json:"starship_favorites"`
}

// NewUserFavorites expects u to be loaded with its favorites and their targets.
func NewUserFavorites(u User) UserFavorites {
	view := UserFavorites{
		UserID:             u.ID,
		Username:           u.Username,
		CharacterFavorites: make([]Character, 0, len(u.CharacterFavorites)),
		PlanetFavorites:    make([]Planet, 0, len(u.PlanetFavorites)),
		StarshipFavorites:  make([]Starship, 0, len(u.StarshipFavorites)),
	}
	for _, f := range u.CharacterFavorites {
		if f.Character != nil {
			view.CharacterFavorites = append(view.CharacterFavorites, *f.Character)
		}
	}
	for _, f := range u.PlanetFavorites {
		if f.Planet != nil {
			view.PlanetFavorites = append(view.PlanetFavorites, *f.Planet)
		}
	}
	for _, f := range u.StarshipFavorites {
		if f.Starship != nil {
			view.StarshipFavorites = append(view.StarshipFavorites, *f.Starship)
		}
	}
	return view
}
