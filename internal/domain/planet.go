package domain

type Planet struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	Population int64  `json:"population" gorm:"not null"`
	Terrain    string `json:"terrain" gorm:"not null"`
	Climate    string `json:"climate" gorm:"not null"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p Planet) EntityID() int64 { return p.ID }

type PlanetDraft struct {
	Name       *string `json:"name" yaml:"name" validate:"required"`
	Population *int64  `json:"population" yaml:"population" validate:"required"`
	Terrain    *string `json:"terrain" yaml:"terrain" validate:"required"`
	Climate    *string `json:"climate" yaml:"climate" validate:"required"`
}

func (d PlanetDraft) Build() (Planet, error) {
	return Planet{
		Name:       *d.Name,
		Population: *d.Population,
		Terrain:    *d.Terrain,
		Climate:    *d.Climate,
	}, nil
}

type PlanetPatch struct {
	Name       Optional[string] `json:"name"`
	Population Optional[int64]  `json:"population"`
	Terrain    Optional[string] `json:"terrain"`
	Climate    Optional[string] `json:"climate"`
}

func (p PlanetPatch) Apply(pl *Planet) error {
	errs := patchErrors{}
	assign(errs, "name", p.Name, &pl.Name)
	assign(errs, "population", p.Population, &pl.Population)
	assign(errs, "terrain", p.Terrain, &pl.Terrain)
	assign(errs, "climate", p.Climate, &pl.Climate)
	return errs.err()
}
