package domain

// Starship numeric stats are stored as numbers; Length is in meters.
type Starship struct {
	ID            int64   `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	Model         string  `json:"model" gorm:"not null"`
	Manufacturer  string  `json:"manufacturer" gorm:"not null"`
	CostInCredits int64   `json:"cost_in_credits" gorm:"not null"`
	Length        float64 `json:"length" gorm:"not null"`
	Crew          int64   `json:"crew" gorm:"not null"`
	Passengers    int64   `json:"passengers" gorm:"not null"`
	CargoCapacity int64   `json:"cargo_capacity" gorm:"not null"`
}

func (Starship) TableName() string {
	return "starships"
}

func (s Starship) EntityID() int64 { return s.ID }

type StarshipDraft struct {
	Name          *string  `json:"name" yaml:"name" validate:"required"`
	Model         *string  `json:"model" yaml:"model" validate:"required"`
	Manufacturer  *string  `json:"manufacturer" yaml:"manufacturer" validate:"required"`
	CostInCredits *int64   `json:"cost_in_credits" yaml:"cost_in_credits" validate:"required"`
	Length        *float64 `json:"length" yaml:"length" validate:"required"`
	Crew          *int64   `json:"crew" yaml:"crew" validate:"required"`
	Passengers    *int64   `json:"passengers" yaml:"passengers" validate:"required"`
	CargoCapacity *int64   `json:"cargo_capacity" yaml:"cargo_capacity" validate:"required"`
}

func (d StarshipDraft) Build() (Starship, error) {
	return Starship{
		Name:          *d.Name,
		Model:         *d.Model,
		Manufacturer:  *d.Manufacturer,
		CostInCredits: *d.CostInCredits,
		Length:        *d.Length,
		Crew:          *d.Crew,
		Passengers:    *d.Passengers,
		CargoCapacity: *d.CargoCapacity,
	}, nil
}

type StarshipPatch struct {
	Name          Optional[string]  `json:"name"`
	Model         Optional[string]  `json:"model"`
	Manufacturer  Optional[string]  `json:"manufacturer"`
	CostInCredits Optional[int64]   `json:"cost_in_credits"`
	Length        Optional[float64] `json:"length"`
	Crew          Optional[int64]   `json:"crew"`
	Passengers    Optional[int64]   `json:"passengers"`
	CargoCapacity Optional[int64]   `json:"cargo_capacity"`
}

func (p StarshipPatch) Apply(s *Starship) error {
	errs := patchErrors{}
	assign(errs, "name", p.Name, &s.Name)
	assign(errs, "model", p.Model, &s.Model)
	assign(errs, "manufacturer", p.Manufacturer, &s.Manufacturer)
	assign(errs, "cost_in_credits", p.CostInCredits, &s.CostInCredits)
	assign(errs, "length", p.Length, &s.Length)
	assign(errs, "crew", p.Crew, &s.Crew)
	assign(errs, "passengers", p.Passengers, &s.Passengers)
	assign(errs, "cargo_capacity", p.CargoCapacity, &s.CargoCapacity)
	return errs.err()
}
