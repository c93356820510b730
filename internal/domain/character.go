package domain

type Character struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	Height    int    `json:"height" gorm:"not null"`
	Mass      int    `json:"mass" gorm:"not null"`
	HairColor string `json:"hair_color" gorm:"not null"`
	SkinColor string `json:"skin_color" gorm:"not null"`
}

func (Character) TableName() string {
	return "characters"
}

func (c Character) EntityID() int64 { return c.ID }

type CharacterDraft struct {
	Name      *string `json:"name" yaml:"name" validate:"required"`
	Height    *int    `json:"height" yaml:"height" validate:"required"`
	Mass      *int    `json:"mass" yaml:"mass" validate:"required"`
	HairColor *string `json:"hair_color" yaml:"hair_color" validate:"required"`
	SkinColor *string `json:"skin_color" yaml:"skin_color" validate:"required"`
}

func (d CharacterDraft) Build() (Character, error) {
	return Character{
		Name:      *d.Name,
		Height:    *d.Height,
		Mass:      *d.Mass,
		HairColor: *d.HairColor,
		SkinColor: *d.SkinColor,
	}, nil
}

type CharacterPatch struct {
	Name      Optional[string] `json:"name"`
	Height    Optional[int]    `json:"height"`
	Mass      Optional[int]    `json:"mass"`
	HairColor Optional[string] `json:"hair_color"`
	SkinColor Optional[string] `json:"skin_color"`
}

func (p CharacterPatch) Apply(c *Character) error {
	errs := patchErrors{}
	assign(errs, "name", p.Name, &c.Name)
	assign(errs, "height", p.Height, &c.Height)
	assign(errs, "mass", p.Mass, &c.Mass)
	assign(errs, "hair_color", p.HairColor, &c.HairColor)
	assign(errs, "skin_color", p.SkinColor, &c.SkinColor)
	return errs.err()
}
