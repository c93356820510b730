package domain

import "starwars/internal/pkg/password"

// User owns the favorites. The password is stored as a bcrypt hash and is
// never serialized.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"not null"`

	// Virtual fields for preload
	CharacterFavorites []CharacterFavorite `json:"-" gorm:"foreignKey:UserID"`
	PlanetFavorites    []PlanetFavorite    `json:"-" gorm:"foreignKey:UserID"`
	StarshipFavorites  []StarshipFavorite  `json:"-" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u User) EntityID() int64 { return u.ID }

type UserDraft struct {
	Username *string `json:"username" yaml:"username" validate:"required"`
	Email    *string `json:"email" yaml:"email" validate:"required"`
	Password *string `json:"password" yaml:"password" validate:"required"`
	IsActive *bool   `json:"is_active" yaml:"is_active" validate:"required"`
}

func (d UserDraft) Build() (User, error) {
	hash, err := password.Hash(*d.Password)
	if err != nil {
		return User{}, err
	}
	return User{
		Username: *d.Username,
		Email:    *d.Email,
		Password: hash,
		IsActive: *d.IsActive,
	}, nil
}

type UserPatch struct {
	Username Optional[string] `json:"username"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
	IsActive Optional[bool]   `json:"is_active"`
}

func (p UserPatch) Apply(u *User) error {
	errs := patchErrors{}
	assign(errs, "username", p.Username, &u.Username)
	assign(errs, "email", p.Email, &u.Email)
	assign(errs, "is_active", p.IsActive, &u.IsActive)

	var plain string
	assign(errs, "password", p.Password, &plain)
	if err := errs.err(); err != nil {
		return err
	}

	if p.Password.Set && !password.Matches(u.Password, plain) {
		hash, err := password.Hash(plain)
		if err != nil {
			return err
		}
		u.Password = hash
	}
	return nil
}
