package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "required", "mass": "required"}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "validation failed (mass: required, name: required)", err.Error())

	wrapped := fmt.Errorf("character: %w", err)
	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "required", verr.Fields["name"])
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	var patch CharacterPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Leia", "height": null}`), &patch))

	assert.Equal(t, Optional[string]{Value: "Leia", Set: true}, patch.Name)
	assert.True(t, patch.Height.Set)
	assert.True(t, patch.Height.Null)
	assert.False(t, patch.Mass.Set)

	var bad CharacterPatch
	assert.Error(t, json.Unmarshal([]byte(`{"height": "tall"}`), &bad))
}

func TestPatchApply(t *testing.T) {
	c := Character{ID: 1, Name: "Luke", Height: 172, Mass: 77, HairColor: "blond", SkinColor: "fair"}

	require.NoError(t, CharacterPatch{Name: Some("Leia"), Height: Some(150)}.Apply(&c))
	assert.Equal(t, Character{ID: 1, Name: "Leia", Height: 150, Mass: 77, HairColor: "blond", SkinColor: "fair"}, c)

	err := CharacterPatch{HairColor: Optional[string]{Set: true, Null: true}}.Apply(&c)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "blond", c.HairColor)
}

func TestUserPatch_ClearsNothingWhenEmpty(t *testing.T) {
	u := User{ID: 3, Username: "han", Email: "han@x.com", Password: "hash", IsActive: true}

	require.NoError(t, UserPatch{}.Apply(&u))
	assert.Equal(t, "hash", u.Password)
	assert.True(t, u.IsActive)
}

func TestUser_PasswordNotSerialized(t *testing.T) {
	raw, err := json.Marshal(User{ID: 1, Username: "han", Email: "han@x.com", Password: "secret", IsActive: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"han","email":"han@x.com","is_active":true}`, string(raw))
}

func TestNewUserFavorites_SkipsMissingTargets(t *testing.T) {
	chewie := Character{ID: 2, Name: "Chewbacca"}
	u := User{
		ID:       1,
		Username: "han",
		CharacterFavorites: []CharacterFavorite{
			{ID: 1, UserID: 1, CharacterID: 2, Character: &chewie},
			{ID: 2, UserID: 1, CharacterID: 9},
		},
		PlanetFavorites: []PlanetFavorite{{ID: 1, UserID: 1, PlanetID: 4}},
	}

	view := NewUserFavorites(u)
	assert.Equal(t, []Character{chewie}, view.CharacterFavorites)
	assert.Empty(t, view.PlanetFavorites)
	assert.NotNil(t, view.StarshipFavorites)
}

func TestFavoriteReferences(t *testing.T) {
	refs := StarshipFavorite{UserID: 1, StarshipID: 5}.References()
	require.Len(t, refs, 2)
	assert.Equal(t, "user_id", refs[0].Field)
	assert.Equal(t, "starship_id", refs[1].Field)
	assert.Equal(t, int64(5), refs[1].ID)
}
