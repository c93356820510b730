package database

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars/internal/domain"
)

func TestConnectSQLiteAndMigrate(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))

	for _, model := range Models {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.True(t, db.Migrator().HasColumn(&domain.Starship{}, "cost_in_credits"))
	assert.True(t, db.Migrator().HasColumn(&domain.User{}, "is_active"))
	assert.True(t, db.Migrator().HasColumn(&domain.CharacterFavorite{}, "character_id"))
}

func TestConnectStripsSQLiteScheme(t *testing.T) {
	db, err := Connect("sqlite://:memory:")
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
}

func TestNormalizePostgresDSN(t *testing.T) {
	assert.Equal(t, "postgresql://u:p@h/db", normalizePostgresDSN("postgres://u:p@h/db"))
	assert.Equal(t, "postgresql://u:p@h/db", normalizePostgresDSN("postgresql://u:p@h/db"))
}

func TestMissingRowIsNotLogged(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	var planet domain.Planet
	err = db.First(&planet, 42).Error
	require.Error(t, err)
	assert.Empty(t, hook.AllEntries())

	err = db.Exec("SELECT * FROM no_such_table").Error
	require.Error(t, err)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "gorm", hook.LastEntry().Data["component"])
}
