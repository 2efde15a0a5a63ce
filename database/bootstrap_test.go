package database

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ferme/entities"
)

func TestOpenSQLiteFreshDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ferme.db")

	db := OpenSQLite(path)
	require.True(t, db.Migrator().HasTable("production_animaux"))
	require.True(t, db.Migrator().HasTable("gestations"))
	require.True(t, db.Migrator().HasTable("stocks_mouvements"))
	require.True(t, db.Migrator().HasColumn(&entities.Animal{}, "statut"))
}

func TestMigrateAnimauxStatutBackfill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	// seed a legacy-shaped table with the old boolean column
	seed, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, seed.Exec(`
CREATE TABLE production_animaux (
    animal_id INTEGER PRIMARY KEY AUTOINCREMENT,
    projet_id INTEGER,
    code TEXT,
    nom TEXT,
    sexe TEXT,
    actif NUMERIC
);`).Error)
	require.NoError(t, seed.Exec(
		`INSERT INTO production_animaux (projet_id, code, nom, sexe, actif) VALUES (1, 'T001', 'Rosalie', 'femelle', 1)`).Error)
	require.NoError(t, seed.Exec(
		`INSERT INTO production_animaux (projet_id, code, nom, sexe, actif) VALUES (1, 'T002', 'Margot', 'femelle', 0)`).Error)
	sqlDB, err := seed.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db := OpenSQLite(path)

	var rosalie, margot entities.Animal
	require.NoError(t, db.Where("code = ?", "T001").First(&rosalie).Error)
	require.NoError(t, db.Where("code = ?", "T002").First(&margot).Error)

	require.Equal(t, entities.StatutActif, rosalie.Statut)
	require.True(t, rosalie.Actif)
	require.Equal(t, entities.StatutMort, margot.Statut)
	require.False(t, margot.Actif)
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	db := OpenSQLite(path)
	a := &entities.Animal{ProjetID: 1, Code: "T001"}
	a.SetStatut(entities.StatutActif)
	require.NoError(t, db.Create(a).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// reopening an already-migrated file must leave the data alone
	db2 := OpenSQLite(path)
	var again entities.Animal
	require.NoError(t, db2.Where("code = ?", "T001").First(&again).Error)
	require.Equal(t, entities.StatutActif, again.Statut)
}
