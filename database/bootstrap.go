// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"ferme/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// IMPORTANT: rebuild the legacy animals table BEFORE AutoMigrate so GORM
	// doesn't try an ALTER TABLE that can't backfill statut
	if err := migrateAnimauxStatut(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Projet{},
		&entities.Animal{},
		&entities.Pesee{},
		&entities.Gestation{},
		&entities.Sevrage{},
		&entities.Mortalite{},
		&entities.StockAliment{},
		&entities.StockMouvement{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateAnimauxStatut rebuilds production_animaux if it still carries the
// legacy `actif` boolean column instead of `statut`. statut is backfilled
// from actif (1 -> actif, 0 -> mort).
func migrateAnimauxStatut(db *gorm.DB) error {
	// does table exist?
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='production_animaux'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	// inspect columns
	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(production_animaux)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasActif, hasStatut := false, false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "actif":
			hasActif = true
		case "statut":
			hasStatut = true
		}
	}
	if hasStatut || !hasActif {
		// already on the new schema (or a fresh enough table for AutoMigrate)
		return nil
	}

	createSQL := `
CREATE TABLE production_animaux_new (
    animal_id INTEGER PRIMARY KEY AUTOINCREMENT,
    projet_id INTEGER,
    code TEXT,
    nom TEXT,
    sexe TEXT,
    race TEXT,
    date_naissance DATETIME,
    date_entree DATETIME,
    poids_initial REAL,
    reproducteur NUMERIC,
    pere_id INTEGER,
    mere_id INTEGER,
    statut TEXT,
    origine TEXT,
    notes TEXT,
    created_at DATETIME,
    updated_at DATETIME
);
`
	// figure which columns exist in old table
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO production_animaux_new (animal_id, projet_id, code, nom, sexe, race, date_naissance, date_entree, poids_initial, reproducteur, pere_id, mere_id, statut, origine, notes, created_at, updated_at)
SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, CASE WHEN actif THEN 'actif' ELSE 'mort' END, %s, %s, %s, %s FROM production_animaux;
`,
		sel("animal_id"),
		sel("projet_id"),
		sel("code"),
		sel("nom"),
		sel("sexe"),
		sel("race"),
		sel("date_naissance"),
		sel("date_entree"),
		sel("poids_initial"),
		sel("reproducteur"),
		sel("pere_id"),
		sel("mere_id"),
		sel("origine"),
		sel("notes"),
		sel("created_at"),
		sel("updated_at"),
	)

	// do it in a transaction
	return db.Transaction(func(tx *gorm.DB) error {
		// turn off FK checks during rebuild (SQLite scopes to connection; OK for our short tx)
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE production_animaux`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE production_animaux_new RENAME TO production_animaux`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}
