package service

import (
	"time"

	"ferme/entities"
)

type GestationPatch struct {
	Verrat               *string    `json:"verrat"`
	DateSaillie          *time.Time `json:"-"`
	NombrePorceletsPrevu *int       `json:"nombre_porcelets_prevu"`
	Notes                *string    `json:"notes"`
}

// ResultatMiseBas reports what the materializer actually created so partial
// failures stay visible to the caller.
type ResultatMiseBas struct {
	Gestation *entities.Gestation `json:"gestation"`
	Demandes  int                 `json:"porcelets_demandes"`
	Crees     []entities.Animal   `json:"porcelets_crees"`
}

type GestationService interface {
	Creer(g *entities.Gestation) (*entities.Gestation, error)
	Get(id uint) (*entities.Gestation, error)
	Modifier(id uint, p GestationPatch) (*entities.Gestation, error)
	ListByProjet(projetID uint) ([]entities.Gestation, error)
	// Terminer closes an ongoing gestation and materializes the litter.
	Terminer(id uint, dateReelle time.Time, nbPorcelets int) (*ResultatMiseBas, error)
	Annuler(id uint, raison string) (*entities.Gestation, error)

	CreerSevrage(s *entities.Sevrage) (*entities.Sevrage, error)
	ListSevrages(projetID uint) ([]entities.Sevrage, error)
}
