package serviceImp

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ferme/entities"
	animalrepo "ferme/pkg/animal/repository"
	"ferme/pkg/faults"
	"ferme/pkg/mortality/repository"
	"ferme/pkg/mortality/service"
)

type mortaliteSvc struct {
	r       repository.MortaliteRepository
	animaux animalrepo.AnimalRepository
	log     *zap.Logger
}

func NewMortaliteService(r repository.MortaliteRepository, a animalrepo.AnimalRepository, log *zap.Logger) service.MortaliteService {
	if log == nil {
		log = zap.NewNop()
	}
	return &mortaliteSvc{r: r, animaux: a, log: log}
}

var categoriesValides = map[string]bool{
	entities.CategorieTruie:    true,
	entities.CategorieVerrat:   true,
	entities.CategoriePorcelet: true,
	entities.CategorieAutre:    true,
}

func (s *mortaliteSvc) Enregistrer(m *entities.Mortalite) (*entities.Mortalite, error) {
	if m.ProjetID == 0 {
		return nil, faults.Validation("projet_id requis")
	}
	if m.Nombre < 1 {
		return nil, faults.Validation("nombre doit etre >= 1")
	}
	if !categoriesValides[m.Categorie] {
		return nil, faults.Validation("categorie invalide: %s", m.Categorie)
	}
	if m.Date.IsZero() {
		m.Date = time.Now()
	}

	disponibles, err := s.animaux.ListActifsParCategorie(m.ProjetID, m.Categorie)
	if err != nil {
		return nil, err
	}
	// a death can never be recorded against animals the farm doesn't hold
	if m.Nombre > len(disponibles) {
		return nil, faults.Capacity("categorie "+m.Categorie, float64(m.Nombre), float64(len(disponibles)))
	}

	// event first; transitions after, best effort
	if err := s.r.Create(m); err != nil {
		return nil, err
	}

	if m.AnimalCode != nil && *m.AnimalCode != "" {
		s.transitionParCode(m.ProjetID, *m.AnimalCode)
		return m, nil
	}
	for i := 0; i < m.Nombre; i++ {
		a := disponibles[i]
		a.SetStatut(entities.StatutMort)
		if err := s.animaux.Update(&a); err != nil {
			// partial application is accepted; already-dead stay dead
			s.log.Warn("transition mortalite echouee",
				zap.Uint("mortalite_id", m.MortaliteID), zap.String("code", a.Code), zap.Error(err))
		}
	}
	return m, nil
}

// transitionParCode handles the specific-code mode: a lookup miss is logged
// and skipped, the mortality record itself stays valid.
func (s *mortaliteSvc) transitionParCode(projetID uint, code string) {
	a, err := s.animaux.FindByCode(projetID, code)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && a.Statut != entities.StatutActif) {
		s.log.Warn("animal introuvable ou inactif, transition ignoree",
			zap.Uint("projet_id", projetID), zap.String("code", code))
		return
	}
	if err != nil {
		s.log.Warn("lecture animal echouee", zap.String("code", code), zap.Error(err))
		return
	}
	a.SetStatut(entities.StatutMort)
	if err := s.animaux.Update(a); err != nil {
		s.log.Warn("transition mortalite echouee", zap.String("code", code), zap.Error(err))
	}
}

func (s *mortaliteSvc) ListByProjet(projetID uint) ([]entities.Mortalite, error) {
	return s.r.ListByProjet(projetID)
}
