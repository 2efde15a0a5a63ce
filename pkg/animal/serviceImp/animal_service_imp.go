package serviceImp

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/animal/repository"
	"ferme/pkg/animal/service"
	"ferme/pkg/faults"
)

type animalSvc struct{ r repository.AnimalRepository }

func NewAnimalService(r repository.AnimalRepository) service.AnimalService { return &animalSvc{r} }

var sexesValides = map[string]bool{
	entities.SexeMale:        true,
	entities.SexeFemelle:     true,
	entities.SexeIndetermine: true,
}

var statutsValides = map[string]bool{
	entities.StatutActif: true,
	entities.StatutVendu: true,
	entities.StatutMort:  true,
}

func (s *animalSvc) Creer(a *entities.Animal) (*entities.Animal, error) {
	if a.ProjetID == 0 {
		return nil, faults.Validation("projet_id requis")
	}
	if a.Code == "" {
		return nil, faults.Validation("code requis")
	}
	if a.Sexe == "" {
		a.Sexe = entities.SexeIndetermine
	}
	if !sexesValides[a.Sexe] {
		return nil, faults.Validation("sexe invalide: %s", a.Sexe)
	}
	if a.PoidsInitial != nil && *a.PoidsInitial <= 0 {
		return nil, faults.Validation("poids_initial doit etre > 0")
	}
	if _, err := s.r.FindByCode(a.ProjetID, a.Code); err == nil {
		return nil, faults.Validation("code deja utilise: %s", a.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if a.Statut == "" {
		a.SetStatut(entities.StatutActif)
	} else {
		a.SetStatut(a.Statut)
	}
	if err := s.r.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *animalSvc) Get(id uint) (*entities.Animal, error) {
	a, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("animal", strconv.Itoa(int(id)))
	}
	return a, err
}

func (s *animalSvc) Modifier(id uint, p service.AnimalPatch) (*entities.Animal, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Nom != nil {
		cur.Nom = *p.Nom
	}
	if p.Race != nil {
		cur.Race = *p.Race
	}
	if p.Sexe != nil {
		if !sexesValides[*p.Sexe] {
			return nil, faults.Validation("sexe invalide: %s", *p.Sexe)
		}
		cur.Sexe = *p.Sexe
	}
	if p.Reproducteur != nil {
		cur.Reproducteur = *p.Reproducteur
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.Statut != nil {
		if !statutsValides[*p.Statut] {
			return nil, faults.Validation("statut invalide: %s", *p.Statut)
		}
		cur.SetStatut(*p.Statut)
	}
	return cur, s.r.Update(cur)
}

func (s *animalSvc) ListByProjet(projetID uint, actifsOnly bool) ([]entities.Animal, error) {
	return s.r.ListByProjet(projetID, actifsOnly)
}

func (s *animalSvc) ActifsParCategorie(projetID uint, categorie string) ([]entities.Animal, error) {
	return s.r.ListActifsParCategorie(projetID, categorie)
}
