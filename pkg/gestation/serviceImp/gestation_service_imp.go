package serviceImp

import (
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ferme/entities"
	animalrepo "ferme/pkg/animal/repository"
	"ferme/pkg/faults"
	"ferme/pkg/gestation/repository"
	"ferme/pkg/gestation/service"
)

type gestationSvc struct {
	r       repository.GestationRepository
	animaux animalrepo.AnimalRepository
	log     *zap.Logger
}

func NewGestationService(r repository.GestationRepository, a animalrepo.AnimalRepository, log *zap.Logger) service.GestationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &gestationSvc{r: r, animaux: a, log: log}
}

func (s *gestationSvc) Creer(g *entities.Gestation) (*entities.Gestation, error) {
	if g.ProjetID == 0 {
		return nil, faults.Validation("projet_id requis")
	}
	if g.Truie == "" {
		return nil, faults.Validation("truie requise")
	}
	if g.DateSaillie.IsZero() {
		return nil, faults.Validation("date_saillie requise")
	}
	if _, err := s.resoudreRef(g.ProjetID, g.Truie); err != nil {
		return nil, err
	}
	g.Statut = entities.GestationEnCours
	g.DatePrevue = g.DateSaillie.AddDate(0, 0, entities.DureeGestationJours)
	if err := s.r.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gestationSvc) Get(id uint) (*entities.Gestation, error) {
	g, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("gestation", strconv.Itoa(int(id)))
	}
	return g, err
}

func (s *gestationSvc) Modifier(id uint, p service.GestationPatch) (*entities.Gestation, error) {
	cur, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if cur.Terminale() {
		return nil, faults.Validation("gestation %d est %s, modification impossible", id, cur.Statut)
	}
	if p.Verrat != nil {
		cur.Verrat = p.Verrat
	}
	if p.DateSaillie != nil {
		cur.DateSaillie = *p.DateSaillie
		// moving the mating date shifts the due date with it
		cur.DatePrevue = cur.DateSaillie.AddDate(0, 0, entities.DureeGestationJours)
	}
	if p.NombrePorceletsPrevu != nil {
		cur.NombrePorceletsPrevu = p.NombrePorceletsPrevu
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	return cur, s.r.Update(cur)
}

func (s *gestationSvc) ListByProjet(projetID uint) ([]entities.Gestation, error) {
	return s.r.ListByProjet(projetID)
}

func (s *gestationSvc) Terminer(id uint, dateReelle time.Time, nbPorcelets int) (*service.ResultatMiseBas, error) {
	g, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if g.Statut != entities.GestationEnCours {
		return nil, faults.Validation("gestation %d est %s, seule une gestation en_cours peut etre terminee", id, g.Statut)
	}
	if nbPorcelets < 0 {
		return nil, faults.Validation("nombre de porcelets doit etre >= 0")
	}
	g.Statut = entities.GestationTerminee
	g.DateReelle = &dateReelle
	g.NombrePorceletsReel = &nbPorcelets
	if err := s.r.Update(g); err != nil {
		return nil, err
	}
	crees, err := s.materialiserPortee(g)
	if err != nil {
		return nil, err
	}
	return &service.ResultatMiseBas{Gestation: g, Demandes: nbPorcelets, Crees: crees}, nil
}

func (s *gestationSvc) Annuler(id uint, raison string) (*entities.Gestation, error) {
	g, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if g.Statut != entities.GestationEnCours {
		return nil, faults.Validation("gestation %d est %s, seule une gestation en_cours peut etre annulee", id, g.Statut)
	}
	g.Statut = entities.GestationAnnulee
	if raison != "" {
		if g.Notes != "" {
			g.Notes += "\n"
		}
		g.Notes += "Annulee: " + raison
	}
	return g, s.r.Update(g)
}

func (s *gestationSvc) CreerSevrage(sv *entities.Sevrage) (*entities.Sevrage, error) {
	if sv.ProjetID == 0 {
		return nil, faults.Validation("projet_id requis")
	}
	if sv.NombreSevres <= 0 {
		return nil, faults.Validation("nombre_sevres doit etre >= 1")
	}
	if sv.Date.IsZero() {
		sv.Date = time.Now()
	}
	if err := s.r.CreateSevrage(sv); err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *gestationSvc) ListSevrages(projetID uint) ([]entities.Sevrage, error) {
	return s.r.ListSevrages(projetID)
}

// resoudreRef accepts either an animal id or a human code.
func (s *gestationSvc) resoudreRef(projetID uint, ref string) (*entities.Animal, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		a, err := s.animaux.FindByID(uint(id))
		if err == nil && a.ProjetID == projetID {
			return a, nil
		}
	}
	a, err := s.animaux.FindByCode(projetID, ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("animal", ref)
	}
	return a, err
}
