package serviceImp

import (
	"errors"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ferme/entities"
	animalrepo "ferme/pkg/animal/repository"
	"ferme/pkg/faults"
	"ferme/pkg/growth/repository"
	"ferme/pkg/growth/service"
)

type growthSvc struct {
	pesees  repository.PeseeRepository
	animaux animalrepo.AnimalRepository
}

func NewGrowthService(p repository.PeseeRepository, a animalrepo.AnimalRepository) service.GrowthService {
	return &growthSvc{pesees: p, animaux: a}
}

func (s *growthSvc) Enregistrer(animalID uint, date time.Time, poids float64) (*entities.Pesee, error) {
	if poids <= 0 {
		return nil, faults.Validation("poids doit etre > 0")
	}
	if _, err := s.findAnimal(animalID); err != nil {
		return nil, err
	}
	p := &entities.Pesee{AnimalID: animalID, Date: date, Poids: poids}
	if err := s.pesees.Create(p); err != nil {
		return nil, err
	}
	if err := s.RecalculerSerie(animalID); err != nil {
		return nil, err
	}
	// reload: the recompute may have filled gmq on this entry
	return s.pesees.FindByID(p.PeseeID)
}

func (s *growthSvc) Modifier(peseeID uint, patch service.PeseePatch) (*entities.Pesee, error) {
	cur, err := s.pesees.FindByID(peseeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("pesee", strconv.Itoa(int(peseeID)))
	} else if err != nil {
		return nil, err
	}
	if patch.Poids != nil {
		if *patch.Poids <= 0 {
			return nil, faults.Validation("poids doit etre > 0")
		}
		cur.Poids = *patch.Poids
	}
	if patch.Date != nil {
		cur.Date = *patch.Date
	}
	if err := s.pesees.SaveSerie([]entities.Pesee{*cur}); err != nil {
		return nil, err
	}
	if err := s.RecalculerSerie(cur.AnimalID); err != nil {
		return nil, err
	}
	return s.pesees.FindByID(peseeID)
}

func (s *growthSvc) Supprimer(peseeID uint) error {
	cur, err := s.pesees.FindByID(peseeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return faults.NotFound("pesee", strconv.Itoa(int(peseeID)))
	} else if err != nil {
		return err
	}
	if err := s.pesees.Delete(peseeID); err != nil {
		return err
	}
	return s.RecalculerSerie(cur.AnimalID)
}

// RecalculerSerie reloads every weighing of the animal ordered by date and
// rewrites the whole GMQ series. A full cascade, not an incremental patch:
// an out-of-order insertion changes the neighbour of every later entry.
func (s *growthSvc) RecalculerSerie(animalID uint) error {
	a, err := s.findAnimal(animalID)
	if err != nil {
		return err
	}
	serie, err := s.pesees.ListByAnimal(animalID)
	if err != nil {
		return err
	}
	var prevPoids *float64
	var prevDate time.Time
	if a.PoidsInitial != nil && a.DateEntree != nil {
		prevPoids = a.PoidsInitial
		prevDate = *a.DateEntree
	}
	for i := range serie {
		if prevPoids == nil {
			serie[i].GMQ = nil
		} else {
			serie[i].GMQ = gmq(*prevPoids, serie[i].Poids, prevDate, serie[i].Date)
		}
		prevPoids = &serie[i].Poids
		prevDate = serie[i].Date
	}
	return s.pesees.SaveSerie(serie)
}

func (s *growthSvc) ListByAnimal(animalID uint) ([]entities.Pesee, error) {
	return s.pesees.ListByAnimal(animalID)
}

func (s *growthSvc) PoidsEstime(animalID uint) (float64, error) {
	a, err := s.findAnimal(animalID)
	if err != nil {
		return 0, err
	}
	serie, err := s.pesees.ListByAnimal(animalID)
	if err != nil {
		return 0, err
	}
	if len(serie) == 0 {
		if a.PoidsInitial != nil {
			return *a.PoidsInitial, nil
		}
		return 0, faults.NotFound("pesee", "animal "+strconv.Itoa(int(animalID)))
	}
	last := serie[len(serie)-1]
	jours := joursEntre(last.Date, time.Now())
	if jours <= 7 || last.GMQ == nil {
		return last.Poids, nil
	}
	est := last.Poids + *last.GMQ*float64(jours)/1000
	return math.Round(est*10) / 10, nil
}

func (s *growthSvc) findAnimal(id uint) (*entities.Animal, error) {
	a, err := s.animaux.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("animal", strconv.Itoa(int(id)))
	}
	return a, err
}

// gmq returns grams gained per day between two weighings, nil when the
// elapsed days are <= 0 (same-day or back-dated entry).
func gmq(prevPoids, curPoids float64, prevDate, curDate time.Time) *float64 {
	jours := joursEntre(prevDate, curDate)
	if jours <= 0 {
		return nil
	}
	g := math.Round((curPoids - prevPoids) * 1000 / float64(jours))
	return &g
}

func joursEntre(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
