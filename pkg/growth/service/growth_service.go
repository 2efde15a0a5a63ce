package service

import (
	"time"

	"ferme/entities"
)

type PeseePatch struct {
	Date  *time.Time
	Poids *float64
}

// GrowthService keeps the GMQ (gain moyen quotidien, g/day) series of an
// animal consistent across inserts, edits and deletes.
type GrowthService interface {
	Enregistrer(animalID uint, date time.Time, poids float64) (*entities.Pesee, error)
	Modifier(peseeID uint, p PeseePatch) (*entities.Pesee, error)
	Supprimer(peseeID uint) error
	RecalculerSerie(animalID uint) error
	ListByAnimal(animalID uint) ([]entities.Pesee, error)
	// PoidsEstime extrapolates the current weight from the latest weighing
	// and its GMQ when the last record is older than a week.
	PoidsEstime(animalID uint) (float64, error)
}
