package entities

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatutActif = "actif"
	StatutVendu = "vendu"
	StatutMort  = "mort"

	SexeMale        = "male"
	SexeFemelle     = "femelle"
	SexeIndetermine = "indetermine"

	OrigineAchat     = "achat"
	OrigineNaissance = "naissance"
)

type Animal struct {
	AnimalID      uint       `gorm:"primaryKey" json:"animal_id"`
	ProjetID      uint       `gorm:"index" json:"projet_id"`
	Code          string     `gorm:"index" json:"code"`
	Nom           string     `json:"nom"`
	Sexe          string     `json:"sexe"` // male|femelle|indetermine
	Race          string     `json:"race"`
	DateNaissance *time.Time `json:"date_naissance"`
	DateEntree    *time.Time `json:"date_entree"`
	PoidsInitial  *float64   `json:"poids_initial"` // kg
	Reproducteur  bool       `json:"reproducteur"`
	PereID        *uint      `json:"pere_id"`
	MereID        *uint      `json:"mere_id"`
	Statut        string     `gorm:"index" json:"statut"` // actif|vendu|mort
	Origine       string     `json:"origine"`             // achat|naissance
	Notes         string     `json:"notes"`

	// mirror of statut == actif; not a column, so the two cannot drift
	Actif bool `gorm:"-" json:"actif"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Animal) TableName() string { return "production_animaux" }

func (a *Animal) AfterFind(*gorm.DB) error {
	a.Actif = a.Statut == StatutActif
	return nil
}

// SetStatut is the single write path for lifecycle state.
func (a *Animal) SetStatut(statut string) {
	a.Statut = statut
	a.Actif = statut == StatutActif
}
