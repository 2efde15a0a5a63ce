package entities

import "time"

const (
	GestationEnCours  = "en_cours"
	GestationTerminee = "terminee"
	GestationAnnulee  = "annulee"

	// fixed pig gestation length used to derive date_prevue
	DureeGestationJours = 114
)

type Gestation struct {
	GestationID uint `gorm:"primaryKey" json:"gestation_id"`
	ProjetID    uint `gorm:"index" json:"projet_id"`
	// Truie/Verrat hold either an animal id or a human code; both forms
	// are resolved against the project herd.
	Truie                 string     `json:"truie"`
	Verrat                *string    `json:"verrat"`
	DateSaillie           time.Time  `json:"date_saillie"`
	DatePrevue            time.Time  `json:"date_prevue"` // saillie + 114 jours
	DateReelle            *time.Time `json:"date_reelle"`
	Statut                string     `gorm:"index" json:"statut"` // en_cours|terminee|annulee
	NombrePorceletsPrevu  *int       `json:"nombre_porcelets_prevu"`
	NombrePorceletsReel   *int       `json:"nombre_porcelets_reel"`
	Notes                 string     `json:"notes"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Gestation) TableName() string { return "gestations" }

func (g *Gestation) Terminale() bool {
	return g.Statut == GestationTerminee || g.Statut == GestationAnnulee
}
