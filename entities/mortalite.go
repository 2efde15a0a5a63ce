package entities

import "time"

const (
	CategorieTruie    = "truie"    // femelle reproductrice
	CategorieVerrat   = "verrat"   // male reproducteur
	CategoriePorcelet = "porcelet" // jeunes / non-reproducteurs
	CategorieAutre    = "autre"
)

type Mortalite struct {
	MortaliteID uint      `gorm:"primaryKey" json:"mortalite_id"`
	ProjetID    uint      `gorm:"index" json:"projet_id"`
	Date        time.Time `json:"date"`
	Nombre      int       `json:"nombre"`
	Categorie   string    `json:"categorie"` // truie|verrat|porcelet|autre
	Cause       string    `json:"cause"`
	AnimalCode  *string   `json:"animal_code"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time
}

func (Mortalite) TableName() string { return "mortalites" }
