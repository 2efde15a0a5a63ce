package entities

import "time"

type Sevrage struct {
	SevrageID    uint      `gorm:"primaryKey" json:"sevrage_id"`
	ProjetID     uint      `gorm:"index" json:"projet_id"`
	GestationID  *uint     `gorm:"index" json:"gestation_id"`
	Date         time.Time `json:"date"`
	NombreSevres int       `json:"nombre_sevres"`
	PoidsMoyen   *float64  `json:"poids_moyen"` // kg
	Notes        string    `json:"notes"`
	CreatedAt    time.Time
}

func (Sevrage) TableName() string { return "sevrages" }
