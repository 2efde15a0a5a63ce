package entities

import "time"

type Projet struct {
	ProjetID     uint   `gorm:"primaryKey" json:"projet_id"`
	UserID       string `json:"user_id" gorm:"index"`
	Nom          string `json:"nom"`
	Localisation string `json:"localisation"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
