package entities

import "time"

type Pesee struct {
	PeseeID  uint      `gorm:"primaryKey" json:"pesee_id"`
	AnimalID uint      `gorm:"index" json:"animal_id"`
	Date     time.Time `json:"date"`
	Poids    float64   `json:"poids"` // kg
	// GMQ in g/day since the previous weighing (or the animal's baseline);
	// nil when fewer than two points or elapsed days <= 0.
	GMQ       *float64 `json:"gmq"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pesee) TableName() string { return "production_pesees" }
