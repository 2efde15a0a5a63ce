package entities

import "time"

const (
	MouvementEntree     = "entree"
	MouvementSortie     = "sortie"
	MouvementAjustement = "ajustement"
)

type StockAliment struct {
	StockID          uint     `gorm:"primaryKey" json:"stock_id"`
	ProjetID         uint     `gorm:"index" json:"projet_id"`
	Nom              string   `json:"nom"`
	Unite            string   `json:"unite"` // kg|sac|litre
	QuantiteActuelle float64  `json:"quantite_actuelle"`
	SeuilAlerte      *float64 `json:"seuil_alerte"`
	// stored so "items in alert" is a flag filter; recomputed on every mutation
	AlerteActive bool `gorm:"index" json:"alerte_active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StockAliment) TableName() string { return "stocks_aliments" }

// StockMouvement is append-only; the item quantity is a materialized cache
// of the ledger's net effect.
type StockMouvement struct {
	MouvementID uint      `gorm:"primaryKey" json:"mouvement_id"`
	StockID     uint      `gorm:"index" json:"stock_id"`
	Type        string    `json:"type"` // entree|sortie|ajustement
	Quantite    float64   `json:"quantite"`
	Unite       string    `json:"unite"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note"`
	CreatedAt   time.Time
}

func (StockMouvement) TableName() string { return "stocks_mouvements" }
