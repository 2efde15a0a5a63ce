package service

import (
	"time"

	"github.com/xuri/excelize/v2"

	"ferme/entities"
)

// StockService maintains the quantity cache, the alert flag and the
// append-only movement ledger of each stock item.
type StockService interface {
	Creer(s *entities.StockAliment) (*entities.StockAliment, error)
	Get(id uint) (*entities.StockAliment, error)
	ListByProjet(projetID uint) ([]entities.StockAliment, error)
	ListAlertes(projetID uint) ([]entities.StockAliment, error)
	Entree(stockID uint, qte float64, note string) (*entities.StockAliment, error)
	Sortie(stockID uint, qte float64, note string) (*entities.StockAliment, error)
	Ajustement(stockID uint, nouvelleQte float64, note string, date *time.Time) (*entities.StockAliment, error)
	Mouvements(stockID uint) ([]entities.StockMouvement, error)
	ExportMouvements(stockID uint) (*excelize.File, error)
}
