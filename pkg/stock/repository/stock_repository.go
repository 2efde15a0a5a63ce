package repository

import "ferme/entities"

type StockRepository interface {
	CreateItem(s *entities.StockAliment) error
	FindItem(id uint) (*entities.StockAliment, error)
	ListByProjet(projetID uint) ([]entities.StockAliment, error)
	ListAlertes(projetID uint) ([]entities.StockAliment, error)
	// ApplyMovement persists the mutated item and appends its movement row
	// in one transaction so the cache and the ledger cannot drift.
	ApplyMovement(item *entities.StockAliment, mv *entities.StockMouvement) error
	Mouvements(stockID uint) ([]entities.StockMouvement, error)
}
