package repository

import "ferme/entities"

type PeseeRepository interface {
	Create(p *entities.Pesee) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Pesee, error)
	ListByAnimal(animalID uint) ([]entities.Pesee, error)
	// SaveSerie rewrites a whole recomputed series in one transaction.
	SaveSerie(ps []entities.Pesee) error
}
