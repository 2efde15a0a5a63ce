package repository

import "ferme/entities"

type GestationRepository interface {
	Create(g *entities.Gestation) error
	Update(g *entities.Gestation) error
	FindByID(id uint) (*entities.Gestation, error)
	ListByProjet(projetID uint) ([]entities.Gestation, error)

	CreateSevrage(s *entities.Sevrage) error
	ListSevrages(projetID uint) ([]entities.Sevrage, error)
}
