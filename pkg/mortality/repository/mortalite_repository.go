package repository

import "ferme/entities"

type MortaliteRepository interface {
	Create(m *entities.Mortalite) error
	ListByProjet(projetID uint) ([]entities.Mortalite, error)
}
