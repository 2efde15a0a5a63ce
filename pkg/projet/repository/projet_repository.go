package repository

import "ferme/entities"

type ProjetRepository interface {
	Create(p *entities.Projet) error
	FindByID(id uint, uid string) (*entities.Projet, error)
}
