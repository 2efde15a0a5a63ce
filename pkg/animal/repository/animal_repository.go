package repository

import (
	"time"

	"ferme/entities"
)

type AnimalRepository interface {
	Create(a *entities.Animal) error
	Update(a *entities.Animal) error
	FindByID(id uint) (*entities.Animal, error)
	FindByCode(projetID uint, code string) (*entities.Animal, error)
	ListByProjet(projetID uint, actifsOnly bool) ([]entities.Animal, error)
	// ListActifsParCategorie returns active animals matching a mortality
	// category, ordered by code for deterministic selection.
	ListActifsParCategorie(projetID uint, categorie string) ([]entities.Animal, error)
	// ListPortee returns the non-breeding offspring of a mother born on a
	// given day (the materializer's idempotence lookup).
	ListPortee(mereID uint, dateNaissance time.Time) ([]entities.Animal, error)
	Codes(projetID uint) ([]string, error)
	Noms(projetID uint) ([]string, error)
}
