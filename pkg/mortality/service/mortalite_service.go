package service

import "ferme/entities"

type MortaliteService interface {
	// Enregistrer validates the event against the currently-active animals
	// of the category, persists it, then transitions the affected animals
	// to statut mort. The event is written before any transition.
	Enregistrer(m *entities.Mortalite) (*entities.Mortalite, error)
	ListByProjet(projetID uint) ([]entities.Mortalite, error)
}
