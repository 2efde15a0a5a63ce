package service

import "ferme/entities"

type AnimalPatch struct {
	Nom          *string `json:"nom"`
	Race         *string `json:"race"`
	Sexe         *string `json:"sexe"`
	Reproducteur *bool   `json:"reproducteur"`
	Statut       *string `json:"statut"`
	Notes        *string `json:"notes"`
}

type AnimalService interface {
	Creer(a *entities.Animal) (*entities.Animal, error)
	Get(id uint) (*entities.Animal, error)
	Modifier(id uint, p AnimalPatch) (*entities.Animal, error)
	ListByProjet(projetID uint, actifsOnly bool) ([]entities.Animal, error)
	ActifsParCategorie(projetID uint, categorie string) ([]entities.Animal, error)
}
