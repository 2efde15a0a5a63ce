package repositoryImp

import (
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/projet/repository"
)

type projetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProjetRepository { return &projetRepo{db} }

func (r *projetRepo) Create(p *entities.Projet) error { return r.db.Create(p).Error }

func (r *projetRepo) FindByID(id uint, uid string) (*entities.Projet, error) {
	var p entities.Projet
	if err := r.db.Where("projet_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
