package repositoryImp

import (
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/mortality/repository"
)

type mortaliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MortaliteRepository { return &mortaliteRepo{db} }

func (r *mortaliteRepo) Create(m *entities.Mortalite) error { return r.db.Create(m).Error }

func (r *mortaliteRepo) ListByProjet(projetID uint) ([]entities.Mortalite, error) {
	var out []entities.Mortalite
	err := r.db.Where("projet_id = ?", projetID).Order("date desc").Find(&out).Error
	return out, err
}
