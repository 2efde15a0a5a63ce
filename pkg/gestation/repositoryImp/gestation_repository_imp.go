package repositoryImp

import (
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/gestation/repository"
)

type gestationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GestationRepository { return &gestationRepo{db} }

func (r *gestationRepo) Create(g *entities.Gestation) error { return r.db.Create(g).Error }

func (r *gestationRepo) Update(g *entities.Gestation) error { return r.db.Save(g).Error }

func (r *gestationRepo) FindByID(id uint) (*entities.Gestation, error) {
	var g entities.Gestation
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *gestationRepo) ListByProjet(projetID uint) ([]entities.Gestation, error) {
	var out []entities.Gestation
	err := r.db.Where("projet_id = ?", projetID).Order("date_saillie desc").Find(&out).Error
	return out, err
}

func (r *gestationRepo) CreateSevrage(s *entities.Sevrage) error { return r.db.Create(s).Error }

func (r *gestationRepo) ListSevrages(projetID uint) ([]entities.Sevrage, error) {
	var out []entities.Sevrage
	err := r.db.Where("projet_id = ?", projetID).Order("date desc").Find(&out).Error
	return out, err
}
