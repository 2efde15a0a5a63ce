package repositoryImp

import (
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/growth/repository"
)

type peseeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PeseeRepository { return &peseeRepo{db} }

func (r *peseeRepo) Create(p *entities.Pesee) error { return r.db.Create(p).Error }

func (r *peseeRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Pesee{}, id).Error
}

func (r *peseeRepo) FindByID(id uint) (*entities.Pesee, error) {
	var p entities.Pesee
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *peseeRepo) ListByAnimal(animalID uint) ([]entities.Pesee, error) {
	var out []entities.Pesee
	err := r.db.Where("animal_id = ?", animalID).Order("date asc, pesee_id asc").Find(&out).Error
	return out, err
}

func (r *peseeRepo) SaveSerie(ps []entities.Pesee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range ps {
			if err := tx.Save(&ps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
