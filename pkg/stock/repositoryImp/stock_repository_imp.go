package repositoryImp

import (
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/stock/repository"
)

type stockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StockRepository { return &stockRepo{db} }

func (r *stockRepo) CreateItem(s *entities.StockAliment) error { return r.db.Create(s).Error }

func (r *stockRepo) FindItem(id uint) (*entities.StockAliment, error) {
	var s entities.StockAliment
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stockRepo) ListByProjet(projetID uint) ([]entities.StockAliment, error) {
	var out []entities.StockAliment
	return out, r.db.Where("projet_id = ?", projetID).Order("nom asc").Find(&out).Error
}

func (r *stockRepo) ListAlertes(projetID uint) ([]entities.StockAliment, error) {
	var out []entities.StockAliment
	return out, r.db.Where("projet_id = ? AND alerte_active = ?", projetID, true).Order("nom asc").Find(&out).Error
}

func (r *stockRepo) ApplyMovement(item *entities.StockAliment, mv *entities.StockMouvement) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return tx.Create(mv).Error
	})
}

func (r *stockRepo) Mouvements(stockID uint) ([]entities.StockMouvement, error) {
	var out []entities.StockMouvement
	err := r.db.Where("stock_id = ?", stockID).Order("date asc, mouvement_id asc").Find(&out).Error
	return out, err
}
