package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/animal/repository"
)

type animalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AnimalRepository { return &animalRepo{db} }

func (r *animalRepo) Create(a *entities.Animal) error { return r.db.Create(a).Error }

func (r *animalRepo) Update(a *entities.Animal) error { return r.db.Save(a).Error }

func (r *animalRepo) FindByID(id uint) (*entities.Animal, error) {
	var a entities.Animal
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepo) FindByCode(projetID uint, code string) (*entities.Animal, error) {
	var a entities.Animal
	if err := r.db.Where("projet_id = ? AND code = ?", projetID, code).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepo) ListByProjet(projetID uint, actifsOnly bool) ([]entities.Animal, error) {
	q := r.db.Where("projet_id = ?", projetID)
	if actifsOnly {
		q = q.Where("statut = ?", entities.StatutActif)
	}
	var out []entities.Animal
	return out, q.Order("code asc").Find(&out).Error
}

func (r *animalRepo) ListActifsParCategorie(projetID uint, categorie string) ([]entities.Animal, error) {
	q := r.db.Where("projet_id = ? AND statut = ?", projetID, entities.StatutActif)
	switch categorie {
	case entities.CategorieTruie:
		q = q.Where("sexe = ? AND reproducteur = ?", entities.SexeFemelle, true)
	case entities.CategorieVerrat:
		q = q.Where("sexe = ? AND reproducteur = ?", entities.SexeMale, true)
	case entities.CategoriePorcelet:
		q = q.Where("(reproducteur = ? AND sexe IN ?) OR sexe = ?",
			false, []string{entities.SexeMale, entities.SexeFemelle}, entities.SexeIndetermine)
	case entities.CategorieAutre:
		// any active animal
	}
	var out []entities.Animal
	return out, q.Order("code asc").Find(&out).Error
}

func (r *animalRepo) ListPortee(mereID uint, dateNaissance time.Time) ([]entities.Animal, error) {
	day := dateNaissance.Truncate(24 * time.Hour)
	var out []entities.Animal
	err := r.db.Where("mere_id = ? AND reproducteur = ? AND date_naissance >= ? AND date_naissance < ?",
		mereID, false, day, day.Add(24*time.Hour)).
		Order("code asc").Find(&out).Error
	return out, err
}

func (r *animalRepo) Codes(projetID uint) ([]string, error) {
	var codes []string
	err := r.db.Model(&entities.Animal{}).Where("projet_id = ?", projetID).Pluck("code", &codes).Error
	return codes, err
}

func (r *animalRepo) Noms(projetID uint) ([]string, error) {
	var noms []string
	err := r.db.Model(&entities.Animal{}).Where("projet_id = ?", projetID).Pluck("nom", &noms).Error
	return noms, err
}
