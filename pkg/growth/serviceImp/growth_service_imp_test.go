package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ferme/entities"
	animalRepoImp "ferme/pkg/animal/repositoryImp"
	"ferme/pkg/faults"
	growthRepoImp "ferme/pkg/growth/repositoryImp"
	"ferme/pkg/growth/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Animal{}, &entities.Pesee{}))
	return db
}

func newSvc(t *testing.T) (service.GrowthService, *gorm.DB) {
	db := newTestDB(t)
	return NewGrowthService(growthRepoImp.New(db), animalRepoImp.New(db)), db
}

func creerAnimal(t *testing.T, db *gorm.DB, a *entities.Animal) *entities.Animal {
	t.Helper()
	if a.Statut == "" {
		a.SetStatut(entities.StatutActif)
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func jour(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEnregistrerCalculeGMQ(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	p1, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 1), 10)
	require.NoError(t, err)
	require.Nil(t, p1.GMQ) // single point, no baseline

	p2, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 11), 15)
	require.NoError(t, err)
	require.NotNil(t, p2.GMQ)
	require.Equal(t, 500.0, *p2.GMQ) // (15-10)*1000/10
}

func TestEnregistrerDepuisPoidsInitial(t *testing.T) {
	s, db := newSvc(t)
	entree := jour(2024, 1, 1)
	poids := 8.0
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001", PoidsInitial: &poids, DateEntree: &entree})

	p, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 11), 10)
	require.NoError(t, err)
	require.NotNil(t, p.GMQ)
	require.Equal(t, 200.0, *p.GMQ) // (10-8)*1000/10
}

func TestGMQNulQuandMemeJour(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, jour(2024, 3, 5), 20)
	require.NoError(t, err)
	p2, err := s.Enregistrer(a.AnimalID, jour(2024, 3, 5), 21)
	require.NoError(t, err)
	require.Nil(t, p2.GMQ)
}

func TestPoidsInvalideRejete(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 1), 0)
	var verr *faults.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = s.Enregistrer(a.AnimalID, jour(2024, 1, 1), -4)
	require.ErrorAs(t, err, &verr)
}

func TestInsertionDesordonneeRecalculeLaSerie(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 1), 10)
	require.NoError(t, err)
	_, err = s.Enregistrer(a.AnimalID, jour(2024, 1, 21), 20)
	require.NoError(t, err)

	// back-dated entry lands between the two: every later pair changes
	_, err = s.Enregistrer(a.AnimalID, jour(2024, 1, 11), 16)
	require.NoError(t, err)

	serie, err := s.ListByAnimal(a.AnimalID)
	require.NoError(t, err)
	require.Len(t, serie, 3)
	require.Nil(t, serie[0].GMQ)
	require.Equal(t, 600.0, *serie[1].GMQ) // (16-10)*1000/10
	require.Equal(t, 400.0, *serie[2].GMQ) // (20-16)*1000/10
}

func TestSupprimerRecalcule(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 1), 10)
	require.NoError(t, err)
	milieu, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 11), 16)
	require.NoError(t, err)
	_, err = s.Enregistrer(a.AnimalID, jour(2024, 1, 21), 20)
	require.NoError(t, err)

	require.NoError(t, s.Supprimer(milieu.PeseeID))

	serie, err := s.ListByAnimal(a.AnimalID)
	require.NoError(t, err)
	require.Len(t, serie, 2)
	require.Equal(t, 500.0, *serie[1].GMQ) // (20-10)*1000/20
}

func TestModifierPoidsRecalcule(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 1), 10)
	require.NoError(t, err)
	p2, err := s.Enregistrer(a.AnimalID, jour(2024, 1, 11), 15)
	require.NoError(t, err)

	nouveau := 12.0
	maj, err := s.Modifier(p2.PeseeID, service.PeseePatch{Poids: &nouveau})
	require.NoError(t, err)
	require.Equal(t, 200.0, *maj.GMQ) // (12-10)*1000/10
}

func TestPoidsEstimeRecent(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, time.Now().AddDate(0, 0, -2), 42.5)
	require.NoError(t, err)

	poids, err := s.PoidsEstime(a.AnimalID)
	require.NoError(t, err)
	require.Equal(t, 42.5, poids)
}

func TestPoidsEstimeExtrapole(t *testing.T) {
	s, db := newSvc(t)
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001"})

	_, err := s.Enregistrer(a.AnimalID, time.Now().AddDate(0, 0, -30), 40)
	require.NoError(t, err)
	_, err = s.Enregistrer(a.AnimalID, time.Now().AddDate(0, 0, -20), 50)
	require.NoError(t, err)

	// gmq = 1000 g/j, 20 jours d'ecart -> 50 + 20 = 70
	poids, err := s.PoidsEstime(a.AnimalID)
	require.NoError(t, err)
	require.Equal(t, 70.0, poids)
}

func TestPoidsEstimeSansPesee(t *testing.T) {
	s, db := newSvc(t)
	init := 12.0
	a := creerAnimal(t, db, &entities.Animal{ProjetID: 1, Code: "A001", PoidsInitial: &init})

	poids, err := s.PoidsEstime(a.AnimalID)
	require.NoError(t, err)
	require.Equal(t, 12.0, poids)
}
