package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ferme/entities"
	animalRepoImp "ferme/pkg/animal/repositoryImp"
	"ferme/pkg/animal/service"
	"ferme/pkg/faults"
)

func newSvc(t *testing.T) (service.AnimalService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Animal{}))
	return NewAnimalService(animalRepoImp.New(db)), db
}

func TestCreerDefauts(t *testing.T) {
	s, _ := newSvc(t)

	a, err := s.Creer(&entities.Animal{ProjetID: 1, Code: "T001"})
	require.NoError(t, err)
	require.Equal(t, entities.SexeIndetermine, a.Sexe)
	require.Equal(t, entities.StatutActif, a.Statut)
	require.True(t, a.Actif)
}

func TestCreerValidation(t *testing.T) {
	s, _ := newSvc(t)
	var verr *faults.ValidationError

	_, err := s.Creer(&entities.Animal{Code: "T001"})
	require.ErrorAs(t, err, &verr)

	_, err = s.Creer(&entities.Animal{ProjetID: 1})
	require.ErrorAs(t, err, &verr)

	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", Sexe: "hermaphrodite"})
	require.ErrorAs(t, err, &verr)

	poids := -3.0
	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", PoidsInitial: &poids})
	require.ErrorAs(t, err, &verr)
}

func TestCreerCodeDejaUtilise(t *testing.T) {
	s, _ := newSvc(t)

	_, err := s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", Sexe: entities.SexeFemelle})
	require.NoError(t, err)

	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", Sexe: entities.SexeFemelle})
	var verr *faults.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, err.Error(), "T001")

	// same code in another project is fine
	_, err = s.Creer(&entities.Animal{ProjetID: 2, Code: "T001", Sexe: entities.SexeFemelle})
	require.NoError(t, err)
}

func TestModifierStatutMiroiteActif(t *testing.T) {
	s, _ := newSvc(t)
	a, err := s.Creer(&entities.Animal{ProjetID: 1, Code: "T001"})
	require.NoError(t, err)

	vendu := entities.StatutVendu
	maj, err := s.Modifier(a.AnimalID, service.AnimalPatch{Statut: &vendu})
	require.NoError(t, err)
	require.Equal(t, entities.StatutVendu, maj.Statut)
	require.False(t, maj.Actif)

	rel, err := s.Get(a.AnimalID)
	require.NoError(t, err)
	require.False(t, rel.Actif) // AfterFind recomputes the derived flag

	mauvais := "congele"
	_, err = s.Modifier(a.AnimalID, service.AnimalPatch{Statut: &mauvais})
	var verr *faults.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetInconnu(t *testing.T) {
	s, _ := newSvc(t)
	_, err := s.Get(999)
	var nf *faults.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestActifsParCategorie(t *testing.T) {
	s, _ := newSvc(t)

	truie, err := s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", Sexe: entities.SexeFemelle, Reproducteur: true})
	require.NoError(t, err)
	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "V001", Sexe: entities.SexeMale, Reproducteur: true})
	require.NoError(t, err)
	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "P001", Sexe: entities.SexeIndetermine})
	require.NoError(t, err)
	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "P002", Sexe: entities.SexeMale})
	require.NoError(t, err)

	truies, err := s.ActifsParCategorie(1, entities.CategorieTruie)
	require.NoError(t, err)
	require.Len(t, truies, 1)
	require.Equal(t, "T001", truies[0].Code)

	verrats, err := s.ActifsParCategorie(1, entities.CategorieVerrat)
	require.NoError(t, err)
	require.Len(t, verrats, 1)

	porcelets, err := s.ActifsParCategorie(1, entities.CategoriePorcelet)
	require.NoError(t, err)
	require.Len(t, porcelets, 2)
	require.Equal(t, "P001", porcelets[0].Code) // code asc

	tous, err := s.ActifsParCategorie(1, entities.CategorieAutre)
	require.NoError(t, err)
	require.Len(t, tous, 4)

	// a dead sow leaves every category
	mort := entities.StatutMort
	_, err = s.Modifier(truie.AnimalID, service.AnimalPatch{Statut: &mort})
	require.NoError(t, err)
	truies, err = s.ActifsParCategorie(1, entities.CategorieTruie)
	require.NoError(t, err)
	require.Empty(t, truies)
}

func TestListByProjetActifsOnly(t *testing.T) {
	s, _ := newSvc(t)

	a, err := s.Creer(&entities.Animal{ProjetID: 1, Code: "T001", Sexe: entities.SexeFemelle})
	require.NoError(t, err)
	_, err = s.Creer(&entities.Animal{ProjetID: 1, Code: "T002", Sexe: entities.SexeFemelle})
	require.NoError(t, err)

	vendu := entities.StatutVendu
	_, err = s.Modifier(a.AnimalID, service.AnimalPatch{Statut: &vendu})
	require.NoError(t, err)

	tous, err := s.ListByProjet(1, false)
	require.NoError(t, err)
	require.Len(t, tous, 2)

	actifs, err := s.ListByProjet(1, true)
	require.NoError(t, err)
	require.Len(t, actifs, 1)
	require.Equal(t, "T002", actifs[0].Code)
}
