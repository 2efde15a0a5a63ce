package serviceImp

import (
	"fmt"

	"go.uber.org/zap"

	"ferme/entities"
)

// materialiserPortee turns a completed gestation into animal rows, once.
// Idempotence is inferred by shape: a non-breeding litter of the same mother
// born on date_reelle already existing means the litter was materialized.
func (s *gestationSvc) materialiserPortee(g *entities.Gestation) ([]entities.Animal, error) {
	if g.NombrePorceletsReel == nil || *g.NombrePorceletsReel <= 0 {
		return nil, nil
	}
	nb := *g.NombrePorceletsReel

	mere, err := s.resoudreRef(g.ProjetID, g.Truie)
	if err != nil {
		return nil, err
	}
	var pere *entities.Animal
	if g.Verrat != nil && *g.Verrat != "" {
		if p, err := s.resoudreRef(g.ProjetID, *g.Verrat); err == nil {
			pere = p
		} else {
			s.log.Warn("verrat introuvable, porcelets sans pere",
				zap.Uint("gestation_id", g.GestationID), zap.String("verrat", *g.Verrat))
		}
	}

	existants, err := s.animaux.ListPortee(mere.AnimalID, *g.DateReelle)
	if err != nil {
		return nil, err
	}
	if len(existants) > 0 {
		s.log.Info("portee deja materialisee",
			zap.Uint("gestation_id", g.GestationID), zap.Int("porcelets", len(existants)))
		return existants, nil
	}

	codes, err := s.prochainsCodes(g.ProjetID, nb)
	if err != nil {
		return nil, err
	}
	nomsExistants, err := s.animaux.Noms(g.ProjetID)
	if err != nil {
		return nil, err
	}
	noms := choisirNoms(nomsExistants, codes)

	notes := fmt.Sprintf("Ne de %s", mere.Code)
	if pere != nil {
		notes += " x " + pere.Code
	}

	crees := make([]entities.Animal, 0, nb)
	for i := 0; i < nb; i++ {
		date := *g.DateReelle
		a := entities.Animal{
			ProjetID:      g.ProjetID,
			Code:          codes[i],
			Nom:           noms[i],
			Sexe:          entities.SexeIndetermine,
			Race:          mere.Race,
			DateNaissance: &date,
			DateEntree:    &date,
			Reproducteur:  false,
			MereID:        &mere.AnimalID,
			Origine:       entities.OrigineNaissance,
			Notes:         notes,
		}
		if pere != nil {
			a.PereID = &pere.AnimalID
		}
		a.SetStatut(entities.StatutActif)
		if err := s.animaux.Create(&a); err != nil {
			// best effort: skip the failed one, keep the rest of the litter
			s.log.Warn("creation porcelet echouee",
				zap.Uint("gestation_id", g.GestationID), zap.String("code", a.Code), zap.Error(err))
			continue
		}
		crees = append(crees, a)
	}
	if len(crees) < nb {
		s.log.Warn("portee incomplete",
			zap.Uint("gestation_id", g.GestationID), zap.Int("demandes", nb), zap.Int("crees", len(crees)))
	}
	return crees, nil
}

// prochainsCodes hands out nb fresh sequential codes under the P prefix,
// collision-checked against existing codes and within the batch.
func (s *gestationSvc) prochainsCodes(projetID uint, nb int) ([]string, error) {
	codes, err := s.animaux.Codes(projetID)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(codes))
	next := 1
	for _, c := range codes {
		used[c] = true
		if v, ok := numeroCode(c); ok && v+1 > next {
			next = v + 1
		}
	}
	out := make([]string, 0, nb)
	for len(out) < nb {
		code := fmt.Sprintf("P%03d", next)
		next++
		if used[code] {
			continue
		}
		used[code] = true
		out = append(out, code)
	}
	return out, nil
}

func numeroCode(code string) (int, bool) {
	if len(code) < 2 || code[0] != 'P' {
		return 0, false
	}
	n := 0
	for _, r := range code[1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
