package serviceImp

import (
	"errors"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ferme/entities"
	"ferme/pkg/faults"
	"ferme/pkg/stock/repository"
	"ferme/pkg/stock/service"
)

type stockSvc struct {
	r   repository.StockRepository
	log *zap.Logger
}

func NewStockService(r repository.StockRepository, log *zap.Logger) service.StockService {
	if log == nil {
		log = zap.NewNop()
	}
	return &stockSvc{r: r, log: log}
}

func (s *stockSvc) Creer(item *entities.StockAliment) (*entities.StockAliment, error) {
	if item.ProjetID == 0 {
		return nil, faults.Validation("projet_id requis")
	}
	if item.Nom == "" {
		return nil, faults.Validation("nom requis")
	}
	if item.QuantiteActuelle < 0 {
		return nil, faults.Validation("quantite_actuelle doit etre >= 0")
	}
	if item.Unite == "" {
		item.Unite = "kg"
	}
	item.AlerteActive = alerteActive(item)
	if err := s.r.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockSvc) Get(id uint) (*entities.StockAliment, error) {
	item, err := s.r.FindItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, faults.NotFound("stock", strconv.Itoa(int(id)))
	}
	return item, err
}

func (s *stockSvc) ListByProjet(projetID uint) ([]entities.StockAliment, error) {
	return s.r.ListByProjet(projetID)
}

func (s *stockSvc) ListAlertes(projetID uint) ([]entities.StockAliment, error) {
	return s.r.ListAlertes(projetID)
}

func (s *stockSvc) Entree(stockID uint, qte float64, note string) (*entities.StockAliment, error) {
	if qte <= 0 {
		return nil, faults.Validation("quantite doit etre > 0")
	}
	return s.muter(stockID, entities.MouvementEntree, qte, note, nil, func(item *entities.StockAliment) (float64, error) {
		return item.QuantiteActuelle + qte, nil
	})
}

func (s *stockSvc) Sortie(stockID uint, qte float64, note string) (*entities.StockAliment, error) {
	if qte <= 0 {
		return nil, faults.Validation("quantite doit etre > 0")
	}
	return s.muter(stockID, entities.MouvementSortie, qte, note, nil, func(item *entities.StockAliment) (float64, error) {
		if qte > item.QuantiteActuelle {
			return 0, faults.Capacity("stock "+item.Nom, qte, item.QuantiteActuelle)
		}
		return item.QuantiteActuelle - qte, nil
	})
}

func (s *stockSvc) Ajustement(stockID uint, nouvelleQte float64, note string, date *time.Time) (*entities.StockAliment, error) {
	if nouvelleQte < 0 {
		return nil, faults.Validation("quantite doit etre >= 0")
	}
	return s.muter(stockID, entities.MouvementAjustement, 0, note, date, func(item *entities.StockAliment) (float64, error) {
		return nouvelleQte, nil
	})
}

// muter applies one quantity mutation: new quantity from calc, alert flag
// recompute and movement append, all against the same item in one transaction.
func (s *stockSvc) muter(stockID uint, typ string, qte float64, note string, date *time.Time, calc func(*entities.StockAliment) (float64, error)) (*entities.StockAliment, error) {
	item, err := s.Get(stockID)
	if err != nil {
		return nil, err
	}
	nouvelle, err := calc(item)
	if err != nil {
		return nil, err
	}
	mvQte := qte
	if typ == entities.MouvementAjustement {
		mvQte = math.Abs(nouvelle - item.QuantiteActuelle)
	}
	item.QuantiteActuelle = nouvelle
	item.AlerteActive = alerteActive(item)

	d := time.Now()
	if date != nil {
		d = *date
	}
	mv := &entities.StockMouvement{
		StockID:  item.StockID,
		Type:     typ,
		Quantite: mvQte,
		Unite:    item.Unite,
		Date:     d,
		Note:     note,
	}
	if err := s.r.ApplyMovement(item, mv); err != nil {
		return nil, err
	}
	if item.AlerteActive {
		s.log.Info("stock sous le seuil",
			zap.Uint("stock_id", item.StockID), zap.String("nom", item.Nom),
			zap.Float64("quantite", item.QuantiteActuelle))
	}
	return item, nil
}

func (s *stockSvc) Mouvements(stockID uint) ([]entities.StockMouvement, error) {
	if _, err := s.Get(stockID); err != nil {
		return nil, err
	}
	return s.r.Mouvements(stockID)
}

func alerteActive(item *entities.StockAliment) bool {
	return item.SeuilAlerte != nil && item.QuantiteActuelle <= *item.SeuilAlerte
}
