package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ferme/entities"
	"ferme/pkg/faults"
	"ferme/pkg/stock/service"
)

type StockCtrl struct{ s service.StockService }

func New(s service.StockService) *StockCtrl { return &StockCtrl{s} }

type stockReq struct {
	Nom              string   `json:"nom"`
	Unite            string   `json:"unite"`
	QuantiteActuelle float64  `json:"quantite_actuelle"`
	SeuilAlerte      *float64 `json:"seuil_alerte"`
}

type mouvementReq struct {
	Quantite float64 `json:"quantite"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

func (h *StockCtrl) Create(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var req stockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	item := &entities.StockAliment{
		ProjetID:         uint(pid),
		Nom:              req.Nom,
		Unite:            req.Unite,
		QuantiteActuelle: req.QuantiteActuelle,
		SeuilAlerte:      req.SeuilAlerte,
	}
	out, err := h.s.Creer(item)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *StockCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListByProjet(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) ListAlertes(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListAlertes(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) Entree(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("stock_id"))
	var req mouvementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	item, err := h.s.Entree(uint(sid), req.Quantite, req.Note)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StockCtrl) Sortie(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("stock_id"))
	var req mouvementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	item, err := h.s.Sortie(uint(sid), req.Quantite, req.Note)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StockCtrl) Ajustement(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("stock_id"))
	var req mouvementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	var date *time.Time
	if req.Date != "" {
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			date = &d
		}
	}
	item, err := h.s.Ajustement(uint(sid), req.Quantite, req.Note, date)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StockCtrl) Mouvements(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("stock_id"))
	out, err := h.s.Mouvements(uint(sid))
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StockCtrl) Export(c echo.Context) error {
	sid, _ := strconv.Atoi(c.Param("stock_id"))
	f, err := h.s.ExportMouvements(uint(sid))
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="mouvements_stock_%d.xlsx"`, sid))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
