package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ferme/entities"
	"ferme/pkg/faults"
	"ferme/pkg/mortality/service"
)

type MortaliteCtrl struct{ s service.MortaliteService }

func New(s service.MortaliteService) *MortaliteCtrl { return &MortaliteCtrl{s} }

type mortaliteReq struct {
	Date       string  `json:"date"`
	Nombre     int     `json:"nombre"`
	Categorie  string  `json:"categorie"`
	Cause      string  `json:"cause"`
	AnimalCode *string `json:"animal_code"`
	Notes      string  `json:"notes"`
}

func (h *MortaliteCtrl) Create(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var req mortaliteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	m := &entities.Mortalite{
		ProjetID:   uint(pid),
		Nombre:     req.Nombre,
		Categorie:  req.Categorie,
		Cause:      req.Cause,
		AnimalCode: req.AnimalCode,
		Notes:      req.Notes,
	}
	if req.Date != "" {
		if d, err := time.Parse("2006-01-02", req.Date); err == nil {
			m.Date = d
		}
	}
	out, err := h.s.Enregistrer(m)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *MortaliteCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListByProjet(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
