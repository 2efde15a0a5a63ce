package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ferme/entities"
	"ferme/pkg/animal/service"
	"ferme/pkg/faults"
)

type AnimalCtrl struct{ s service.AnimalService }

func New(s service.AnimalService) *AnimalCtrl { return &AnimalCtrl{s} }

type animalReq struct {
	Code          string   `json:"code"`
	Nom           string   `json:"nom"`
	Sexe          string   `json:"sexe"`
	Race          string   `json:"race"`
	DateNaissance string   `json:"date_naissance"`
	DateEntree    string   `json:"date_entree"`
	PoidsInitial  *float64 `json:"poids_initial"`
	Reproducteur  bool     `json:"reproducteur"`
	PereID        *uint    `json:"pere_id"`
	MereID        *uint    `json:"mere_id"`
	Origine       string   `json:"origine"`
	Notes         string   `json:"notes"`
}

func (h *AnimalCtrl) Create(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var req animalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	a := &entities.Animal{
		ProjetID:     uint(pid),
		Code:         req.Code,
		Nom:          req.Nom,
		Sexe:         req.Sexe,
		Race:         req.Race,
		PoidsInitial: req.PoidsInitial,
		Reproducteur: req.Reproducteur,
		PereID:       req.PereID,
		MereID:       req.MereID,
		Origine:      req.Origine,
		Notes:        req.Notes,
	}
	if req.DateNaissance != "" {
		if d, err := time.Parse("2006-01-02", req.DateNaissance); err == nil {
			a.DateNaissance = &d
		}
	}
	if req.DateEntree != "" {
		if d, err := time.Parse("2006-01-02", req.DateEntree); err == nil {
			a.DateEntree = &d
		}
	}
	out, err := h.s.Creer(a)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AnimalCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	a, err := h.s.Get(uint(id))
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnimalCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var p service.AnimalPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	a, err := h.s.Modifier(uint(id), p)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AnimalCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	if cat := c.QueryParam("categorie"); cat != "" {
		out, err := h.s.ActifsParCategorie(uint(pid), cat)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	actifs := c.QueryParam("actifs") == "true"
	out, err := h.s.ListByProjet(uint(pid), actifs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
