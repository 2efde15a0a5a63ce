package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ferme/pkg/faults"
	"ferme/pkg/growth/service"
)

type GrowthCtrl struct{ s service.GrowthService }

func New(s service.GrowthService) *GrowthCtrl { return &GrowthCtrl{s} }

type peseeReq struct {
	Date  string  `json:"date"`
	Poids float64 `json:"poids"`
}

func (h *GrowthCtrl) Create(c echo.Context) error {
	aid, _ := strconv.Atoi(c.Param("id"))
	var req peseeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	p, err := h.s.Enregistrer(uint(aid), d, req.Poids)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *GrowthCtrl) List(c echo.Context) error {
	aid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListByAnimal(uint(aid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GrowthCtrl) Patch(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("pesee_id"))
	var body struct {
		Date  string   `json:"date"`
		Poids *float64 `json:"poids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	var patch service.PeseePatch
	patch.Poids = body.Poids
	if body.Date != "" {
		if d, err := time.Parse("2006-01-02", body.Date); err == nil {
			patch.Date = &d
		}
	}
	p, err := h.s.Modifier(uint(pid), patch)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *GrowthCtrl) Delete(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("pesee_id"))
	if err := h.s.Supprimer(uint(pid)); err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *GrowthCtrl) Estimate(c echo.Context) error {
	aid, _ := strconv.Atoi(c.Param("id"))
	poids, err := h.s.PoidsEstime(uint(aid))
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"animal_id": aid, "poids_estime": poids})
}
