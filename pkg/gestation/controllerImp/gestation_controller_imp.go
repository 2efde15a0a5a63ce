package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"ferme/entities"
	"ferme/pkg/faults"
	"ferme/pkg/gestation/service"
)

type GestationCtrl struct{ s service.GestationService }

func New(s service.GestationService) *GestationCtrl { return &GestationCtrl{s} }

type gestationReq struct {
	Truie                string  `json:"truie"`
	Verrat               *string `json:"verrat"`
	DateSaillie          string  `json:"date_saillie"`
	NombrePorceletsPrevu *int    `json:"nombre_porcelets_prevu"`
	Notes                string  `json:"notes"`
}

func (h *GestationCtrl) Create(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var req gestationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	g := &entities.Gestation{
		ProjetID:             uint(pid),
		Truie:                req.Truie,
		Verrat:               req.Verrat,
		NombrePorceletsPrevu: req.NombrePorceletsPrevu,
		Notes:                req.Notes,
	}
	if req.DateSaillie != "" {
		if d, err := time.Parse("2006-01-02", req.DateSaillie); err == nil {
			g.DateSaillie = d
		}
	}
	out, err := h.s.Creer(g)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *GestationCtrl) List(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListByProjet(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GestationCtrl) Patch(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("gestation_id"))
	var body struct {
		Verrat               *string `json:"verrat"`
		DateSaillie          string  `json:"date_saillie"`
		NombrePorceletsPrevu *int    `json:"nombre_porcelets_prevu"`
		Notes                *string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p := service.GestationPatch{
		Verrat:               body.Verrat,
		NombrePorceletsPrevu: body.NombrePorceletsPrevu,
		Notes:                body.Notes,
	}
	if body.DateSaillie != "" {
		if d, err := time.Parse("2006-01-02", body.DateSaillie); err == nil {
			p.DateSaillie = &d
		}
	}
	g, err := h.s.Modifier(uint(gid), p)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GestationCtrl) Terminer(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("gestation_id"))
	var body struct {
		DateReelle string `json:"date_reelle"`
		Porcelets  int    `json:"nombre_porcelets"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	d := time.Now()
	if body.DateReelle != "" {
		if dd, err := time.Parse("2006-01-02", body.DateReelle); err == nil {
			d = dd
		}
	}
	res, err := h.s.Terminer(uint(gid), d, body.Porcelets)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *GestationCtrl) Annuler(c echo.Context) error {
	gid, _ := strconv.Atoi(c.Param("gestation_id"))
	var body struct {
		Raison string `json:"raison"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	g, err := h.s.Annuler(uint(gid), body.Raison)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GestationCtrl) CreateSevrage(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		GestationID  *uint    `json:"gestation_id"`
		Date         string   `json:"date"`
		NombreSevres int      `json:"nombre_sevres"`
		PoidsMoyen   *float64 `json:"poids_moyen"`
		Notes        string   `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	sv := &entities.Sevrage{
		ProjetID:     uint(pid),
		GestationID:  body.GestationID,
		NombreSevres: body.NombreSevres,
		PoidsMoyen:   body.PoidsMoyen,
		Notes:        body.Notes,
	}
	if body.Date != "" {
		if d, err := time.Parse("2006-01-02", body.Date); err == nil {
			sv.Date = d
		}
	}
	out, err := h.s.CreerSevrage(sv)
	if err != nil {
		return c.JSON(faults.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *GestationCtrl) ListSevrages(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.s.ListSevrages(uint(pid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
