package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ferme/entities"
	"ferme/pkg/projet/repository"
)

type ProjetCtrl struct{ repo repository.ProjetRepository }

func New(repo repository.ProjetRepository) *ProjetCtrl { return &ProjetCtrl{repo} }

type createReq struct {
	Nom          string `json:"nom"`
	Localisation string `json:"localisation"`
}

func (h *ProjetCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p := &entities.Projet{UserID: uid, Nom: req.Nom, Localisation: req.Localisation}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProjetCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}
