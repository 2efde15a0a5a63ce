package controller

import "github.com/labstack/echo/v4"

type GestationController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Patch(c echo.Context) error
	Terminer(c echo.Context) error
	Annuler(c echo.Context) error
	CreateSevrage(c echo.Context) error
	ListSevrages(c echo.Context) error
}
