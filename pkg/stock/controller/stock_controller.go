package controller

import "github.com/labstack/echo/v4"

type StockController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	ListAlertes(c echo.Context) error
	Entree(c echo.Context) error
	Sortie(c echo.Context) error
	Ajustement(c echo.Context) error
	Mouvements(c echo.Context) error
	Export(c echo.Context) error
}
