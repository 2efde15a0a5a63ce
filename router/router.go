package router

import (
	"github.com/labstack/echo/v4"

	"ferme/pkg/middleware"
)

func New(
	e *echo.Echo,
	projetCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
	},
	animalCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		List(echo.Context) error
	},
	growthCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		Estimate(echo.Context) error
	},
	gestationCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Terminer(echo.Context) error
		Annuler(echo.Context) error
		CreateSevrage(echo.Context) error
		ListSevrages(echo.Context) error
	},
	mortaliteCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	stockCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		ListAlertes(echo.Context) error
		Entree(echo.Context) error
		Sortie(echo.Context) error
		Ajustement(echo.Context) error
		Mouvements(echo.Context) error
		Export(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/projets", projetCtrl.Create)
	api.GET("/projets/:id", projetCtrl.Get)

	api.POST("/projets/:id/animaux", animalCtrl.Create)
	api.GET("/projets/:id/animaux", animalCtrl.List)
	api.GET("/animaux/:id", animalCtrl.Get)
	api.PATCH("/animaux/:id", animalCtrl.Patch)

	api.POST("/animaux/:id/pesees", growthCtrl.Create)
	api.GET("/animaux/:id/pesees", growthCtrl.List)
	api.GET("/animaux/:id/poids-estime", growthCtrl.Estimate)
	api.PATCH("/pesees/:pesee_id", growthCtrl.Patch)
	api.DELETE("/pesees/:pesee_id", growthCtrl.Delete)

	api.POST("/projets/:id/gestations", gestationCtrl.Create)
	api.GET("/projets/:id/gestations", gestationCtrl.List)
	api.PATCH("/gestations/:gestation_id", gestationCtrl.Patch)
	api.POST("/gestations/:gestation_id/terminer", gestationCtrl.Terminer)
	api.POST("/gestations/:gestation_id/annuler", gestationCtrl.Annuler)
	api.POST("/projets/:id/sevrages", gestationCtrl.CreateSevrage)
	api.GET("/projets/:id/sevrages", gestationCtrl.ListSevrages)

	api.POST("/projets/:id/mortalites", mortaliteCtrl.Create)
	api.GET("/projets/:id/mortalites", mortaliteCtrl.List)

	api.POST("/projets/:id/stocks", stockCtrl.Create)
	api.GET("/projets/:id/stocks", stockCtrl.List)
	api.GET("/projets/:id/stocks/alertes", stockCtrl.ListAlertes)
	api.POST("/stocks/:stock_id/entree", stockCtrl.Entree)
	api.POST("/stocks/:stock_id/sortie", stockCtrl.Sortie)
	api.POST("/stocks/:stock_id/ajustement", stockCtrl.Ajustement)
	api.GET("/stocks/:stock_id/mouvements", stockCtrl.Mouvements)
	api.GET("/stocks/:stock_id/mouvements/export", stockCtrl.Export)

	return e
}
