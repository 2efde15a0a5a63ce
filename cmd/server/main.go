package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"ferme/config"
	"ferme/database"
	"ferme/pkg/logger"
	"ferme/router"

	// Auth
	authCtrlImp "ferme/pkg/auth/controllerImp"

	// Projet
	projetCtrlImp "ferme/pkg/projet/controllerImp"
	projetRepoImp "ferme/pkg/projet/repositoryImp"

	// Animaux
	animalCtrlImp "ferme/pkg/animal/controllerImp"
	animalRepoImp "ferme/pkg/animal/repositoryImp"
	animalSvcImp "ferme/pkg/animal/serviceImp"

	// Croissance (pesees / GMQ)
	growthCtrlImp "ferme/pkg/growth/controllerImp"
	growthRepoImp "ferme/pkg/growth/repositoryImp"
	growthSvcImp "ferme/pkg/growth/serviceImp"

	// Gestations + mise-bas
	gestCtrlImp "ferme/pkg/gestation/controllerImp"
	gestRepoImp "ferme/pkg/gestation/repositoryImp"
	gestSvcImp "ferme/pkg/gestation/serviceImp"

	// Mortalites
	mortCtrlImp "ferme/pkg/mortality/controllerImp"
	mortRepoImp "ferme/pkg/mortality/repositoryImp"
	mortSvcImp "ferme/pkg/mortality/serviceImp"

	// Stocks
	stockCtrlImp "ferme/pkg/stock/controllerImp"
	stockRepoImp "ferme/pkg/stock/repositoryImp"
	stockSvcImp "ferme/pkg/stock/serviceImp"

	// Health
	healthCtrlImp "ferme/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Structured logger for the services that log decisions
	zlog := logger.Must(logger.New())
	defer func() { _ = zlog.Sync() }()

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Repos
	pRepo := projetRepoImp.New(db)
	aRepo := animalRepoImp.New(db)
	gRepo := growthRepoImp.New(db)
	gestRepo := gestRepoImp.New(db)
	mRepo := mortRepoImp.New(db)
	sRepo := stockRepoImp.New(db)

	// 6) Services
	aSvc := animalSvcImp.NewAnimalService(aRepo)
	gSvc := growthSvcImp.NewGrowthService(gRepo, aRepo)
	gestSvc := gestSvcImp.NewGestationService(gestRepo, aRepo, logger.Named(zlog, "gestation"))
	mSvc := mortSvcImp.NewMortaliteService(mRepo, aRepo, logger.Named(zlog, "mortalite"))
	sSvc := stockSvcImp.NewStockService(sRepo, logger.Named(zlog, "stock"))

	// 7) Controllers
	projetCtrl := projetCtrlImp.New(pRepo)
	animalCtrl := animalCtrlImp.New(aSvc)
	growthCtrl := growthCtrlImp.New(gSvc)
	gestCtrl := gestCtrlImp.New(gestSvc)
	mortCtrl := mortCtrlImp.New(mSvc)
	stockCtrl := stockCtrlImp.New(sSvc)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		projetCtrl,
		animalCtrl,
		growthCtrl,
		gestCtrl,
		mortCtrl,
		stockCtrl,
		authCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
