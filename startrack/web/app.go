package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/services"
)

// App bundles everything the HTTP layer needs. The transport is deliberately
// thin: handlers parse, call one service or repository, and shape a response.
type App struct {
	Auth *Authenticator

	Users         repositories.UserRepository
	Players       repositories.PlayerRepository
	Alliances     repositories.AllianceRepository
	Planets       repositories.PlanetRepository
	Scores        repositories.ScoreRepository
	SpyReports    repositories.SpyReportRepository
	BattleReports repositories.BattleReportRepository
	HostileSpying repositories.HostileSpyingRepository
	Settings      repositories.SettingRepository

	Galaxy     *services.GalaxyService
	Empire     *services.EmpireService
	Statistics *services.StatisticsService
	Reports    *services.ReportService
	Hub        *services.HubService
	Export     *services.ExportService

	Version string
}

// NewServer builds the fiber app with all routes registered.
func (a *App) NewServer() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "StarTrack API",
		ServerHeader: "StarTrack",
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return SendSuccess(c, fiber.Map{"status": "ok", "version": a.Version})
	})

	api := app.Group("/api/v1", RateLimit(600, time.Minute), AuthRequired(a.Auth))

	// Ingestion
	api.Post("/galaxy/scan", a.handleGalaxyScan)
	api.Post("/empire/sync", a.handleEmpireSync)
	api.Post("/statistics/sync", a.handleStatisticsSync)
	api.Post("/reports/spy", a.handleSpyReport)
	api.Post("/reports/battle", a.handleBattleReport)
	api.Post("/reports/expedition", a.handleExpeditionReport)
	api.Post("/reports/recycle", a.handleRecycleReport)
	api.Post("/reports/hostile-spying", a.handleHostileSpying)
	api.Post("/messages/filter", a.handleFilterMessages)

	// Reads
	api.Get("/galaxy/:galaxy/:system", a.handleGetSystem)
	api.Get("/hub/overview", a.handleOverview)
	api.Get("/hub/activity/:playerID", a.handleActivity)
	api.Get("/hub/research/:allianceID", a.handleResearchLeaders)
	api.Get("/hub/buildings/:allianceID", a.handleBuildingLeaders)
	api.Get("/hub/freshness", a.handleFreshness)
	api.Get("/hub/scans", a.handleScanStatus)
	api.Get("/hub/farms", a.handleFarms)
	api.Get("/planets/new", a.handleNewPlanets)
	api.Post("/planets/seen", a.handleMarkSeen)
	api.Post("/planets", a.handleCreatePlanet)
	api.Post("/planets/state", a.handlePlanetState)
	api.Get("/players/:id/chart", a.handleScoreChart)
	api.Post("/players/:id/research", a.handlePlayerResearch)
	api.Get("/alliances/:id/chart", a.handleAllianceChart)
	api.Get("/reports/spy/history", a.handleSpyHistory)
	api.Get("/reports/battle/history", a.handleBattleHistory)
	api.Get("/hostile-spying", a.handleHostileSpyingList)
	api.Get("/hostile-spying/overview", a.handleHostileSpyingOverview)
	api.Get("/export", a.handleExport)
	api.Get("/settings/universe", a.handleGetUniverse)
	api.Put("/settings/universe", AdminRequired(), a.handleSetUniverse)

	// User administration
	api.Patch("/users/me/language", a.handleUpdateOwnLanguage)
	admin := api.Group("/users", AdminRequired())
	admin.Get("/", a.handleListUsers)
	admin.Post("/", a.handleCreateUser)
	admin.Delete("/:id", a.handleDeleteUser)
	admin.Patch("/:id/role", a.handleUpdateRole)

	return app
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.LogRequest(c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
