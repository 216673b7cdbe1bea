package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/services"
	"github.com/voidcrew/startrack/startrack/utils"
)

func validStat(statType string) bool {
	return models.ValidStatType(statType)
}

// reportError classifies an ingest failure: bad coordinates are the caller's
// problem, everything else is a storage failure hidden behind a generic code.
func reportError(c *fiber.Ctx, msg string, err error) error {
	if errors.Is(err, utils.ErrInvalidCoordinates) {
		return SendBadRequest(c, err.Error())
	}
	logger.LogError(msg, err)
	return SendStorageError(c)
}

func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func (a *App) handleGetSystem(c *fiber.Ctx) error {
	galaxy, err := paramInt64(c, "galaxy")
	if err != nil {
		return SendBadRequest(c, "invalid galaxy")
	}
	system, err := paramInt64(c, "system")
	if err != nil {
		return SendBadRequest(c, "invalid system")
	}
	planets, lastScan, err := a.Galaxy.GetSystem(c.Context(), galaxy, system)
	if err != nil {
		logger.LogError("System read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{
		"planets":      planets,
		"last_scan_at": lastScan,
	})
}

func (a *App) handleOverview(c *fiber.Ctx) error {
	var origin *utils.Coordinates
	if from := c.Query("from"); from != "" {
		coords, err := utils.ParseCoordinates(from)
		if err != nil {
			return SendBadRequest(c, err.Error())
		}
		origin = &coords
	}
	overview, err := a.Hub.Overview(c.Context(), origin)
	if err != nil {
		logger.LogError("Overview read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, overview)
}

func (a *App) handleActivity(c *fiber.Ctx) error {
	playerID, err := paramInt64(c, "playerID")
	if err != nil {
		return SendBadRequest(c, "invalid player id")
	}
	activity, err := a.Hub.Activity(c.Context(), playerID)
	if err != nil {
		logger.LogError("Activity read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, activity)
}

func (a *App) handleResearchLeaders(c *fiber.Ctx) error {
	allianceID, err := paramInt64(c, "allianceID")
	if err != nil {
		return SendBadRequest(c, "invalid alliance id")
	}
	leaders, err := a.Hub.ResearchLeaders(c.Context(), allianceID)
	if err != nil {
		logger.LogError("Research leaders read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, leaders)
}

func (a *App) handleBuildingLeaders(c *fiber.Ctx) error {
	allianceID, err := paramInt64(c, "allianceID")
	if err != nil {
		return SendBadRequest(c, "invalid alliance id")
	}
	leaders, err := a.Hub.BuildingLeaders(c.Context(), allianceID)
	if err != nil {
		logger.LogError("Building leaders read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, leaders)
}

func (a *App) handleFreshness(c *fiber.Ctx) error {
	freshness, err := a.Hub.Freshness(c.Context())
	if err != nil {
		logger.LogError("Freshness read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, freshness)
}

func (a *App) handleScanStatus(c *fiber.Ctx) error {
	scans, err := a.Hub.SystemScanStatus(c.Context())
	if err != nil {
		logger.LogError("Scan status read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, scans)
}

func (a *App) handleFarms(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		return SendBadRequest(c, "limit must be between 1 and 100")
	}
	farms, err := a.Players.GetTopInactive(c.Context(), limit)
	if err != nil {
		logger.LogError("Farms read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, farms)
}

func (a *App) handleNewPlanets(c *fiber.Ctx) error {
	planets, err := a.Planets.GetNew(c.Context())
	if err != nil {
		logger.LogError("New planets read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, planets)
}

func (a *App) handleMarkSeen(c *fiber.Ctx) error {
	var payload struct {
		IDs []int64 `json:"ids"`
		All bool    `json:"all"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}

	var (
		affected int64
		err      error
	)
	if payload.All {
		affected, err = a.Planets.MarkAllSeen(c.Context())
	} else {
		affected, err = a.Planets.MarkSeen(c.Context(), payload.IDs)
	}
	if err != nil {
		logger.LogError("Mark seen failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{"marked": affected})
}

func (a *App) handleScoreChart(c *fiber.Ctx) error {
	playerID, err := paramInt64(c, "id")
	if err != nil {
		return SendBadRequest(c, "invalid player id")
	}
	player, err := a.Players.GetByID(c.Context(), playerID)
	if err != nil {
		return SendNotFound(c, "player not found")
	}
	chart, err := a.Scores.GetChart(c.Context(), playerID)
	if err != nil {
		logger.LogError("Score chart read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{
		"chart":  chart,
		"deltas": services.ScoreDeltasFromHistory(player.ScoreTotal, chart, time.Now()),
	})
}

func (a *App) handleHostileSpyingList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 200 || offset < 0 {
		return SendBadRequest(c, "invalid paging")
	}
	search := c.Query("search")

	records, err := a.HostileSpying.Get(c.Context(), search, limit, offset)
	if err != nil {
		logger.LogError("Hostile spying read failed", err)
		return SendStorageError(c)
	}
	total, err := a.HostileSpying.Count(c.Context(), search)
	if err != nil {
		logger.LogError("Hostile spying count failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{"records": records, "total": total})
}

func (a *App) handleHostileSpyingOverview(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > 200 || offset < 0 {
		return SendBadRequest(c, "invalid paging")
	}
	attacker := c.Query("attacker")
	target := c.Query("target")

	rows, err := a.HostileSpying.GetOverview(c.Context(), attacker, target, limit, offset)
	if err != nil {
		logger.LogError("Hostile spying overview failed", err)
		return SendStorageError(c)
	}
	total, err := a.HostileSpying.CountOverview(c.Context(), attacker, target)
	if err != nil {
		logger.LogError("Hostile spying overview count failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{"attackers": rows, "total": total})
}

func (a *App) handleExport(c *fiber.Ctx) error {
	doc, err := a.Export.Build(c.Context())
	if err != nil {
		logger.LogError("Export build failed", err)
		return SendStorageError(c)
	}
	// The export document is consumed verbatim by the viewer; no envelope.
	return c.JSON(doc)
}
