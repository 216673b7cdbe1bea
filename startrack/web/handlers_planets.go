package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/utils"
)

func (a *App) handleAllianceChart(c *fiber.Ctx) error {
	allianceID, err := paramInt64(c, "id")
	if err != nil {
		return SendBadRequest(c, "invalid alliance id")
	}
	chart, err := a.Scores.GetAllianceChart(c.Context(), allianceID)
	if err != nil {
		logger.LogError("Alliance chart read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, chart)
}

// reportHistoryQuery parses the shared coordinates+limit query of the report
// history endpoints.
func reportHistoryQuery(c *fiber.Ctx) (utils.Coordinates, int, error) {
	coords, err := utils.ParseCoordinates(c.Query("coordinates"))
	if err != nil {
		return utils.Coordinates{}, 0, err
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return coords, limit, nil
}

func (a *App) handleSpyHistory(c *fiber.Ctx) error {
	coords, limit, err := reportHistoryQuery(c)
	if err != nil {
		return SendBadRequest(c, err.Error())
	}
	kind := models.KindPlanet
	if c.Query("moon") == "true" {
		kind = models.KindMoon
	}
	reports, err := a.SpyReports.GetHistory(c.Context(), coords.Galaxy, coords.System, coords.Position, kind, limit)
	if err != nil {
		logger.LogError("Spy history read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, reports)
}

func (a *App) handleBattleHistory(c *fiber.Ctx) error {
	coords, limit, err := reportHistoryQuery(c)
	if err != nil {
		return SendBadRequest(c, err.Error())
	}
	reports, err := a.BattleReports.GetHistory(c.Context(), coords.Galaxy, coords.System, coords.Position, limit)
	if err != nil {
		logger.LogError("Battle history read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, reports)
}

func (a *App) handleGetUniverse(c *fiber.Ctx) error {
	universe, err := a.Settings.GetUniverse(c.Context())
	if err != nil {
		logger.LogError("Universe settings read failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{
		"galaxies":       universe.Galaxies,
		"systems":        universe.Systems,
		"galaxy_wrapped": universe.GalaxyWrapped,
	})
}

func (a *App) handleSetUniverse(c *fiber.Ctx) error {
	var payload struct {
		Galaxies      int64 `json:"galaxies"`
		Systems       int64 `json:"systems"`
		GalaxyWrapped bool  `json:"galaxy_wrapped"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	if payload.Galaxies < 1 || payload.Systems < 1 {
		return SendBadRequest(c, "galaxies and systems must be positive")
	}

	pairs := map[string]string{
		models.SettingGalaxies:      strconv.FormatInt(payload.Galaxies, 10),
		models.SettingSystems:       strconv.FormatInt(payload.Systems, 10),
		models.SettingGalaxyWrapped: strconv.FormatBool(payload.GalaxyWrapped),
	}
	for key, value := range pairs {
		if err := a.Settings.Set(c.Context(), key, value); err != nil {
			logger.LogError("Universe settings write failed", err)
			return SendStorageError(c)
		}
	}
	return SendSuccess(c, fiber.Map{"updated": len(pairs)})
}

// handlePlayerResearch replaces a player's known research levels wholesale.
func (a *App) handlePlayerResearch(c *fiber.Ctx) error {
	playerID, err := paramInt64(c, "id")
	if err != nil {
		return SendBadRequest(c, "invalid player id")
	}
	var payload struct {
		Research models.ResearchMap `json:"research"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	if len(payload.Research) == 0 {
		return SendBadRequest(c, "research map is empty")
	}

	if err := a.Players.UpdateResearch(c.Context(), playerID, payload.Research); err != nil {
		logger.LogError("Research update failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{"updated": len(payload.Research)})
}

func (a *App) handleCreatePlanet(c *fiber.Ctx) error {
	var payload struct {
		Coordinates string  `json:"coordinates"`
		PlayerID    int64   `json:"player_id"`
		PlayerName  *string `json:"player_name"`
		Name        *string `json:"name"`
		Moon        bool    `json:"moon"`
		MoonName    *string `json:"moon_name"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	coords, err := utils.ParseCoordinates(payload.Coordinates)
	if err != nil {
		return SendBadRequest(c, err.Error())
	}
	if payload.PlayerID <= 0 {
		return SendBadRequest(c, "player_id is required")
	}

	playerName := "Unknown"
	if payload.PlayerName != nil && *payload.PlayerName != "" {
		playerName = *payload.PlayerName
	}
	if err := a.Players.EnsureExists(c.Context(), payload.PlayerID, playerName); err != nil {
		logger.LogError("Planet create failed", err)
		return SendStorageError(c)
	}

	planet := &models.Planet{
		Name:        payload.Name,
		PlayerID:    payload.PlayerID,
		Coordinates: coords.String(),
		Galaxy:      coords.Galaxy,
		System:      coords.System,
		Position:    coords.Position,
		Kind:        models.KindPlanet,
		Status:      models.StatusNew,
	}
	if err := a.Planets.UpsertScan(c.Context(), planet); err != nil {
		logger.LogError("Planet create failed", err)
		return SendStorageError(c)
	}

	if payload.Moon {
		moon := &models.Planet{
			Name:        payload.MoonName,
			PlayerID:    payload.PlayerID,
			Coordinates: coords.String(),
			Galaxy:      coords.Galaxy,
			System:      coords.System,
			Position:    coords.Position,
			Kind:        models.KindMoon,
			Status:      models.StatusNew,
		}
		if err := a.Planets.UpsertScan(c.Context(), moon); err != nil {
			logger.LogError("Moon create failed", err)
			return SendStorageError(c)
		}
	}
	return SendSuccess(c, fiber.Map{"coordinates": coords.String()})
}

// handlePlanetState applies partial state updates to one planet; only the
// maps present in the payload are touched.
func (a *App) handlePlanetState(c *fiber.Ctx) error {
	var payload struct {
		Coordinates string          `json:"coordinates"`
		Moon        bool            `json:"moon"`
		Buildings   models.LevelMap `json:"buildings"`
		Fleet       models.LevelMap `json:"fleet"`
		Defense     models.LevelMap `json:"defense"`
		Resources   models.LevelMap `json:"resources"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	coords, err := utils.ParseCoordinates(payload.Coordinates)
	if err != nil {
		return SendBadRequest(c, err.Error())
	}
	kind := models.KindPlanet
	if payload.Moon {
		kind = models.KindMoon
	}

	applied := 0
	type updateFn func() error
	for _, u := range []struct {
		state models.LevelMap
		fn    updateFn
	}{
		{payload.Buildings, func() error {
			return a.Planets.UpdateBuildings(c.Context(), coords.Galaxy, coords.System, coords.Position, kind, payload.Buildings)
		}},
		{payload.Fleet, func() error {
			return a.Planets.UpdateFleet(c.Context(), coords.Galaxy, coords.System, coords.Position, kind, payload.Fleet)
		}},
		{payload.Defense, func() error {
			return a.Planets.UpdateDefense(c.Context(), coords.Galaxy, coords.System, coords.Position, kind, payload.Defense)
		}},
		{payload.Resources, func() error {
			return a.Planets.UpdateResources(c.Context(), coords.Galaxy, coords.System, coords.Position, kind, payload.Resources)
		}},
	} {
		if u.state == nil {
			continue
		}
		if err := u.fn(); err != nil {
			logger.LogError("Planet state update failed", err)
			return SendStorageError(c)
		}
		applied++
	}
	if applied == 0 {
		return SendBadRequest(c, "no state maps in payload")
	}
	return SendSuccess(c, fiber.Map{"updated": applied})
}
