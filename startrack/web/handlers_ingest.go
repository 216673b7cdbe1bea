package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/services"
)

// reporterID is the authenticated caller's linked player, stamped onto
// submitted reports.
func reporterID(c *fiber.Ctx) *int64 {
	if user := currentUser(c); user != nil {
		return user.PlayerID
	}
	return nil
}

func (a *App) handleGalaxyScan(c *fiber.Ctx) error {
	var scan services.GalaxyScan
	if err := c.BodyParser(&scan); err != nil {
		return SendBadRequest(c, "malformed scan payload")
	}
	result, err := a.Galaxy.SyncSystem(c.Context(), &scan)
	if err != nil {
		return reportError(c, "Galaxy scan failed", err)
	}
	return SendSuccess(c, result)
}

func (a *App) handleEmpireSync(c *fiber.Ctx) error {
	var snapshot services.EmpireSnapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return SendBadRequest(c, "malformed empire payload")
	}
	user := currentUser(c)
	result, err := a.Empire.Sync(c.Context(), &snapshot, user.PlayerID, user.AllianceID)
	if err != nil {
		if snapshot.PlayerID == 0 && user.PlayerID == nil {
			return SendBadRequest(c, "no player id in payload and none linked to caller")
		}
		logger.LogError("Empire sync failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, result)
}

func (a *App) handleStatisticsSync(c *fiber.Ctx) error {
	var sync services.StatisticsSync
	if err := c.BodyParser(&sync); err != nil {
		return SendBadRequest(c, "malformed statistics payload")
	}
	user := currentUser(c)
	if err := a.Statistics.Sync(c.Context(), &sync, user.PlayerID); err != nil {
		if !validStat(sync.StatType) {
			return SendBadRequest(c, "unknown stat type")
		}
		logger.LogError("Statistics sync failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, fiber.Map{"players": len(sync.Players)})
}

func (a *App) handleSpyReport(c *fiber.Ctx) error {
	var payload services.SpyReportPayload
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed spy report")
	}
	if err := a.Reports.SubmitSpyReport(c.Context(), &payload, reporterID(c)); err != nil {
		return reportError(c, "Spy report ingest failed", err)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleBattleReport(c *fiber.Ctx) error {
	var payload services.BattleReportPayload
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed battle report")
	}
	if err := a.Reports.SubmitBattleReport(c.Context(), &payload, reporterID(c)); err != nil {
		return reportError(c, "Battle report ingest failed", err)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleExpeditionReport(c *fiber.Ctx) error {
	var payload services.ExpeditionReportPayload
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed expedition report")
	}
	if err := a.Reports.SubmitExpeditionReport(c.Context(), &payload, reporterID(c)); err != nil {
		logger.LogError("Expedition report ingest failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleRecycleReport(c *fiber.Ctx) error {
	var payload services.RecycleReportPayload
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed recycle report")
	}
	if err := a.Reports.SubmitRecycleReport(c.Context(), &payload, reporterID(c)); err != nil {
		return reportError(c, "Recycle report ingest failed", err)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleHostileSpying(c *fiber.Ctx) error {
	var payload services.HostileSpyingPayload
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed hostile spying record")
	}
	if err := a.Reports.SubmitHostileSpying(c.Context(), &payload); err != nil {
		logger.LogError("Hostile spying ingest failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleFilterMessages(c *fiber.Ctx) error {
	var payload struct {
		MessageIDs []int64 `json:"message_ids"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed message id batch")
	}
	fresh, err := a.Reports.FilterNewMessages(c.Context(), payload.MessageIDs)
	if err != nil {
		logger.LogError("Message dedup failed", err)
		return SendStorageError(c)
	}
	if fresh == nil {
		fresh = []int64{}
	}
	return SendSuccess(c, fiber.Map{"new_message_ids": fresh})
}
