package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/logger"
)

// Known language codes for user preferences.
var supportedLanguages = map[string]bool{
	"en": true,
	"de": true,
}

func (a *App) handleListUsers(c *fiber.Ctx) error {
	users, err := a.Users.GetAll(c.Context())
	if err != nil {
		logger.LogError("User listing failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, users)
}

func (a *App) handleCreateUser(c *fiber.Ctx) error {
	var payload struct {
		PlayerID   *int64 `json:"player_id"`
		AllianceID *int64 `json:"alliance_id"`
		Role       string `json:"role"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	if payload.Role != "" && payload.Role != models.RoleAdmin && payload.Role != models.RoleUser {
		return SendBadRequest(c, "unknown role")
	}

	user, err := a.Users.Create(c.Context(), payload.PlayerID, payload.AllianceID, payload.Role)
	if err != nil {
		logger.LogError("User creation failed", err)
		return SendStorageError(c)
	}
	// The only response that ever carries the key.
	return SendSuccess(c, fiber.Map{"id": user.ID, "api_key": user.APIKey})
}

func (a *App) handleDeleteUser(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return SendBadRequest(c, "invalid user id")
	}
	if caller := currentUser(c); caller != nil && caller.ID == id {
		return SendBadRequest(c, "cannot delete your own user")
	}

	if err := a.Users.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return SendNotFound(c, "user not found")
		}
		logger.LogError("User deletion failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleUpdateRole(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return SendBadRequest(c, "invalid user id")
	}
	var payload struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	if payload.Role != models.RoleAdmin && payload.Role != models.RoleUser {
		return SendBadRequest(c, "unknown role")
	}
	if caller := currentUser(c); caller != nil && caller.ID == id && payload.Role != models.RoleAdmin {
		return SendBadRequest(c, "cannot demote your own user")
	}

	if err := a.Users.UpdateRole(c.Context(), id, payload.Role); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return SendNotFound(c, "user not found")
		}
		logger.LogError("Role update failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, nil)
}

func (a *App) handleUpdateOwnLanguage(c *fiber.Ctx) error {
	var payload struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return SendBadRequest(c, "malformed payload")
	}
	if !supportedLanguages[payload.Language] {
		return SendBadRequest(c, "unknown language code")
	}

	user := currentUser(c)
	if err := a.Users.UpdateLanguage(c.Context(), user.ID, payload.Language); err != nil {
		logger.LogError("Language update failed", err)
		return SendStorageError(c)
	}
	return SendSuccess(c, nil)
}
