package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/voidcrew/startrack/startrack"
	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/utils"
)

var Users = discord.SlashCommandCreate{
	Name:        "users",
	Description: "🔑 Manage API users",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List all API users",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "create",
			Description: "Create an API user and mint a key",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "player",
					Description: "Player to link (fuzzy matched)",
					Required:    false,
				},
				discord.ApplicationCommandOptionBool{
					Name:        "admin",
					Description: "Grant the admin role",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "delete",
			Description: "Delete an API user",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "id",
					Description: "User id",
					Required:    true,
				},
			},
		},
	},
}

func UsersHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("users", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		switch *data.SubCommandName {
		case "list":
			return usersList(ctx, b, e, &cmdErr)
		case "create":
			return usersCreate(ctx, b, e, &cmdErr)
		case "delete":
			return usersDelete(ctx, b, e, &cmdErr)
		}
		return nil
	}
}

func usersList(ctx context.Context, b *startrack.Bot, e *handler.CommandEvent, cmdErr *error) error {
	users, err := b.UserRepository.GetAll(ctx)
	if err != nil {
		*cmdErr = err
		return commandError(e, "Failed to list users.")
	}

	var description strings.Builder
	description.WriteString("```ansi\n")
	if len(users) == 0 {
		description.WriteString("No users.\n")
	}
	for _, u := range users {
		player := "-"
		if u.PlayerName != nil {
			player = *u.PlayerName
		}
		lastSeen := "never"
		if u.LastActivityAt != nil {
			lastSeen = u.LastActivityAt.Format("2006-01-02 15:04")
		}
		description.WriteString(fmt.Sprintf("\x1b[36m#%d\x1b[0m %s role=%s last=%s\n",
			u.ID, player, u.Role, lastSeen))
	}
	description.WriteString("```")

	return e.CreateMessage(discord.MessageCreate{
		Flags: discord.MessageFlagEphemeral,
		Embeds: []discord.Embed{{
			Title:       "🔑 API users",
			Description: description.String(),
			Color:       utils.InfoColor,
		}},
	})
}

func usersCreate(ctx context.Context, b *startrack.Bot, e *handler.CommandEvent, cmdErr *error) error {
	data := e.SlashCommandInteractionData()

	var playerID, allianceID *int64
	if name, ok := data.OptString("player"); ok && name != "" {
		player, err := b.SearchService.ResolvePlayer(ctx, name)
		if err != nil {
			return commandError(e, fmt.Sprintf("No player matching `%s`.", name))
		}
		playerID = &player.ID
		allianceID = player.AllianceID
	}

	role := models.RoleUser
	if admin, _ := data.OptBool("admin"); admin {
		role = models.RoleAdmin
	}

	user, err := b.UserRepository.Create(ctx, playerID, allianceID, role)
	if err != nil {
		*cmdErr = err
		return commandError(e, "Failed to create the user.")
	}

	// Key shown once, ephemeral, never logged.
	return e.CreateMessage(discord.MessageCreate{
		Flags: discord.MessageFlagEphemeral,
		Embeds: []discord.Embed{{
			Title:       "🔑 User created",
			Description: fmt.Sprintf("User `#%d` (%s)\nAPI key: `%s`\n\nStore it now, it will not be shown again.", user.ID, role, user.APIKey),
			Color:       utils.SuccessColor,
		}},
	})
}

func usersDelete(ctx context.Context, b *startrack.Bot, e *handler.CommandEvent, cmdErr *error) error {
	id := int64(e.SlashCommandInteractionData().Int("id"))
	if err := b.UserRepository.Delete(ctx, id); err != nil {
		*cmdErr = err
		return commandError(e, fmt.Sprintf("Failed to delete user `#%d`.", id))
	}
	return e.CreateMessage(discord.MessageCreate{
		Flags: discord.MessageFlagEphemeral,
		Embeds: []discord.Embed{{
			Title:       "🔑 User deleted",
			Description: fmt.Sprintf("User `#%d` is gone.", id),
			Color:       utils.SuccessColor,
		}},
	})
}

func commandError(e *handler.CommandEvent, message string) error {
	return e.CreateMessage(discord.MessageCreate{
		Flags: discord.MessageFlagEphemeral,
		Embeds: []discord.Embed{{
			Title:       "Error",
			Description: message,
			Color:       utils.ErrorColor,
		}},
	})
}
