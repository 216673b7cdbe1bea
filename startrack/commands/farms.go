package commands

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/voidcrew/startrack/startrack"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/utils"
)

const farmsPerPage = 10

var Farms = discord.SlashCommandCreate{
	Name:        "farms",
	Description: "🚜 List the highest scoring inactive players",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "limit",
			Description: "How many players to list (default 30)",
			Required:    false,
		},
	},
}

func FarmsHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("farms", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		limit := 30
		if v, ok := e.SlashCommandInteractionData().OptInt("limit"); ok {
			limit = v
		}
		if limit < 1 || limit > 100 {
			limit = 30
		}

		farms, err := b.PlayerRepository.GetTopInactive(ctx, limit)
		if err != nil {
			cmdErr = err
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Error",
					Description: "Failed to load inactive players. Please try again later.",
					Color:       utils.ErrorColor,
				}},
			})
		}
		if len(farms) == 0 {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "🚜 Farms",
					Description: "No inactive players tracked right now.",
					Color:       utils.InfoColor,
				}},
			})
		}

		totalPages := int(math.Ceil(float64(len(farms)) / float64(farmsPerPage)))
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * farmsPerPage
				endIdx := min(startIdx+farmsPerPage, len(farms))

				var description strings.Builder
				description.WriteString("```ansi\n")
				for i, farm := range farms[startIdx:endIdx] {
					since := "?"
					if farm.InactiveSince != nil {
						since = fmt.Sprintf("%dd", int(time.Since(*farm.InactiveSince).Hours()/24))
					}
					description.WriteString(fmt.Sprintf(
						"\x1b[36m%2d.\x1b[0m \x1b[32m%s\x1b[0m\n    total %d · fleet %d · buildings %d · inactive %s\n",
						startIdx+i+1, farm.Name, farm.ScoreTotal, farm.ScoreFleet, farm.ScoreBuildings, since))
				}
				description.WriteString("```")

				embed.
					SetTitle("🚜 Farms").
					SetDescription(description.String()).
					SetColor(utils.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • %d players", page+1, totalPages, len(farms)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
