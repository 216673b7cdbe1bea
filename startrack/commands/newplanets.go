package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/voidcrew/startrack/startrack"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/utils"
)

var NewPlanets = discord.SlashCommandCreate{
	Name:        "newplanets",
	Description: "🪐 List planets discovered since the last check",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "acknowledge",
			Description: "Mark the listed planets as seen",
			Required:    false,
		},
	},
}

func NewPlanetsHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("newplanets", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		planets, err := b.PlanetRepository.GetNew(ctx)
		if err != nil {
			cmdErr = err
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Error",
					Description: "Failed to load new planets. Please try again later.",
					Color:       utils.ErrorColor,
				}},
			})
		}

		if len(planets) == 0 {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "🪐 New planets",
					Description: "Nothing new since the last check.",
					Color:       utils.InfoColor,
				}},
			})
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		shown := min(len(planets), 25)
		for _, p := range planets[:shown] {
			owner := "Unknown"
			if p.PlayerName != nil {
				owner = *p.PlayerName
			}
			tag := ""
			if p.AllianceTag != nil {
				tag = fmt.Sprintf(" [%s]", *p.AllianceTag)
			}
			description.WriteString(fmt.Sprintf("\x1b[36m%d:%d:%d\x1b[0m %s%s\n",
				p.Galaxy, p.System, p.Position, owner, tag))
		}
		if len(planets) > shown {
			description.WriteString(fmt.Sprintf("… and %d more\n", len(planets)-shown))
		}
		description.WriteString("```")

		footer := fmt.Sprintf("%d new planets", len(planets))
		acknowledge, _ := e.SlashCommandInteractionData().OptBool("acknowledge")
		if acknowledge {
			ids := make([]int64, len(planets))
			for i, p := range planets {
				ids[i] = p.ID
			}
			marked, err := b.PlanetRepository.MarkSeen(ctx, ids)
			if err != nil {
				cmdErr = err
			} else {
				footer = fmt.Sprintf("%d new planets • %d marked seen", len(planets), marked)
			}
		}

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🪐 New planets",
				Description: description.String(),
				Color:       utils.SuccessColor,
				Footer:      &discord.EmbedFooter{Text: footer},
				Timestamp:   &now,
			}},
		})
	}
}
