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

var Galaxy = discord.SlashCommandCreate{
	Name:        "galaxy",
	Description: "🌌 Show the tracked state of one system",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "galaxy",
			Description: "Galaxy number",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "system",
			Description: "System number",
			Required:    true,
		},
	},
}

func GalaxyHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("galaxy", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		galaxy := int64(data.Int("galaxy"))
		system := int64(data.Int("system"))

		planets, lastScan, err := b.GalaxyService.GetSystem(ctx, galaxy, system)
		if err != nil {
			cmdErr = err
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Error",
					Description: "Failed to load the system. Please try again later.",
					Color:       utils.ErrorColor,
				}},
			})
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		if len(planets) == 0 {
			description.WriteString("No tracked planets in this system.\n")
		}
		for _, p := range planets {
			name := "-"
			if p.Name != nil {
				name = *p.Name
			}
			moonMark := ""
			if p.Kind == models.KindMoon {
				moonMark = " 🌙"
			}
			description.WriteString(fmt.Sprintf("\x1b[36m[%2d]\x1b[0m %s%s (player %d)\n",
				p.Position, name, moonMark, p.PlayerID))
		}
		description.WriteString("```")

		footer := "Never scanned"
		if lastScan != nil {
			footer = fmt.Sprintf("Last scanned %s", lastScan.Format("2006-01-02 15:04 MST"))
		}

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("🌌 System %d:%d", galaxy, system),
				Description: description.String(),
				Color:       utils.InfoColor,
				Footer:      &discord.EmbedFooter{Text: footer},
				Timestamp:   &now,
			}},
		})
	}
}
