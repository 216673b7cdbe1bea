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

var Spy = discord.SlashCommandCreate{
	Name:        "spy",
	Description: "🔍 Show the latest spy report for a coordinate",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "coordinates",
			Description: "Target as galaxy:system:position",
			Required:    true,
		},
	},
}

func SpyHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("spy", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		coords, err := utils.ParseCoordinates(data.String("coordinates"))
		if err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Invalid coordinates",
					Description: "Use the form `galaxy:system:position`, e.g. `1:205:8`.",
					Color:       utils.WarningColor,
				}},
			})
		}

		report, err := b.SpyReportRepo.GetLatest(ctx, coords.Galaxy, coords.System, coords.Position)
		if err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "No report",
					Description: fmt.Sprintf("No spy report stored for %s.", coords),
					Color:       utils.WarningColor,
				}},
			})
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		description.WriteString(fmt.Sprintf("\x1b[33mMetal:\x1b[0m     %d\n", report.Resources["901"]))
		description.WriteString(fmt.Sprintf("\x1b[36mCrystal:\x1b[0m   %d\n", report.Resources["902"]))
		description.WriteString(fmt.Sprintf("\x1b[32mDeuterium:\x1b[0m %d\n", report.Resources["903"]))
		description.WriteString(fmt.Sprintf("\nFleet entries:   %d", len(report.Fleet)))
		description.WriteString(fmt.Sprintf("\nDefense entries: %d\n", len(report.Defense)))
		description.WriteString("```")

		reporter := "unknown"
		if report.ReporterName != nil {
			reporter = *report.ReporterName
		}
		title := fmt.Sprintf("🔍 Spy report %s", coords)
		if report.Kind == models.KindMoon {
			title += " 🌙"
		}

		timestamp := report.CreatedAt
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       title,
				Description: description.String(),
				Color:       utils.InfoColor,
				Footer:      &discord.EmbedFooter{Text: fmt.Sprintf("Reported by %s", reporter)},
				Timestamp:   &timestamp,
			}},
		})
	}
}
