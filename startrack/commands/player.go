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

var Player = discord.SlashCommandCreate{
	Name:        "player",
	Description: "👤 Show a tracked player's scores and activity",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Player name (fuzzy matched)",
			Required:    true,
		},
	},
}

func PlayerHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("player", time.Since(start), cmdErr) }()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		query := e.SlashCommandInteractionData().String("name")
		player, err := b.SearchService.ResolvePlayer(ctx, query)
		if err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Not found",
					Description: fmt.Sprintf("No player matching `%s`.", query),
					Color:       utils.WarningColor,
				}},
			})
		}

		activity, err := b.HubService.Activity(ctx, player.ID)
		if err != nil {
			cmdErr = err
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Error",
					Description: "Failed to load player activity. Please try again later.",
					Color:       utils.ErrorColor,
				}},
			})
		}

		var description strings.Builder
		description.WriteString("```ansi\n")
		description.WriteString(fmt.Sprintf("\x1b[1;36mTotal:\x1b[0m     %d (rank %d)\n", player.ScoreTotal, player.ScoreTotalRank))
		description.WriteString(fmt.Sprintf("\x1b[36mFleet:\x1b[0m     %d (rank %d)\n", player.ScoreFleet, player.ScoreFleetRank))
		description.WriteString(fmt.Sprintf("\x1b[36mResearch:\x1b[0m  %d (rank %d)\n", player.ScoreResearch, player.ScoreResearchRank))
		description.WriteString(fmt.Sprintf("\x1b[36mBuildings:\x1b[0m %d (rank %d)\n", player.ScoreBuildings, player.ScoreBuildingsRank))
		description.WriteString(fmt.Sprintf("\x1b[36mDefense:\x1b[0m   %d (rank %d)\n", player.ScoreDefense, player.ScoreDefenseRank))
		description.WriteString("\n")
		description.WriteString(fmt.Sprintf("Expeditions: %d (%d in 24h, %d pts)\n",
			activity.Expeditions.Count, activity.Expeditions.Count24h, activity.Expeditions.Points))
		description.WriteString(fmt.Sprintf("Raids:       %d (%d in 24h, %d pts)\n",
			activity.Raids.Count, activity.Raids.Count24h, activity.Raids.Points))
		description.WriteString(fmt.Sprintf("Recycling:   %d (%d in 24h, %d pts)\n",
			activity.Recycling.Count, activity.Recycling.Count24h, activity.Recycling.Points))
		description.WriteString("```")

		title := fmt.Sprintf("👤 %s", player.Name)
		if player.AllianceTag != nil {
			title += fmt.Sprintf(" [%s]", *player.AllianceTag)
		}

		var statusLines []string
		if player.InactiveSince != nil {
			statusLines = append(statusLines, fmt.Sprintf("Inactive since %s", player.InactiveSince.Format("2006-01-02")))
		}
		if player.VacationSince != nil {
			statusLines = append(statusLines, "On vacation")
		}
		if player.IsDeleted {
			statusLines = append(statusLines, "Deleted")
		}
		footer := strings.Join(statusLines, " • ")
		if footer == "" {
			footer = "Active"
		}

		now := time.Now()
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       title,
				Description: description.String(),
				Color:       utils.InfoColor,
				Footer:      &discord.EmbedFooter{Text: footer},
				Timestamp:   &now,
			}},
		})
	}
}
