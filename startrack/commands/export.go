package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/voidcrew/startrack/startrack"
	"github.com/voidcrew/startrack/startrack/logger"
	"github.com/voidcrew/startrack/startrack/utils"
)

var Export = discord.SlashCommandCreate{
	Name:        "export",
	Description: "📦 Export the full tracked universe as a viewer document",
}

func ExportHandler(b *startrack.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()
		var cmdErr error
		defer func() { logger.LogCommand("export", time.Since(start), cmdErr) }()

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		doc, err := b.ExportService.Build(ctx)
		if err != nil {
			cmdErr = err
			_, err = e.CreateFollowupMessage(discord.MessageCreate{
				Embeds: []discord.Embed{{
					Title:       "Error",
					Description: "Failed to build the export. Please try again later.",
					Color:       utils.ErrorColor,
				}},
			})
			return err
		}

		payload, err := json.Marshal(doc)
		if err != nil {
			cmdErr = err
			return err
		}

		filename := fmt.Sprintf("universe-%s.json", time.Now().UTC().Format("20060102-150405"))
		_, err = e.CreateFollowupMessage(discord.MessageCreate{
			Content: fmt.Sprintf("📦 Universe export: %d systems, %d players, %d alliances",
				len(doc.Coordinates), len(doc.Players), len(doc.Alliances)),
			Files: []*discord.File{
				discord.NewFile(filename, "", bytes.NewReader(payload)),
			},
		})
		cmdErr = err
		return err
	}
}
