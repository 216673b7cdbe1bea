package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
)

// ExportService assembles the full reconciled universe into the viewer
// document. Always a complete snapshot; there is no delta mode.
type ExportService struct {
	playerRepo   repositories.PlayerRepository
	allianceRepo repositories.AllianceRepository
	planetRepo   repositories.PlanetRepository
}

func NewExportService(
	playerRepo repositories.PlayerRepository,
	allianceRepo repositories.AllianceRepository,
	planetRepo repositories.PlanetRepository,
) *ExportService {
	return &ExportService{
		playerRepo:   playerRepo,
		allianceRepo: allianceRepo,
		planetRepo:   planetRepo,
	}
}

// Build reads the three collections in parallel and assembles the document.
func (s *ExportService) Build(ctx context.Context) (*models.ExportDocument, error) {
	start := time.Now()

	var (
		planets   []*models.Planet
		players   []*models.Player
		alliances []*models.Alliance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		planets, err = s.planetRepo.GetAllLive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alliances, err = s.allianceRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load export state: %w", err)
	}

	doc := AssembleExport(planets, players, alliances)

	slog.Info("Export document built",
		slog.Int("systems", len(doc.Coordinates)),
		slog.Int("players", len(doc.Players)),
		slog.Int("alliances", len(doc.Alliances)),
		slog.Duration("took", time.Since(start)))
	return doc, nil
}

// AssembleExport builds the viewer document from loaded rows. Marker rows
// (position 0) contribute only their timestamp; moons only set the has-moon
// flag of their planet's slot. Slots denormalize the owner's name and alliance
// so the viewer never has to join the maps itself.
func AssembleExport(planets []*models.Planet, players []*models.Player, alliances []*models.Alliance) *models.ExportDocument {
	doc := &models.ExportDocument{
		Coordinates: make(map[string]*models.ExportSystem),
		Players:     make(map[string]*models.ExportPlayer, len(players)),
		Alliances:   make(map[string]*models.ExportAlliance, len(alliances)+1),
	}

	playersByID := make(map[int64]*models.Player, len(players))
	for _, pl := range players {
		playersByID[pl.ID] = pl
	}
	alliancesByID := make(map[int64]*models.Alliance, len(alliances))
	for _, a := range alliances {
		alliancesByID[a.ID] = a
	}
	moons := make(map[string]bool)
	for _, p := range planets {
		if p.Kind == models.KindMoon {
			moons[p.Coordinates] = true
		}
	}

	for _, p := range planets {
		if p.Kind == models.KindMoon {
			continue
		}
		key := fmt.Sprintf("%d:%d", p.Galaxy, p.System)
		system, ok := doc.Coordinates[key]
		if !ok {
			system = &models.ExportSystem{}
			doc.Coordinates[key] = system
		}

		// Group freshness is the newest update among marker and planets.
		if ms := p.UpdatedAt.UnixMilli(); ms > system.Timepoint {
			system.Timepoint = ms
		}
		if p.Position < 1 || p.Position > models.SystemSlots {
			continue
		}

		slot := &models.ExportSlot{
			HasMoon:      moons[p.Coordinates],
			PlayerID:     p.PlayerID,
			AllianceID:   -1,
			AllianceName: "-",
		}
		if owner, ok := playersByID[p.PlayerID]; ok {
			slot.Name = owner.Name
			if owner.AllianceID != nil {
				slot.AllianceID = *owner.AllianceID
				if alliance, ok := alliancesByID[*owner.AllianceID]; ok {
					slot.AllianceName = alliance.Name
				}
			}
		}
		system.Slots[p.Position-1] = slot
	}

	for _, pl := range players {
		doc.Players[fmt.Sprintf("%d", pl.ID)] = &models.ExportPlayer{
			Name:      pl.Name,
			Timepoint: pl.UpdatedAt.UnixMilli(),
		}
	}

	var maxAllianceTimepoint int64
	for _, a := range alliances {
		ms := a.UpdatedAt.UnixMilli()
		if ms > maxAllianceTimepoint {
			maxAllianceTimepoint = ms
		}
		doc.Alliances[fmt.Sprintf("%d", a.ID)] = &models.ExportAlliance{
			Name:      a.Name,
			Timepoint: ms,
		}
	}
	// Sentinel for players without an alliance. Its freshness must never lag
	// behind a real alliance, or the viewer would consider it stale.
	doc.Alliances[models.NoAllianceID] = &models.ExportAlliance{
		Name:      "-",
		Timepoint: maxAllianceTimepoint,
	}

	return doc
}
