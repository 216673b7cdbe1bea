package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
	"github.com/voidcrew/startrack/startrack/utils"
)

// Marker names for the synthetic position-0 row of a system.
const (
	markerEmpty   = "EMPTY"
	markerScanned = "SCANNED"
)

// GalaxyScanPlanet is one occupied slot of a scanned system, as the scraper
// saw it. Everything but the position is optional: scans routinely miss
// ownership or id details.
type GalaxyScanPlanet struct {
	Position    int64   `json:"position"`
	PlayerID    *int64  `json:"player_id"`
	PlayerName  *string `json:"player_name"`
	PlanetName  *string `json:"planet_name"`
	MoonName    *string `json:"moon_name"`
	HasMoon     bool    `json:"has_moon"`
	PlanetID    *int64  `json:"planet_id"`
	MoonID      *int64  `json:"moon_id"`
	AllianceID  *int64  `json:"alliance_id"`
	AllianceTag *string `json:"alliance_tag"`
}

// DestroyedPosition names a slot confirmed vacated this scan.
type DestroyedPosition struct {
	Position int64  `json:"position"`
	Type     string `json:"type"`
}

// GalaxyScan is one full listing of a system's occupied positions.
type GalaxyScan struct {
	Galaxy    int64               `json:"galaxy"`
	System    int64               `json:"system"`
	Planets   []GalaxyScanPlanet  `json:"planets"`
	Destroyed []DestroyedPosition `json:"destroyed"`
}

// GalaxyScanResult summarizes what one scan changed.
type GalaxyScanResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Deleted int `json:"deleted"`
}

// GalaxyService reconciles galaxy scans against stored state.
type GalaxyService struct {
	playerRepo   repositories.PlayerRepository
	allianceRepo repositories.AllianceRepository
	planetRepo   repositories.PlanetRepository
}

func NewGalaxyService(
	playerRepo repositories.PlayerRepository,
	allianceRepo repositories.AllianceRepository,
	planetRepo repositories.PlanetRepository,
) *GalaxyService {
	return &GalaxyService{
		playerRepo:   playerRepo,
		allianceRepo: allianceRepo,
		planetRepo:   planetRepo,
	}
}

// SyncSystem applies one scan. Positions without an owning player are skipped
// (a scan without ownership cannot establish the required foreign key),
// destroyed positions are marked deleted with the row retained, and everything
// else is upserted owner-first so no planet write can hit a missing player.
func (s *GalaxyService) SyncSystem(ctx context.Context, scan *GalaxyScan) (*GalaxyScanResult, error) {
	if scan.Galaxy <= 0 || scan.System <= 0 {
		return nil, fmt.Errorf("%w: system %d:%d", utils.ErrInvalidCoordinates, scan.Galaxy, scan.System)
	}

	start := time.Now()
	result := &GalaxyScanResult{}

	if err := s.touchMarker(ctx, scan); err != nil {
		return nil, err
	}

	for _, d := range scan.Destroyed {
		kind := d.Type
		if kind != models.KindMoon {
			kind = models.KindPlanet
		}
		if err := s.planetRepo.MarkDeleted(ctx, scan.Galaxy, scan.System, d.Position, kind); err != nil {
			return nil, fmt.Errorf("failed to mark position %d deleted: %w", d.Position, err)
		}
		result.Deleted++
	}

	for _, entry := range scan.Planets {
		if entry.Position <= 0 {
			result.Skipped++
			continue
		}
		if entry.PlayerID == nil {
			result.Skipped++
			continue
		}

		playerName := "Unknown"
		if entry.PlayerName != nil && *entry.PlayerName != "" {
			playerName = *entry.PlayerName
		}
		if err := s.playerRepo.EnsureExists(ctx, *entry.PlayerID, playerName); err != nil {
			return nil, fmt.Errorf("failed to ensure player %d: %w", *entry.PlayerID, err)
		}

		// Alliance is resolved only when the scan exposes both id and tag;
		// a bare id is too unreliable to create a row from.
		if entry.AllianceID != nil && entry.AllianceTag != nil && *entry.AllianceTag != "" {
			if err := s.allianceRepo.EnsureExists(ctx, *entry.AllianceID, *entry.AllianceTag); err != nil {
				return nil, fmt.Errorf("failed to ensure alliance %d: %w", *entry.AllianceID, err)
			}
			if err := s.playerRepo.UpdateAlliance(ctx, *entry.PlayerID, *entry.AllianceID); err != nil {
				return nil, fmt.Errorf("failed to link player %d to alliance %d: %w", *entry.PlayerID, *entry.AllianceID, err)
			}
		}

		planet := &models.Planet{
			Name:        entry.PlanetName,
			PlayerID:    *entry.PlayerID,
			Coordinates: fmt.Sprintf("%d:%d:%d", scan.Galaxy, scan.System, entry.Position),
			Galaxy:      scan.Galaxy,
			System:      scan.System,
			Position:    entry.Position,
			Kind:        models.KindPlanet,
			ExternalID:  entry.PlanetID,
			Status:      models.StatusNew,
		}
		if err := s.planetRepo.UpsertScan(ctx, planet); err != nil {
			return nil, fmt.Errorf("failed to upsert planet %s: %w", planet.Coordinates, err)
		}
		result.Created++

		if entry.HasMoon {
			moon := &models.Planet{
				Name:        entry.MoonName,
				PlayerID:    *entry.PlayerID,
				Coordinates: planet.Coordinates,
				Galaxy:      scan.Galaxy,
				System:      scan.System,
				Position:    entry.Position,
				Kind:        models.KindMoon,
				ExternalID:  entry.MoonID,
				Status:      models.StatusNew,
			}
			if err := s.planetRepo.UpsertScan(ctx, moon); err != nil {
				return nil, fmt.Errorf("failed to upsert moon %s: %w", moon.Coordinates, err)
			}
		}
	}

	slog.Info("Galaxy scan applied",
		slog.Int64("galaxy", scan.Galaxy),
		slog.Int64("system", scan.System),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("deleted", result.Deleted),
		slog.Duration("took", time.Since(start)))
	return result, nil
}

// touchMarker stamps the position-0 row so LastScanAt reflects this scan even
// when the system is empty.
func (s *GalaxyService) touchMarker(ctx context.Context, scan *GalaxyScan) error {
	name := markerEmpty
	if len(scan.Planets) > 0 {
		name = markerScanned
	}

	if err := s.playerRepo.EnsureExists(ctx, models.SystemPlayerID, "System"); err != nil {
		return fmt.Errorf("failed to ensure system player: %w", err)
	}

	marker := &models.Planet{
		Name:        &name,
		PlayerID:    models.SystemPlayerID,
		Coordinates: fmt.Sprintf("%d:%d:0", scan.Galaxy, scan.System),
		Galaxy:      scan.Galaxy,
		System:      scan.System,
		Position:    0,
		Kind:        models.KindPlanet,
		Status:      models.StatusSeen,
	}
	if err := s.planetRepo.UpsertScan(ctx, marker); err != nil {
		return fmt.Errorf("failed to stamp scan marker %d:%d: %w", scan.Galaxy, scan.System, err)
	}
	return nil
}

// GetSystem returns the live rows of one system, marker excluded, together
// with the system's last-scanned timestamp if it was ever scanned.
func (s *GalaxyService) GetSystem(ctx context.Context, galaxy, system int64) ([]*models.Planet, *time.Time, error) {
	planets, err := s.planetRepo.GetSystem(ctx, galaxy, system)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load system %d:%d: %w", galaxy, system, err)
	}
	lastScan, err := s.planetRepo.LastScanAt(ctx, galaxy, system)
	if err != nil {
		lastScan = nil
	}
	return planets, lastScan, nil
}
