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

// EmpirePlanet is one planet of an empire snapshot.
type EmpirePlanet struct {
	ExternalID  *int64          `json:"external_id"`
	Name        *string         `json:"name"`
	Coordinates string          `json:"coordinates"`
	FieldsUsed  int64           `json:"fields_used"`
	FieldsMax   int64           `json:"fields_max"`
	Temperature int64           `json:"temperature"`
	Points      int64           `json:"points"`
	Resources   models.LevelMap `json:"resources"`
	Production  EmpireProd      `json:"production"`
	Buildings   models.LevelMap `json:"buildings"`
	Fleet       models.LevelMap `json:"fleet"`
	Defense     models.LevelMap `json:"defense"`
}

type EmpireProd struct {
	Metal      int64 `json:"metal"`
	Crystal    int64 `json:"crystal"`
	Deuterium  int64 `json:"deuterium"`
	EnergyUsed int64 `json:"energy_used"`
	EnergyMax  int64 `json:"energy_max"`
}

// EmpireSnapshot is one player's full per-planet state export.
type EmpireSnapshot struct {
	PlayerID   int64              `json:"player_id"`
	PlayerName string             `json:"player_name"`
	Research   models.ResearchMap `json:"research"`
	Planets    []EmpirePlanet     `json:"planets"`
}

// EmpireSyncResult reports how the snapshot's planets fared.
type EmpireSyncResult struct {
	Synced  int `json:"synced"`
	Skipped int `json:"skipped"`
}

// EmpireService ingests a player's own full snapshot. The snapshot is
// authoritative: each planet's state is replaced wholesale, never merged.
type EmpireService struct {
	playerRepo repositories.PlayerRepository
	planetRepo repositories.PlanetRepository
}

func NewEmpireService(playerRepo repositories.PlayerRepository, planetRepo repositories.PlanetRepository) *EmpireService {
	return &EmpireService{playerRepo: playerRepo, planetRepo: planetRepo}
}

// Sync persists one empire snapshot. callerPlayerID is the authenticated
// user's linked player; it backs the payload's player id when that is absent,
// and callerAllianceID links the player to the caller's alliance.
func (s *EmpireService) Sync(ctx context.Context, snapshot *EmpireSnapshot, callerPlayerID, callerAllianceID *int64) (*EmpireSyncResult, error) {
	playerID := snapshot.PlayerID
	if playerID == 0 {
		if callerPlayerID == nil {
			return nil, fmt.Errorf("snapshot carries no player id and caller has none linked")
		}
		playerID = *callerPlayerID
	}

	name := snapshot.PlayerName
	if name == "" {
		name = "Unknown"
	}
	if err := s.playerRepo.EnsureExists(ctx, playerID, name); err != nil {
		return nil, fmt.Errorf("failed to ensure player %d: %w", playerID, err)
	}
	if callerAllianceID != nil {
		if err := s.playerRepo.UpdateAlliance(ctx, playerID, *callerAllianceID); err != nil {
			return nil, fmt.Errorf("failed to link player %d to alliance: %w", playerID, err)
		}
	}

	if len(snapshot.Research) > 0 {
		if err := s.playerRepo.UpdateResearch(ctx, playerID, snapshot.Research); err != nil {
			return nil, fmt.Errorf("failed to store research of player %d: %w", playerID, err)
		}
	}

	start := time.Now()
	result := &EmpireSyncResult{}
	for _, ep := range snapshot.Planets {
		coords, err := utils.ParseCoordinates(ep.Coordinates)
		if err != nil {
			// One garbled planet must not sink the batch.
			slog.Warn("Skipping empire planet with bad coordinates",
				slog.Int64("player_id", playerID),
				slog.String("coordinates", ep.Coordinates),
				slog.Any("error", err))
			result.Skipped++
			continue
		}

		planet := &models.Planet{
			Name:          ep.Name,
			PlayerID:      playerID,
			Coordinates:   coords.String(),
			Galaxy:        coords.Galaxy,
			System:        coords.System,
			Position:      coords.Position,
			Kind:          models.KindPlanet,
			ExternalID:    ep.ExternalID,
			Buildings:     ep.Buildings,
			Fleet:         ep.Fleet,
			Defense:       ep.Defense,
			Resources:     ep.Resources,
			FieldsUsed:    ep.FieldsUsed,
			FieldsMax:     ep.FieldsMax,
			Temperature:   ep.Temperature,
			Points:        ep.Points,
			ProdMetal:     ep.Production.Metal,
			ProdCrystal:   ep.Production.Crystal,
			ProdDeuterium: ep.Production.Deuterium,
			EnergyUsed:    ep.Production.EnergyUsed,
			EnergyMax:     ep.Production.EnergyMax,
			Status:        models.StatusSeen,
		}
		if err := s.planetRepo.UpsertEmpire(ctx, planet); err != nil {
			return nil, fmt.Errorf("failed to upsert planet %s: %w", planet.Coordinates, err)
		}
		result.Synced++
	}

	slog.Info("Empire snapshot applied",
		slog.Int64("player_id", playerID),
		slog.Int("synced", result.Synced),
		slog.Int("skipped", result.Skipped),
		slog.Duration("took", time.Since(start)))
	return result, nil
}
