package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voidcrew/startrack/startrack/database/models"
	"github.com/voidcrew/startrack/startrack/database/repositories"
)

// StatisticsEntry is one row of a scraped leaderboard page.
type StatisticsEntry struct {
	PlayerID     int64   `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	AllianceID   *int64  `json:"alliance_id"`
	AllianceTag  *string `json:"alliance_tag"`
	Rank         int64   `json:"rank"`
	Score        int64   `json:"score"`
	Inactive     bool    `json:"inactive"`
	LongInactive bool    `json:"long_inactive"`
	OnVacation   bool    `json:"on_vacation"`
}

// StatisticsSync is one full leaderboard page of a single stat type.
type StatisticsSync struct {
	StatType string            `json:"stat_type"`
	Players  []StatisticsEntry `json:"players"`
}

// StatisticsService ingests leaderboard pages. Current values land on the
// player row; only the `total` page appends to score history, so deltas are
// computed from one consistent series.
type StatisticsService struct {
	playerRepo   repositories.PlayerRepository
	allianceRepo repositories.AllianceRepository
	scoreRepo    repositories.ScoreRepository
	statViewRepo repositories.StatViewRepository
}

func NewStatisticsService(
	playerRepo repositories.PlayerRepository,
	allianceRepo repositories.AllianceRepository,
	scoreRepo repositories.ScoreRepository,
	statViewRepo repositories.StatViewRepository,
) *StatisticsService {
	return &StatisticsService{
		playerRepo:   playerRepo,
		allianceRepo: allianceRepo,
		scoreRepo:    scoreRepo,
		statViewRepo: statViewRepo,
	}
}

func (s *StatisticsService) Sync(ctx context.Context, sync *StatisticsSync, syncedBy *int64) error {
	if !models.ValidStatType(sync.StatType) {
		return fmt.Errorf("unknown stat type %q", sync.StatType)
	}
	start := time.Now()

	for _, entry := range sync.Players {
		if entry.PlayerID == 0 {
			continue
		}

		name := entry.PlayerName
		if name == "" {
			name = "Unknown"
		}
		// Leaderboard names are authoritative, unlike scan names.
		if err := s.playerRepo.UpdateName(ctx, entry.PlayerID, name); err != nil {
			return fmt.Errorf("failed to upsert player %d: %w", entry.PlayerID, err)
		}

		if entry.AllianceID != nil && entry.AllianceTag != nil && *entry.AllianceTag != "" {
			if err := s.allianceRepo.EnsureExists(ctx, *entry.AllianceID, *entry.AllianceTag); err != nil {
				return fmt.Errorf("failed to ensure alliance %d: %w", *entry.AllianceID, err)
			}
			if err := s.playerRepo.UpdateAlliance(ctx, entry.PlayerID, *entry.AllianceID); err != nil {
				return fmt.Errorf("failed to link player %d to alliance %d: %w", entry.PlayerID, *entry.AllianceID, err)
			}
		}

		if err := s.playerRepo.UpdateScore(ctx, entry.PlayerID, sync.StatType, entry.Score, entry.Rank); err != nil {
			return fmt.Errorf("failed to update %s score of player %d: %w", sync.StatType, entry.PlayerID, err)
		}

		if entry.Inactive || entry.LongInactive {
			if err := s.playerRepo.SetInactiveSince(ctx, entry.PlayerID); err != nil {
				return fmt.Errorf("failed to flag player %d inactive: %w", entry.PlayerID, err)
			}
		} else {
			if err := s.playerRepo.ClearInactive(ctx, entry.PlayerID); err != nil {
				return fmt.Errorf("failed to clear inactivity of player %d: %w", entry.PlayerID, err)
			}
		}
		if entry.OnVacation {
			if err := s.playerRepo.SetVacationSince(ctx, entry.PlayerID); err != nil {
				return fmt.Errorf("failed to flag player %d on vacation: %w", entry.PlayerID, err)
			}
		} else {
			if err := s.playerRepo.ClearVacation(ctx, entry.PlayerID); err != nil {
				return fmt.Errorf("failed to clear vacation of player %d: %w", entry.PlayerID, err)
			}
		}

		if sync.StatType == models.StatTotal {
			rank := entry.Rank
			snapshot := &models.ScoreSnapshot{
				PlayerID:   entry.PlayerID,
				ScoreTotal: entry.Score,
				RankTotal:  &rank,
			}
			if err := s.scoreRepo.Append(ctx, snapshot); err != nil {
				return fmt.Errorf("failed to append score history of player %d: %w", entry.PlayerID, err)
			}
		}
	}

	if err := s.statViewRepo.Touch(ctx, sync.StatType, syncedBy, time.Now()); err != nil {
		return fmt.Errorf("failed to record %s sync time: %w", sync.StatType, err)
	}

	slog.Info("Statistics page applied",
		slog.String("stat_type", sync.StatType),
		slog.Int("players", len(sync.Players)),
		slog.Duration("took", time.Since(start)))
	return nil
}
