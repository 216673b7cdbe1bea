package models

import "time"

// OverviewRow is one planet joined with its owner's score state and the most
// recent historical totals at each lookback boundary. The historical columns
// stay nullable: missing history means "no delta", never zero.
type OverviewRow struct {
	PlanetID    int64   `bun:"planet_id"`
	ExternalID  *int64  `bun:"external_id"`
	Coordinates string  `bun:"coordinates"`
	Galaxy      int64   `bun:"galaxy"`
	System      int64   `bun:"system"`
	Position    int64   `bun:"position"`
	PlayerID    int64   `bun:"player_id"`
	PlayerName  string  `bun:"player_name"`
	AllianceID  *int64  `bun:"alliance_id"`
	AllianceTag *string `bun:"alliance_tag"`
	Notice      *string `bun:"notice"`

	ScoreTotal     int64 `bun:"score_total"`
	ScoreBuildings int64 `bun:"score_buildings"`
	ScoreResearch  int64 `bun:"score_research"`
	ScoreFleet     int64 `bun:"score_fleet"`
	ScoreDefense   int64 `bun:"score_defense"`

	Score6h  *int64 `bun:"score_6h"`
	Score12h *int64 `bun:"score_12h"`
	Score18h *int64 `bun:"score_18h"`
	Score24h *int64 `bun:"score_24h"`

	InactiveSince    *time.Time `bun:"inactive_since"`
	VacationSince    *time.Time `bun:"vacation_since"`
	LastSpyReport    *time.Time `bun:"last_spy_report"`
	LastBattleReport *time.Time `bun:"last_battle_report"`
	SpyMetal         *int64     `bun:"spy_metal"`
	SpyCrystal       *int64     `bun:"spy_crystal"`
	SpyDeuterium     *int64     `bun:"spy_deuterium"`
}

// PlayerLevels is one player's decoded level map, used for leaderboard maxima.
type PlayerLevels struct {
	PlayerID   int64
	PlayerName string
	Levels     LevelMap
}

// ActivityTotals is the raw aggregate over one report table for one reporter.
type ActivityTotals struct {
	Count     int64 `bun:"count"`
	Count24h  int64 `bun:"count_24h"`
	Metal     int64 `bun:"metal"`
	Crystal   int64 `bun:"crystal"`
	Deuterium int64 `bun:"deuterium"`
}

// HubResearchRow carries a player's research map for alliance-wide views.
type HubResearchRow struct {
	PlayerID   int64       `bun:"player_id"`
	PlayerName string      `bun:"player_name"`
	Research   ResearchMap `bun:"research"`
}

// HubFleetRow is one planet's fleet with owner identity and fleet score.
type HubFleetRow struct {
	PlayerID   int64    `bun:"player_id"`
	PlayerName string   `bun:"player_name"`
	ScoreFleet int64    `bun:"score_fleet"`
	Fleet      LevelMap `bun:"fleet"`
}

// HubBuildingsRow is one planet's buildings with owner identity.
type HubBuildingsRow struct {
	PlayerID    int64    `bun:"player_id"`
	PlayerName  string   `bun:"player_name"`
	Coordinates string   `bun:"coordinates"`
	Points      int64    `bun:"points"`
	Buildings   LevelMap `bun:"buildings"`
}
