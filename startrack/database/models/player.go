package models

import (
	"time"

	"github.com/uptrace/bun"
)

// SystemPlayerID owns the synthetic position-0 marker rows that record when a
// system was last scanned.
const SystemPlayerID int64 = 0

// ResearchMap maps a tech id (as string, matching the game's numeric ids) to
// its level. Stored as JSONB.
type ResearchMap map[string]int64

type Player struct {
	bun.BaseModel `bun:"table:players,alias:pl"`

	ID              int64       `bun:"id,pk"`
	Name            string      `bun:"name,notnull"`
	AllianceID      *int64      `bun:"alliance_id"`
	MainCoordinates *string     `bun:"main_coordinates"`
	IsDeleted       bool        `bun:"is_deleted,notnull,default:false"`
	InactiveSince   *time.Time  `bun:"inactive_since"`
	VacationSince   *time.Time  `bun:"vacation_since"`
	Notice          *string     `bun:"notice"`
	Research        ResearchMap `bun:"research,type:jsonb"`

	// Score snapshot (latest known values, history lives in player_scores)
	ScoreBuildings     int64 `bun:"score_buildings,notnull,default:0"`
	ScoreBuildingsRank int64 `bun:"score_buildings_rank,notnull,default:0"`
	ScoreResearch      int64 `bun:"score_research,notnull,default:0"`
	ScoreResearchRank  int64 `bun:"score_research_rank,notnull,default:0"`
	ScoreFleet         int64 `bun:"score_fleet,notnull,default:0"`
	ScoreFleetRank     int64 `bun:"score_fleet_rank,notnull,default:0"`
	ScoreDefense       int64 `bun:"score_defense,notnull,default:0"`
	ScoreDefenseRank   int64 `bun:"score_defense_rank,notnull,default:0"`
	ScoreTotal         int64 `bun:"score_total,notnull,default:0"`
	ScoreTotalRank     int64 `bun:"score_total_rank,notnull,default:0"`
	Honorpoints        int64 `bun:"honorpoints,notnull,default:0"`
	HonorpointsRank    int64 `bun:"honorpoints_rank,notnull,default:0"`

	// Combat totals
	CombatsTotal int64 `bun:"combats_total,notnull,default:0"`
	CombatsWon   int64 `bun:"combats_won,notnull,default:0"`
	CombatsDraw  int64 `bun:"combats_draw,notnull,default:0"`
	CombatsLost  int64 `bun:"combats_lost,notnull,default:0"`
	UnitsShot    int64 `bun:"units_shot,notnull,default:0"`
	UnitsLost    int64 `bun:"units_lost,notnull,default:0"`

	FightsHonorable    int64 `bun:"fights_honorable,notnull,default:0"`
	FightsDishonorable int64 `bun:"fights_dishonorable,notnull,default:0"`
	FightsNeutral      int64 `bun:"fights_neutral,notnull,default:0"`

	// Destruction involvement (battles the player took part in)
	DestructionUnitsKilled     int64 `bun:"destruction_units_killed,notnull,default:0"`
	DestructionUnitsLost       int64 `bun:"destruction_units_lost,notnull,default:0"`
	DestructionRecycledMetal   int64 `bun:"destruction_recycled_metal,notnull,default:0"`
	DestructionRecycledCrystal int64 `bun:"destruction_recycled_crystal,notnull,default:0"`

	// Destruction caused by the player
	RealDestructionUnitsKilled     int64 `bun:"real_destruction_units_killed,notnull,default:0"`
	RealDestructionUnitsLost       int64 `bun:"real_destruction_units_lost,notnull,default:0"`
	RealDestructionRecycledMetal   int64 `bun:"real_destruction_recycled_metal,notnull,default:0"`
	RealDestructionRecycledCrystal int64 `bun:"real_destruction_recycled_crystal,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// PlayerWithAlliance is a Player joined with its alliance name/tag.
type PlayerWithAlliance struct {
	Player
	AllianceName *string `bun:"alliance_name"`
	AllianceTag  *string `bun:"alliance_tag"`
}

// InactivePlayer is the reduced row used by the farm listing.
type InactivePlayer struct {
	Name           string     `bun:"name"`
	ScoreTotal     int64      `bun:"score_total"`
	ScoreFleet     int64      `bun:"score_fleet"`
	ScoreBuildings int64      `bun:"score_buildings"`
	InactiveSince  *time.Time `bun:"inactive_since"`
}
