package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ScoreSnapshot is one append-only record of a player's score totals. Rows are
// never updated or deleted; time-window deltas are computed against them.
type ScoreSnapshot struct {
	bun.BaseModel `bun:"table:player_scores,alias:ps"`

	ID       int64 `bun:"id,pk,autoincrement"`
	PlayerID int64 `bun:"player_id,notnull"`

	ScoreTotal     int64 `bun:"score_total,notnull,default:0"`
	ScoreBuildings int64 `bun:"score_buildings,notnull,default:0"`
	ScoreResearch  int64 `bun:"score_research,notnull,default:0"`
	ScoreFleet     int64 `bun:"score_fleet,notnull,default:0"`
	ScoreDefense   int64 `bun:"score_defense,notnull,default:0"`

	RankTotal     *int64 `bun:"rank_total"`
	RankBuildings *int64 `bun:"rank_buildings"`
	RankResearch  *int64 `bun:"rank_research"`
	RankFleet     *int64 `bun:"rank_fleet"`
	RankDefense   *int64 `bun:"rank_defense"`

	RecordedAt time.Time `bun:"recorded_at,notnull,default:current_timestamp"`
}
