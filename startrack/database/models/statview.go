package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Known stat types for leaderboard syncs.
const (
	StatTotal     = "total"
	StatFleet     = "fleet"
	StatResearch  = "research"
	StatBuildings = "buildings"
	StatDefense   = "defense"
	StatHonor     = "honor"
)

// ValidStatType reports whether s names a known leaderboard page.
func ValidStatType(s string) bool {
	switch s {
	case StatTotal, StatFleet, StatResearch, StatBuildings, StatDefense, StatHonor:
		return true
	}
	return false
}

// StatView records the last time each leaderboard page was synced.
type StatView struct {
	bun.BaseModel `bun:"table:stat_views,alias:sv"`

	ID         int64      `bun:"id,pk,autoincrement"`
	StatType   string     `bun:"stat_type,notnull,unique"`
	LastSyncAt *time.Time `bun:"last_sync_at"`
	SyncedBy   *int64     `bun:"synced_by"`
}
