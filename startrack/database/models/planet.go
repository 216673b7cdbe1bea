package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Planet kinds. A coordinate triple holds at most one row per kind.
const (
	KindPlanet = "PLANET"
	KindMoon   = "MOON"
)

// Planet lifecycle states.
const (
	StatusNew     = "new"
	StatusSeen    = "seen"
	StatusDeleted = "deleted"
)

// LevelMap maps a building/ship/defense/resource id to a level or count.
// Stored as JSONB.
type LevelMap map[string]int64

type Planet struct {
	bun.BaseModel `bun:"table:planets,alias:p"`

	ID          int64   `bun:"id,pk,autoincrement"`
	Name        *string `bun:"name"`
	PlayerID    int64   `bun:"player_id,notnull"`
	Coordinates string  `bun:"coordinates,notnull"`
	Galaxy      int64   `bun:"galaxy,notnull"`
	System      int64   `bun:"system,notnull"`
	Position    int64   `bun:"position,notnull"`
	Kind        string  `bun:"kind,notnull,default:'PLANET'"`

	// Game-internal planet id, only exposed by some scan sources. Preserved
	// across scans that do not supply it.
	ExternalID *int64 `bun:"external_id"`

	Buildings LevelMap `bun:"buildings,type:jsonb"`
	Fleet     LevelMap `bun:"fleet,type:jsonb"`
	Defense   LevelMap `bun:"defense,type:jsonb"`
	Resources LevelMap `bun:"resources,type:jsonb"`

	FieldsUsed  int64 `bun:"fields_used,notnull,default:0"`
	FieldsMax   int64 `bun:"fields_max,notnull,default:0"`
	Temperature int64 `bun:"temperature,notnull,default:0"`
	Points      int64 `bun:"points,notnull,default:0"`

	ProdMetal     int64 `bun:"prod_metal,notnull,default:0"`
	ProdCrystal   int64 `bun:"prod_crystal,notnull,default:0"`
	ProdDeuterium int64 `bun:"prod_deuterium,notnull,default:0"`
	EnergyUsed    int64 `bun:"energy_used,notnull,default:0"`
	EnergyMax     int64 `bun:"energy_max,notnull,default:0"`

	Status    string    `bun:"status,notnull,default:'new'"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// NewPlanet is the reduced row used by the new-planet notification listing.
type NewPlanet struct {
	ID          int64      `bun:"id"`
	Galaxy      int64      `bun:"galaxy"`
	System      int64      `bun:"system"`
	Position    int64      `bun:"position"`
	PlayerName  *string    `bun:"player_name"`
	AllianceTag *string    `bun:"alliance_tag"`
	CreatedAt   *time.Time `bun:"created_at"`
}

// SystemScan pairs a system with the marker row's update time.
type SystemScan struct {
	Galaxy     int64      `bun:"galaxy"`
	System     int64      `bun:"system"`
	LastScanAt *time.Time `bun:"last_scan_at"`
}
