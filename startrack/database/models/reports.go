package models

import (
	"time"

	"github.com/uptrace/bun"
)

// All report tables share the same identity rule: the externally supplied
// report id is the natural key, and re-ingestion of the same id replaces the
// stored payload.

type SpyReport struct {
	bun.BaseModel `bun:"table:spy_reports,alias:sr"`

	ID          int64  `bun:"id,pk,autoincrement"`
	ExternalID  int64  `bun:"external_id,notnull,unique"`
	Coordinates string `bun:"coordinates,notnull"`
	Galaxy      int64  `bun:"galaxy,notnull"`
	System      int64  `bun:"system,notnull"`
	Position    int64  `bun:"position,notnull"`
	Kind        string `bun:"kind,notnull,default:'PLANET'"`

	Resources LevelMap `bun:"resources,type:jsonb"`
	Buildings LevelMap `bun:"buildings,type:jsonb"`
	Research  LevelMap `bun:"research,type:jsonb"`
	Fleet     LevelMap `bun:"fleet,type:jsonb"`
	Defense   LevelMap `bun:"defense,type:jsonb"`

	ReportedBy *int64     `bun:"reported_by"`
	ReportTime *time.Time `bun:"report_time"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}

// SpyReportWithReporter joins a spy report with the reporter's player name.
type SpyReportWithReporter struct {
	SpyReport
	ReporterName *string `bun:"reporter_name"`
}

type BattleReport struct {
	bun.BaseModel `bun:"table:battle_reports,alias:br"`

	ID          int64  `bun:"id,pk,autoincrement"`
	ExternalID  int64  `bun:"external_id,notnull,unique"`
	Coordinates string `bun:"coordinates,notnull"`
	Galaxy      int64  `bun:"galaxy,notnull"`
	System      int64  `bun:"system,notnull"`
	Position    int64  `bun:"position,notnull"`
	Kind        string `bun:"kind,notnull,default:'PLANET'"`

	AttackerLost  int64 `bun:"attacker_lost,notnull,default:0"`
	DefenderLost  int64 `bun:"defender_lost,notnull,default:0"`
	Metal         int64 `bun:"metal,notnull,default:0"`
	Crystal       int64 `bun:"crystal,notnull,default:0"`
	Deuterium     int64 `bun:"deuterium,notnull,default:0"`
	DebrisMetal   int64 `bun:"debris_metal,notnull,default:0"`
	DebrisCrystal int64 `bun:"debris_crystal,notnull,default:0"`

	ReportedBy *int64     `bun:"reported_by"`
	ReportTime *time.Time `bun:"report_time"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}

// BattleReportWithReporter joins a battle report with the reporter's name.
type BattleReportWithReporter struct {
	BattleReport
	ReporterName *string `bun:"reporter_name"`
}

type ExpeditionReport struct {
	bun.BaseModel `bun:"table:expedition_reports,alias:er"`

	ID         int64   `bun:"id,pk,autoincrement"`
	ExternalID int64   `bun:"external_id,notnull,unique"`
	Message    *string `bun:"message"`
	Kind       *string `bun:"kind"`

	Resources LevelMap `bun:"resources,type:jsonb"`
	Fleet     LevelMap `bun:"fleet,type:jsonb"`

	ReportedBy *int64     `bun:"reported_by"`
	ReportTime *time.Time `bun:"report_time"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}

type RecycleReport struct {
	bun.BaseModel `bun:"table:recycle_reports,alias:rr"`

	ID          int64  `bun:"id,pk,autoincrement"`
	ExternalID  int64  `bun:"external_id,notnull,unique"`
	Coordinates string `bun:"coordinates,notnull"`
	Galaxy      int64  `bun:"galaxy,notnull"`
	System      int64  `bun:"system,notnull"`
	Position    int64  `bun:"position,notnull"`

	Metal     int64 `bun:"metal,notnull,default:0"`
	Crystal   int64 `bun:"crystal,notnull,default:0"`
	MetalTF   int64 `bun:"metal_tf,notnull,default:0"`
	CrystalTF int64 `bun:"crystal_tf,notnull,default:0"`

	ReportedBy *int64     `bun:"reported_by"`
	ReportTime *time.Time `bun:"report_time"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}

// HostileSpying keeps raw coordinate strings: the attacker may sit outside the
// tracked universe, so there is nothing to join against.
type HostileSpying struct {
	bun.BaseModel `bun:"table:hostile_spying,alias:hs"`

	ID                  int64      `bun:"id,pk,autoincrement"`
	ExternalID          int64      `bun:"external_id,notnull,unique"`
	AttackerCoordinates *string    `bun:"attacker_coordinates"`
	TargetCoordinates   *string    `bun:"target_coordinates"`
	ReportTime          *time.Time `bun:"report_time"`
	CreatedAt           time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}

// HostileSpyingOverview is the attacker-grouped aggregate row.
type HostileSpyingOverview struct {
	AttackerCoordinates string     `bun:"attacker_coordinates"`
	AttackerName        *string    `bun:"attacker_name"`
	AttackerAllianceTag *string    `bun:"attacker_alliance_tag"`
	SpyCount            int64      `bun:"spy_count"`
	LastSpyTime         *time.Time `bun:"last_spy_time"`
	Targets             *string    `bun:"targets"`
}
