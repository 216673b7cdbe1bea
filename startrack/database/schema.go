package database

import (
	"context"
	"fmt"

	"github.com/voidcrew/startrack/startrack/database/models"
)

// InitializeSchema creates all required tables, unique identity keys, and
// indexes. Safe to run on every startup.
func (db *DB) InitializeSchema(ctx context.Context) error {
	// Order matters for foreign key constraints
	tables := []interface{}{
		(*models.Alliance)(nil),
		(*models.Player)(nil),
		(*models.Planet)(nil),
		(*models.ScoreSnapshot)(nil),
		(*models.SpyReport)(nil),
		(*models.BattleReport)(nil),
		(*models.ExpeditionReport)(nil),
		(*models.RecycleReport)(nil),
		(*models.HostileSpying)(nil),
		(*models.Message)(nil),
		(*models.StatView)(nil),
		(*models.Setting)(nil),
		(*models.User)(nil),
	}

	for _, model := range tables {
		_, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Identity keys the upsert paths conflict on, plus read-path indexes.
	indexes := []string{
		// (coordinates, kind) is the planet identity; position 0 is the system marker
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_planets_identity ON planets(galaxy, system, position, kind);",
		"CREATE INDEX IF NOT EXISTS idx_planets_player_id ON planets(player_id);",
		"CREATE INDEX IF NOT EXISTS idx_planets_status ON planets(status) WHERE status = 'new';",
		"CREATE INDEX IF NOT EXISTS idx_players_alliance_id ON players(alliance_id);",
		"CREATE INDEX IF NOT EXISTS idx_players_name ON players(name);",
		"CREATE INDEX IF NOT EXISTS idx_player_scores_lookup ON player_scores(player_id, recorded_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_spy_reports_coords ON spy_reports(galaxy, system, position, kind, created_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_spy_reports_reporter ON spy_reports(reported_by, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_battle_reports_coords ON battle_reports(galaxy, system, position, created_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_battle_reports_reporter ON battle_reports(reported_by, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_expedition_reports_reporter ON expedition_reports(reported_by, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_recycle_reports_reporter ON recycle_reports(reported_by, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_hostile_spying_attacker ON hostile_spying(attacker_coordinates);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedUniverseDefaults writes universe parameters that are not present yet so
// distance and wrap calculations always have bounds to work with.
func (db *DB) SeedUniverseDefaults(ctx context.Context, galaxies, systems int64, wrapped bool) error {
	defaults := map[string]string{
		models.SettingGalaxies:      fmt.Sprintf("%d", galaxies),
		models.SettingSystems:       fmt.Sprintf("%d", systems),
		models.SettingGalaxyWrapped: fmt.Sprintf("%t", wrapped),
	}

	for key, value := range defaults {
		setting := &models.Setting{Key: key, Value: value}
		_, err := db.bunDB.NewInsert().
			Model(setting).
			On("CONFLICT (key) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	return nil
}
