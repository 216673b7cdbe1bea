package repositories

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

// HubRepository serves the read-only aggregate views. Everything here is raw
// SQL: the lookback subselects and jsonb sums do not map onto the query
// builder.
type HubRepository interface {
	Overview(ctx context.Context) ([]*models.OverviewRow, error)
	ResearchByAlliance(ctx context.Context, allianceID int64) ([]*models.HubResearchRow, error)
	FleetByAlliance(ctx context.Context, allianceID int64) ([]*models.HubFleetRow, error)
	BuildingsByAlliance(ctx context.Context, allianceID int64) ([]*models.HubBuildingsRow, error)
	ExpeditionTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error)
	RaidTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error)
	RecycleTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error)
}

type hubRepository struct {
	db *bun.DB
}

func NewHubRepository(db *bun.DB) HubRepository {
	return &hubRepository{db: db}
}

func (r *hubRepository) Overview(ctx context.Context) ([]*models.OverviewRow, error) {
	slog.Debug("HubRepository.Overview called", slog.String("type", "db"))

	var rows []*models.OverviewRow
	err := r.db.NewRaw(`
		SELECT
			p.id AS planet_id,
			p.external_id,
			p.coordinates,
			p.galaxy,
			p.system,
			p.position,
			p.player_id,
			pl.name AS player_name,
			pl.alliance_id,
			a.tag AS alliance_tag,
			pl.notice,
			pl.score_total,
			pl.score_buildings,
			pl.score_research,
			pl.score_fleet,
			pl.score_defense,
			(SELECT ps.score_total FROM player_scores ps
			 WHERE ps.player_id = pl.id AND ps.recorded_at <= now() - interval '6 hours'
			 ORDER BY ps.recorded_at DESC LIMIT 1) AS score_6h,
			(SELECT ps.score_total FROM player_scores ps
			 WHERE ps.player_id = pl.id AND ps.recorded_at <= now() - interval '12 hours'
			 ORDER BY ps.recorded_at DESC LIMIT 1) AS score_12h,
			(SELECT ps.score_total FROM player_scores ps
			 WHERE ps.player_id = pl.id AND ps.recorded_at <= now() - interval '18 hours'
			 ORDER BY ps.recorded_at DESC LIMIT 1) AS score_18h,
			(SELECT ps.score_total FROM player_scores ps
			 WHERE ps.player_id = pl.id AND ps.recorded_at <= now() - interval '24 hours'
			 ORDER BY ps.recorded_at DESC LIMIT 1) AS score_24h,
			pl.inactive_since,
			pl.vacation_since,
			(SELECT MAX(sr.created_at) FROM spy_reports sr
			 WHERE sr.galaxy = p.galaxy AND sr.system = p.system AND sr.position = p.position
			 AND sr.kind = 'PLANET') AS last_spy_report,
			(SELECT MAX(br.created_at) FROM battle_reports br
			 WHERE br.galaxy = p.galaxy AND br.system = p.system AND br.position = p.position) AS last_battle_report,
			(SELECT (sr.resources->>'901')::bigint FROM spy_reports sr
			 WHERE sr.galaxy = p.galaxy AND sr.system = p.system AND sr.position = p.position
			 AND sr.kind = 'PLANET' ORDER BY sr.created_at DESC LIMIT 1) AS spy_metal,
			(SELECT (sr.resources->>'902')::bigint FROM spy_reports sr
			 WHERE sr.galaxy = p.galaxy AND sr.system = p.system AND sr.position = p.position
			 AND sr.kind = 'PLANET' ORDER BY sr.created_at DESC LIMIT 1) AS spy_crystal,
			(SELECT (sr.resources->>'903')::bigint FROM spy_reports sr
			 WHERE sr.galaxy = p.galaxy AND sr.system = p.system AND sr.position = p.position
			 AND sr.kind = 'PLANET' ORDER BY sr.created_at DESC LIMIT 1) AS spy_deuterium
		FROM planets p
		JOIN players pl ON p.player_id = pl.id
		LEFT JOIN alliances a ON pl.alliance_id = a.id
		WHERE p.kind = 'PLANET'
		  AND p.position > 0
		  AND pl.id != 0
		ORDER BY p.galaxy, p.system, p.position
	`).Scan(ctx, &rows)
	return rows, err
}

func (r *hubRepository) ResearchByAlliance(ctx context.Context, allianceID int64) ([]*models.HubResearchRow, error) {
	var rows []*models.HubResearchRow
	err := r.db.NewRaw(`
		SELECT pl.id AS player_id, pl.name AS player_name, pl.research
		FROM players pl
		WHERE pl.alliance_id = ? AND pl.research IS NOT NULL
		ORDER BY pl.id
	`, allianceID).Scan(ctx, &rows)
	return rows, err
}

func (r *hubRepository) FleetByAlliance(ctx context.Context, allianceID int64) ([]*models.HubFleetRow, error) {
	var rows []*models.HubFleetRow
	err := r.db.NewRaw(`
		SELECT pl.id AS player_id, pl.name AS player_name, pl.score_fleet, p.fleet
		FROM players pl
		LEFT JOIN planets p ON p.player_id = pl.id AND p.status != 'deleted'
		WHERE pl.alliance_id = ?
		ORDER BY pl.id
	`, allianceID).Scan(ctx, &rows)
	return rows, err
}

func (r *hubRepository) BuildingsByAlliance(ctx context.Context, allianceID int64) ([]*models.HubBuildingsRow, error) {
	var rows []*models.HubBuildingsRow
	err := r.db.NewRaw(`
		SELECT pl.id AS player_id, pl.name AS player_name, p.coordinates, p.points, p.buildings
		FROM planets p
		JOIN players pl ON p.player_id = pl.id
		WHERE pl.alliance_id = ? AND p.kind = 'PLANET' AND p.status != 'deleted'
		ORDER BY pl.id, p.galaxy, p.system, p.position
	`, allianceID).Scan(ctx, &rows)
	return rows, err
}

func (r *hubRepository) ExpeditionTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error) {
	totals := new(models.ActivityTotals)
	err := r.db.NewRaw(`
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN created_at > now() - interval '24 hours' THEN 1 ELSE 0 END), 0) AS count_24h,
			COALESCE(SUM((resources->>'901')::bigint), 0) AS metal,
			COALESCE(SUM((resources->>'902')::bigint), 0) AS crystal,
			COALESCE(SUM((resources->>'903')::bigint), 0) AS deuterium
		FROM expedition_reports
		WHERE reported_by = ?
	`, reporterID).Scan(ctx, totals)
	return totals, err
}

func (r *hubRepository) RaidTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error) {
	totals := new(models.ActivityTotals)
	err := r.db.NewRaw(`
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN created_at > now() - interval '24 hours' THEN 1 ELSE 0 END), 0) AS count_24h,
			COALESCE(SUM(metal), 0) AS metal,
			COALESCE(SUM(crystal), 0) AS crystal,
			COALESCE(SUM(deuterium), 0) AS deuterium
		FROM battle_reports
		WHERE reported_by = ?
	`, reporterID).Scan(ctx, totals)
	return totals, err
}

func (r *hubRepository) RecycleTotals(ctx context.Context, reporterID int64) (*models.ActivityTotals, error) {
	totals := new(models.ActivityTotals)
	err := r.db.NewRaw(`
		SELECT
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN created_at > now() - interval '24 hours' THEN 1 ELSE 0 END), 0) AS count_24h,
			COALESCE(SUM(metal), 0) AS metal,
			COALESCE(SUM(crystal), 0) AS crystal,
			0::bigint AS deuterium
		FROM recycle_reports
		WHERE reported_by = ?
	`, reporterID).Scan(ctx, totals)
	return totals, err
}
