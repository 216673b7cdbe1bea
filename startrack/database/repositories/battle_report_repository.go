package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type BattleReportRepository interface {
	Upsert(ctx context.Context, report *models.BattleReport) error
	GetHistory(ctx context.Context, galaxy, system, position int64, limit int) ([]*models.BattleReportWithReporter, error)
}

type battleReportRepository struct {
	db *bun.DB
}

func NewBattleReportRepository(db *bun.DB) BattleReportRepository {
	return &battleReportRepository{db: db}
}

func (r *battleReportRepository) Upsert(ctx context.Context, report *models.BattleReport) error {
	report.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(report).
		On("CONFLICT (external_id) DO UPDATE").
		Set("coordinates = EXCLUDED.coordinates").
		Set("galaxy = EXCLUDED.galaxy").
		Set("system = EXCLUDED.system").
		Set("position = EXCLUDED.position").
		Set("kind = EXCLUDED.kind").
		Set("attacker_lost = EXCLUDED.attacker_lost").
		Set("defender_lost = EXCLUDED.defender_lost").
		Set("metal = EXCLUDED.metal").
		Set("crystal = EXCLUDED.crystal").
		Set("deuterium = EXCLUDED.deuterium").
		Set("debris_metal = EXCLUDED.debris_metal").
		Set("debris_crystal = EXCLUDED.debris_crystal").
		Set("reported_by = EXCLUDED.reported_by").
		Set("report_time = EXCLUDED.report_time").
		Exec(ctx)
	return err
}

func (r *battleReportRepository) GetHistory(ctx context.Context, galaxy, system, position int64, limit int) ([]*models.BattleReportWithReporter, error) {
	var reports []*models.BattleReportWithReporter
	err := r.db.NewSelect().
		Model((*models.BattleReport)(nil)).
		ColumnExpr("br.*").
		ColumnExpr("pl.name AS reporter_name").
		Join("LEFT JOIN players AS pl ON pl.id = br.reported_by").
		Where("br.galaxy = ? AND br.system = ? AND br.position = ?", galaxy, system, position).
		OrderExpr("br.created_at DESC").
		Limit(limit).
		Scan(ctx, &reports)
	return reports, err
}
