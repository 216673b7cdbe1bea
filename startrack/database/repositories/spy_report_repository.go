package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type SpyReportRepository interface {
	// Upsert stores one spy report keyed by its external id. Re-submission of
	// the same id replaces the payload; re-scraped reports are corrections.
	Upsert(ctx context.Context, report *models.SpyReport) error
	GetByCoordinates(ctx context.Context, galaxy, system, position int64, kind string, limit int) ([]*models.SpyReport, error)
	GetBySystem(ctx context.Context, galaxy, system int64) ([]*models.SpyReport, error)
	GetHistory(ctx context.Context, galaxy, system, position int64, kind string, limit int) ([]*models.SpyReportWithReporter, error)
	GetLatest(ctx context.Context, galaxy, system, position int64) (*models.SpyReportWithReporter, error)
}

type spyReportRepository struct {
	db *bun.DB
}

func NewSpyReportRepository(db *bun.DB) SpyReportRepository {
	return &spyReportRepository{db: db}
}

func (r *spyReportRepository) Upsert(ctx context.Context, report *models.SpyReport) error {
	report.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(report).
		On("CONFLICT (external_id) DO UPDATE").
		Set("coordinates = EXCLUDED.coordinates").
		Set("galaxy = EXCLUDED.galaxy").
		Set("system = EXCLUDED.system").
		Set("position = EXCLUDED.position").
		Set("kind = EXCLUDED.kind").
		Set("resources = EXCLUDED.resources").
		Set("buildings = EXCLUDED.buildings").
		Set("research = EXCLUDED.research").
		Set("fleet = EXCLUDED.fleet").
		Set("defense = EXCLUDED.defense").
		Set("reported_by = EXCLUDED.reported_by").
		Set("report_time = EXCLUDED.report_time").
		Exec(ctx)
	return err
}

func (r *spyReportRepository) GetByCoordinates(ctx context.Context, galaxy, system, position int64, kind string, limit int) ([]*models.SpyReport, error) {
	var reports []*models.SpyReport
	err := r.db.NewSelect().
		Model(&reports).
		Where("galaxy = ? AND system = ? AND position = ? AND kind = ?", galaxy, system, position, kind).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return reports, err
}

func (r *spyReportRepository) GetBySystem(ctx context.Context, galaxy, system int64) ([]*models.SpyReport, error) {
	var reports []*models.SpyReport
	err := r.db.NewSelect().
		Model(&reports).
		Where("galaxy = ? AND system = ?", galaxy, system).
		Order("position ASC", "created_at DESC").
		Scan(ctx)
	return reports, err
}

func (r *spyReportRepository) GetHistory(ctx context.Context, galaxy, system, position int64, kind string, limit int) ([]*models.SpyReportWithReporter, error) {
	var reports []*models.SpyReportWithReporter
	err := r.db.NewSelect().
		Model((*models.SpyReport)(nil)).
		ColumnExpr("sr.*").
		ColumnExpr("pl.name AS reporter_name").
		Join("LEFT JOIN players AS pl ON pl.id = sr.reported_by").
		Where("sr.galaxy = ? AND sr.system = ? AND sr.position = ? AND sr.kind = ?", galaxy, system, position, kind).
		OrderExpr("sr.created_at DESC").
		Limit(limit).
		Scan(ctx, &reports)
	return reports, err
}

func (r *spyReportRepository) GetLatest(ctx context.Context, galaxy, system, position int64) (*models.SpyReportWithReporter, error) {
	report := new(models.SpyReportWithReporter)
	err := r.db.NewSelect().
		Model((*models.SpyReport)(nil)).
		ColumnExpr("sr.*").
		ColumnExpr("pl.name AS reporter_name").
		Join("LEFT JOIN players AS pl ON pl.id = sr.reported_by").
		Where("sr.galaxy = ? AND sr.system = ? AND sr.position = ?", galaxy, system, position).
		OrderExpr("sr.created_at DESC").
		Limit(1).
		Scan(ctx, report)
	if err != nil {
		return nil, err
	}
	return report, nil
}
