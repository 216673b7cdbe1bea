package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type ExpeditionReportRepository interface {
	Upsert(ctx context.Context, report *models.ExpeditionReport) error
	GetByReporter(ctx context.Context, reporterID int64, limit int) ([]*models.ExpeditionReport, error)
}

type expeditionReportRepository struct {
	db *bun.DB
}

func NewExpeditionReportRepository(db *bun.DB) ExpeditionReportRepository {
	return &expeditionReportRepository{db: db}
}

func (r *expeditionReportRepository) Upsert(ctx context.Context, report *models.ExpeditionReport) error {
	report.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(report).
		On("CONFLICT (external_id) DO UPDATE").
		Set("message = EXCLUDED.message").
		Set("kind = EXCLUDED.kind").
		Set("resources = EXCLUDED.resources").
		Set("fleet = EXCLUDED.fleet").
		Set("reported_by = EXCLUDED.reported_by").
		Set("report_time = EXCLUDED.report_time").
		Exec(ctx)
	return err
}

func (r *expeditionReportRepository) GetByReporter(ctx context.Context, reporterID int64, limit int) ([]*models.ExpeditionReport, error) {
	var reports []*models.ExpeditionReport
	err := r.db.NewSelect().
		Model(&reports).
		Where("reported_by = ?", reporterID).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	return reports, err
}
