package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type RecycleReportRepository interface {
	Upsert(ctx context.Context, report *models.RecycleReport) error
}

type recycleReportRepository struct {
	db *bun.DB
}

func NewRecycleReportRepository(db *bun.DB) RecycleReportRepository {
	return &recycleReportRepository{db: db}
}

func (r *recycleReportRepository) Upsert(ctx context.Context, report *models.RecycleReport) error {
	report.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(report).
		On("CONFLICT (external_id) DO UPDATE").
		Set("coordinates = EXCLUDED.coordinates").
		Set("galaxy = EXCLUDED.galaxy").
		Set("system = EXCLUDED.system").
		Set("position = EXCLUDED.position").
		Set("metal = EXCLUDED.metal").
		Set("crystal = EXCLUDED.crystal").
		Set("metal_tf = EXCLUDED.metal_tf").
		Set("crystal_tf = EXCLUDED.crystal_tf").
		Set("reported_by = EXCLUDED.reported_by").
		Set("report_time = EXCLUDED.report_time").
		Exec(ctx)
	return err
}
