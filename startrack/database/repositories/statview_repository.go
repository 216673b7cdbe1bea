package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type StatViewRepository interface {
	Touch(ctx context.Context, statType string, syncedBy *int64, at time.Time) error
	GetAll(ctx context.Context) ([]*models.StatView, error)
}

type statViewRepository struct {
	db *bun.DB
}

func NewStatViewRepository(db *bun.DB) StatViewRepository {
	return &statViewRepository{db: db}
}

func (r *statViewRepository) Touch(ctx context.Context, statType string, syncedBy *int64, at time.Time) error {
	view := &models.StatView{
		StatType:   statType,
		LastSyncAt: &at,
		SyncedBy:   syncedBy,
	}
	_, err := r.db.NewInsert().
		Model(view).
		On("CONFLICT (stat_type) DO UPDATE").
		Set("last_sync_at = EXCLUDED.last_sync_at").
		Set("synced_by = EXCLUDED.synced_by").
		Exec(ctx)
	return err
}

func (r *statViewRepository) GetAll(ctx context.Context) ([]*models.StatView, error) {
	var views []*models.StatView
	err := r.db.NewSelect().
		Model(&views).
		Order("stat_type ASC").
		Scan(ctx)
	return views, err
}
