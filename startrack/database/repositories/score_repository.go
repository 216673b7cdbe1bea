package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type ScoreRepository interface {
	// Append records one score snapshot. History is append-only; rows are
	// never updated or deleted.
	Append(ctx context.Context, snapshot *models.ScoreSnapshot) error
	GetChart(ctx context.Context, playerID int64) ([]*models.ScoreSnapshot, error)
	GetChartSince(ctx context.Context, playerID int64, since time.Time) ([]*models.ScoreSnapshot, error)
	GetAllianceChart(ctx context.Context, allianceID int64) ([]*models.ScoreSnapshot, error)
}

type scoreRepository struct {
	db *bun.DB
}

func NewScoreRepository(db *bun.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Append(ctx context.Context, snapshot *models.ScoreSnapshot) error {
	if snapshot.RecordedAt.IsZero() {
		snapshot.RecordedAt = time.Now()
	}
	_, err := r.db.NewInsert().
		Model(snapshot).
		Exec(ctx)
	return err
}

func (r *scoreRepository) GetChart(ctx context.Context, playerID int64) ([]*models.ScoreSnapshot, error) {
	var snapshots []*models.ScoreSnapshot
	err := r.db.NewSelect().
		Model(&snapshots).
		Where("player_id = ?", playerID).
		Order("recorded_at ASC").
		Scan(ctx)
	return snapshots, err
}

func (r *scoreRepository) GetChartSince(ctx context.Context, playerID int64, since time.Time) ([]*models.ScoreSnapshot, error) {
	var snapshots []*models.ScoreSnapshot
	err := r.db.NewSelect().
		Model(&snapshots).
		Where("player_id = ?", playerID).
		Where("recorded_at >= ?", since).
		Order("recorded_at ASC").
		Scan(ctx)
	return snapshots, err
}

func (r *scoreRepository) GetAllianceChart(ctx context.Context, allianceID int64) ([]*models.ScoreSnapshot, error) {
	var snapshots []*models.ScoreSnapshot
	err := r.db.NewSelect().
		Model(&snapshots).
		Join("JOIN players AS pl ON pl.id = ps.player_id").
		Where("pl.alliance_id = ?", allianceID).
		Order("recorded_at ASC").
		Scan(ctx)
	return snapshots, err
}
