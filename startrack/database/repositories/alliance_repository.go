package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type AllianceRepository interface {
	// EnsureExists inserts an alliance known only by id+tag, or refreshes the
	// tag on conflict. The tag doubles as the name until a richer source
	// supplies one.
	EnsureExists(ctx context.Context, id int64, tag string) error
	UpdateName(ctx context.Context, id int64, name string) error
	GetByID(ctx context.Context, id int64) (*models.Alliance, error)
	GetByNameOrTag(ctx context.Context, nameOrTag string) (*models.Alliance, error)
	GetAll(ctx context.Context) ([]*models.Alliance, error)
}

type allianceRepository struct {
	db *bun.DB
}

func NewAllianceRepository(db *bun.DB) AllianceRepository {
	return &allianceRepository{db: db}
}

func (r *allianceRepository) EnsureExists(ctx context.Context, id int64, tag string) error {
	alliance := &models.Alliance{ID: id, Name: tag, Tag: tag}
	_, err := r.db.NewInsert().
		Model(alliance).
		On("CONFLICT (id) DO UPDATE").
		Set("tag = EXCLUDED.tag").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	return err
}

func (r *allianceRepository) UpdateName(ctx context.Context, id int64, name string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Alliance)(nil)).
		Set("name = ?", name).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *allianceRepository) GetByID(ctx context.Context, id int64) (*models.Alliance, error) {
	alliance := new(models.Alliance)
	err := r.db.NewSelect().
		Model(alliance).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return alliance, nil
}

func (r *allianceRepository) GetByNameOrTag(ctx context.Context, nameOrTag string) (*models.Alliance, error) {
	alliance := new(models.Alliance)
	err := r.db.NewSelect().
		Model(alliance).
		Where("LOWER(name) = LOWER(?) OR LOWER(tag) = LOWER(?)", nameOrTag, nameOrTag).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return alliance, nil
}

func (r *allianceRepository) GetAll(ctx context.Context) ([]*models.Alliance, error) {
	var alliances []*models.Alliance
	err := r.db.NewSelect().
		Model(&alliances).
		Order("id ASC").
		Scan(ctx)
	return alliances, err
}
