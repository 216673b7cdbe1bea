package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type HostileSpyingRepository interface {
	Upsert(ctx context.Context, record *models.HostileSpying) error
	Get(ctx context.Context, search string, limit, offset int) ([]*models.HostileSpying, error)
	Count(ctx context.Context, search string) (int, error)
	GetOverview(ctx context.Context, attacker, target string, limit, offset int) ([]*models.HostileSpyingOverview, error)
	CountOverview(ctx context.Context, attacker, target string) (int, error)
}

type hostileSpyingRepository struct {
	db *bun.DB
}

func NewHostileSpyingRepository(db *bun.DB) HostileSpyingRepository {
	return &hostileSpyingRepository{db: db}
}

func (r *hostileSpyingRepository) Upsert(ctx context.Context, record *models.HostileSpying) error {
	record.CreatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (external_id) DO UPDATE").
		Set("attacker_coordinates = EXCLUDED.attacker_coordinates").
		Set("target_coordinates = EXCLUDED.target_coordinates").
		Set("report_time = EXCLUDED.report_time").
		Exec(ctx)
	return err
}

func (r *hostileSpyingRepository) Get(ctx context.Context, search string, limit, offset int) ([]*models.HostileSpying, error) {
	var records []*models.HostileSpying
	q := r.db.NewSelect().
		Model(&records).
		Order("report_time DESC NULLS LAST", "created_at DESC")
	if search != "" {
		q = q.Where("attacker_coordinates LIKE ? OR target_coordinates LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	err := q.Limit(limit).Offset(offset).Scan(ctx)
	return records, err
}

func (r *hostileSpyingRepository) Count(ctx context.Context, search string) (int, error) {
	q := r.db.NewSelect().Model((*models.HostileSpying)(nil))
	if search != "" {
		q = q.Where("attacker_coordinates LIKE ? OR target_coordinates LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	return q.Count(ctx)
}

func (r *hostileSpyingRepository) GetOverview(ctx context.Context, attacker, target string, limit, offset int) ([]*models.HostileSpyingOverview, error) {
	var rows []*models.HostileSpyingOverview
	err := r.db.NewRaw(`
		SELECT
			hs.attacker_coordinates,
			pl.name AS attacker_name,
			a.tag AS attacker_alliance_tag,
			COUNT(*) AS spy_count,
			MAX(hs.report_time) AS last_spy_time,
			STRING_AGG(DISTINCT hs.target_coordinates, ',') AS targets
		FROM hostile_spying hs
		LEFT JOIN planets p ON p.coordinates = hs.attacker_coordinates AND p.kind = 'PLANET'
		LEFT JOIN players pl ON pl.id = p.player_id
		LEFT JOIN alliances a ON a.id = pl.alliance_id
		WHERE hs.attacker_coordinates IS NOT NULL
		  AND (? = '' OR hs.attacker_coordinates LIKE '%' || ? || '%')
		  AND (? = '' OR hs.target_coordinates LIKE '%' || ? || '%')
		GROUP BY hs.attacker_coordinates, pl.name, a.tag
		ORDER BY MAX(hs.report_time) DESC NULLS LAST
		LIMIT ? OFFSET ?
	`, attacker, attacker, target, target, limit, offset).Scan(ctx, &rows)
	return rows, err
}

func (r *hostileSpyingRepository) CountOverview(ctx context.Context, attacker, target string) (int, error) {
	var total int
	err := r.db.NewRaw(`
		SELECT COUNT(DISTINCT hs.attacker_coordinates)
		FROM hostile_spying hs
		WHERE hs.attacker_coordinates IS NOT NULL
		  AND (? = '' OR hs.attacker_coordinates LIKE '%' || ? || '%')
		  AND (? = '' OR hs.target_coordinates LIKE '%' || ? || '%')
	`, attacker, attacker, target, target).Scan(ctx, &total)
	return total, err
}
