package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type PlanetRepository interface {
	// UpsertScan reconciles one galaxy-scan sighting. Identity is
	// (galaxy, system, position, kind); name, owner and status are taken from
	// the scan, while a previously known external id survives scans that do
	// not expose it.
	UpsertScan(ctx context.Context, planet *models.Planet) error
	// UpsertEmpire replaces the full planet state from an empire snapshot.
	// The snapshot is authoritative for that planet at that moment.
	UpsertEmpire(ctx context.Context, planet *models.Planet) error
	MarkDeleted(ctx context.Context, galaxy, system, position int64, kind string) error

	UpdateBuildings(ctx context.Context, galaxy, system, position int64, kind string, buildings models.LevelMap) error
	UpdateFleet(ctx context.Context, galaxy, system, position int64, kind string, fleet models.LevelMap) error
	UpdateDefense(ctx context.Context, galaxy, system, position int64, kind string, defense models.LevelMap) error
	UpdateResources(ctx context.Context, galaxy, system, position int64, kind string, resources models.LevelMap) error

	GetSystem(ctx context.Context, galaxy, system int64) ([]*models.Planet, error)
	// GetAllLive returns every non-deleted row, marker rows included.
	GetAllLive(ctx context.Context) ([]*models.Planet, error)
	LastScanAt(ctx context.Context, galaxy, system int64) (*time.Time, error)
	GetSystemScans(ctx context.Context) ([]*models.SystemScan, error)
	GetByPlayer(ctx context.Context, playerID int64) ([]*models.Planet, error)
	GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Planet, error)

	GetNew(ctx context.Context) ([]*models.NewPlanet, error)
	MarkSeen(ctx context.Context, ids []int64) (int64, error)
	MarkAllSeen(ctx context.Context) (int64, error)
}

type planetRepository struct {
	db *bun.DB
}

func NewPlanetRepository(db *bun.DB) PlanetRepository {
	return &planetRepository{db: db}
}

func (r *planetRepository) UpsertScan(ctx context.Context, planet *models.Planet) error {
	planet.CreatedAt = time.Now()
	planet.UpdatedAt = time.Now()
	if planet.Status == "" {
		planet.Status = models.StatusNew
	}
	_, err := r.db.NewInsert().
		Model(planet).
		On("CONFLICT (galaxy, system, position, kind) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("player_id = EXCLUDED.player_id").
		Set("status = EXCLUDED.status").
		Set("external_id = COALESCE(EXCLUDED.external_id, p.external_id)").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *planetRepository) UpsertEmpire(ctx context.Context, planet *models.Planet) error {
	planet.CreatedAt = time.Now()
	planet.UpdatedAt = time.Now()
	if planet.Status == "" {
		planet.Status = models.StatusSeen
	}
	_, err := r.db.NewInsert().
		Model(planet).
		On("CONFLICT (galaxy, system, position, kind) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("player_id = EXCLUDED.player_id").
		Set("external_id = COALESCE(EXCLUDED.external_id, p.external_id)").
		Set("buildings = EXCLUDED.buildings").
		Set("fleet = EXCLUDED.fleet").
		Set("defense = EXCLUDED.defense").
		Set("resources = EXCLUDED.resources").
		Set("fields_used = EXCLUDED.fields_used").
		Set("fields_max = EXCLUDED.fields_max").
		Set("temperature = EXCLUDED.temperature").
		Set("points = EXCLUDED.points").
		Set("prod_metal = EXCLUDED.prod_metal").
		Set("prod_crystal = EXCLUDED.prod_crystal").
		Set("prod_deuterium = EXCLUDED.prod_deuterium").
		Set("energy_used = EXCLUDED.energy_used").
		Set("energy_max = EXCLUDED.energy_max").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *planetRepository) MarkDeleted(ctx context.Context, galaxy, system, position int64, kind string) error {
	// Row is kept so earlier reports stay resolvable
	_, err := r.db.NewUpdate().
		Model((*models.Planet)(nil)).
		Set("status = ?", models.StatusDeleted).
		Set("updated_at = ?", time.Now()).
		Where("galaxy = ? AND system = ? AND position = ? AND kind = ?", galaxy, system, position, kind).
		Exec(ctx)
	return err
}

func (r *planetRepository) updateStateMap(ctx context.Context, column string, galaxy, system, position int64, kind string, state models.LevelMap) error {
	_, err := r.db.NewUpdate().
		Model((*models.Planet)(nil)).
		Set(column+" = ?", state).
		Set("updated_at = ?", time.Now()).
		Where("galaxy = ? AND system = ? AND position = ? AND kind = ?", galaxy, system, position, kind).
		Exec(ctx)
	return err
}

func (r *planetRepository) UpdateBuildings(ctx context.Context, galaxy, system, position int64, kind string, buildings models.LevelMap) error {
	return r.updateStateMap(ctx, "buildings", galaxy, system, position, kind, buildings)
}

func (r *planetRepository) UpdateFleet(ctx context.Context, galaxy, system, position int64, kind string, fleet models.LevelMap) error {
	return r.updateStateMap(ctx, "fleet", galaxy, system, position, kind, fleet)
}

func (r *planetRepository) UpdateDefense(ctx context.Context, galaxy, system, position int64, kind string, defense models.LevelMap) error {
	return r.updateStateMap(ctx, "defense", galaxy, system, position, kind, defense)
}

func (r *planetRepository) UpdateResources(ctx context.Context, galaxy, system, position int64, kind string, resources models.LevelMap) error {
	return r.updateStateMap(ctx, "resources", galaxy, system, position, kind, resources)
}

func (r *planetRepository) GetSystem(ctx context.Context, galaxy, system int64) ([]*models.Planet, error) {
	var planets []*models.Planet
	err := r.db.NewSelect().
		Model(&planets).
		Where("galaxy = ? AND system = ?", galaxy, system).
		Where("position > 0").
		Where("status != ?", models.StatusDeleted).
		Order("position ASC", "kind ASC").
		Scan(ctx)
	return planets, err
}

func (r *planetRepository) GetAllLive(ctx context.Context) ([]*models.Planet, error) {
	var planets []*models.Planet
	err := r.db.NewSelect().
		Model(&planets).
		Where("status != ?", models.StatusDeleted).
		Order("galaxy ASC", "system ASC", "position ASC", "kind ASC").
		Scan(ctx)
	return planets, err
}

func (r *planetRepository) LastScanAt(ctx context.Context, galaxy, system int64) (*time.Time, error) {
	var updatedAt time.Time
	err := r.db.NewSelect().
		Model((*models.Planet)(nil)).
		Column("updated_at").
		Where("galaxy = ? AND system = ? AND position = 0 AND kind = ?", galaxy, system, models.KindPlanet).
		Scan(ctx, &updatedAt)
	if err != nil {
		return nil, err
	}
	return &updatedAt, nil
}

func (r *planetRepository) GetSystemScans(ctx context.Context) ([]*models.SystemScan, error) {
	var scans []*models.SystemScan
	err := r.db.NewSelect().
		Model((*models.Planet)(nil)).
		ColumnExpr("galaxy, system").
		ColumnExpr("updated_at AS last_scan_at").
		Where("position = 0 AND kind = ?", models.KindPlanet).
		OrderExpr("galaxy, system").
		Scan(ctx, &scans)
	return scans, err
}

func (r *planetRepository) GetByPlayer(ctx context.Context, playerID int64) ([]*models.Planet, error) {
	var planets []*models.Planet
	err := r.db.NewSelect().
		Model(&planets).
		Where("player_id = ?", playerID).
		Where("status != ?", models.StatusDeleted).
		Order("galaxy ASC", "system ASC", "position ASC").
		Scan(ctx)
	return planets, err
}

func (r *planetRepository) GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Planet, error) {
	var planets []*models.Planet
	err := r.db.NewSelect().
		Model(&planets).
		Join("JOIN players AS pl ON pl.id = p.player_id").
		Where("pl.alliance_id = ?", allianceID).
		Where("p.status != ?", models.StatusDeleted).
		Order("p.galaxy ASC", "p.system ASC", "p.position ASC").
		Scan(ctx)
	return planets, err
}

func (r *planetRepository) GetNew(ctx context.Context) ([]*models.NewPlanet, error) {
	var planets []*models.NewPlanet
	err := r.db.NewSelect().
		Model((*models.Planet)(nil)).
		ColumnExpr("p.id, p.galaxy, p.system, p.position, p.created_at").
		ColumnExpr("pl.name AS player_name").
		ColumnExpr("a.tag AS alliance_tag").
		Join("LEFT JOIN players AS pl ON pl.id = p.player_id").
		Join("LEFT JOIN alliances AS a ON a.id = pl.alliance_id").
		Where("p.status = ? AND p.kind = ?", models.StatusNew, models.KindPlanet).
		Where("p.position > 0").
		OrderExpr("p.galaxy, p.system, p.position").
		Scan(ctx, &planets)
	return planets, err
}

func (r *planetRepository) MarkSeen(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.NewUpdate().
		Model((*models.Planet)(nil)).
		Set("status = ?", models.StatusSeen).
		Set("updated_at = ?", time.Now()).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}

func (r *planetRepository) MarkAllSeen(ctx context.Context) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.Planet)(nil)).
		Set("status = ?", models.StatusSeen).
		Set("updated_at = ?", time.Now()).
		Where("status = ?", models.StatusNew).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}
