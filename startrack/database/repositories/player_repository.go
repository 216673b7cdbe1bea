package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

type PlayerRepository interface {
	// EnsureExists inserts a minimal row if the player is unknown. It never
	// overwrites an existing name.
	EnsureExists(ctx context.Context, id int64, name string) error
	// UpdateAlliance links a player to an alliance, but only if the alliance
	// row exists. Missing alliances are a silent no-op so a partial scan
	// cannot fail a whole ingestion.
	UpdateAlliance(ctx context.Context, playerID, allianceID int64) error
	UpdateResearch(ctx context.Context, playerID int64, research models.ResearchMap) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateScore(ctx context.Context, playerID int64, statType string, score, rank int64) error
	SetInactiveSince(ctx context.Context, playerID int64) error
	ClearInactive(ctx context.Context, playerID int64) error
	SetVacationSince(ctx context.Context, playerID int64) error
	ClearVacation(ctx context.Context, playerID int64) error
	MarkDeleted(ctx context.Context, playerID int64) error
	UpdateNotice(ctx context.Context, playerID int64, notice string) error

	GetByID(ctx context.Context, id int64) (*models.PlayerWithAlliance, error)
	GetByName(ctx context.Context, name string) (*models.PlayerWithAlliance, error)
	GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Player, error)
	GetNames(ctx context.Context) (map[int64]string, error)
	GetAll(ctx context.Context) ([]*models.Player, error)
	GetTopInactive(ctx context.Context, limit int) ([]*models.InactivePlayer, error)
}

type playerRepository struct {
	db *bun.DB
}

func NewPlayerRepository(db *bun.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) EnsureExists(ctx context.Context, id int64, name string) error {
	player := &models.Player{ID: id, Name: name}
	_, err := r.db.NewInsert().
		Model(player).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	return err
}

func (r *playerRepository) UpdateAlliance(ctx context.Context, playerID, allianceID int64) error {
	// Guarded by an existence subquery instead of relying on the FK error:
	// a scan that names an alliance we never resolved must not abort.
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("alliance_id = ?", allianceID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Where("EXISTS (SELECT 1 FROM alliances WHERE id = ?)", allianceID).
		Exec(ctx)
	return err
}

func (r *playerRepository) UpdateResearch(ctx context.Context, playerID int64, research models.ResearchMap) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("research = ?", research).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) UpdateName(ctx context.Context, id int64, name string) error {
	player := &models.Player{ID: id, Name: name}
	_, err := r.db.NewInsert().
		Model(player).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	return err
}

// scoreColumns maps a stat type to its score/rank column pair.
var scoreColumns = map[string][2]string{
	models.StatTotal:     {"score_total", "score_total_rank"},
	models.StatFleet:     {"score_fleet", "score_fleet_rank"},
	models.StatResearch:  {"score_research", "score_research_rank"},
	models.StatBuildings: {"score_buildings", "score_buildings_rank"},
	models.StatDefense:   {"score_defense", "score_defense_rank"},
	models.StatHonor:     {"honorpoints", "honorpoints_rank"},
}

var ErrUnknownStatType = errors.New("unknown stat type")

func (r *playerRepository) UpdateScore(ctx context.Context, playerID int64, statType string, score, rank int64) error {
	cols, ok := scoreColumns[statType]
	if !ok {
		return ErrUnknownStatType
	}
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set(cols[0]+" = ?", score).
		Set(cols[1]+" = ?", rank).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) SetInactiveSince(ctx context.Context, playerID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("inactive_since = ?", time.Now()).
		Where("id = ?", playerID).
		Where("inactive_since IS NULL").
		Exec(ctx)
	return err
}

func (r *playerRepository) ClearInactive(ctx context.Context, playerID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("inactive_since = NULL").
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) SetVacationSince(ctx context.Context, playerID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("vacation_since = ?", time.Now()).
		Where("id = ?", playerID).
		Where("vacation_since IS NULL").
		Exec(ctx)
	return err
}

func (r *playerRepository) ClearVacation(ctx context.Context, playerID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("vacation_since = NULL").
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) MarkDeleted(ctx context.Context, playerID int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("is_deleted = TRUE").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) UpdateNotice(ctx context.Context, playerID int64, notice string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Player)(nil)).
		Set("notice = ?", notice).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", playerID).
		Exec(ctx)
	return err
}

func (r *playerRepository) GetByID(ctx context.Context, id int64) (*models.PlayerWithAlliance, error) {
	player := new(models.PlayerWithAlliance)
	err := r.db.NewSelect().
		Model((*models.Player)(nil)).
		ColumnExpr("pl.*").
		ColumnExpr("a.name AS alliance_name").
		ColumnExpr("a.tag AS alliance_tag").
		Join("LEFT JOIN alliances AS a ON a.id = pl.alliance_id").
		Where("pl.id = ?", id).
		Scan(ctx, player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		slog.Error("Database error when getting player",
			slog.String("type", "db"),
			slog.Int64("player_id", id),
			slog.Any("error", err))
		return nil, err
	}
	return player, nil
}

func (r *playerRepository) GetByName(ctx context.Context, name string) (*models.PlayerWithAlliance, error) {
	player := new(models.PlayerWithAlliance)
	err := r.db.NewSelect().
		Model((*models.Player)(nil)).
		ColumnExpr("pl.*").
		ColumnExpr("a.name AS alliance_name").
		ColumnExpr("a.tag AS alliance_tag").
		Join("LEFT JOIN alliances AS a ON a.id = pl.alliance_id").
		Where("LOWER(pl.name) = LOWER(?)", name).
		Limit(1).
		Scan(ctx, player)
	if err != nil {
		return nil, err
	}
	return player, nil
}

func (r *playerRepository) GetByAlliance(ctx context.Context, allianceID int64) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.NewSelect().
		Model(&players).
		Where("alliance_id = ?", allianceID).
		Order("name ASC").
		Scan(ctx)
	return players, err
}

func (r *playerRepository) GetNames(ctx context.Context) (map[int64]string, error) {
	var rows []struct {
		ID   int64  `bun:"id"`
		Name string `bun:"name"`
	}
	err := r.db.NewSelect().
		Model((*models.Player)(nil)).
		Column("id", "name").
		Where("id != ?", models.SystemPlayerID).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

func (r *playerRepository) GetAll(ctx context.Context) ([]*models.Player, error) {
	var players []*models.Player
	err := r.db.NewSelect().
		Model(&players).
		Where("id != ?", models.SystemPlayerID).
		Order("id ASC").
		Scan(ctx)
	return players, err
}

func (r *playerRepository) GetTopInactive(ctx context.Context, limit int) ([]*models.InactivePlayer, error) {
	var players []*models.InactivePlayer
	err := r.db.NewSelect().
		Model((*models.Player)(nil)).
		Column("name", "score_total", "score_fleet", "score_buildings", "inactive_since").
		Where("inactive_since IS NOT NULL").
		Where("vacation_since IS NULL").
		Where("is_deleted = FALSE").
		Order("score_total DESC").
		Limit(limit).
		Scan(ctx, &players)
	return players, err
}
