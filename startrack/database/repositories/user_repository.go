package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// Create mints a fresh API key for the user and returns it.
	Create(ctx context.Context, playerID, allianceID *int64, role string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	UpdateRole(ctx context.Context, id int64, role string) error
	UpdateLanguage(ctx context.Context, id int64, language string) error
	// TouchActivity bumps last_activity_at. Best-effort; callers usually
	// fire it in a goroutine and only log failures.
	TouchActivity(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.UserWithNames, error)
}

type userRepository struct {
	db *bun.DB
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("api_key = ?", apiKey).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, playerID, allianceID *int64, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		APIKey:     uuid.NewString(),
		PlayerID:   playerID,
		AllianceID: allianceID,
		Language:   "en",
		Role:       role,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(user).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("role = ?", role).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateLanguage(ctx context.Context, id int64, language string) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("language = ?", language).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) TouchActivity(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("last_activity_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *userRepository) GetAll(ctx context.Context) ([]*models.UserWithNames, error) {
	var users []*models.UserWithNames
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("u.id", "u.player_id", "u.alliance_id", "u.language", "u.role", "u.last_activity_at").
		ColumnExpr("pl.name AS player_name").
		ColumnExpr("a.name AS alliance_name").
		Join("LEFT JOIN players AS pl ON pl.id = u.player_id").
		Join("LEFT JOIN alliances AS a ON a.id = u.alliance_id").
		OrderExpr("u.id ASC").
		Scan(ctx, &users)
	return users, err
}
