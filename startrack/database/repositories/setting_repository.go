package repositories

import (
	"context"
	"strconv"

	"github.com/uptrace/bun"
	"github.com/voidcrew/startrack/startrack/database/models"
)

// Universe describes the shape of the game world as stored in settings.
type Universe struct {
	Galaxies      int64
	Systems       int64
	GalaxyWrapped bool
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	GetUniverse(ctx context.Context) (Universe, error)
}

type settingRepository struct {
	db *bun.DB
}

func NewSettingRepository(db *bun.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	setting := new(models.Setting)
	err := r.db.NewSelect().
		Model(setting).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.NewInsert().
		Model(&models.Setting{Key: key, Value: value}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

func (r *settingRepository) GetUniverse(ctx context.Context) (Universe, error) {
	var settings []*models.Setting
	err := r.db.NewSelect().
		Model(&settings).
		Where("key IN (?)", bun.In([]string{
			models.SettingGalaxies,
			models.SettingSystems,
			models.SettingGalaxyWrapped,
		})).
		Scan(ctx)
	if err != nil {
		return Universe{}, err
	}

	// Defaults match the seed values written at schema init.
	uni := Universe{Galaxies: 4, Systems: 400, GalaxyWrapped: true}
	for _, s := range settings {
		switch s.Key {
		case models.SettingGalaxies:
			if v, err := strconv.ParseInt(s.Value, 10, 64); err == nil {
				uni.Galaxies = v
			}
		case models.SettingSystems:
			if v, err := strconv.ParseInt(s.Value, 10, 64); err == nil {
				uni.Systems = v
			}
		case models.SettingGalaxyWrapped:
			if v, err := strconv.ParseBool(s.Value); err == nil {
				uni.GalaxyWrapped = v
			}
		}
	}
	return uni, nil
}
