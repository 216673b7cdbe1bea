package startrack

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/voidcrew/startrack/startrack/database"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log      LogConfig         `toml:"log"`
	Bot      BotConfig         `toml:"bot"`
	DB       database.DBConfig `toml:"db"`
	Web      WebConfig         `toml:"web"`
	Universe UniverseConfig    `toml:"universe"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type WebConfig struct {
	Addr string `toml:"addr"`
}

// UniverseConfig seeds the universe parameters on first start; afterwards the
// settings table is authoritative.
type UniverseConfig struct {
	Galaxies      int64 `toml:"galaxies"`
	Systems       int64 `toml:"systems"`
	GalaxyWrapped bool  `toml:"galaxy_wrapped"`
}
