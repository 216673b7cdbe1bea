package models

import "github.com/uptrace/bun"

// Universe config keys.
const (
	SettingGalaxies      = "galaxies"
	SettingSystems       = "systems"
	SettingGalaxyWrapped = "galaxy_wrapped"
)

// Setting is one key-value universe parameter.
type Setting struct {
	bun.BaseModel `bun:"table:settings,alias:s"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}
