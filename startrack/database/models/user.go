package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an access-control principal, not a game entity. It may be linked to
// a player and an alliance for scoping reads and stamping reports.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID             int64      `bun:"id,pk,autoincrement"`
	APIKey         string     `bun:"api_key,notnull,unique"`
	PlayerID       *int64     `bun:"player_id"`
	AllianceID     *int64     `bun:"alliance_id"`
	Language       string     `bun:"language,notnull,default:'en'"`
	Role           string     `bun:"role,notnull,default:'user'"`
	LastActivityAt *time.Time `bun:"last_activity_at"`
	CreatedAt      time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt      time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}

// UserWithNames is a User joined with player and alliance display names.
// The api_key column is deliberately not selected.
type UserWithNames struct {
	ID             int64      `bun:"id"`
	PlayerID       *int64     `bun:"player_id"`
	AllianceID     *int64     `bun:"alliance_id"`
	Language       string     `bun:"language"`
	Role           string     `bun:"role"`
	LastActivityAt *time.Time `bun:"last_activity_at"`
	PlayerName     *string    `bun:"player_name"`
	AllianceName   *string    `bun:"alliance_name"`
}
