package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Alliance struct {
	bun.BaseModel `bun:"table:alliances,alias:a"`

	ID        int64     `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	Tag       string    `bun:"tag,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
