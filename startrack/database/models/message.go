package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Message records an in-game mail id the scraper has already observed, so the
// same mail is never processed twice.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID         int64     `bun:"id,pk,autoincrement"`
	ExternalID int64     `bun:"external_id,notnull,unique"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
