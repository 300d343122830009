package playerdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Player is a registered club member. Players are never deleted in-app.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
