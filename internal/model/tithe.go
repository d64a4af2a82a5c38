package model

import (
	"time"
)

// TithingRecord is one donation entry in the ledger. Records are
// immutable once written; there is no update or delete path.
type TithingRecord struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	AmountCents int64     `db:"amount_cents"`
	Date        string    `db:"date"` // calendar date, YYYY-MM-DD
	CreatedAt   time.Time `db:"created_at"`
}
