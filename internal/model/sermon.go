package model

import (
	"time"
)

type Sermon struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"` // markdown source
	Preacher  string    `db:"preacher" json:"preacher"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Rendered HTML (not in database)
	BodyHTML string `db:"-" json:"body_html,omitempty"`
}
