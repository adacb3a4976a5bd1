package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	BaseNoDelete
	Name        string    `db:"name"`
	Year        int       `db:"year"`
	Description *string   `db:"description"`
	CategoryID  uuid.UUID `db:"category_id"`

	// Rating is never stored. Read queries annotate it as the rounded
	// average review score; nil means the title has no reviews yet.
	Rating   *int      `db:"rating"`
	Category *Rubric   `db:"-"`
	Genres   []*Rubric `db:"-"`
}
