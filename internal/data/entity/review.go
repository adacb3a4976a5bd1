package entity

import (
	"github.com/google/uuid"
)

// Review is one author's rating of a title. At most one review may exist
// per (author, title) pair; the author never changes after creation.
type Review struct {
	BaseNoDelete
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"` // 1-10
}
