package entity

// Rubric is a named, slug-keyed grouping. Categories and genres share the
// same shape and only differ by table.
type Rubric struct {
	BaseSimple
	Name string `db:"name"`
	Slug string `db:"slug"`
}
