package request

// RubricRequest creates a category or genre. Slug is optional; when absent
// it is derived from the name.
type RubricRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug,omitempty" validate:"omitempty,max=50"`
}
