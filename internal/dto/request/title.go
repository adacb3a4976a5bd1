package request

// TitleRequest is the write shape: category and genres referenced by slug.
type TitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required,release_year"`
	Description *string  `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required,max=50"`
	Genre       []string `json:"genre,omitempty" validate:"dive,max=50"`
}

type TitleUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=256"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,release_year"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Genre       []string `json:"genre,omitempty" validate:"dive,max=50"`
}
