package response

import (
	"time"

	"media-ratings/internal/data/entity"
)

// TitleResponse is the read shape: nested category and genre objects plus
// the computed rating. Rating is omitted entirely when no reviews exist.
type TitleResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *int             `json:"rating,omitempty"`
	Description *string          `json:"description,omitempty"`
	Genre       []RubricResponse `json:"genre"`
	Category    RubricResponse   `json:"category"`
	CreatedAt   time.Time        `json:"created_at,omitempty"`
}

func TitleToResponse(title *entity.Title) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Rating:      title.Rating,
		Description: title.Description,
		Genre:       RubricsToResponse(title.Genres),
		CreatedAt:   title.CreatedAt,
	}

	if title.Category != nil {
		resp.Category = RubricToResponse(title.Category)
	}

	return resp
}
