package response

import (
	"media-ratings/internal/data/entity"
)

type RubricResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func RubricToResponse(rubric *entity.Rubric) RubricResponse {
	return RubricResponse{
		Name: rubric.Name,
		Slug: rubric.Slug,
	}
}

func RubricsToResponse(rubrics []*entity.Rubric) []RubricResponse {
	out := make([]RubricResponse, len(rubrics))
	for i, rubric := range rubrics {
		out[i] = RubricToResponse(rubric)
	}
	return out
}
