package request

import (
	"strings"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase"
)

type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Emoji       string `json:"emoji"`
	ImageURL    string `json:"image_url"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Status:      entities.ProjectStatus(strings.TrimSpace(r.Status)),
		Emoji:       r.Emoji,
		ImageURL:    strings.TrimSpace(r.ImageURL),
	}
}
