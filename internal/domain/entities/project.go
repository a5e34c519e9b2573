package entities

import "time"

// ProjectStatus is the portfolio label of a project.
type ProjectStatus string

const (
	ProjectStatusProgress  ProjectStatus = "progress"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

const CollectionProjects = "projects"

var ProjectStatuses = []ProjectStatus{
	ProjectStatusProgress,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// DisplayText maps the status to its back office label; unknown values are
// shown literally.
func (s ProjectStatus) DisplayText() string {
	switch s {
	case ProjectStatusProgress:
		return "Em Andamento"
	case ProjectStatusCompleted:
		return "Concluído"
	case ProjectStatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// Project is a portfolio entry managed by an admin.
//
// ImageURL is either a storage URL or an inline data URL, which can be large.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Emoji       string        `json:"emoji,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Version     int64         `json:"version"`
}

// ActivityAt is the timestamp used by the recent-activity feed: the last
// update, or the creation time for records never edited.
func (p Project) ActivityAt() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.CreatedAt
}
