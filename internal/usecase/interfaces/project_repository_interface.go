package interfaces

import (
	"context"

	"nelly_tech/internal/domain/entities"
)

// IProjectRepository persists portfolio projects (collection "projects").
//
// Lookups and updates of a missing record return a zero Project and no error.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	SetImageURL(ctx context.Context, id, imageURL string) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}
