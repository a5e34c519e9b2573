package repository

import (
	"context"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase/interfaces"
)

const (
	projectFieldName        = "name"
	projectFieldCategory    = "category"
	projectFieldDescription = "description"
	projectFieldStatus      = "status"
	projectFieldEmoji       = "emoji"
	projectFieldImageURL    = "imageUrl"
	projectFieldCreatedAt   = "createdAt"
	projectFieldUpdatedAt   = "updatedAt"
)

// ProjectRepository maps Project entities onto the document store.
type ProjectRepository struct {
	store      interfaces.IDocumentStore
	collection string
	now        func() time.Time
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(store interfaces.IDocumentStore) *ProjectRepository {
	return &ProjectRepository{
		store:      store,
		collection: entities.CollectionProjects,
		now:        time.Now,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	id, err := r.store.CreateRecord(ctx, r.collection, toProjectFields(p))
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = id
	p.Version = 1
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	rec, err := r.store.GetRecord(ctx, r.collection, id)
	if err != nil {
		if interfaces.IsNotFound(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return fromProjectRecord(rec), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entities.Project, error) {
	recs, err := r.store.ListRecords(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromProjectRecord(rec))
	}
	return out, nil
}

// Update rewrites the editable fields of p. CreatedAt is never touched.
func (r *ProjectRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	fields := toProjectFields(p)
	delete(fields, projectFieldCreatedAt)
	fields[projectFieldUpdatedAt] = r.now().UTC()
	return r.afterUpdate(ctx, p.ID, r.store.UpdateRecord(ctx, r.collection, p.ID, fields))
}

func (r *ProjectRepository) SetImageURL(ctx context.Context, id, imageURL string) (entities.Project, error) {
	err := r.store.UpdateRecord(ctx, r.collection, id, interfaces.Fields{
		projectFieldImageURL:  imageURL,
		projectFieldUpdatedAt: r.now().UTC(),
	})
	return r.afterUpdate(ctx, id, err)
}

func (r *ProjectRepository) afterUpdate(ctx context.Context, id string, err error) (entities.Project, error) {
	if err != nil {
		if interfaces.IsNotFound(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteRecord(ctx, r.collection, id)
}

func toProjectFields(p entities.Project) interfaces.Fields {
	return interfaces.Fields{
		projectFieldName:        p.Name,
		projectFieldCategory:    p.Category,
		projectFieldDescription: p.Description,
		projectFieldStatus:      string(p.Status),
		projectFieldEmoji:       p.Emoji,
		projectFieldImageURL:    p.ImageURL,
		projectFieldCreatedAt:   timeOrNil(p.CreatedAt),
		projectFieldUpdatedAt:   timeOrNil(p.UpdatedAt),
	}
}

func fromProjectRecord(rec interfaces.Record) entities.Project {
	f := rec.Fields
	return entities.Project{
		ID:          rec.ID,
		Name:        fieldString(f, projectFieldName),
		Category:    fieldString(f, projectFieldCategory),
		Description: fieldString(f, projectFieldDescription),
		Status:      entities.ProjectStatus(fieldString(f, projectFieldStatus)),
		Emoji:       fieldString(f, projectFieldEmoji),
		ImageURL:    fieldString(f, projectFieldImageURL),
		CreatedAt:   fieldTime(f, projectFieldCreatedAt),
		UpdatedAt:   fieldTime(f, projectFieldUpdatedAt),
		Version:     fieldInt64(f, interfaces.VersionField),
	}
}
