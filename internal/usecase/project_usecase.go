package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxImageSize is the largest project image accepted.
const MaxImageSize = 5 << 20

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectInput  = errors.New("project name and category are required")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrImageTooLarge        = errors.New("image larger than 5MB")
	ErrUnsupportedImage     = errors.New("file is not an image")
)

// ProjectInput carries the editable fields of a project. On update an empty
// Status or ImageURL keeps the current value.
type ProjectInput struct {
	Name        string
	Category    string
	Description string
	Status      entities.ProjectStatus
	Emoji       string
	ImageURL    string
}

type IProjectUseCase interface {
	Create(ctx context.Context, in ProjectInput) (entities.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, filename string, data []byte) (entities.Project, error)
}

type ProjectUseCase struct {
	repo    interfaces.IProjectRepository
	images  interfaces.IImageStorage
	policy  entities.TransitionPolicy
	now     func() time.Time
	newName func() string
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, images interfaces.IImageStorage, policy entities.TransitionPolicy) *ProjectUseCase {
	return &ProjectUseCase{
		repo:    repo,
		images:  images,
		policy:  policy,
		now:     time.Now,
		newName: uuid.NewString,
	}
}

func (in ProjectInput) normalized() (ProjectInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Emoji = strings.TrimSpace(in.Emoji)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Name == "" || in.Category == "" {
		return in, ErrInvalidProjectInput
	}
	if in.Status == "" {
		in.Status = entities.ProjectStatusProgress
	}
	if !in.Status.IsValid() {
		return in, ErrInvalidProjectStatus
	}
	return in, nil
}

func (u *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (entities.Project, error) {
	in, err := in.normalized()
	if err != nil {
		return entities.Project{}, err
	}

	now := u.now().UTC()
	p := entities.Project{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Status:      in.Status,
		Emoji:       in.Emoji,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, in ProjectInput) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	keepStatus := strings.TrimSpace(string(in.Status)) == ""
	in, err := in.normalized()
	if err != nil {
		return entities.Project{}, err
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if keepStatus {
		in.Status = current.Status
	}
	if !u.policy.AllowsProject(current.Status, in.Status) {
		return entities.Project{}, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, current.Status, in.Status)
	}

	current.Name = in.Name
	current.Category = in.Category
	current.Description = in.Description
	current.Status = in.Status
	current.Emoji = in.Emoji
	if in.ImageURL != "" {
		current.ImageURL = in.ImageURL
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] updated id=%s status=%s", id, updated.Status)
	return updated, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// List returns all projects newest first.
func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.SortProjects(all), nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if interfaces.IsNotFound(err) {
			return ErrProjectNotFound
		}
		return err
	}
	log.Printf("[project][usecase] deleted id=%s", id)
	return nil
}

// UploadImage stores an image for the project and points imageUrl at it. The
// content type is sniffed from the bytes; the file name is only logged.
func (u *ProjectUseCase) UploadImage(ctx context.Context, id, filename string, data []byte) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if len(data) > MaxImageSize {
		return entities.Project{}, ErrImageTooLarge
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return entities.Project{}, ErrUnsupportedImage
	}

	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Project{}, err
	}

	key := fmt.Sprintf("projects/%s/%s%s", id, u.newName(), mt.Extension())
	imageURL, err := u.images.Save(ctx, key, mt.String(), data)
	if err != nil {
		log.Printf("[project][usecase] image save failed id=%s file=%q err=%v", id, filename, err)
		return entities.Project{}, err
	}

	updated, err := u.repo.SetImageURL(ctx, id, imageURL)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] image uploaded id=%s file=%q type=%s size=%d", id, filename, mt.String(), len(data))
	return updated, nil
}
