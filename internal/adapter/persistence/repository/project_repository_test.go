package repository

import (
	"context"
	"testing"
	"time"

	"nelly_tech/internal/adapter/persistence/store"
	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase/interfaces"
)

func TestProjectRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	r := NewProjectRepository(s)
	edited := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return edited }
	created := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	p, err := r.Create(ctx, entities.Project{
		Name:      "Loja Virtual",
		Category:  "E-commerce",
		Status:    entities.ProjectStatusProgress,
		Emoji:     "🛒",
		CreatedAt: created,
		UpdatedAt: created,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := s.GetRecord(ctx, entities.CollectionProjects, p.ID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if rec.Fields["name"] != "Loja Virtual" || rec.Fields["imageUrl"] != "" {
		t.Fatalf("unexpected stored fields %v", rec.Fields)
	}

	p.Status = entities.ProjectStatusCompleted
	p.CreatedAt = time.Time{}
	updated, err := r.Update(ctx, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != entities.ProjectStatusCompleted || updated.Version != 2 {
		t.Fatalf("unexpected update %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("creation time is never rewritten, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(edited) {
		t.Fatalf("expected updated at %v, got %v", edited, updated.UpdatedAt)
	}

	withImage, err := r.SetImageURL(ctx, p.ID, "https://cdn.example.com/p.png")
	if err != nil || withImage.ImageURL != "https://cdn.example.com/p.png" {
		t.Fatalf("set image: %+v %v", withImage, err)
	}

	list, err := r.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %+v %v", list, err)
	}

	if err := r.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := r.SetImageURL(ctx, p.ID, "x")
	if err != nil || gone.ID != "" {
		t.Fatalf("expected zero value after delete, got %+v %v", gone, err)
	}
}

func TestProjectRepository_DecodesISOStrings(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	r := NewProjectRepository(s)
	id, err := s.CreateRecord(ctx, entities.CollectionProjects, interfaces.Fields{
		"name":      "Portfolio",
		"status":    "completed",
		"createdAt": "2025-01-02T03:04:05.678Z",
		"version":   float64(4),
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}

	p, err := r.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC); !p.CreatedAt.Equal(want) {
		t.Fatalf("expected created at %v, got %v", want, p.CreatedAt)
	}
	if !p.UpdatedAt.IsZero() {
		t.Fatalf("expected no update time, got %v", p.UpdatedAt)
	}
	if p.Version != 1 {
		t.Fatalf("the store owns the counter, got version %d", p.Version)
	}
}
