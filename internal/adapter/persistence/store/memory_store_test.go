package store

import (
	"context"
	"testing"

	"nelly_tech/internal/usecase/interfaces"
)

func create(t *testing.T, s *MemoryStore, collection string, fields interfaces.Fields) string {
	t.Helper()
	id, err := s.CreateRecord(context.Background(), collection, fields)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return id
}

func get(t *testing.T, s *MemoryStore, collection, id string) interfaces.Record {
	t.Helper()
	rec, err := s.GetRecord(context.Background(), collection, id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return rec
}

func TestMemoryStore_CreateGetList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id1 := create(t, s, "projects", interfaces.Fields{"name": "Site"})
	id2 := create(t, s, "projects", interfaces.Fields{"name": "App"})
	if id1 == id2 {
		t.Fatalf("ids must be unique, got %s twice", id1)
	}

	rec := get(t, s, "projects", id1)
	if rec.Fields["name"] != "Site" || rec.Fields[interfaces.VersionField] != int64(1) {
		t.Fatalf("unexpected record %+v", rec)
	}

	recs, err := s.ListRecords(ctx, "projects")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != id1 || recs[1].ID != id2 {
		t.Fatalf("records must be listed in insertion order, got %+v", recs)
	}

	empty, err := s.ListRecords(ctx, "orcamentos")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty collection, got %+v %v", empty, err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	fields := interfaces.Fields{"name": "Site"}
	id := create(t, s, "projects", fields)

	fields["name"] = "changed"
	rec := get(t, s, "projects", id)
	rec.Fields["name"] = "changed again"

	if again := get(t, s, "projects", id); again.Fields["name"] != "Site" {
		t.Fatalf("stored record was mutated: %v", again.Fields["name"])
	}
}

func TestMemoryStore_UpdateIncrementsVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id := create(t, s, "orcamentos", interfaces.Fields{"status": "Novo", "nome": "Ana"})

	if err := s.UpdateRecord(ctx, "orcamentos", id, interfaces.Fields{"status": "Aprovado", interfaces.VersionField: int64(99)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec := get(t, s, "orcamentos", id)
	if rec.Fields["status"] != "Aprovado" {
		t.Fatalf("expected Aprovado, got %v", rec.Fields["status"])
	}
	if rec.Fields["nome"] != "Ana" {
		t.Fatalf("untouched fields must be kept, got %v", rec.Fields["nome"])
	}
	if rec.Fields[interfaces.VersionField] != int64(2) {
		t.Fatalf("callers cannot overwrite the version, got %v", rec.Fields[interfaces.VersionField])
	}
}

func TestMemoryStore_UpdateRecordIfVersion(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id := create(t, s, "orcamentos", interfaces.Fields{"status": "Novo"})

	if err := s.UpdateRecordIfVersion(ctx, "orcamentos", id, 1, interfaces.Fields{"status": "Em Andamento"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	err := s.UpdateRecordIfVersion(ctx, "orcamentos", id, 1, interfaces.Fields{"status": "Aprovado"})
	if code := interfaces.StoreErrorCodeOf(err); code != interfaces.StoreCodeAborted {
		t.Fatalf("expected aborted, got %q", code)
	}

	rec := get(t, s, "orcamentos", id)
	if rec.Fields["status"] != "Em Andamento" || rec.Fields[interfaces.VersionField] != int64(2) {
		t.Fatalf("stale write must not apply, got %v", rec.Fields)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, getErr := s.GetRecord(ctx, "projects", "missing")
	errs := map[string]error{
		"get":               getErr,
		"update":            s.UpdateRecord(ctx, "projects", "missing", interfaces.Fields{"name": "x"}),
		"update if version": s.UpdateRecordIfVersion(ctx, "projects", "missing", 1, nil),
		"delete":            s.DeleteRecord(ctx, "projects", "missing"),
	}
	for op, err := range errs {
		if !interfaces.IsNotFound(err) {
			t.Fatalf("%s: expected not found, got %v", op, err)
		}
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id1 := create(t, s, "projects", interfaces.Fields{"name": "a"})
	id2 := create(t, s, "projects", interfaces.Fields{"name": "b"})

	if err := s.DeleteRecord(ctx, "projects", id1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	recs, err := s.ListRecords(ctx, "projects")
	if err != nil || len(recs) != 1 || recs[0].ID != id2 {
		t.Fatalf("unexpected records after delete: %+v %v", recs, err)
	}
	if err := s.DeleteRecord(ctx, "projects", id1); !interfaces.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()

	_, err := s.CreateRecord(ctx, "projects", interfaces.Fields{})
	if code := interfaces.StoreErrorCodeOf(err); code != interfaces.StoreCodeUnavailable {
		t.Fatalf("expected unavailable, got %q", code)
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatalf("expected ping to fail on a canceled context")
	}
}
