package store

import (
	"errors"
	"testing"

	"nelly_tech/internal/usecase/interfaces"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToFirestoreStoreError(t *testing.T) {
	cases := map[codes.Code]interfaces.StoreErrorCode{
		codes.NotFound:          interfaces.StoreCodeNotFound,
		codes.PermissionDenied:  interfaces.StoreCodePermissionDenied,
		codes.Unavailable:       interfaces.StoreCodeUnavailable,
		codes.ResourceExhausted: interfaces.StoreCodeResourceExhausted,
		codes.Unauthenticated:   interfaces.StoreCodeUnauthenticated,
		codes.Internal:          interfaces.StoreCodeUnknown,
	}
	for grpcCode, want := range cases {
		t.Run(grpcCode.String(), func(t *testing.T) {
			err := toFirestoreStoreError(status.Error(grpcCode, "boom"))
			if got := interfaces.StoreErrorCodeOf(err); got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		})
	}

	t.Run("plain error", func(t *testing.T) {
		err := toFirestoreStoreError(errors.New("boom"))
		if got := interfaces.StoreErrorCodeOf(err); got != interfaces.StoreCodeUnknown {
			t.Fatalf("expected unknown, got %q", got)
		}
	})
}

func TestFirestoreUpdates_SkipsVersionAndSortsPaths(t *testing.T) {
	updates := firestoreUpdates(interfaces.Fields{"status": "Aprovado", interfaces.VersionField: int64(4), "atualizadoEm": "x"})

	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}
	if updates[0].Path != "atualizadoEm" || updates[1].Path != "status" {
		t.Fatalf("unexpected paths %q, %q", updates[0].Path, updates[1].Path)
	}
}

func TestVersionOf(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{int64(3), 3},
		{float64(2), 2},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := versionOf(tc.in); got != tc.want {
			t.Fatalf("versionOf(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
