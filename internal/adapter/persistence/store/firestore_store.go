package store

import (
	"context"
	"errors"
	"log"
	"maps"
	"slices"

	"nelly_tech/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errVersionMismatch = errors.New("version mismatch")

// FirestoreStore reads and writes the collections the public site uses in
// Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

var _ interfaces.IDocumentStore = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Ping lists the first root collection, which needs a working connection and
// valid credentials but no data.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return toFirestoreStoreError(err)
	}
	return nil
}

func (s *FirestoreStore) CreateRecord(ctx context.Context, collection string, fields interfaces.Fields) (string, error) {
	data := maps.Clone(map[string]any(fields))
	if data == nil {
		data = map[string]any{}
	}
	data[interfaces.VersionField] = int64(1)

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", toFirestoreStoreError(err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) GetRecord(ctx context.Context, collection, id string) (interfaces.Record, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return interfaces.Record{}, toFirestoreStoreError(err)
	}
	return interfaces.Record{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) ListRecords(ctx context.Context, collection string) ([]interfaces.Record, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, toFirestoreStoreError(err)
	}
	out := make([]interfaces.Record, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, interfaces.Record{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return out, nil
}

func (s *FirestoreStore) UpdateRecord(ctx context.Context, collection, id string, fields interfaces.Fields) error {
	updates := append(firestoreUpdates(fields), firestore.Update{
		Path:  interfaces.VersionField,
		Value: firestore.Increment(1),
	})
	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return toFirestoreStoreError(err)
	}
	return nil
}

func (s *FirestoreStore) UpdateRecordIfVersion(ctx context.Context, collection, id string, expectedVersion int64, fields interfaces.Fields) error {
	ref := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		current := versionOf(snap.Data()[interfaces.VersionField])
		if current != expectedVersion {
			return errVersionMismatch
		}
		updates := append(firestoreUpdates(fields), firestore.Update{
			Path:  interfaces.VersionField,
			Value: current + 1,
		})
		return tx.Update(ref, updates)
	})
	if errors.Is(err, errVersionMismatch) {
		log.Printf("[store][firestore] version conflict collection=%s id=%s expected=%d", collection, id, expectedVersion)
		return interfaces.NewStoreError(interfaces.StoreCodeAborted, err)
	}
	if err != nil {
		return toFirestoreStoreError(err)
	}
	return nil
}

func (s *FirestoreStore) DeleteRecord(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return toFirestoreStoreError(err)
	}
	return nil
}

func firestoreUpdates(fields interfaces.Fields) []firestore.Update {
	keys := slices.Sorted(maps.Keys(fields))
	updates := make([]firestore.Update, 0, len(keys)+1)
	for _, k := range keys {
		if k == interfaces.VersionField {
			continue
		}
		updates = append(updates, firestore.Update{Path: k, Value: fields[k]})
	}
	return updates
}

// versionOf reads the counter; documents written by the site's JavaScript
// client may carry it as a double.
func versionOf(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

var firestoreCodes = map[codes.Code]interfaces.StoreErrorCode{
	codes.NotFound:          interfaces.StoreCodeNotFound,
	codes.PermissionDenied:  interfaces.StoreCodePermissionDenied,
	codes.Unavailable:       interfaces.StoreCodeUnavailable,
	codes.DeadlineExceeded:  interfaces.StoreCodeUnavailable,
	codes.AlreadyExists:     interfaces.StoreCodeAlreadyExists,
	codes.ResourceExhausted: interfaces.StoreCodeResourceExhausted,
	codes.Unauthenticated:   interfaces.StoreCodeUnauthenticated,
	codes.Aborted:           interfaces.StoreCodeAborted,
}

func toFirestoreStoreError(err error) error {
	if code, ok := firestoreCodes[status.Code(err)]; ok {
		return interfaces.NewStoreError(code, err)
	}
	return interfaces.NewStoreError(interfaces.StoreCodeUnknown, err)
}
