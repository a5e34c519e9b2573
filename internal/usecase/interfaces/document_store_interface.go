package interfaces

import (
	"context"
	"errors"
	"fmt"
)

// Fields is the schemaless payload of a stored record, keyed by storage field name.
type Fields map[string]any

// Record is one document of a collection.
type Record struct {
	ID     string
	Fields Fields
}

// IDocumentStore abstracts the schemaless document database behind the site.
//
// Collections are plain names ("projects", "orcamentos"). Every successful
// update increments the record's "version" field; created records start at 1.
// All failures are returned as *StoreError.
type IDocumentStore interface {
	CreateRecord(ctx context.Context, collection string, fields Fields) (string, error)
	GetRecord(ctx context.Context, collection, id string) (Record, error)
	ListRecords(ctx context.Context, collection string) ([]Record, error)
	UpdateRecord(ctx context.Context, collection, id string, fields Fields) error
	// UpdateRecordIfVersion applies fields only when the stored version equals
	// expectedVersion; otherwise it fails with StoreCodeAborted.
	UpdateRecordIfVersion(ctx context.Context, collection, id string, expectedVersion int64, fields Fields) error
	DeleteRecord(ctx context.Context, collection, id string) error
}

// VersionField is the storage key of the optimistic concurrency counter.
const VersionField = "version"

type StoreErrorCode string

const (
	StoreCodeNotFound          StoreErrorCode = "not-found"
	StoreCodePermissionDenied  StoreErrorCode = "permission-denied"
	StoreCodeUnavailable       StoreErrorCode = "unavailable"
	StoreCodeAlreadyExists     StoreErrorCode = "already-exists"
	StoreCodeResourceExhausted StoreErrorCode = "resource-exhausted"
	StoreCodeUnauthenticated   StoreErrorCode = "unauthenticated"
	StoreCodeAborted           StoreErrorCode = "aborted"
	StoreCodeUnknown           StoreErrorCode = "unknown"
)

var storeFriendlyMessages = map[StoreErrorCode]string{
	StoreCodeNotFound:          "Documento não encontrado.",
	StoreCodePermissionDenied:  "Permissão negada. Verifique as regras do banco de dados.",
	StoreCodeUnavailable:       "Serviço temporariamente indisponível.",
	StoreCodeAlreadyExists:     "Documento já existe.",
	StoreCodeResourceExhausted: "Cota excedida.",
	StoreCodeUnauthenticated:   "Usuário não autenticado.",
	StoreCodeAborted:           "O registro foi alterado por outra sessão. Recarregue e tente novamente.",
	StoreCodeUnknown:           "Erro desconhecido",
}

// StoreError is a document store failure carrying a user-facing message.
type StoreError struct {
	Code    StoreErrorCode
	Message string
	Err     error
}

// NewStoreError builds a StoreError with the friendly message for code. The
// cause stays in Err for logs and never reaches the message.
func NewStoreError(code StoreErrorCode, err error) *StoreError {
	msg, ok := storeFriendlyMessages[code]
	if !ok {
		msg = storeFriendlyMessages[StoreCodeUnknown]
	}
	return &StoreError{Code: code, Message: msg, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("store %s: %s", e.Code, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }

// StoreErrorCodeOf returns the code of a wrapped *StoreError, or "" when err is not one.
func StoreErrorCodeOf(err error) StoreErrorCode {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNotFound reports whether err is a store not-found failure.
func IsNotFound(err error) bool {
	return StoreErrorCodeOf(err) == StoreCodeNotFound
}
