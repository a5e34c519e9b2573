package interfaces

import (
	"context"

	"nelly_tech/internal/domain/entities"
)

// IQuoteRequestRepository persists quote requests (collection "orcamentos").
//
// Lookups and updates of a missing record return a zero QuoteRequest and no error.
type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	// UpdateStatus writes status and stamps the update time. A nil expectedVersion
	// is a last-write-wins update.
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion *int64) (entities.QuoteRequest, error)
	MarkRead(ctx context.Context, id string) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
}
