package repository

import (
	"context"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase/interfaces"
)

// Storage keys of the "orcamentos" collection. They are the names the public
// site has always written, so existing documents keep loading.
const (
	quoteFieldName        = "nome"
	quoteFieldEmail       = "email"
	quoteFieldPhone       = "telefone"
	quoteFieldCompany     = "empresa"
	quoteFieldService     = "servico"
	quoteFieldDescription = "descricao"
	quoteFieldDeadline    = "prazo"
	quoteFieldBudget      = "orcamento"
	quoteFieldSubmittedAt = "dataEnvio"
	quoteFieldStatus      = "status"
	quoteFieldRead        = "lido"
	quoteFieldUpdatedAt   = "atualizadoEm"
)

// QuoteRequestRepository maps QuoteRequest entities onto the document store.
type QuoteRequestRepository struct {
	store      interfaces.IDocumentStore
	collection string
	now        func() time.Time
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestRepository)(nil)

func NewQuoteRequestRepository(store interfaces.IDocumentStore) *QuoteRequestRepository {
	return &QuoteRequestRepository{
		store:      store,
		collection: entities.CollectionQuoteRequests,
		now:        time.Now,
	}
}

func (r *QuoteRequestRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	id, err := r.store.CreateRecord(ctx, r.collection, toQuoteRequestFields(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	q.ID = id
	q.Version = 1
	return q, nil
}

func (r *QuoteRequestRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	rec, err := r.store.GetRecord(ctx, r.collection, id)
	if err != nil {
		if interfaces.IsNotFound(err) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestRecord(rec), nil
}

func (r *QuoteRequestRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	recs, err := r.store.ListRecords(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuoteRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromQuoteRequestRecord(rec))
	}
	return out, nil
}

func (r *QuoteRequestRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion *int64) (entities.QuoteRequest, error) {
	fields := interfaces.Fields{
		quoteFieldStatus:    string(status),
		quoteFieldUpdatedAt: r.now().UTC(),
	}
	var err error
	if expectedVersion != nil {
		err = r.store.UpdateRecordIfVersion(ctx, r.collection, id, *expectedVersion, fields)
	} else {
		err = r.store.UpdateRecord(ctx, r.collection, id, fields)
	}
	return r.afterUpdate(ctx, id, err)
}

func (r *QuoteRequestRepository) MarkRead(ctx context.Context, id string) (entities.QuoteRequest, error) {
	err := r.store.UpdateRecord(ctx, r.collection, id, interfaces.Fields{quoteFieldRead: true})
	return r.afterUpdate(ctx, id, err)
}

func (r *QuoteRequestRepository) afterUpdate(ctx context.Context, id string, err error) (entities.QuoteRequest, error) {
	if err != nil {
		if interfaces.IsNotFound(err) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *QuoteRequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.DeleteRecord(ctx, r.collection, id)
}

func toQuoteRequestFields(q entities.QuoteRequest) interfaces.Fields {
	f := interfaces.Fields{
		quoteFieldName:        q.Name,
		quoteFieldEmail:       q.Email,
		quoteFieldPhone:       q.Phone,
		quoteFieldCompany:     q.Company,
		quoteFieldService:     q.ServiceType,
		quoteFieldDescription: q.Description,
		quoteFieldDeadline:    q.DesiredDeadline,
		quoteFieldBudget:      q.BudgetRange,
		quoteFieldSubmittedAt: timeOrNil(q.SubmittedAt),
		quoteFieldStatus:      string(q.Status),
		quoteFieldRead:        q.Read,
	}
	if !q.UpdatedAt.IsZero() {
		f[quoteFieldUpdatedAt] = q.UpdatedAt.UTC()
	}
	return f
}

func fromQuoteRequestRecord(rec interfaces.Record) entities.QuoteRequest {
	f := rec.Fields
	return entities.QuoteRequest{
		ID:              rec.ID,
		Name:            fieldString(f, quoteFieldName),
		Email:           fieldString(f, quoteFieldEmail),
		Phone:           fieldString(f, quoteFieldPhone),
		Company:         fieldString(f, quoteFieldCompany),
		ServiceType:     fieldString(f, quoteFieldService),
		Description:     fieldString(f, quoteFieldDescription),
		DesiredDeadline: fieldString(f, quoteFieldDeadline),
		BudgetRange:     fieldString(f, quoteFieldBudget),
		SubmittedAt:     fieldTime(f, quoteFieldSubmittedAt),
		Status:          entities.QuoteStatus(fieldString(f, quoteFieldStatus)),
		Read:            fieldBool(f, quoteFieldRead),
		UpdatedAt:       fieldTime(f, quoteFieldUpdatedAt),
		Version:         fieldInt64(f, interfaces.VersionField),
	}
}
