package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase/interfaces"
)

var (
	ErrQuoteRequestNotFound       = errors.New("quote request not found")
	ErrInvalidQuoteRequestID      = errors.New("invalid quote request id")
	ErrInvalidQuoteStatus         = errors.New("invalid quote request status")
	ErrStatusTransitionNotAllowed = errors.New("status transition not allowed")
	ErrVersionConflict            = errors.New("record was modified by someone else")
)

// SubmitResult is what the public form gets back after a successful submission.
type SubmitResult struct {
	QuoteRequest entities.QuoteRequest
	WhatsAppURL  string
}

// IQuoteRequestUseCase exposes the lead intake flow and the back office
// operations on quote requests.
type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, sessionKey string, s intake.Submission) (SubmitResult, error)
	List(ctx context.Context, filter query.QuoteFilter) ([]entities.QuoteRequest, error)
	View(ctx context.Context, id string) (entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion *int64) (entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) error
}

type QuoteRequestUseCase struct {
	repo           interfaces.IQuoteRequestRepository
	throttles      *intake.SessionThrottles
	policy         entities.TransitionPolicy
	whatsAppNumber string
	now            func() time.Time
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(
	repo interfaces.IQuoteRequestRepository,
	throttles *intake.SessionThrottles,
	policy entities.TransitionPolicy,
	whatsAppNumber string,
) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{
		repo:           repo,
		throttles:      throttles,
		policy:         policy,
		whatsAppNumber: whatsAppNumber,
		now:            time.Now,
	}
}

// Submit runs the public form flow: throttle, validate, store. The session
// slot is reserved before validation and released again when the submission is
// rejected or the write fails, so a failed write can be retried right away.
func (u *QuoteRequestUseCase) Submit(ctx context.Context, sessionKey string, s intake.Submission) (SubmitResult, error) {
	release, err := u.throttles.Reserve(sessionKey)
	if err != nil {
		return SubmitResult{}, err
	}

	q, err := intake.Validate(s)
	if err != nil {
		release()
		return SubmitResult{}, err
	}
	q.SubmittedAt = u.now().UTC()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		release()
		log.Printf("[quote-request][usecase] create failed service=%q err=%v", q.ServiceType, err)
		return SubmitResult{}, err
	}
	log.Printf("[quote-request][usecase] submitted id=%s service=%q", created.ID, created.ServiceType)

	return SubmitResult{
		QuoteRequest: created,
		WhatsAppURL:  WhatsAppFollowUpURL(u.whatsAppNumber, created),
	}, nil
}

// WhatsAppFollowUpURL builds the wa.me link the site opens after a submission.
func WhatsAppFollowUpURL(number string, q entities.QuoteRequest) string {
	if number == "" {
		return ""
	}
	msg := fmt.Sprintf("Olá! Acabei de enviar uma solicitação de orçamento através do site.\n\n*Serviço:* %s\n*Nome:* %s",
		q.ServiceType, q.Name)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}

// List returns the quote requests newest first, narrowed by filter.
func (u *QuoteRequestUseCase) List(ctx context.Context, filter query.QuoteFilter) ([]entities.QuoteRequest, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterQuoteRequests(query.SortQuoteRequests(all), filter), nil
}

// View loads one quote request and marks it as read.
func (u *QuoteRequestUseCase) View(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	if q.Read {
		return q, nil
	}

	read, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if read.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return read, nil
}

func (u *QuoteRequestUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion *int64) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteRequestID
	}
	if !status.IsValid() {
		return entities.QuoteRequest{}, ErrInvalidQuoteStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if current.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	if !u.policy.AllowsQuote(current.Status, status) {
		return entities.QuoteRequest{}, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, current.Status.DisplayText(), status)
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, expectedVersion)
	if err != nil {
		if interfaces.StoreErrorCodeOf(err) == interfaces.StoreCodeAborted {
			return entities.QuoteRequest{}, ErrVersionConflict
		}
		return entities.QuoteRequest{}, err
	}
	if updated.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	log.Printf("[quote-request][usecase] status updated id=%s from=%q to=%q", id, current.Status, status)
	return updated, nil
}

func (u *QuoteRequestUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteRequestID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if interfaces.IsNotFound(err) {
			return ErrQuoteRequestNotFound
		}
		return err
	}
	log.Printf("[quote-request][usecase] deleted id=%s", id)
	return nil
}
