package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase/interfaces"
	mock_interfaces "nelly_tech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

func validSubmission() intake.Submission {
	return intake.Submission{
		Name:        "Ana Souza",
		Email:       "ana@empresa.com",
		Phone:       "15991563363",
		ServiceType: "Site Institucional",
		Description: "Quero um site para a minha empresa",
	}
}

func newQuoteUseCase(repo interfaces.IQuoteRequestRepository, clock *time.Time) *QuoteRequestUseCase {
	now := func() time.Time { return *clock }
	uc := NewQuoteRequestUseCase(repo, intake.NewSessionThrottles(intake.DefaultSubmitInterval, now), entities.TransitionPolicyPermissive, "5515991563363")
	uc.now = now
	return uc
}

func TestQuoteRequestUseCase_Submit(t *testing.T) {
	t.Run("validation error does not reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		s := validSubmission()
		s.Email = "ana"
		_, err := uc.Submit(context.Background(), "sess-1", s)
		var ve *intake.ValidationError
		if !errors.As(err, &ve) || ve.Field != intake.FieldEmail {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})

	t.Run("validation error does not start the timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1"}, nil)

		s := validSubmission()
		s.Phone = "123"
		if _, err := uc.Submit(context.Background(), "sess-1", s); err == nil {
			t.Fatalf("expected validation error")
		}
		if _, err := uc.Submit(context.Background(), "sess-1", validSubmission()); err != nil {
			t.Fatalf("corrected form must be accepted: %v", err)
		}
	})

	t.Run("concurrent submissions from one session store a single lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		var stored atomic.Int32
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				time.Sleep(50 * time.Millisecond)
				stored.Add(1)
				q.ID = "q-1"
				return q, nil
			},
		).AnyTimes()

		const attempts = 5
		var (
			wg        sync.WaitGroup
			accepted  atomic.Int32
			throttled atomic.Int32
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Submit(context.Background(), "sess-1", validSubmission())
				var te *intake.ThrottleError
				switch {
				case err == nil:
					accepted.Add(1)
				case errors.As(err, &te):
					throttled.Add(1)
				}
			}()
		}
		wg.Wait()

		if accepted.Load() != 1 || stored.Load() != 1 {
			t.Fatalf("expected exactly one accepted lead, got accepted=%d stored=%d", accepted.Load(), stored.Load())
		}
		if throttled.Load() != attempts-1 {
			t.Fatalf("expected %d throttled submissions, got %d", attempts-1, throttled.Load())
		}
	})

	t.Run("success stamps submission time and builds whatsapp link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRequest{})).DoAndReturn(
			func(_ context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
				if !q.SubmittedAt.Equal(fixedNow) {
					t.Fatalf("expected submitted_at %v, got %v", fixedNow, q.SubmittedAt)
				}
				if q.Status != entities.QuoteStatusNovo || q.Read {
					t.Fatalf("unexpected initial state: %+v", q)
				}
				if q.Phone != "(15) 99156-3363" || q.Company != entities.DefaultCompany {
					t.Fatalf("payload not normalized: %+v", q)
				}
				q.ID = "q-1"
				return q, nil
			},
		)

		res, err := uc.Submit(context.Background(), "sess-1", validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteRequest.ID != "q-1" {
			t.Fatalf("expected created id, got %q", res.QuoteRequest.ID)
		}
		u, err := url.Parse(res.WhatsAppURL)
		if err != nil || u.Host != "wa.me" || u.Path != "/5515991563363" {
			t.Fatalf("unexpected whatsapp url %q", res.WhatsAppURL)
		}
		text := u.Query().Get("text")
		if !strings.Contains(text, "*Serviço:* Site Institucional") || !strings.Contains(text, "*Nome:* Ana Souza") {
			t.Fatalf("unexpected whatsapp text %q", text)
		}
	})

	t.Run("second submission within the interval is throttled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1"}, nil).Times(2)

		if _, err := uc.Submit(context.Background(), "sess-1", validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		clock = fixedNow.Add(20 * time.Second)
		_, err := uc.Submit(context.Background(), "sess-1", validSubmission())
		var te *intake.ThrottleError
		if !errors.As(err, &te) || te.RetryAfterSeconds != 40 {
			t.Fatalf("expected throttle with 40s left, got %v", err)
		}

		if _, err := uc.Submit(context.Background(), "sess-2", validSubmission()); err != nil {
			t.Fatalf("other sessions must not be throttled: %v", err)
		}
	})

	t.Run("throttle is checked before validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1"}, nil)
		if _, err := uc.Submit(context.Background(), "sess-1", validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Submit(context.Background(), "sess-1", intake.Submission{})
		var te *intake.ThrottleError
		if !errors.As(err, &te) {
			t.Fatalf("expected throttle error, got %v", err)
		}
	})

	t.Run("store failure does not start the timer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		clock := fixedNow
		uc := newQuoteUseCase(repo, &clock)

		storeErr := interfaces.NewStoreError(interfaces.StoreCodeUnavailable, errors.New("offline"))
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, storeErr),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{ID: "q-1"}, nil),
		)

		_, err := uc.Submit(context.Background(), "sess-1", validSubmission())
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
		if _, err := uc.Submit(context.Background(), "sess-1", validSubmission()); err != nil {
			t.Fatalf("retry after a failed write must be accepted: %v", err)
		}
	})
}

func TestWhatsAppFollowUpURL_EmptyNumber(t *testing.T) {
	if got := WhatsAppFollowUpURL("", entities.QuoteRequest{Name: "Ana"}); got != "" {
		t.Fatalf("expected no link, got %q", got)
	}
}

func TestQuoteRequestUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
	clock := fixedNow
	uc := newQuoteUseCase(repo, &clock)

	repo.EXPECT().List(gomock.Any()).Return([]entities.QuoteRequest{
		{ID: "old", Name: "Ana", Status: entities.QuoteStatusNovo, SubmittedAt: fixedNow.Add(-2 * time.Hour)},
		{ID: "other", Name: "Bia", Status: entities.QuoteStatusAprovado, SubmittedAt: fixedNow},
		{ID: "new", Name: "Ana Paula", Status: entities.QuoteStatusNovo, SubmittedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	got, err := uc.List(context.Background(), query.QuoteFilter{Status: "Novo", Search: "ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestQuoteRequestUseCase_View(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, entities.TransitionPolicyPermissive, "")
		_, err := uc.View(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuoteRequestID) {
			t.Fatalf("expected ErrInvalidQuoteRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.View(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("unread request is marked read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1"}, nil)
		repo.EXPECT().MarkRead(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Read: true}, nil)

		q, err := uc.View(context.Background(), "q-1")
		if err != nil || !q.Read {
			t.Fatalf("expected read request, got %+v err=%v", q, err)
		}
	})

	t.Run("already read request is not written again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Read: true}, nil)

		if _, err := uc.View(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteRequestUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteRequestUseCase(nil, nil, entities.TransitionPolicyPermissive, "")
		_, err := uc.UpdateStatus(context.Background(), "q-1", "Arquivado", nil)
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusAprovado, nil)
		if !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("strict policy rejects skipping steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyStrict, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusNovo}, nil)

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusEntregue, nil)
		if !errors.Is(err, ErrStatusTransitionNotAllowed) {
			t.Fatalf("expected ErrStatusTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("permissive policy allows any known status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusNovo}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusEntregue, nil).
			Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusEntregue}, nil)

		q, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusEntregue, nil)
		if err != nil || q.Status != entities.QuoteStatusEntregue {
			t.Fatalf("unexpected result %+v err=%v", q, err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")
		v := int64(3)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{ID: "q-1", Version: 4}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAprovado, &v).
			Return(entities.QuoteRequest{}, interfaces.NewStoreError(interfaces.StoreCodeAborted, nil))

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusAprovado, &v)
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.QuoteRequest{}, errors.New("db"))

		_, err := uc.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusAprovado, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil))

		if err := uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuoteRequestNotFound) {
			t.Fatalf("expected ErrQuoteRequestNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		uc := NewQuoteRequestUseCase(repo, nil, entities.TransitionPolicyPermissive, "")

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		if err := uc.Delete(context.Background(), " q-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
