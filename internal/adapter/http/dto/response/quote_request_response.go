package response

import (
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase"
)

// SubmitSuccessMessage is shown by the site after a stored submission.
const SubmitSuccessMessage = "Solicitação enviada com sucesso! Entraremos em contato em breve."

type QuoteRequestResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Company         string    `json:"company"`
	ServiceType     string    `json:"service_type"`
	Description     string    `json:"description"`
	DesiredDeadline string    `json:"desired_deadline"`
	BudgetRange     string    `json:"budget_range"`
	SubmittedAt     time.Time `json:"submitted_at"`
	DisplayDate     string    `json:"display_date"`
	Status          string    `json:"status"`
	StatusText      string    `json:"status_text"`
	Read            bool      `json:"read"`
	UpdatedAt       time.Time `json:"updated_at"`
	Version         int64     `json:"version"`
}

func FromQuoteRequest(q entities.QuoteRequest, loc *time.Location) QuoteRequestResponse {
	return QuoteRequestResponse{
		ID:              q.ID,
		Name:            q.Name,
		Email:           q.Email,
		Phone:           q.Phone,
		Company:         q.Company,
		ServiceType:     q.ServiceType,
		Description:     q.Description,
		DesiredDeadline: q.DesiredDeadline,
		BudgetRange:     q.BudgetRange,
		SubmittedAt:     q.SubmittedAt,
		DisplayDate:     query.FormatDisplayDate(q.SubmittedAt, loc),
		Status:          string(q.Status),
		StatusText:      q.Status.DisplayText(),
		Read:            q.Read,
		UpdatedAt:       q.UpdatedAt,
		Version:         q.Version,
	}
}

func FromQuoteRequests(quotes []entities.QuoteRequest, loc *time.Location) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuoteRequest(q, loc))
	}
	return out
}

type SubmitQuoteRequestResponse struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

func FromSubmitResult(r usecase.SubmitResult) SubmitQuoteRequestResponse {
	return SubmitQuoteRequestResponse{
		ID:          r.QuoteRequest.ID,
		Message:     SubmitSuccessMessage,
		WhatsAppURL: r.WhatsAppURL,
	}
}
