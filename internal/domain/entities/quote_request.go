package entities

import "time"

// QuoteStatus is the lifecycle label of a quote request (orçamento).
//
// The wire values are the Portuguese labels already stored by the site.
type QuoteStatus string

const (
	QuoteStatusNovo        QuoteStatus = "Novo"
	QuoteStatusEmAndamento QuoteStatus = "Em Andamento"
	QuoteStatusAprovado    QuoteStatus = "Aprovado"
	QuoteStatusConcluido   QuoteStatus = "Concluído"
	QuoteStatusEntregue    QuoteStatus = "Entregue"
)

// QuoteStatuses lists the known statuses in workflow order.
var QuoteStatuses = []QuoteStatus{
	QuoteStatusNovo,
	QuoteStatusEmAndamento,
	QuoteStatusAprovado,
	QuoteStatusConcluido,
	QuoteStatusEntregue,
}

func (s QuoteStatus) IsValid() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DisplayText returns the label shown in the back office. Records saved
// without a status are shown as new; unknown values pass through.
func (s QuoteStatus) DisplayText() string {
	if s == "" {
		return string(QuoteStatusNovo)
	}
	return string(s)
}

// IsInProgress reports whether the quote counts as "em andamento" on the dashboard.
func (s QuoteStatus) IsInProgress() bool {
	return s == QuoteStatusEmAndamento || s == QuoteStatusAprovado
}

// IsDone reports whether the quote counts as finished on the dashboard.
func (s QuoteStatus) IsDone() bool {
	return s == QuoteStatusConcluido || s == QuoteStatusEntregue
}

const (
	DefaultCompany          = "Não informado"
	DefaultNotSpecified     = "Não especificado"
	CollectionQuoteRequests = "orcamentos"
)

// QuoteRequest is a lead submitted through the public site form.
//
// Only Status and Read (plus their bookkeeping fields UpdatedAt and Version)
// change after creation, and only through the back office.
type QuoteRequest struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Company         string      `json:"company"`
	ServiceType     string      `json:"service_type"`
	Description     string      `json:"description"`
	DesiredDeadline string      `json:"desired_deadline"`
	BudgetRange     string      `json:"budget_range"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	Status          QuoteStatus `json:"status"`
	Read            bool        `json:"read"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Version         int64       `json:"version"`
}
