package request

import (
	"strings"

	"nelly_tech/internal/domain/intake"
)

// SubmitQuoteRequest is the public site form. The Portuguese keys are the
// field names the site already posts; either spelling is accepted.
type SubmitQuoteRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	ServiceType     string `json:"service_type"`
	Description     string `json:"description"`
	DesiredDeadline string `json:"desired_deadline"`
	BudgetRange     string `json:"budget_range"`

	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
	Empresa   string `json:"empresa"`
	Servico   string `json:"servico"`
	Descricao string `json:"descricao"`
	Prazo     string `json:"prazo"`
	Orcamento string `json:"orcamento"`
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ToSubmission resolves the alternative field names. Values are passed raw;
// trimming and defaults belong to the validator.
func (r SubmitQuoteRequest) ToSubmission() intake.Submission {
	return intake.Submission{
		Name:            firstNonBlank(r.Name, r.Nome),
		Email:           r.Email,
		Phone:           firstNonBlank(r.Phone, r.Telefone),
		Company:         firstNonBlank(r.Company, r.Empresa),
		ServiceType:     firstNonBlank(r.ServiceType, r.Servico),
		Description:     firstNonBlank(r.Description, r.Descricao),
		DesiredDeadline: firstNonBlank(r.DesiredDeadline, r.Prazo),
		BudgetRange:     firstNonBlank(r.BudgetRange, r.Orcamento),
	}
}

// UpdateQuoteStatusRequest changes the status of a quote request. When
// ExpectedVersion is set the update only applies to that version.
type UpdateQuoteStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	ExpectedVersion *int64 `json:"expected_version"`
}

func (r UpdateQuoteStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
