package response

import (
	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
)

type PhoneMaskResponse struct {
	Value  string `json:"value"`
	Digits string `json:"digits"`
	Valid  bool   `json:"valid"`
}

func FromPhone(raw string) PhoneMaskResponse {
	return PhoneMaskResponse{
		Value:  intake.FormatPhone(raw),
		Digits: intake.PhoneDigits(raw),
		Valid:  intake.IsValidPhone(raw),
	}
}

type StatusOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// SettingsResponse describes the back office options for status selects.
type SettingsResponse struct {
	TransitionPolicy      string                    `json:"transition_policy"`
	QuoteStatuses         []StatusOption            `json:"quote_statuses"`
	ProjectStatuses       []StatusOption            `json:"project_statuses"`
	QuoteTransitions      map[string][]StatusOption `json:"quote_transitions"`
	SubmitIntervalSeconds int                       `json:"submit_interval_seconds"`
	WhatsAppNumber        string                    `json:"whatsapp_number"`
}

func quoteOptions(statuses []entities.QuoteStatus) []StatusOption {
	out := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusOption{Value: string(s), Text: s.DisplayText()})
	}
	return out
}

func NewSettingsResponse(policy entities.TransitionPolicy, submitIntervalSeconds int, whatsAppNumber string) SettingsResponse {
	transitions := make(map[string][]StatusOption, len(entities.QuoteStatuses))
	for _, from := range entities.QuoteStatuses {
		transitions[string(from)] = quoteOptions(policy.NextQuoteStatuses(from))
	}

	projectStatuses := make([]StatusOption, 0, len(entities.ProjectStatuses))
	for _, s := range entities.ProjectStatuses {
		projectStatuses = append(projectStatuses, StatusOption{Value: string(s), Text: s.DisplayText()})
	}

	return SettingsResponse{
		TransitionPolicy:      string(policy),
		QuoteStatuses:         quoteOptions(entities.QuoteStatuses),
		ProjectStatuses:       projectStatuses,
		QuoteTransitions:      transitions,
		SubmitIntervalSeconds: submitIntervalSeconds,
		WhatsAppNumber:        whatsAppNumber,
	}
}
