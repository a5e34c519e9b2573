package query

import (
	"strings"

	"nelly_tech/internal/domain/entities"
)

// QuoteFilter narrows the quote request table. Empty fields do not constrain.
type QuoteFilter struct {
	Status string
	Search string
}

func (f QuoteFilter) IsEmpty() bool {
	return f.Status == "" && f.Search == ""
}

// FilterQuoteRequests keeps the quotes matching both the exact status and the
// case-insensitive search over name, service type and e-mail.
func FilterQuoteRequests(quotes []entities.QuoteRequest, f QuoteFilter) []entities.QuoteRequest {
	term := strings.ToLower(f.Search)
	out := make([]entities.QuoteRequest, 0, len(quotes))
	for _, q := range quotes {
		if f.Status != "" && string(q.Status) != f.Status {
			continue
		}
		if term != "" && !matchesSearch(q, term) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matchesSearch(q entities.QuoteRequest, term string) bool {
	return strings.Contains(strings.ToLower(q.Name), term) ||
		strings.Contains(strings.ToLower(q.ServiceType), term) ||
		strings.Contains(strings.ToLower(q.Email), term)
}
