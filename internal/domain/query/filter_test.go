package query

import (
	"slices"
	"testing"

	"nelly_tech/internal/domain/entities"
)

func quoteIDs(qs []entities.QuoteRequest) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestFilterQuoteRequests(t *testing.T) {
	quotes := []entities.QuoteRequest{
		{ID: "1", Status: entities.QuoteStatusNovo, Name: "Ana", ServiceType: "Site", Email: "ana@x.com"},
		{ID: "2", Status: entities.QuoteStatusAprovado, Name: "Bia", ServiceType: "App Mobile", Email: "bia@x.com"},
		{ID: "3", Status: entities.QuoteStatusAprovado, Name: "Carlos", ServiceType: "E-commerce", Email: "contato@loja.com"},
	}

	cases := []struct {
		name   string
		input  []entities.QuoteRequest
		filter QuoteFilter
		want   []string
	}{
		{"by status", quotes[:2], QuoteFilter{Status: "Novo"}, []string{"1"}},
		{"search lower case", quotes[:2], QuoteFilter{Search: "an"}, []string{"1"}},
		{"search upper case", quotes[:2], QuoteFilter{Search: "ANA"}, []string{"1"}},
		{"search matches service type", quotes, QuoteFilter{Search: "mobile"}, []string{"2"}},
		{"search matches email", quotes, QuoteFilter{Search: "loja.com"}, []string{"3"}},
		{"predicates are combined", quotes, QuoteFilter{Status: "Aprovado", Search: "car"}, []string{"3"}},
		{"combined without match", quotes, QuoteFilter{Status: "Novo", Search: "car"}, []string{}},
		{"empty filter keeps everything", quotes, QuoteFilter{}, []string{"1", "2", "3"}},
		{"status match is exact", quotes, QuoteFilter{Status: "aprovado"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := quoteIDs(FilterQuoteRequests(tc.input, tc.filter))
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if !(QuoteFilter{}).IsEmpty() {
		t.Fatalf("zero filter must be empty")
	}
}
