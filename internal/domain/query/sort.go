package query

import (
	"slices"
	"time"

	"nelly_tech/internal/domain/entities"
)

// SortQuoteRequests returns a copy of quotes ordered by submission time,
// newest first. Quotes without a timestamp count as the zero time and go last.
func SortQuoteRequests(quotes []entities.QuoteRequest) []entities.QuoteRequest {
	out := slices.Clone(quotes)
	slices.SortStableFunc(out, func(a, b entities.QuoteRequest) int {
		return compareDesc(a.SubmittedAt, b.SubmittedAt)
	})
	return out
}

// SortProjects returns a copy of projects ordered by creation time, newest first.
func SortProjects(projects []entities.Project) []entities.Project {
	out := slices.Clone(projects)
	slices.SortStableFunc(out, func(a, b entities.Project) int {
		return compareDesc(a.CreatedAt, b.CreatedAt)
	})
	return out
}

func compareDesc(a, b time.Time) int {
	return b.Compare(a)
}
