package query

import (
	"fmt"
	"slices"
	"time"

	"nelly_tech/internal/domain/entities"
)

const (
	recentPerCollection = 3
	recentFeedSize      = 5
	displayDateLayout   = "02/01/2006 15:04"
)

// RecentActivity builds the dashboard feed: the last three records of each
// snapshot (in snapshot order, most recent last), merged and ordered by date,
// newest first, capped at five entries.
//
// A project with no timestamps sorts as the zero time. A quote request with no
// submission time is dated now, so it floats to the top of the feed.
func RecentActivity(projects []entities.Project, quotes []entities.QuoteRequest, now time.Time, loc *time.Location) []entities.Activity {
	activities := make([]entities.Activity, 0, 2*recentPerCollection)

	for _, p := range lastReversed(projects, recentPerCollection) {
		activities = append(activities, entities.Activity{
			Type:    entities.ActivityTypeProject,
			Message: fmt.Sprintf("Projeto \"%s\" - %s", p.Name, p.Status.DisplayText()),
			Date:    p.ActivityAt(),
			Icon:    "fa-folder",
		})
	}

	for _, q := range lastReversed(quotes, recentPerCollection) {
		date := q.SubmittedAt
		if date.IsZero() {
			date = now
		}
		activities = append(activities, entities.Activity{
			Type:    entities.ActivityTypeQuoteRequest,
			Message: fmt.Sprintf("Orçamento de %s - %s", q.Name, q.Status.DisplayText()),
			Date:    date,
			Icon:    "fa-file-invoice",
		})
	}

	slices.SortStableFunc(activities, func(a, b entities.Activity) int {
		return compareDesc(a.Date, b.Date)
	})
	if len(activities) > recentFeedSize {
		activities = activities[:recentFeedSize]
	}
	for i := range activities {
		activities[i].DisplayDate = FormatDisplayDate(activities[i].Date, loc)
	}
	return activities
}

func lastReversed[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// FormatDisplayDate renders t as dd/mm/yyyy hh:mm in loc, or "-" for the zero time.
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(displayDateLayout)
}
