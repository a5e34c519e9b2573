package query

import "nelly_tech/internal/domain/entities"

// ComputeStats aggregates the dashboard counters from full snapshots.
func ComputeStats(projects []entities.Project, quotes []entities.QuoteRequest) entities.DashboardStats {
	var s entities.DashboardStats

	s.Projects.Total = len(projects)
	for _, p := range projects {
		switch p.Status {
		case entities.ProjectStatusProgress:
			s.Projects.InProgress++
		case entities.ProjectStatusCompleted:
			s.Projects.Completed++
		}
	}

	s.Quotes.Total = len(quotes)
	for _, q := range quotes {
		if !q.Read {
			s.Quotes.New++
		}
		switch {
		case q.Status.IsInProgress():
			s.Quotes.InProgress++
		case q.Status.IsDone():
			s.Quotes.Completed++
		}
	}
	return s
}
