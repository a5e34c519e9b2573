package usecase

import (
	"context"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/query"
	"nelly_tech/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// DashboardOverview is the back office landing page.
type DashboardOverview struct {
	Stats          entities.DashboardStats
	RecentActivity []entities.Activity
}

type IDashboardUseCase interface {
	Overview(ctx context.Context) (DashboardOverview, error)
}

type DashboardUseCase struct {
	projects interfaces.IProjectRepository
	quotes   interfaces.IQuoteRequestRepository
	loc      *time.Location
	now      func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(projects interfaces.IProjectRepository, quotes interfaces.IQuoteRequestRepository, loc *time.Location) *DashboardUseCase {
	return &DashboardUseCase{projects: projects, quotes: quotes, loc: loc, now: time.Now}
}

// Overview loads both collections concurrently and derives counters and the
// recent-activity feed from the same snapshots.
func (u *DashboardUseCase) Overview(ctx context.Context) (DashboardOverview, error) {
	var (
		projects []entities.Project
		quotes   []entities.QuoteRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = u.projects.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		quotes, err = u.quotes.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardOverview{}, err
	}

	return DashboardOverview{
		Stats:          query.ComputeStats(projects, quotes),
		RecentActivity: query.RecentActivity(projects, quotes, u.now(), u.loc),
	}, nil
}
