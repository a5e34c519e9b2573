package response

import (
	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/usecase"
)

type DashboardResponse struct {
	Stats          entities.DashboardStats `json:"stats"`
	RecentActivity []entities.Activity     `json:"recent_activity"`
}

func FromDashboardOverview(o usecase.DashboardOverview) DashboardResponse {
	activity := o.RecentActivity
	if activity == nil {
		activity = []entities.Activity{}
	}
	return DashboardResponse{Stats: o.Stats, RecentActivity: activity}
}
