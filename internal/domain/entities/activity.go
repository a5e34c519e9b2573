package entities

import "time"

type ActivityType string

const (
	ActivityTypeProject      ActivityType = "project"
	ActivityTypeQuoteRequest ActivityType = "orcamento"
)

// Activity is one line of the dashboard's recent-activity feed.
type Activity struct {
	Type        ActivityType `json:"type"`
	Message     string       `json:"message"`
	Date        time.Time    `json:"date"`
	DisplayDate string       `json:"display_date"`
	Icon        string       `json:"icon"`
}

// DashboardStats are the dashboard counters.
type DashboardStats struct {
	Projects ProjectStats `json:"projects"`
	Quotes   QuoteStats   `json:"quotes"`
}

type ProjectStats struct {
	Total      int `json:"total"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type QuoteStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}
