package domain

import "time"

// ContributionDay is a single day's activity count.
type ContributionDay struct {
	Count int    `json:"contributionCount"`
	Date  string `json:"date"`
}

// ContributionWeek groups days as the provider's calendar does.
type ContributionWeek struct {
	Days []ContributionDay `json:"contributionDays"`
}

// ContributionCalendar is a year of daily activity plus a running total.
// Display-only; never used for control decisions.
type ContributionCalendar struct {
	Total int                `json:"totalContributions"`
	Weeks []ContributionWeek `json:"weeks"`
}

// Event is one item of recent account activity, best-effort telemetry.
type Event struct {
	Type      string    `json:"type"`
	Repo      string    `json:"repo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
