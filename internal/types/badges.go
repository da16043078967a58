package types

import "time"

// StatEvent names a trackable user action. Counters feed badge conditions.
type StatEvent string

const (
	StatSearchDone      StatEvent = "searches_done"
	StatActivityViewed  StatEvent = "activities_viewed"
	StatPlanningCreated StatEvent = "planning_created"
	StatBafaStarted     StatEvent = "bafa_started"
	StatDayVisited      StatEvent = "days_visited"
)

// ValidStatEvent reports whether e names a known counter.
func ValidStatEvent(e StatEvent) bool {
	switch e {
	case StatSearchDone, StatActivityViewed, StatPlanningCreated, StatBafaStarted, StatDayVisited:
		return true
	}
	return false
}

// ProfileStats holds the per-profile counters badge conditions read.
type ProfileStats struct {
	SearchesDone     int  `json:"searches_done"`
	ActivitiesViewed int  `json:"activities_viewed"`
	PlanningCreated  int  `json:"planning_created"`
	BafaStarted      bool `json:"bafa_started"`
	DaysVisited      int  `json:"days_visited"`
}

// Badge is one achievable award.
type Badge struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// EarnedBadge records when a profile unlocked a badge.
type EarnedBadge struct {
	Badge
	EarnedAt time.Time `json:"earned_at"`
}

// BadgeStatus is a badge with the profile's progress toward it.
type BadgeStatus struct {
	Badge
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// TrackStatParams is the request body for reporting a stat event.
type TrackStatParams struct {
	Event StatEvent `json:"event"`
}
