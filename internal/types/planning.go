package types

import (
	"time"

	"github.com/google/uuid"
)

// Weekday labels and time slots of the planner grid, Monday to Friday.
var (
	PlanningDays      = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}
	PlanningTimeSlots = []string{
		"8h00", "9h00", "10h00", "11h00", "12h00", "13h00",
		"14h00", "15h00", "16h00", "17h00", "18h00", "19h00",
	}
)

// PlanningEntry is one activity placed on the weekly grid.
type PlanningEntry struct {
	ID         uuid.UUID  `json:"id"`
	ProfileID  uuid.UUID  `json:"profile_id"`
	WeekStart  time.Time  `json:"week_start"` // Monday of the week, date only
	DayIndex   int        `json:"day_index"`  // 0 = Monday .. 4 = Friday
	TimeSlot   string     `json:"time_slot"`  // one of PlanningTimeSlots
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
	Title      string     `json:"title"`
	GroupLabel string     `json:"group_label,omitempty"`
	Duration   string     `json:"duration,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// CreatePlanningEntryParams is the request body for adding a grid entry.
type CreatePlanningEntryParams struct {
	WeekStart  string     `json:"week_start"` // YYYY-MM-DD, a Monday
	DayIndex   int        `json:"day_index"`
	TimeSlot   string     `json:"time_slot"`
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
	Title      string     `json:"title"`
	GroupLabel string     `json:"group_label,omitempty"`
	Duration   string     `json:"duration,omitempty"`
}
