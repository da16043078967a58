package types

import "time"

// BafaStage is one step of the BAFA certification roadmap. Stages are static
// reference data seeded by migration.
type BafaStage struct {
	ID          string `json:"id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	AverageCost string `json:"average_cost"`
}

// BafaStageProgress is a stage with the profile's completion state.
type BafaStageProgress struct {
	BafaStage
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// BafaProgress summarizes a profile's roadmap advancement.
type BafaProgress struct {
	Stages  []BafaStageProgress `json:"stages"`
	Done    int                 `json:"done"`
	Total   int                 `json:"total"`
	Percent int                 `json:"percent"`
}

// ToggleBafaStageParams marks a stage complete or not.
type ToggleBafaStageParams struct {
	StageID   string `json:"stage_id"`
	Completed bool   `json:"completed"`
}
