package assistant

import "github.com/nasserlabs/anim-tools/internal/types"

// Per-dimension weights, descending by importance. Tuning these changes the
// ranking, not the match rules.
const (
	weightAge            = 10
	weightEnergy         = 9
	weightEnvironment    = 8
	weightWeather        = 7
	weightCategory       = 6
	weightGroup          = 5
	weightNoMaterial     = 4
	weightLittleMaterial = 3
)

// Duration contribution tiers by absolute distance from the target.
const (
	durationTierClose  = 10 // |delta| <= 10 min scores 6
	durationTierNear   = 20 // |delta| <= 20 min scores 4
	durationTierFar    = 30 // |delta| <= 30 min scores 2
	noMaterialMaxItems = 1
	littleMaterialMax  = 3
)

// MinSuggestionScore is the threshold below which a scored activity is not
// eligible for selection.
const MinSuggestionScore = 5

// ScoreActivity computes the weighted relevance of one activity. Absent
// criteria fields contribute 0, as do activity fields left unset in the
// catalog; the result is never negative.
func ScoreActivity(a types.Activity, c types.Criteria) int {
	score := 0

	if c.Age != nil && a.AgeRange.Overlaps(*c.Age) {
		score += weightAge
	}
	if c.EnergyLevel != "" && a.EnergyLevel == c.EnergyLevel {
		score += weightEnergy
	}
	if c.Environment != "" && (a.Environment == c.Environment || a.Environment == types.EnvironmentBoth) {
		score += weightEnvironment
	}
	if c.Weather != "" && (a.HasWeatherTag(c.Weather) || a.HasWeatherTag(types.WeatherAny)) {
		score += weightWeather
	}
	if c.DurationMinutes > 0 {
		score += durationScore(a.DurationMinutes, c.DurationMinutes)
	}
	if c.GroupType != "" && a.GroupType == c.GroupType {
		score += weightGroup
	}
	score += materialScore(a, c)
	if c.Category != "" && a.Category == c.Category {
		score += weightCategory
	}

	return score
}

func durationScore(actual, target int) int {
	delta := actual - target
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= durationTierClose:
		return 6
	case delta <= durationTierNear:
		return 4
	case delta <= durationTierFar:
		return 2
	default:
		return 0
	}
}

// materialScore applies the no-material and little-material tests. The two
// are never summed for one activity: when the no-material test already
// scored, little-material is skipped.
func materialScore(a types.Activity, c types.Criteria) int {
	if c.NoMaterial && len(a.Materials) <= noMaterialMaxItems {
		return weightNoMaterial
	}
	if c.LittleMaterial && len(a.Materials) <= littleMaterialMax {
		return weightLittleMaterial
	}
	return 0
}

// ScoreActivities scores every catalog activity against the criteria. It is
// total: one entry per input activity, in catalog order, no filtering.
func ScoreActivities(activities []types.Activity, c types.Criteria) []types.ScoredActivity {
	scored := make([]types.ScoredActivity, 0, len(activities))
	for _, a := range activities {
		scored = append(scored, types.ScoredActivity{Activity: a, Score: ScoreActivity(a, c)})
	}
	return scored
}
