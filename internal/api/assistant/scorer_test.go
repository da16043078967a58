package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nasserlabs/anim-tools/internal/types"
)

func activityFixture(mutate func(*types.Activity)) types.Activity {
	a := types.Activity{
		Slug:            "fresque-collective",
		Title:           "Fresque collective",
		Category:        types.CategoryManual,
		AgeRange:        types.AgeRange{Min: 6, Max: 10},
		DurationMinutes: 45,
		EnergyLevel:     types.EnergyCalm,
		Environment:     types.EnvironmentIndoor,
		WeatherTags:     []string{types.WeatherRain, types.WeatherAny},
		GroupType:       types.GroupMedium,
		Materials:       []string{"papier kraft", "peinture"},
	}
	if mutate != nil {
		mutate(&a)
	}
	return a
}

func TestScoreActivity_Dimensions(t *testing.T) {
	t.Run("empty criteria scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreActivity(activityFixture(nil), types.Criteria{}))
	})

	t.Run("age overlap", func(t *testing.T) {
		c := types.Criteria{Age: &types.AgeRange{Min: 9, Max: 12}}
		assert.Equal(t, weightAge, ScoreActivity(activityFixture(nil), c))

		c.Age = &types.AgeRange{Min: 11, Max: 12}
		assert.Equal(t, 0, ScoreActivity(activityFixture(nil), c))
	})

	t.Run("environment matches both", func(t *testing.T) {
		c := types.Criteria{Environment: types.EnvironmentOutdoor}
		a := activityFixture(func(a *types.Activity) { a.Environment = types.EnvironmentBoth })
		assert.Equal(t, weightEnvironment, ScoreActivity(a, c))
	})

	t.Run("weather matches any tag", func(t *testing.T) {
		c := types.Criteria{Weather: types.WeatherRain}
		assert.Equal(t, weightWeather, ScoreActivity(activityFixture(nil), c))

		sunnyOnly := activityFixture(func(a *types.Activity) { a.WeatherTags = []string{types.WeatherSun} })
		assert.Equal(t, 0, ScoreActivity(sunnyOnly, c))

		allWeather := activityFixture(func(a *types.Activity) { a.WeatherTags = []string{types.WeatherAny} })
		assert.Equal(t, weightWeather, ScoreActivity(allWeather, c))
	})

	t.Run("no weather tags match nothing", func(t *testing.T) {
		c := types.Criteria{Weather: types.WeatherRain}
		bare := activityFixture(func(a *types.Activity) { a.WeatherTags = nil })
		assert.Equal(t, 0, ScoreActivity(bare, c))
	})
}

func TestDurationScore_Tiers(t *testing.T) {
	tests := []struct {
		actual, target, want int
	}{
		{45, 45, 6},
		{45, 55, 6},
		{45, 35, 6},
		{45, 60, 4},
		{45, 25, 4},
		{45, 75, 2},
		{45, 15, 2},
		{45, 90, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, durationScore(tt.actual, tt.target),
			"actual=%d target=%d", tt.actual, tt.target)
	}
}

func TestMaterialScore_NeverSummed(t *testing.T) {
	both := types.Criteria{NoMaterial: true, LittleMaterial: true}

	t.Run("single item activity scores no-material only", func(t *testing.T) {
		a := activityFixture(func(a *types.Activity) { a.Materials = []string{"ballon"} })
		assert.Equal(t, weightNoMaterial, materialScore(a, both))
	})

	t.Run("three items fall back to little-material", func(t *testing.T) {
		a := activityFixture(func(a *types.Activity) { a.Materials = []string{"a", "b", "c"} })
		assert.Equal(t, weightLittleMaterial, materialScore(a, both))
	})

	t.Run("four items score nothing", func(t *testing.T) {
		a := activityFixture(func(a *types.Activity) { a.Materials = []string{"a", "b", "c", "d"} })
		assert.Equal(t, 0, materialScore(a, both))
	})

	t.Run("empty materials list counts as no material", func(t *testing.T) {
		a := activityFixture(func(a *types.Activity) { a.Materials = nil })
		assert.Equal(t, weightNoMaterial, materialScore(a, types.Criteria{NoMaterial: true}))
	})
}

func TestScoreActivity_Monotonicity(t *testing.T) {
	// Adding a matching dimension never lowers the score.
	a := activityFixture(nil)
	base := types.Criteria{EnergyLevel: types.EnergyCalm}
	richer := base
	richer.Environment = types.EnvironmentIndoor

	assert.Greater(t, ScoreActivity(a, richer), ScoreActivity(a, base))
	assert.GreaterOrEqual(t, ScoreActivity(a, base), 0)
}

func TestScoreActivities_TotalAndOrdered(t *testing.T) {
	catalog := []types.Activity{
		activityFixture(func(a *types.Activity) { a.Slug = "a" }),
		activityFixture(func(a *types.Activity) { a.Slug = "b"; a.EnergyLevel = types.EnergyDynamic }),
		activityFixture(func(a *types.Activity) { a.Slug = "c" }),
	}
	scored := ScoreActivities(catalog, types.Criteria{EnergyLevel: types.EnergyCalm})

	assert.Len(t, scored, len(catalog))
	for i, s := range scored {
		assert.Equal(t, catalog[i].Slug, s.Activity.Slug)
		assert.GreaterOrEqual(t, s.Score, 0)
	}
	assert.Equal(t, 0, scored[1].Score)
}
