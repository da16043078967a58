package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasserlabs/anim-tools/internal/types"
)

func TestNewlyEarned_Thresholds(t *testing.T) {
	t.Run("below threshold earns nothing", func(t *testing.T) {
		earned := map[string]bool{}
		awarded := newlyEarned(types.ProfileStats{SearchesDone: 4}, earned)
		assert.Empty(t, awarded)
	})

	t.Run("search threshold", func(t *testing.T) {
		earned := map[string]bool{}
		awarded := newlyEarned(types.ProfileStats{SearchesDone: 5}, earned)
		assert.Equal(t, []string{"curieux"}, awarded)
	})

	t.Run("view thresholds stack", func(t *testing.T) {
		earned := map[string]bool{}
		awarded := newlyEarned(types.ProfileStats{ActivitiesViewed: 30}, earned)
		assert.Equal(t, []string{"explorateur", "expert"}, awarded)
	})

	t.Run("bafa flag", func(t *testing.T) {
		earned := map[string]bool{}
		awarded := newlyEarned(types.ProfileStats{BafaStarted: true}, earned)
		assert.Equal(t, []string{"futur-anim"}, awarded)
	})
}

func TestNewlyEarned_Idempotent(t *testing.T) {
	earned := map[string]bool{"curieux": true}
	awarded := newlyEarned(types.ProfileStats{SearchesDone: 50}, earned)
	assert.Empty(t, awarded)
}

func TestNewlyEarned_CollectorFixpoint(t *testing.T) {
	// Stats satisfying every base badge at once must also unlock the
	// collector in the same evaluation.
	stats := types.ProfileStats{
		SearchesDone:     5,
		ActivitiesViewed: 30,
		PlanningCreated:  3,
		BafaStarted:      true,
		DaysVisited:      7,
	}
	earned := map[string]bool{}
	awarded := newlyEarned(stats, earned)

	require.Len(t, awarded, len(badgeRules))
	assert.Equal(t, "collectionneur", awarded[len(awarded)-1])
	for _, rule := range badgeRules {
		assert.True(t, earned[rule.ID], "badge %s not earned", rule.ID)
	}
}

func TestNewlyEarned_CollectorWaitsForAll(t *testing.T) {
	stats := types.ProfileStats{
		SearchesDone:     5,
		ActivitiesViewed: 30,
		PlanningCreated:  3,
		BafaStarted:      true,
		DaysVisited:      6, // fidele missing
	}
	earned := map[string]bool{}
	awarded := newlyEarned(stats, earned)

	assert.NotContains(t, awarded, "fidele")
	assert.NotContains(t, awarded, "collectionneur")
	assert.False(t, earned["collectionneur"])
}

func TestCollectorPrereqs_CoverEveryOtherBadge(t *testing.T) {
	require.Len(t, collectorPrereqs, len(badgeRules)-1)
	assert.NotContains(t, collectorPrereqs, collectorBadgeID)
	for _, rule := range badgeRules {
		if rule.ID == collectorBadgeID {
			continue
		}
		assert.Contains(t, collectorPrereqs, rule.ID)
	}
}

func TestBadgeRules_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range badgeRules {
		assert.False(t, seen[rule.ID], "duplicate badge id %s", rule.ID)
		seen[rule.ID] = true
	}
}
