package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasserlabs/anim-tools/internal/types"
)

func scoredFixture(slug, category string, energy types.EnergyLevel, score int) types.ScoredActivity {
	return types.ScoredActivity{
		Activity: types.Activity{Slug: slug, Category: category, EnergyLevel: energy},
		Score:    score,
	}
}

func TestRankCandidates(t *testing.T) {
	t.Run("threshold is strict", func(t *testing.T) {
		scored := []types.ScoredActivity{
			scoredFixture("low", types.CategorySport, types.EnergyDynamic, MinSuggestionScore),
			scoredFixture("ok", types.CategoryManual, types.EnergyCalm, MinSuggestionScore+1),
			scoredFixture("zero", types.CategoryOutings, types.EnergyCalm, 0),
		}
		ranked := RankCandidates(scored)
		require.Len(t, ranked, 1)
		assert.Equal(t, "ok", ranked[0].Activity.Slug)
	})

	t.Run("descending with stable ties", func(t *testing.T) {
		scored := []types.ScoredActivity{
			scoredFixture("first-tie", types.CategoryManual, types.EnergyCalm, 10),
			scoredFixture("top", types.CategorySport, types.EnergyDynamic, 20),
			scoredFixture("second-tie", types.CategoryOutings, types.EnergyCalm, 10),
		}
		ranked := RankCandidates(scored)
		require.Len(t, ranked, 3)
		assert.Equal(t, "top", ranked[0].Activity.Slug)
		assert.Equal(t, "first-tie", ranked[1].Activity.Slug)
		assert.Equal(t, "second-tie", ranked[2].Activity.Slug)
	})
}

func TestSelectSuggestions_Empty(t *testing.T) {
	assert.Nil(t, SelectSuggestions(nil))
	assert.Nil(t, SelectSuggestions([]types.ScoredActivity{}))
}

func TestSelectSuggestions_SingleCandidate(t *testing.T) {
	ranked := []types.ScoredActivity{
		scoredFixture("only", types.CategoryManual, types.EnergyCalm, 20),
	}
	set := SelectSuggestions(ranked)
	require.NotNil(t, set)
	assert.Equal(t, "only", set.Main.Slug)
	assert.Nil(t, set.Alternative)
	assert.Nil(t, set.Backup)
}

func TestSelectSuggestions_DiversityPreferred(t *testing.T) {
	// The runner-up shares the main's category; the third entry differs in
	// category and energy and stays above both ratio thresholds.
	ranked := []types.ScoredActivity{
		scoredFixture("main", types.CategoryManual, types.EnergyCalm, 20),
		scoredFixture("same-cat", types.CategoryManual, types.EnergyCalm, 19),
		scoredFixture("diverse", types.CategorySport, types.EnergyDynamic, 15),
	}
	set := SelectSuggestions(ranked)
	require.NotNil(t, set)
	assert.Equal(t, "main", set.Main.Slug)

	require.NotNil(t, set.Alternative)
	assert.Equal(t, "diverse", set.Alternative.Slug)

	require.NotNil(t, set.Backup)
	assert.Equal(t, "diverse", set.Backup.Slug)
}

func TestSelectSuggestions_AlternativeRatioFallback(t *testing.T) {
	// Diff-category candidate exists but sits below 70% of the main score, so
	// the alternative falls back to the runner-up.
	ranked := []types.ScoredActivity{
		scoredFixture("main", types.CategoryManual, types.EnergyCalm, 20),
		scoredFixture("same-cat", types.CategoryManual, types.EnergyCalm, 18),
		scoredFixture("too-weak", types.CategorySport, types.EnergyDynamic, 13),
	}
	set := SelectSuggestions(ranked)
	require.NotNil(t, set)

	require.NotNil(t, set.Alternative)
	assert.Equal(t, "same-cat", set.Alternative.Slug)

	// 13 >= 20*0.5, different category and energy: backup still diversifies.
	require.NotNil(t, set.Backup)
	assert.Equal(t, "too-weak", set.Backup.Slug)
}

func TestSelectSuggestions_BackupNeedsBothDimensions(t *testing.T) {
	// Different category but same energy disqualifies the diversity pick; the
	// backup falls back to rank 3.
	ranked := []types.ScoredActivity{
		scoredFixture("main", types.CategoryManual, types.EnergyCalm, 20),
		scoredFixture("alt", types.CategorySport, types.EnergyCalm, 16),
		scoredFixture("third", types.CategoryOutings, types.EnergyCalm, 12),
	}
	set := SelectSuggestions(ranked)
	require.NotNil(t, set)

	require.NotNil(t, set.Alternative)
	assert.Equal(t, "alt", set.Alternative.Slug)

	require.NotNil(t, set.Backup)
	assert.Equal(t, "third", set.Backup.Slug)
}

func TestSelectSuggestions_TwoCandidatesNoBackup(t *testing.T) {
	ranked := []types.ScoredActivity{
		scoredFixture("main", types.CategoryManual, types.EnergyCalm, 20),
		scoredFixture("alt", types.CategoryManual, types.EnergyCalm, 12),
	}
	set := SelectSuggestions(ranked)
	require.NotNil(t, set)
	require.NotNil(t, set.Alternative)
	assert.Equal(t, "alt", set.Alternative.Slug)
	assert.Nil(t, set.Backup)
}
