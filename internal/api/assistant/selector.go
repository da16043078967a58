package assistant

import (
	"sort"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// Diversity thresholds relative to the main suggestion's score.
const (
	alternativeScoreRatio = 0.7
	backupScoreRatio      = 0.5
)

// RankCandidates filters out activities at or below the minimum score and
// sorts the rest descending by score. The sort is stable so ties keep
// catalog order.
func RankCandidates(scored []types.ScoredActivity) []types.ScoredActivity {
	candidates := make([]types.ScoredActivity, 0, len(scored))
	for _, s := range scored {
		if s.Score > MinSuggestionScore {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// SelectSuggestions picks the three role-tagged suggestions from a ranked
// candidate list (descending score, already thresholded). A nil result
// signals "no match" upstream.
//
// The alternative must differ from the main suggestion by category and stay
// within 70% of its score; the backup must differ by category AND energy
// level within 50%. Both fall back to plain rank order when nothing
// qualifies, so the facilitator is never shown three near-identical
// activities and the backup leans toward a different energy profile.
func SelectSuggestions(ranked []types.ScoredActivity) *types.SuggestionSet {
	if len(ranked) == 0 {
		return nil
	}

	main := ranked[0]
	set := &types.SuggestionSet{Main: main.Activity}

	if alt := pickAlternative(ranked, main); alt != nil {
		set.Alternative = alt
	}
	if backup := pickBackup(ranked, main); backup != nil {
		set.Backup = backup
	}
	return set
}

func pickAlternative(ranked []types.ScoredActivity, main types.ScoredActivity) *types.Activity {
	threshold := float64(main.Score) * alternativeScoreRatio
	for _, s := range ranked[1:] {
		if s.Activity.Category != main.Activity.Category && float64(s.Score) >= threshold {
			a := s.Activity
			return &a
		}
	}
	// No diverse candidate close enough: fall back to the runner-up.
	if len(ranked) > 1 {
		a := ranked[1].Activity
		return &a
	}
	return nil
}

func pickBackup(ranked []types.ScoredActivity, main types.ScoredActivity) *types.Activity {
	threshold := float64(main.Score) * backupScoreRatio
	for _, s := range ranked[1:] {
		if s.Activity.Category != main.Activity.Category &&
			s.Activity.EnergyLevel != main.Activity.EnergyLevel &&
			float64(s.Score) >= threshold {
			a := s.Activity
			return &a
		}
	}
	if len(ranked) > 2 {
		a := ranked[2].Activity
		return &a
	}
	return nil
}
