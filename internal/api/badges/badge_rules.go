package badges

import "github.com/nasserlabs/anim-tools/internal/types"

// badgeRule pairs a badge with its unlock condition over the profile stats
// and the already-earned set. Rules are evaluated in order after every stat
// change; the collector badge reads the earned set, so evaluation loops
// until no new badge unlocks.
type badgeRule struct {
	types.Badge
	Condition func(stats types.ProfileStats, earned map[string]bool) bool
}

const collectorBadgeID = "collectionneur"

// collectorPrereqs holds every non-collector badge ID. It is filled in init
// because the collector condition cannot range over badgeRules while that
// table is still being initialized.
var collectorPrereqs []string

func init() {
	for _, rule := range badgeRules {
		if rule.ID != collectorBadgeID {
			collectorPrereqs = append(collectorPrereqs, rule.ID)
		}
	}
}

var badgeRules = []badgeRule{
	{
		Badge: types.Badge{
			ID:    "curieux",
			Label: "Curieux",
			Desc:  "Effectuez 5 recherches dans le catalogue",
			Emoji: "🔍",
			Color: "#0071e3",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.SearchesDone >= 5
		},
	},
	{
		Badge: types.Badge{
			ID:    "explorateur",
			Label: "Explorateur",
			Desc:  "Consultez 10 fiches d'activités",
			Emoji: "🗺️",
			Color: "#34c759",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.ActivitiesViewed >= 10
		},
	},
	{
		Badge: types.Badge{
			ID:    "expert",
			Label: "Expert du catalogue",
			Desc:  "Consultez 30 fiches d'activités",
			Emoji: "🎓",
			Color: "#af52de",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.ActivitiesViewed >= 30
		},
	},
	{
		Badge: types.Badge{
			ID:    "organisateur",
			Label: "Organisateur",
			Desc:  "Planifiez 3 activités dans le planning",
			Emoji: "📅",
			Color: "#ff9500",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.PlanningCreated >= 3
		},
	},
	{
		Badge: types.Badge{
			ID:    "futur-anim",
			Label: "Futur anim'",
			Desc:  "Commencez votre parcours BAFA",
			Emoji: "⭐",
			Color: "#ffd93d",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.BafaStarted
		},
	},
	{
		Badge: types.Badge{
			ID:    "fidele",
			Label: "Fidèle",
			Desc:  "Visitez l'application 7 jours différents",
			Emoji: "🔥",
			Color: "#ff3b30",
		},
		Condition: func(s types.ProfileStats, _ map[string]bool) bool {
			return s.DaysVisited >= 7
		},
	},
	{
		Badge: types.Badge{
			ID:    collectorBadgeID,
			Label: "Collectionneur",
			Desc:  "Obtenez tous les autres badges",
			Emoji: "🏆",
			Color: "#ff8c42",
		},
		Condition: func(_ types.ProfileStats, earned map[string]bool) bool {
			for _, id := range collectorPrereqs {
				if !earned[id] {
					return false
				}
			}
			return true
		},
	},
}

// newlyEarned runs the rule table to a fixpoint and returns the IDs of
// badges that unlocked, in rule order.
func newlyEarned(stats types.ProfileStats, earned map[string]bool) []string {
	var awarded []string
	for changed := true; changed; {
		changed = false
		for _, rule := range badgeRules {
			if earned[rule.ID] {
				continue
			}
			if rule.Condition(stats, earned) {
				earned[rule.ID] = true
				awarded = append(awarded, rule.ID)
				changed = true
			}
		}
	}
	return awarded
}
