package assistant

import (
	"fmt"
	"strings"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// ClarificationMessage is returned whenever no activity matched the query.
const ClarificationMessage = "Je n'ai pas trouvé d'activité correspondante. " +
	"Pouvez-vous préciser l'âge des enfants, le lieu ou le type d'activité recherché ?"

const genericIntro = "Voici quelques activités qui pourraient vous plaire :"

// IndexPicker selects one index in [0, n). Injected so tests can pin the tip
// draw; production wiring uses math/rand.
type IndexPicker func(n int) int

// Tip banks by context. The facilitation tips come from the activity guides
// the catalog is based on.
var tipBanks = map[string][]string{
	"security": {
		"Pensez à délimiter clairement la zone de jeu en extérieur.",
		"Vérifiez la trousse de premiers secours avant toute sortie.",
		"Comptez les enfants régulièrement, surtout aux transitions.",
		"Prévoyez de l'eau et une protection solaire pour les activités dehors.",
	},
	"group": {
		"Avec un grand groupe, divisez en équipes avec un repère couleur par équipe.",
		"Donnez les consignes avant de distribuer le matériel, jamais l'inverse.",
		"Prévoyez un signal sonore clair pour obtenir le silence rapidement.",
	},
	"pedagogy": {
		"Avec les plus petits, montrez l'exemple plutôt que de tout expliquer.",
		"Des consignes en une phrase, une seule action à la fois.",
		"Valorisez chaque essai, le résultat compte moins que la participation.",
	},
	"organization": {
		"Préparez le matériel avant l'arrivée des enfants pour garder leur attention.",
		"Prévoyez toujours une variante plus simple et une plus difficile.",
		"Annoncez la fin de l'activité cinq minutes avant pour une transition douce.",
	},
}

// tipBankFor picks the tip bank for the recognized criteria. First matching
// context wins: outdoor safety, then large groups, then young children,
// organization by default.
func tipBankFor(c types.Criteria) []string {
	switch {
	case c.Environment == types.EnvironmentOutdoor:
		return tipBanks["security"]
	case c.GroupType == types.GroupLarge:
		return tipBanks["group"]
	case c.Age != nil && c.Age.Max <= 6:
		return tipBanks["pedagogy"]
	default:
		return tipBanks["organization"]
	}
}

// criteriaFragments renders one natural-language fragment per recognized
// dimension, in fixed order.
func criteriaFragments(c types.Criteria) []string {
	var fragments []string

	switch c.EnergyLevel {
	case types.EnergyCalm:
		fragments = append(fragments, "une activité calme")
	case types.EnergyDynamic:
		fragments = append(fragments, "une activité dynamique")
	case types.EnergyModerate:
		fragments = append(fragments, "une activité d'intensité modérée")
	}

	switch c.Environment {
	case types.EnvironmentIndoor:
		fragments = append(fragments, "en intérieur")
	case types.EnvironmentOutdoor:
		fragments = append(fragments, "en extérieur")
	}

	if c.Weather == types.WeatherRain {
		fragments = append(fragments, "adaptée à un jour de pluie")
	}

	if c.Age != nil {
		if c.Age.Min == c.Age.Max {
			fragments = append(fragments, fmt.Sprintf("pour des enfants de %d ans", c.Age.Min))
		} else {
			fragments = append(fragments, fmt.Sprintf("pour les %d-%d ans", c.Age.Min, c.Age.Max))
		}
	}

	switch c.GroupType {
	case types.GroupSmall:
		fragments = append(fragments, "pour un petit groupe")
	case types.GroupMedium:
		fragments = append(fragments, "pour un groupe moyen")
	case types.GroupLarge:
		fragments = append(fragments, "pour un grand groupe")
	}

	if c.NoMaterial {
		fragments = append(fragments, "sans matériel")
	} else if c.LittleMaterial {
		fragments = append(fragments, "avec peu de matériel")
	}

	return fragments
}

// ComposeResponse builds the assistant's explanation text and draws one
// facilitation tip. With a nil suggestion set it returns the fixed
// clarification request and no tip; otherwise a tip is always attached.
func ComposeResponse(c types.Criteria, suggestions *types.SuggestionSet, pick IndexPicker) (text, tip string) {
	if suggestions == nil {
		return ClarificationMessage, ""
	}

	fragments := criteriaFragments(c)
	if len(fragments) == 0 {
		text = genericIntro
	} else {
		text = fmt.Sprintf("J'ai bien compris : vous cherchez %s. Voici mes suggestions :",
			strings.Join(fragments, ", "))
	}

	bank := tipBankFor(c)
	tip = bank[pick(len(bank))]
	return text, tip
}
