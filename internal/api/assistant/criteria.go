package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nasserlabs/anim-tools/internal/types"
)

// normalizeQuery lowercases the text and strips diacritics so keyword rules
// match "intérieur" and "interieur" alike.
func normalizeQuery(query string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(query))
	if err != nil {
		return strings.ToLower(query)
	}
	return folded
}

// A criteriaRule recognizes one pattern in the normalized query and writes
// the corresponding field(s) on the Criteria. Rules for a dimension are kept
// in an ordered table; the first rule that applies wins the dimension.
type criteriaRule struct {
	name  string
	apply func(q string, c *types.Criteria) bool
}

var (
	ageRangeRe  = regexp.MustCompile(`(\d+)\s*(?:a|-)\s*(\d+)\s*ans`)
	ageSingleRe = regexp.MustCompile(`(\d+)\s*ans`)
	durationRe  = regexp.MustCompile(`(\d+)\s*min`)
	groupSizeRe = regexp.MustCompile(`(\d+)\s*enfants?`)
	aloneRienRe = regexp.MustCompile(`\brien\b`)
)

func containsAny(q string, keywords ...string) bool {
	for _, k := range keywords {
		if containsAtWordStart(q, k) {
			return true
		}
	}
	return false
}

// containsAtWordStart reports whether kw occurs in q beginning at a word
// boundary. Matching stays prefix-based past the boundary so "manuel" fires
// on "manuelles", but "vite" no longer fires inside the folded "activite"
// and "pose" no longer fires inside "propose".
func containsAtWordStart(q, kw string) bool {
	for from := 0; ; {
		i := strings.Index(q[from:], kw)
		if i < 0 {
			return false
		}
		i += from
		if i == 0 || !isWordByte(q[i-1]) {
			return true
		}
		from = i + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= utf8.RuneSelf
}

// Age rules, tried in priority order: explicit range, explicit single age,
// then named age bands.
var ageRules = []criteriaRule{
	{"explicit-range", func(q string, c *types.Criteria) bool {
		m := ageRangeRe.FindStringSubmatch(q)
		if m == nil {
			return false
		}
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		c.Age = &types.AgeRange{Min: min, Max: max}
		return true
	}},
	{"explicit-single", func(q string, c *types.Criteria) bool {
		m := ageSingleRe.FindStringSubmatch(q)
		if m == nil {
			return false
		}
		age, _ := strconv.Atoi(m[1])
		c.Age = &types.AgeRange{Min: age, Max: age}
		return true
	}},
	{"band-petits", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "petits", "maternelle") {
			return false
		}
		c.Age = &types.AgeRange{Min: 3, Max: 5}
		return true
	}},
	{"band-moyens", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "moyens") {
			return false
		}
		c.Age = &types.AgeRange{Min: 6, Max: 8}
		return true
	}},
	{"band-grands", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "grands", "ados") {
			return false
		}
		c.Age = &types.AgeRange{Min: 9, Max: 12}
		return true
	}},
}

// Energy keyword families, tried calme -> dynamique -> modere.
var energyRules = []criteriaRule{
	{"calme", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "calme", "tranquille", "pose", "relax", "repos", "silence") {
			return false
		}
		c.EnergyLevel = types.EnergyCalm
		return true
	}},
	{"dynamique", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "dynamique", "energie", "bouger", "sport", "actif", "courir") {
			return false
		}
		c.EnergyLevel = types.EnergyDynamic
		return true
	}},
	{"modere", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "modere", "moyen", "normal") {
			return false
		}
		c.EnergyLevel = types.EnergyModerate
		return true
	}},
}

// Weather and environment share one table: rain is evaluated first and forces
// indoor, so an explicit "dehors" in the same query cannot override it.
var weatherRules = []criteriaRule{
	{"pluie", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "pluie", "pleut", "pluvieux", "averse") {
			return false
		}
		c.Weather = types.WeatherRain
		c.Environment = types.EnvironmentIndoor
		return true
	}},
	{"interieur", func(q string, c *types.Criteria) bool {
		if c.Environment != "" || !containsAny(q, "interieur", "dedans", "salle") {
			return false
		}
		c.Environment = types.EnvironmentIndoor
		return true
	}},
	{"exterieur", func(q string, c *types.Criteria) bool {
		if c.Environment != "" || !containsAny(q, "exterieur", "dehors", "plein air") {
			return false
		}
		c.Environment = types.EnvironmentOutdoor
		return true
	}},
}

// Duration targets, in minutes. "rapide" and friends mean 25, "long" means 60.
const (
	quickDurationTarget = 25
	longDurationTarget  = 60
)

var durationRules = []criteriaRule{
	{"explicit-minutes", func(q string, c *types.Criteria) bool {
		m := durationRe.FindStringSubmatch(q)
		if m == nil {
			return false
		}
		c.DurationMinutes, _ = strconv.Atoi(m[1])
		return true
	}},
	{"rapide", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "rapide", "court", "vite") {
			return false
		}
		c.DurationMinutes = quickDurationTarget
		return true
	}},
	{"long", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "long", "longue") {
			return false
		}
		c.DurationMinutes = longDurationTarget
		return true
	}},
}

// groupTypeForCount buckets an explicit children count.
func groupTypeForCount(n int) types.GroupType {
	switch {
	case n <= 8:
		return types.GroupSmall
	case n <= 15:
		return types.GroupMedium
	default:
		return types.GroupLarge
	}
}

var groupRules = []criteriaRule{
	{"explicit-count", func(q string, c *types.Criteria) bool {
		m := groupSizeRe.FindStringSubmatch(q)
		if m == nil {
			return false
		}
		n, _ := strconv.Atoi(m[1])
		c.GroupType = groupTypeForCount(n)
		return true
	}},
	{"petit-groupe", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "petit groupe") {
			return false
		}
		c.GroupType = types.GroupSmall
		return true
	}},
	{"grand-groupe", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "grand groupe", "nombreux", "beaucoup") {
			return false
		}
		c.GroupType = types.GroupLarge
		return true
	}},
}

// Material flags are independent detectors, not alternatives: a query can set
// both, the scorer decides which one applies to a given activity.
var materialRules = []criteriaRule{
	{"sans-materiel", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "sans materiel") && !aloneRienRe.MatchString(q) {
			return false
		}
		c.NoMaterial = true
		return true
	}},
	{"peu-de-materiel", func(q string, c *types.Criteria) bool {
		if !containsAny(q, "peu de materiel") {
			return false
		}
		c.LittleMaterial = true
		return true
	}},
}

// Category families in fixed order; at most one category is set.
var categoryRules = []criteriaRule{
	{types.CategoryManual, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "manuel", "crea", "bricolage", "peinture", "dessin") {
			return false
		}
		c.Category = types.CategoryManual
		return true
	}},
	{types.CategorySport, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "sport", "foot", "ballon", "physique") {
			return false
		}
		c.Category = types.CategorySport
		return true
	}},
	{types.CategoryExpression, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "expression", "theatre", "danse", "chant", "mime") {
			return false
		}
		c.Category = types.CategoryExpression
		return true
	}},
	{types.CategoryBoardGames, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "societe", "plateau", "cartes") {
			return false
		}
		c.Category = types.CategoryBoardGames
		return true
	}},
	{types.CategoryOutings, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "sortie", "balade", "excursion", "visite") {
			return false
		}
		c.Category = types.CategoryOutings
		return true
	}},
	{types.CategoryIntro, func(q string, c *types.Criteria) bool {
		if !containsAny(q, "initiation", "decouverte") {
			return false
		}
		c.Category = types.CategoryIntro
		return true
	}},
}

// dimensionTables lists every dimension's rule table. Dimensions are
// evaluated independently; within a table the first applying rule wins.
var dimensionTables = [][]criteriaRule{
	ageRules,
	energyRules,
	weatherRules,
	durationRules,
	groupRules,
	categoryRules,
}

// ExtractCriteria parses free-text (French) into a partial Criteria. It never
// fails: text with no recognizable pattern yields an empty Criteria, which
// downstream produces the clarification path rather than an error.
func ExtractCriteria(query string) types.Criteria {
	q := normalizeQuery(query)
	var c types.Criteria

	for _, table := range dimensionTables {
		for _, rule := range table {
			if rule.apply(q, &c) {
				break
			}
		}
	}
	// Material detectors are independent booleans, so both rules run.
	for _, rule := range materialRules {
		rule.apply(q, &c)
	}
	return c
}
