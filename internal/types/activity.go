package types

import "github.com/google/uuid"

// EnergyLevel describes how physically demanding an activity is.
type EnergyLevel string

const (
	EnergyCalm     EnergyLevel = "calme"
	EnergyModerate EnergyLevel = "modere"
	EnergyDynamic  EnergyLevel = "dynamique"
)

// Environment describes where an activity can take place.
type Environment string

const (
	EnvironmentIndoor  Environment = "interieur"
	EnvironmentOutdoor Environment = "exterieur"
	EnvironmentBoth    Environment = "les_deux"
)

// GroupType buckets the number of children an activity is designed for.
type GroupType string

const (
	GroupSmall  GroupType = "petit"  // <= 8 children
	GroupMedium GroupType = "moyen"  // 9-15 children
	GroupLarge  GroupType = "grand"  // >= 16 children
)

// Weather applicability tags.
const (
	WeatherRain = "pluie"
	WeatherSun  = "soleil"
	WeatherAny  = "toutes"
)

// Category identifiers, matching the seeded categories table.
const (
	CategoryManual     = "manuelles"
	CategorySport      = "sportifs"
	CategoryExpression = "expression"
	CategoryBoardGames = "societe"
	CategoryOutings    = "sorties"
	CategoryIntro      = "initiation"
)

// AgeRange is an inclusive interval in years.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Overlaps reports whether the two inclusive ranges share at least one year.
func (r AgeRange) Overlaps(other AgeRange) bool {
	return r.Min <= other.Max && r.Max >= other.Min
}

// Contains reports whether a single age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Activity is one catalog entry. The catalog is read-only for the lifetime
// of the service; activities are never mutated after loading.
type Activity struct {
	ID              uuid.UUID   `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	AgeRange        AgeRange    `json:"age_range"`
	DurationMinutes int         `json:"duration_minutes"`
	EnergyLevel     EnergyLevel `json:"energy_level"`
	Environment     Environment `json:"environment"`
	WeatherTags     []string    `json:"weather_tags"`
	GroupType       GroupType   `json:"group_type"`
	Materials       []string    `json:"materials"`
}

// HasWeatherTag reports whether the activity carries the given tag.
// Activities missing weather tags match nothing.
func (a Activity) HasWeatherTag(tag string) bool {
	for _, t := range a.WeatherTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category is display metadata for a catalog category.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ActivityFilters narrows catalog listings. Zero values mean "any".
type ActivityFilters struct {
	Category    string      `json:"category,omitempty"`
	Age         int         `json:"age,omitempty"`
	MaxDuration int         `json:"max_duration,omitempty"`
	EnergyLevel EnergyLevel `json:"energy_level,omitempty"`
}
