package types

import (
	"time"

	"github.com/google/uuid"
)

// Criteria is the structured form of one free-text query. Every field is
// optional; a nil/zero field means the dimension is unconstrained. Criteria
// lives for a single query/response cycle and is never persisted.
type Criteria struct {
	Age             *AgeRange   `json:"age,omitempty"`
	EnergyLevel     EnergyLevel `json:"energy_level,omitempty"`
	Environment     Environment `json:"environment,omitempty"`
	Weather         string      `json:"weather,omitempty"`
	GroupType       GroupType   `json:"group_type,omitempty"`
	Category        string      `json:"category,omitempty"`
	DurationMinutes int         `json:"duration_minutes,omitempty"`
	NoMaterial      bool        `json:"no_material,omitempty"`
	LittleMaterial  bool        `json:"little_material,omitempty"`
}

// IsEmpty reports whether no dimension at all was recognized.
func (c Criteria) IsEmpty() bool {
	return c.Age == nil && c.EnergyLevel == "" && c.Environment == "" &&
		c.Weather == "" && c.GroupType == "" && c.Category == "" &&
		c.DurationMinutes == 0 && !c.NoMaterial && !c.LittleMaterial
}

// ScoredActivity pairs an activity with its relevance score for one query.
type ScoredActivity struct {
	Activity Activity `json:"activity"`
	Score    int      `json:"score"`
}

// SuggestionSet holds the three role-tagged picks for one assistant turn.
// Alternative and Backup may be nil when too few candidates qualify.
type SuggestionSet struct {
	Main        Activity  `json:"main"`
	Alternative *Activity `json:"alternative,omitempty"`
	Backup      *Activity `json:"backup,omitempty"`
}

// AssistantReply is what the assistant returns for one user message.
type AssistantReply struct {
	Text        string         `json:"text"`
	Suggestions *SuggestionSet `json:"suggestions,omitempty"`
	Tip         string         `json:"tip,omitempty"`
}

// ChatSession is one persisted conversation with the assistant.
type ChatSession struct {
	ID        uuid.UUID     `json:"id"`
	ProfileID uuid.UUID     `json:"profile_id"`
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MessageRole distinguishes who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one turn in a session's conversation history.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	SessionID uuid.UUID   `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Tip       string      `json:"tip,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
