package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberhall/mystery-engine/pkg/catalog"
)

// Speaker names and avatar colors for messages the engine itself produces.
const (
	SpeakerNarrator = "Narrator"
	SpeakerSystem   = "System Error"

	AvatarPlayer   = "blue"
	AvatarNarrator = "brown"
	AvatarSystem   = "purple"
)

// DefaultPlayerName is used when a session is started without a name.
const DefaultPlayerName = "You"

const welcomeText = "Welcome, young wizard, to Hogwarts School of Witchcraft and Wizardry. A mysterious artifact has gone missing from the castle, and we need your help to find it. Your journey begins here in the Great Hall. What would you like to do?"

// Message is a single timeline entry shown in the conversation feed.
type Message struct {
	Speaker    string `json:"speaker"`
	Text       string `json:"text"`
	AvatarType string `json:"avatar_type"`
}

// Session holds the full mutable state of one playthrough.
type Session struct {
	ID         uuid.UUID `json:"id"`
	PlayerName string    `json:"player_name"`
	Location   string    `json:"location"`
	CluesFound int       `json:"clues_found"`
	Timeline   []Message `json:"timeline"`
	Evidence   []string  `json:"evidence"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSession creates a session at the starting location with the
// welcome message already on the timeline.
func NewSession(playerName string) *Session {
	if playerName == "" {
		playerName = DefaultPlayerName
	}
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New(),
		PlayerName: playerName,
		Location:   catalog.StartLocation,
		Timeline: []Message{
			{
				Speaker:    "Professor Dumbledore",
				Text:       welcomeText,
				AvatarType: "purple",
			},
		},
		Evidence:  make([]string, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddMessage appends a timeline entry and returns it.
func (s *Session) AddMessage(speaker, text, avatarType string) Message {
	msg := Message{
		Speaker:    speaker,
		Text:       text,
		AvatarType: avatarType,
	}
	s.Timeline = append(s.Timeline, msg)
	s.UpdatedAt = time.Now().UTC()
	return msg
}

// AddEvidence records a clue if it has not been found yet. The clue
// counter moves in lockstep with the evidence list.
func (s *Session) AddEvidence(clue string) bool {
	if s.HasEvidence(clue) {
		return false
	}
	s.Evidence = append(s.Evidence, clue)
	s.CluesFound++
	s.UpdatedAt = time.Now().UTC()
	return true
}

// HasEvidence reports whether a clue has already been recorded.
func (s *Session) HasEvidence(clue string) bool {
	for _, e := range s.Evidence {
		if e == clue {
			return true
		}
	}
	return false
}

// RecentHistory returns up to the last n timeline entries.
func (s *Session) RecentHistory(n int) []Message {
	if n <= 0 || len(s.Timeline) == 0 {
		return nil
	}
	if len(s.Timeline) <= n {
		return s.Timeline
	}
	return s.Timeline[len(s.Timeline)-n:]
}

// StateView is the client-facing projection of a session.
type StateView struct {
	Location   string                 `json:"location"`
	CluesFound int                    `json:"clues_found"`
	Timeline   []Message              `json:"timeline"`
	Evidence   []string               `json:"evidence"`
	NPCs       map[string]catalog.NPC `json:"npcs"`
}

// Snapshot builds the client view, resolving the location key to its
// display name against the catalog.
func (s *Session) Snapshot(cat *catalog.Catalog) StateView {
	location := s.Location
	if loc, ok := cat.Location(s.Location); ok {
		location = loc.Display
	}
	return StateView{
		Location:   location,
		CluesFound: s.CluesFound,
		Timeline:   s.Timeline,
		Evidence:   s.Evidence,
		NPCs:       cat.NPCTable(),
	}
}

// Clone returns a deep copy safe to mutate independently.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Timeline = make([]Message, len(s.Timeline))
	copy(clone.Timeline, s.Timeline)
	clone.Evidence = make([]string, len(s.Evidence))
	copy(clone.Evidence, s.Evidence)
	return &clone
}
