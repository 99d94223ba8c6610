package combat

import (
	"sort"
	"time"

	"github.com/jianghu-tales/jianghu-bot/internal/domain/shared"
)

// Status is the lifecycle phase of a combat session
type Status string

const (
	// StatusPendingInitiative means the session exists and participants are
	// still rolling initiative
	StatusPendingInitiative Status = "pending_initiative"

	// StatusActive means the round has started and turns advance in order
	StatusActive Status = "active"
)

// Session is one combat at a table. At most one session exists per GM; the
// coordinator deletes any prior session before creating a new one.
type Session struct {
	ID     string `json:"id"`
	GMID   string `json:"gm_id"`
	Name   string `json:"name"`
	Status Status `json:"status"`

	// Participants keep their creation order until the round begins, then are
	// sorted exactly once, descending by initiative.
	Participants []*Participant `json:"participants"`

	// TurnIndex always satisfies 0 <= TurnIndex < len(Participants) while the
	// session is active and the list is non-empty
	TurnIndex int `json:"turn_index"`
	Round     int `json:"round"`

	// LastRoll is the shared combat log's broadcast channel: every logged
	// action overwrites it, and consumers deduplicate by its timestamp.
	LastRoll *Broadcast `json:"last_roll,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// Participant is one slot in the turn order. Attribute values are snapshotted
// at session creation; the character sheet remains the live record.
type Participant struct {
	CharacterID string                   `json:"character_id,omitempty"`
	OwnerID     string                   `json:"owner_id,omitempty"`
	Name        string                   `json:"name"`
	ImageRef    string                   `json:"image_ref,omitempty"`
	Attributes  map[shared.Attribute]int `json:"attributes,omitempty"`
	IsNPC       bool                     `json:"is_npc"`

	// Initiative stays nil until the participant (or the GM on their behalf)
	// rolls
	Initiative *int `json:"initiative,omitempty"`
}

// Broadcast is a logged roll or action, overwritten in place on the session.
// Delivery is at-least-once (optimistic local write plus store notification),
// so consumers must compare Timestamp before appending to their log.
type Broadcast struct {
	Timestamp int64  `json:"timestamp"` // unix nanoseconds, the dedup identifier
	ActorName string `json:"actor_name"`
	Kind      string `json:"kind"` // attack, damage, check
	Text      string `json:"text"`
	Total     int    `json:"total,omitempty"`
	Rolls     []int  `json:"rolls,omitempty"`
}

// NewSession creates a combat session awaiting initiative
func NewSession(id, gmID, name string) *Session {
	return &Session{
		ID:           id,
		GMID:         gmID,
		Name:         name,
		Status:       StatusPendingInitiative,
		Participants: []*Participant{},
		CreatedAt:    time.Now().UTC(),
	}
}

// AddParticipant appends a participant to the turn list
func (s *Session) AddParticipant(p *Participant) {
	s.Participants = append(s.Participants, p)
}

// FindParticipant returns the participant for a character ID, nil when absent
func (s *Session) FindParticipant(characterID string) *Participant {
	if characterID == "" {
		return nil
	}
	for _, p := range s.Participants {
		if p.CharacterID == characterID {
			return p
		}
	}
	return nil
}

// RemoveParticipant drops a character from the turn list, keeping the turn
// index on the same logical participant where possible.
func (s *Session) RemoveParticipant(characterID string) {
	for i, p := range s.Participants {
		if p.CharacterID != characterID {
			continue
		}
		s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
		if len(s.Participants) == 0 {
			s.TurnIndex = 0
			return
		}
		if i < s.TurnIndex {
			s.TurnIndex--
		}
		if s.TurnIndex >= len(s.Participants) {
			s.TurnIndex = 0
		}
		return
	}
}

// SubmitInitiative records an initiative value for one participant. Only that
// participant's entry changes; repeat submissions overwrite the same slot.
// Returns false when the character is not in the session or the round already
// started.
func (s *Session) SubmitInitiative(characterID string, value int) bool {
	if s.Status != StatusPendingInitiative {
		return false
	}
	p := s.FindParticipant(characterID)
	if p == nil {
		return false
	}
	p.Initiative = &value
	return true
}

// PendingInitiative lists participants that have not rolled yet
func (s *Session) PendingInitiative() []*Participant {
	var out []*Participant
	for _, p := range s.Participants {
		if p.Initiative == nil {
			out = append(out, p)
		}
	}
	return out
}

// BeginRound sorts the turn list descending by initiative (nulls lowest) and
// activates the session. The sort happens exactly once; order is stable for
// ties so the creation order breaks them.
func (s *Session) BeginRound() bool {
	if s.Status != StatusPendingInitiative || len(s.Participants) == 0 {
		return false
	}

	sort.SliceStable(s.Participants, func(i, j int) bool {
		return initiativeValue(s.Participants[i]) > initiativeValue(s.Participants[j])
	})

	now := time.Now().UTC()
	s.Status = StatusActive
	s.StartedAt = &now
	s.Round = 1
	s.TurnIndex = 0
	return true
}

func initiativeValue(p *Participant) int {
	if p.Initiative == nil {
		// nulls sort below any rolled value
		return -1 << 31
	}
	return *p.Initiative
}

// NextTurn advances the turn pointer modulo the list length, wrapping to the
// first participant (and a new round) after the last. No-op unless active and
// non-empty.
func (s *Session) NextTurn() {
	if s.Status != StatusActive || len(s.Participants) == 0 {
		return
	}
	s.TurnIndex = (s.TurnIndex + 1) % len(s.Participants)
	if s.TurnIndex == 0 {
		s.Round++
	}
}

// CurrentParticipant returns the participant whose turn it is, nil for an
// empty list or out-of-range index.
func (s *Session) CurrentParticipant() *Participant {
	if len(s.Participants) == 0 || s.TurnIndex < 0 || s.TurnIndex >= len(s.Participants) {
		return nil
	}
	return s.Participants[s.TurnIndex]
}

// IsOwnTurn reports whether the active participant belongs to the given user
func (s *Session) IsOwnTurn(userID string) bool {
	current := s.CurrentParticipant()
	return current != nil && current.OwnerID != "" && current.OwnerID == userID
}

// Log overwrites the session's broadcast entry with a fresh timestamp
func (s *Session) Log(actorName, kind, text string, total int, rolls []int) *Broadcast {
	b := &Broadcast{
		Timestamp: time.Now().UnixNano(),
		ActorName: actorName,
		Kind:      kind,
		Text:      text,
		Total:     total,
		Rolls:     rolls,
	}
	s.LastRoll = b
	return b
}
