package model

import "github.com/google/uuid"

type Phase string

const (
	PhaseWaiting    Phase = "waiting"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// Match is the authoritative record of one room. It is owned by the
// coordinator's registry and must only be touched while the room lock
// is held.
type Match struct {
	Code         RoomCode
	Participants []Participant
	Scorecards   map[uuid.UUID]Scorecard
	Dice         DiceBlock
	TurnIndex    int
	Round        int
	Phase        Phase
}

func NewMatch(code RoomCode, creator Participant) *Match {
	return &Match{
		Code:         code,
		Participants: []Participant{creator},
		Scorecards:   map[uuid.UUID]Scorecard{creator.ID: NewScorecard()},
		Phase:        PhaseWaiting,
	}
}

func (m *Match) IsFull() bool {
	return len(m.Participants) >= MaxPlayers
}

func (m *Match) HasParticipant(id uuid.UUID) bool {
	_, ok := m.Scorecards[id]
	return ok
}

// CurrentTurn returns the acting participant. Only meaningful while the
// match is in progress.
func (m *Match) CurrentTurn() (Participant, bool) {
	if m.Phase != PhaseInProgress || m.TurnIndex >= len(m.Participants) {
		return Participant{}, false
	}
	return m.Participants[m.TurnIndex], true
}

// AdvanceTurn moves the pointer to the other participant and bumps the
// round when the pointer wraps back to the first joiner.
func (m *Match) AdvanceTurn() {
	m.TurnIndex = (m.TurnIndex + 1) % len(m.Participants)
	if m.TurnIndex == 0 {
		m.Round++
	}
}

func (m *Match) RemoveParticipant(id uuid.UUID) {
	for i, p := range m.Participants {
		if p.ID == id {
			m.Participants = append(m.Participants[:i], m.Participants[i+1:]...)
			break
		}
	}
	delete(m.Scorecards, id)
}

// AllScored reports whether every participant has all twelve categories
// written, which is the natural end of a match.
func (m *Match) AllScored() bool {
	if len(m.Participants) == 0 {
		return false
	}
	for _, p := range m.Participants {
		if !m.Scorecards[p.ID].Complete() {
			return false
		}
	}
	return true
}
