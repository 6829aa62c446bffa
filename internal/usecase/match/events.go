package usecase_match

import (
	"github.com/xpekfdls/yacht/core/internal/model"
)

type EventType string

const (
	EventJoined            EventType = "joined"
	EventDiceUpdated       EventType = "dice_updated"
	EventScoreApplied      EventType = "score_applied"
	EventMatchFinished     EventType = "match_finished"
	EventParticipantLeft   EventType = "participant_left"
	EventOperationRejected EventType = "operation_rejected"
	EventSnapshot          EventType = "snapshot"
)

// Event is the single outbound surface of the coordinator. Every state
// transition produces exactly one well-defined set of these.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

type ParticipantView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DiceView struct {
	Dice      []int                  `json:"dice"`
	Holds     []bool                 `json:"holds"`
	RollsUsed int                    `json:"rolls_used"`
	Preview   map[model.Category]int `json:"preview,omitempty"`
}

type ScorecardView struct {
	Scores     map[model.Category]int `json:"scores"`
	UpperTotal int                    `json:"upper_total"`
	Bonus      int                    `json:"bonus"`
	GrandTotal int                    `json:"grand_total"`
}

type JoinedPayload struct {
	Participants []ParticipantView `json:"participants"`
	Turn         string            `json:"turn,omitempty"`
	Phase        model.Phase       `json:"phase"`
	Round        int               `json:"round,omitempty"`
	Dice         *DiceView         `json:"dice,omitempty"`
}

type ScoreAppliedPayload struct {
	Participant string         `json:"participant"`
	Category    model.Category `json:"category"`
	Score       int            `json:"score"`
	Scorecard   ScorecardView  `json:"scorecard"`
	NextTurn    string         `json:"next_turn"`
	Round       int            `json:"round"`
}

type MatchFinishedPayload struct {
	Winner      string         `json:"winner,omitempty"`
	Tie         bool           `json:"tie"`
	Forfeit     bool           `json:"forfeit"`
	FinalTotals map[string]int `json:"final_totals"`
}

type ParticipantLeftPayload struct {
	Participant   string            `json:"participant"`
	Remaining     []ParticipantView `json:"remaining"`
	ForfeitWinner string            `json:"forfeit_winner,omitempty"`
}

type RejectedPayload struct {
	ErrorKind string `json:"error_kind"`
	Reason    string `json:"reason"`
}

// Snapshot is the derived, read-only view handed to transports and late
// renderers. It never aliases live match state.
type Snapshot struct {
	RoomCode     model.RoomCode           `json:"room_code"`
	Phase        model.Phase              `json:"phase"`
	Round        int                      `json:"round"`
	Participants []ParticipantView        `json:"participants"`
	Turn         string                   `json:"turn,omitempty"`
	Dice         DiceView                 `json:"dice"`
	Scorecards   map[string]ScorecardView `json:"scorecards"`
}

func participantViews(ps []model.Participant) []ParticipantView {
	views := make([]ParticipantView, 0, len(ps))
	for _, p := range ps {
		views = append(views, ParticipantView{ID: p.ID.String(), Name: p.Name})
	}
	return views
}

func scorecardView(card model.Scorecard) ScorecardView {
	scores := make(map[model.Category]int, len(card))
	for c, v := range card {
		scores[c] = v
	}
	return ScorecardView{
		Scores:     scores,
		UpperTotal: card.UpperTotal(),
		Bonus:      card.Bonus(),
		GrandTotal: card.GrandTotal(),
	}
}
