package usecase_match

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/xpekfdls/yacht/core/internal/model"
	"github.com/xpekfdls/yacht/core/internal/service/scoring"
)

//go:generate mockery --name=Registry --output=./mocks/registry --filename=registry.go
type Registry interface {
	Put(code model.RoomCode, m *model.Match) error
	Acquire(code model.RoomCode) (*model.Match, func(), error)
	Remove(code model.RoomCode)
}

//go:generate mockery --name=Broadcaster --output=./mocks/broadcaster --filename=broadcaster.go
type Broadcaster interface {
	// BroadcastToRoom must never block on transport I/O; a slow peer is
	// the transport's problem, not the coordinator's.
	BroadcastToRoom(code model.RoomCode, event Event)
}

//go:generate mockery --name=Roller --output=./mocks/roller --filename=roller.go
type Roller interface {
	Five() [model.DiceCount]int
	Reroll(block *model.DiceBlock)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Usecase is the session coordinator: the only writer of match state.
// Each operation runs read-validate-mutate under the room lock handed
// out by the registry; rooms never contend with each other.
type Usecase struct {
	registry    Registry
	roller      Roller
	broadcaster Broadcaster

	codeLen int
}

func New(registry Registry, roller Roller, broadcaster Broadcaster, codeLen int) *Usecase {
	if codeLen <= 0 {
		codeLen = 6 /* default */
	}
	return &Usecase{
		registry:    registry,
		roller:      roller,
		broadcaster: broadcaster,
		codeLen:     codeLen,
	}
}

type CreateResult struct {
	RoomCode      model.RoomCode
	ParticipantID uuid.UUID
}

// Create allocates a fresh room in waiting phase with the caller as its
// sole participant.
//
// Assuming that codes can conflict. Retrying...
func (u *Usecase) Create(ctx context.Context, name string) (CreateResult, error) {
	creator := model.Participant{ID: uuid.New(), Name: name}

	var retries = 3
	for retries > 0 {
		code := u.buildRoomCode()
		if err := u.registry.Put(code, model.NewMatch(code, creator)); err != nil {
			if errors.Is(err, ErrCodeConflict) {
				retries--
				continue
			}
			return CreateResult{}, errors.Join(ErrInternal, err)
		}
		return CreateResult{RoomCode: code, ParticipantID: creator.ID}, nil
	}
	return CreateResult{}, ErrRoomsUnavailable
}

func (u *Usecase) buildRoomCode() model.RoomCode {
	var builder strings.Builder
	builder.Grow(u.codeLen)

	for i := 0; i < u.codeLen; i++ {
		builder.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return model.RoomCode(builder.String())
}

type JoinResult struct {
	ParticipantID uuid.UUID
	Participants  []ParticipantView
	Turn          string
	Phase         model.Phase
}

// Join admits the second participant and starts the match: turn order
// is fixed as [creator, joiner], fresh dice are rolled and the joined
// snapshot is broadcast to both sides.
func (u *Usecase) Join(ctx context.Context, code model.RoomCode, name string) (JoinResult, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return JoinResult{}, ErrRoomNotFound
	}
	defer release()

	if len(m.Participants) == 0 {
		// Room is being torn down by a concurrent leave.
		return JoinResult{}, ErrRoomNotFound
	}
	if m.IsFull() {
		return JoinResult{}, ErrRoomFull
	}
	if m.Phase != model.PhaseWaiting {
		return JoinResult{}, ErrMatchAlreadyInProgress
	}

	joiner := model.Participant{ID: uuid.New(), Name: name}
	m.Participants = append(m.Participants, joiner)
	m.Scorecards[joiner.ID] = model.NewScorecard()

	if m.IsFull() {
		m.Phase = model.PhaseInProgress
		m.TurnIndex = 0
		m.Round = 1
		m.Dice.Reset(u.roller.Five())
	}

	payload := JoinedPayload{
		Participants: participantViews(m.Participants),
		Phase:        m.Phase,
		Round:        m.Round,
	}
	if turn, ok := m.CurrentTurn(); ok {
		payload.Turn = turn.ID.String()
		view := u.diceView(m)
		payload.Dice = &view
	}
	u.broadcaster.BroadcastToRoom(code, Event{Type: EventJoined, Payload: payload})

	return JoinResult{
		ParticipantID: joiner.ID,
		Participants:  payload.Participants,
		Turn:          payload.Turn,
		Phase:         m.Phase,
	}, nil
}

// Roll re-rolls every die the acting participant has not held.
func (u *Usecase) Roll(ctx context.Context, code model.RoomCode, participantID uuid.UUID) (DiceView, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return DiceView{}, ErrRoomNotFound
	}
	defer release()

	if !m.HasParticipant(participantID) {
		return DiceView{}, ErrRoomNotFound
	}
	if m.Phase != model.PhaseInProgress {
		return DiceView{}, ErrMatchNotInProgress
	}
	if turn, _ := m.CurrentTurn(); turn.ID != participantID {
		return DiceView{}, ErrNotYourTurn
	}
	if m.Dice.RollsUsed >= model.MaxRolls {
		return DiceView{}, ErrNoRollsRemaining
	}

	u.roller.Reroll(&m.Dice)

	view := u.diceView(m)
	u.broadcaster.BroadcastToRoom(code, Event{Type: EventDiceUpdated, Payload: view})
	return view, nil
}

// ToggleHold flips the held flag of one die. Holding is meaningless
// before the first roll of a turn and rejected.
func (u *Usecase) ToggleHold(ctx context.Context, code model.RoomCode, participantID uuid.UUID, dieIndex int) (DiceView, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return DiceView{}, ErrRoomNotFound
	}
	defer release()

	if !m.HasParticipant(participantID) {
		return DiceView{}, ErrRoomNotFound
	}
	if m.Phase != model.PhaseInProgress {
		return DiceView{}, ErrMatchNotInProgress
	}
	if turn, _ := m.CurrentTurn(); turn.ID != participantID {
		return DiceView{}, ErrNotYourTurn
	}
	if dieIndex < 0 || dieIndex >= model.DiceCount {
		return DiceView{}, ErrInvalidDieIndex
	}
	if m.Dice.RollsUsed == 0 {
		return DiceView{}, ErrNoRollYet
	}

	m.Dice.ToggleHold(dieIndex)

	view := u.diceView(m)
	u.broadcaster.BroadcastToRoom(code, Event{Type: EventDiceUpdated, Payload: view})
	return view, nil
}

type ScoreResult struct {
	Score       int
	Scorecard   ScorecardView
	NextTurn    string
	Finished    bool
	Winner      string
	Tie         bool
	FinalTotals map[string]int
}

// SelectCategory writes the score for the current dice into the acting
// participant's scorecard, resets the dice for the next turn and
// advances the turn pointer. When both scorecards are complete the
// match finishes and the winner is decided by grand total.
func (u *Usecase) SelectCategory(ctx context.Context, code model.RoomCode, participantID uuid.UUID, rawCategory string) (ScoreResult, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return ScoreResult{}, ErrRoomNotFound
	}
	defer release()

	if !m.HasParticipant(participantID) {
		return ScoreResult{}, ErrRoomNotFound
	}
	if m.Phase != model.PhaseInProgress {
		return ScoreResult{}, ErrMatchNotInProgress
	}
	if turn, _ := m.CurrentTurn(); turn.ID != participantID {
		return ScoreResult{}, ErrNotYourTurn
	}
	category, ok := model.ParseCategory(rawCategory)
	if !ok {
		return ScoreResult{}, ErrInvalidCategory
	}
	if m.Dice.RollsUsed == 0 {
		return ScoreResult{}, ErrNoRollYet
	}
	card := m.Scorecards[participantID]
	if card.IsScored(category) {
		return ScoreResult{}, ErrCategoryAlreadyScored
	}

	score := scoring.Score(m.Dice.Faces, category)
	card[category] = score

	result := ScoreResult{
		Score:     score,
		Scorecard: scorecardView(card),
	}

	if m.AllScored() {
		// The final write ends the match in place: no fresh dice, no
		// turn advance, the round counter stays at the round it ended on.
		m.Phase = model.PhaseFinished
		result.Finished = true
		result.Winner, result.Tie, result.FinalTotals = decideWinner(m)
	} else {
		m.Dice.Reset(u.roller.Five())
		m.AdvanceTurn()
		nextTurn, _ := m.CurrentTurn()
		result.NextTurn = nextTurn.ID.String()
	}

	u.broadcaster.BroadcastToRoom(code, Event{Type: EventScoreApplied, Payload: ScoreAppliedPayload{
		Participant: participantID.String(),
		Category:    category,
		Score:       score,
		Scorecard:   result.Scorecard,
		NextTurn:    result.NextTurn,
		Round:       m.Round,
	}})

	if result.Finished {
		u.broadcaster.BroadcastToRoom(code, Event{Type: EventMatchFinished, Payload: MatchFinishedPayload{
			Winner:      result.Winner,
			Tie:         result.Tie,
			FinalTotals: result.FinalTotals,
		}})
	}
	return result, nil
}

// decideWinner compares grand totals. Equal totals are a tie and no
// winner is designated.
func decideWinner(m *model.Match) (winner string, tie bool, totals map[string]int) {
	totals = make(map[string]int, len(m.Participants))
	best, bestID := -1, ""
	for _, p := range m.Participants {
		total := m.Scorecards[p.ID].GrandTotal()
		totals[p.ID.String()] = total
		switch {
		case total > best:
			best, bestID, tie = total, p.ID.String(), false
		case total == best:
			tie = true
		}
	}
	if tie {
		return "", true, totals
	}
	return bestID, false, totals
}

type LeaveResult struct {
	RoomRemoved   bool
	Remaining     []ParticipantView
	ForfeitWinner string
	Finished      bool
}

// Leave removes a participant. A disconnect reported by the transport
// arrives here as a plain leave: mid-match it forfeits the game to the
// remaining participant, and the last one out destroys the room.
func (u *Usecase) Leave(ctx context.Context, code model.RoomCode, participantID uuid.UUID) (LeaveResult, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return LeaveResult{}, ErrRoomNotFound
	}
	defer release()

	if !m.HasParticipant(participantID) {
		return LeaveResult{}, ErrRoomNotFound
	}

	wasInProgress := m.Phase == model.PhaseInProgress
	m.RemoveParticipant(participantID)

	if len(m.Participants) == 0 {
		// Removed while the room lock is still held, see Registry.Remove.
		u.registry.Remove(code)
		return LeaveResult{RoomRemoved: true}, nil
	}

	result := LeaveResult{Remaining: participantViews(m.Participants)}
	payload := ParticipantLeftPayload{
		Participant: participantID.String(),
		Remaining:   result.Remaining,
	}

	if wasInProgress {
		m.Phase = model.PhaseFinished
		winner := m.Participants[0]
		result.ForfeitWinner = winner.ID.String()
		result.Finished = true
		payload.ForfeitWinner = result.ForfeitWinner
	}
	u.broadcaster.BroadcastToRoom(code, Event{Type: EventParticipantLeft, Payload: payload})

	if wasInProgress {
		totals := make(map[string]int, len(m.Participants))
		for _, p := range m.Participants {
			totals[p.ID.String()] = m.Scorecards[p.ID].GrandTotal()
		}
		u.broadcaster.BroadcastToRoom(code, Event{Type: EventMatchFinished, Payload: MatchFinishedPayload{
			Winner:      result.ForfeitWinner,
			Forfeit:     true,
			FinalTotals: totals,
		}})
	}
	return result, nil
}

// Snapshot returns a detached view of the room for status endpoints and
// freshly connected clients.
func (u *Usecase) Snapshot(ctx context.Context, code model.RoomCode) (Snapshot, error) {
	m, release, err := u.registry.Acquire(code)
	if err != nil {
		return Snapshot{}, ErrRoomNotFound
	}
	defer release()

	if len(m.Participants) == 0 {
		return Snapshot{}, ErrRoomNotFound
	}

	snap := Snapshot{
		RoomCode:     m.Code,
		Phase:        m.Phase,
		Round:        m.Round,
		Participants: participantViews(m.Participants),
		Dice:         u.diceView(m),
		Scorecards:   make(map[string]ScorecardView, len(m.Participants)),
	}
	if turn, ok := m.CurrentTurn(); ok {
		snap.Turn = turn.ID.String()
	}
	for _, p := range m.Participants {
		snap.Scorecards[p.ID.String()] = scorecardView(m.Scorecards[p.ID])
	}
	return snap, nil
}

// diceView copies the dice block out of the match, with would-be scores
// for the acting participant's open categories once they have rolled.
func (u *Usecase) diceView(m *model.Match) DiceView {
	view := DiceView{
		Dice:      append([]int(nil), m.Dice.Faces[:]...),
		Holds:     append([]bool(nil), m.Dice.Held[:]...),
		RollsUsed: m.Dice.RollsUsed,
	}
	if turn, ok := m.CurrentTurn(); ok && m.Dice.RollsUsed > 0 {
		view.Preview = scoring.Preview(m.Dice.Faces, m.Scorecards[turn.ID])
	}
	return view
}
