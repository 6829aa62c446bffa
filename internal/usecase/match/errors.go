package usecase_match

import "errors"

var (
	// Join-time failures.
	ErrRoomNotFound           = errors.New("room not found")
	ErrRoomFull               = errors.New("room full")
	ErrMatchAlreadyInProgress = errors.New("match already in progress")

	// Action-time failures.
	ErrNotYourTurn           = errors.New("not your turn")
	ErrMatchNotInProgress    = errors.New("match not in progress")
	ErrNoRollsRemaining      = errors.New("no rolls remaining")
	ErrNoRollYet             = errors.New("no roll yet")
	ErrInvalidDieIndex       = errors.New("invalid die index")
	ErrCategoryAlreadyScored = errors.New("category already scored")
	ErrInvalidCategory       = errors.New("invalid category")

	// Registry contract.
	ErrCodeConflict     = errors.New("code conflict")
	ErrRoomsUnavailable = errors.New("no available room codes")

	ErrInternal = errors.New("internal error")
)

// Kind maps a coordinator error to the wire-level error kind carried by
// operation_rejected events. Validation failures never escape the
// coordinator any other way.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "RoomNotFound"
	case errors.Is(err, ErrRoomFull):
		return "RoomFull"
	case errors.Is(err, ErrMatchAlreadyInProgress):
		return "MatchAlreadyInProgress"
	case errors.Is(err, ErrNotYourTurn):
		return "NotYourTurn"
	case errors.Is(err, ErrMatchNotInProgress):
		return "MatchNotInProgress"
	case errors.Is(err, ErrNoRollsRemaining):
		return "NoRollsRemaining"
	case errors.Is(err, ErrNoRollYet):
		return "NoRollYet"
	case errors.Is(err, ErrInvalidDieIndex):
		return "InvalidDieIndex"
	case errors.Is(err, ErrCategoryAlreadyScored):
		return "CategoryAlreadyScored"
	case errors.Is(err, ErrInvalidCategory):
		return "InvalidCategory"
	case errors.Is(err, ErrRoomsUnavailable):
		return "RoomsUnavailable"
	default:
		return "Internal"
	}
}
