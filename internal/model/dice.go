package model

const (
	DiceCount   = 5
	MaxRolls    = 3
	DieMinFace  = 1
	DieMaxFace  = 6
	FinalRound  = 12
	MaxPlayers  = 2
	BonusAt     = 63
	BonusPoints = 35
)

// DiceBlock is the shared dice state of a turn: five faces, a parallel
// held flag per die and the number of rolls spent (0..3).
type DiceBlock struct {
	Faces     [DiceCount]int
	Held      [DiceCount]bool
	RollsUsed int
}

// Reset clears holds and the roll counter and installs fresh faces for
// the next turn.
func (d *DiceBlock) Reset(faces [DiceCount]int) {
	d.Faces = faces
	d.Held = [DiceCount]bool{}
	d.RollsUsed = 0
}

func (d *DiceBlock) ToggleHold(idx int) {
	d.Held[idx] = !d.Held[idx]
}
