package dice

import (
	"math/rand"
	"sync"

	"github.com/xpekfdls/yacht/core/internal/model"
)

// Roller produces die faces from an injectable random source, so tests
// can seed it. Guarded because rooms roll concurrently and *rand.Rand
// is not safe for concurrent use.
type Roller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

func NewSeeded(seed int64) *Roller {
	return New(rand.New(rand.NewSource(seed)))
}

// Five rolls a fresh set of five dice.
func (r *Roller) Five() [model.DiceCount]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var faces [model.DiceCount]int
	for i := range faces {
		faces[i] = r.die()
	}
	return faces
}

// Reroll replaces every die not held and spends one roll.
func (r *Roller) Reroll(block *model.DiceBlock) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range block.Faces {
		if !block.Held[i] {
			block.Faces[i] = r.die()
		}
	}
	block.RollsUsed++
}

func (r *Roller) die() int {
	return r.rng.Intn(model.DieMaxFace) + model.DieMinFace
}
