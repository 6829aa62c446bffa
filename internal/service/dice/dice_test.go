package dice

import (
	"testing"

	"github.com/xpekfdls/yacht/core/internal/model"
)

func TestFiveStaysInRange(t *testing.T) {
	r := NewSeeded(1)

	for i := 0; i < 100; i++ {
		for _, face := range r.Five() {
			if face < model.DieMinFace || face > model.DieMaxFace {
				t.Fatalf("face %d out of range", face)
			}
		}
	}
}

func TestRerollRespectsHolds(t *testing.T) {
	r := NewSeeded(42)

	block := model.DiceBlock{Faces: [5]int{1, 2, 3, 4, 5}}
	block.Held[1] = true
	block.Held[3] = true

	r.Reroll(&block)

	if block.Faces[1] != 2 || block.Faces[3] != 4 {
		t.Errorf("held dice changed: %v", block.Faces)
	}
	if block.RollsUsed != 1 {
		t.Errorf("RollsUsed = %d, expected 1", block.RollsUsed)
	}
	for _, face := range block.Faces {
		if face < model.DieMinFace || face > model.DieMaxFace {
			t.Fatalf("face %d out of range", face)
		}
	}
}

func TestSeededRollerIsDeterministic(t *testing.T) {
	first := NewSeeded(7).Five()
	second := NewSeeded(7).Five()
	if first != second {
		t.Errorf("same seed produced %v and %v", first, second)
	}
}
