package scoring

import (
	"testing"

	"github.com/xpekfdls/yacht/core/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		dice     [model.DiceCount]int
		category model.Category
		expected int
	}{
		{
			name:     "Ones counts only aces",
			dice:     [5]int{1, 1, 3, 4, 1},
			category: model.CategoryOnes,
			expected: 3,
		},
		{
			name:     "Sixes with no six",
			dice:     [5]int{1, 2, 3, 4, 5},
			category: model.CategorySixes,
			expected: 0,
		},
		{
			name:     "Fives mixed roll",
			dice:     [5]int{5, 2, 5, 3, 5},
			category: model.CategoryFives,
			expected: 15,
		},
		{
			name:     "Little straight",
			dice:     [5]int{1, 2, 3, 4, 5},
			category: model.CategoryLittleStraight,
			expected: 30,
		},
		{
			name:     "Little straight any order",
			dice:     [5]int{5, 3, 1, 2, 4},
			category: model.CategoryLittleStraight,
			expected: 30,
		},
		{
			name:     "Big straight",
			dice:     [5]int{2, 3, 4, 5, 6},
			category: model.CategoryBigStraight,
			expected: 30,
		},
		{
			name:     "Big straight misses the six",
			dice:     [5]int{1, 2, 3, 4, 5},
			category: model.CategoryBigStraight,
			expected: 0,
		},
		{
			name:     "Yacht",
			dice:     [5]int{5, 5, 5, 5, 5},
			category: model.CategoryYacht,
			expected: 50,
		},
		{
			name:     "Yacht scored as four of a kind",
			dice:     [5]int{5, 5, 5, 5, 5},
			category: model.CategoryFourOfKind,
			expected: 20,
		},
		{
			name:     "Yacht scored as choice",
			dice:     [5]int{5, 5, 5, 5, 5},
			category: model.CategoryChoice,
			expected: 25,
		},
		{
			name:     "Four of a kind on exactly four",
			dice:     [5]int{2, 2, 2, 2, 5},
			category: model.CategoryFourOfKind,
			expected: 8,
		},
		{
			name:     "Full house is not four of a kind",
			dice:     [5]int{3, 3, 3, 2, 2},
			category: model.CategoryFourOfKind,
			expected: 0,
		},
		{
			name:     "Full house",
			dice:     [5]int{3, 3, 3, 2, 2},
			category: model.CategoryFullHouse,
			expected: 13,
		},
		{
			name:     "Four alike is not a full house",
			dice:     [5]int{4, 4, 4, 4, 2},
			category: model.CategoryFullHouse,
			expected: 0,
		},
		{
			name:     "Yacht is not a full house",
			dice:     [5]int{6, 6, 6, 6, 6},
			category: model.CategoryFullHouse,
			expected: 0,
		},
		{
			name:     "Almost yacht",
			dice:     [5]int{5, 5, 5, 5, 4},
			category: model.CategoryYacht,
			expected: 0,
		},
		{
			name:     "Choice sums everything",
			dice:     [5]int{1, 2, 3, 4, 6},
			category: model.CategoryChoice,
			expected: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.dice, tt.category)
			if got != tt.expected {
				t.Errorf("Score(%v, %s) = %d, expected %d", tt.dice, tt.category, got, tt.expected)
			}
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	dice := [5]int{3, 1, 4, 1, 5}
	for _, c := range model.Categories {
		first := Score(dice, c)
		second := Score(dice, c)
		if first != second {
			t.Errorf("Score(%v, %s) not deterministic: %d then %d", dice, c, first, second)
		}
	}
}

func TestPreviewSkipsScoredCategories(t *testing.T) {
	card := model.NewScorecard()
	card[model.CategoryChoice] = 20
	card[model.CategoryYacht] = 0

	preview := Preview([5]int{1, 2, 3, 4, 5}, card)

	if len(preview) != len(model.Categories)-2 {
		t.Fatalf("expected %d open categories, got %d", len(model.Categories)-2, len(preview))
	}
	if _, ok := preview[model.CategoryChoice]; ok {
		t.Error("preview must not include already scored categories")
	}
	if preview[model.CategoryLittleStraight] != 30 {
		t.Errorf("littleStraight preview = %d, expected 30", preview[model.CategoryLittleStraight])
	}
}
