package scoring

import "github.com/xpekfdls/yacht/core/internal/model"

// Score evaluates a five-die roll against a category. It is pure and
// total: every category yields a value, zero when the combination does
// not match, so it is safe to call speculatively for previews.
func Score(dice [model.DiceCount]int, category model.Category) int {
	switch category {
	case model.CategoryOnes, model.CategoryTwos, model.CategoryThrees,
		model.CategoryFours, model.CategoryFives, model.CategorySixes:
		return sumOfFace(dice, category.TargetFace())
	case model.CategoryChoice:
		return sum(dice)
	case model.CategoryFourOfKind:
		for face, n := range faceCounts(dice) {
			if n >= 4 {
				return 4 * face
			}
		}
		return 0
	case model.CategoryFullHouse:
		counts := faceCounts(dice)
		hasThree, hasTwo := false, false
		for _, n := range counts {
			if n == 3 {
				hasThree = true
			}
			if n == 2 {
				hasTwo = true
			}
		}
		if hasThree && hasTwo {
			return sum(dice)
		}
		return 0
	case model.CategoryLittleStraight:
		if isRun(dice, 1) {
			return 30
		}
		return 0
	case model.CategoryBigStraight:
		if isRun(dice, 2) {
			return 30
		}
		return 0
	case model.CategoryYacht:
		for _, n := range faceCounts(dice) {
			if n == 5 {
				return 50
			}
		}
		return 0
	}
	return 0
}

// Preview computes the would-be score for every still-open category so
// clients can render hints without mutating anything.
func Preview(dice [model.DiceCount]int, card model.Scorecard) map[model.Category]int {
	preview := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		if !card.IsScored(c) {
			preview[c] = Score(dice, c)
		}
	}
	return preview
}

func sum(dice [model.DiceCount]int) int {
	total := 0
	for _, v := range dice {
		total += v
	}
	return total
}

func sumOfFace(dice [model.DiceCount]int, face int) int {
	total := 0
	for _, v := range dice {
		if v == face {
			total += v
		}
	}
	return total
}

func faceCounts(dice [model.DiceCount]int) [model.DieMaxFace + 1]int {
	var counts [model.DieMaxFace + 1]int
	for _, v := range dice {
		counts[v]++
	}
	return counts
}

// isRun checks that each of the five faces start..start+4 appears at
// least once; with five dice that means exactly once each.
func isRun(dice [model.DiceCount]int, start int) bool {
	counts := faceCounts(dice)
	for face := start; face < start+model.DiceCount; face++ {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}
