package model

type Category string

const (
	CategoryOnes           Category = "ones"
	CategoryTwos           Category = "twos"
	CategoryThrees         Category = "threes"
	CategoryFours          Category = "fours"
	CategoryFives          Category = "fives"
	CategorySixes          Category = "sixes"
	CategoryFullHouse      Category = "fullHouse"
	CategoryFourOfKind     Category = "fourOfKind"
	CategoryLittleStraight Category = "littleStraight"
	CategoryBigStraight    Category = "bigStraight"
	CategoryChoice         Category = "choice"
	CategoryYacht          Category = "yacht"
)

// Categories lists all twelve scoring categories in scorecard order.
var Categories = []Category{
	CategoryOnes, CategoryTwos, CategoryThrees,
	CategoryFours, CategoryFives, CategorySixes,
	CategoryFullHouse, CategoryFourOfKind,
	CategoryLittleStraight, CategoryBigStraight,
	CategoryChoice, CategoryYacht,
}

// UpperCategories are the six numeral categories counted towards the
// upper-section bonus.
var UpperCategories = []Category{
	CategoryOnes, CategoryTwos, CategoryThrees,
	CategoryFours, CategoryFives, CategorySixes,
}

// TargetFace maps a numeral category to the die face it counts.
// Returns 0 for non-numeral categories.
func (c Category) TargetFace() int {
	for i, upper := range UpperCategories {
		if c == upper {
			return i + 1
		}
	}
	return 0
}

func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if Category(raw) == c {
			return c, true
		}
	}
	return "", false
}
