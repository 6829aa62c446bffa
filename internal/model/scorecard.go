package model

// Scorecard maps a category to its written score. A category absent
// from the map is still open; once written the value never changes.
type Scorecard map[Category]int

func NewScorecard() Scorecard {
	return make(Scorecard, len(Categories))
}

func (s Scorecard) IsScored(c Category) bool {
	_, ok := s[c]
	return ok
}

func (s Scorecard) Complete() bool {
	return len(s) == len(Categories)
}

// UpperTotal sums the six numeral categories that have been written.
func (s Scorecard) UpperTotal() int {
	total := 0
	for _, c := range UpperCategories {
		if v, ok := s[c]; ok {
			total += v
		}
	}
	return total
}

// Bonus is 35 once the upper section reaches 63, otherwise 0.
func (s Scorecard) Bonus() int {
	if s.UpperTotal() >= 63 {
		return 35
	}
	return 0
}

// GrandTotal derives the full score: every written category plus the
// upper-section bonus. Totals are never stored.
func (s Scorecard) GrandTotal() int {
	total := s.Bonus()
	for _, v := range s {
		total += v
	}
	return total
}
