package model

import "testing"

func TestScorecardBonus(t *testing.T) {
	tests := []struct {
		name     string
		upper    [6]int
		expected int
	}{
		{
			name:     "Exactly 63 earns the bonus",
			upper:    [6]int{3, 6, 9, 12, 15, 18},
			expected: 35,
		},
		{
			name:     "62 earns nothing",
			upper:    [6]int{2, 6, 9, 12, 15, 18},
			expected: 0,
		},
		{
			name:     "Perfect upper section",
			upper:    [6]int{5, 10, 15, 20, 25, 30},
			expected: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := NewScorecard()
			for i, c := range UpperCategories {
				card[c] = tt.upper[i]
			}
			if got := card.Bonus(); got != tt.expected {
				t.Errorf("Bonus() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestScorecardGrandTotal(t *testing.T) {
	card := NewScorecard()
	for i, c := range UpperCategories {
		card[c] = (i + 1) * 3 // 3+6+9+12+15+18 = 63
	}
	card[CategoryChoice] = 20
	card[CategoryYacht] = 50

	// 63 upper + 35 bonus + 70 lower
	if got := card.GrandTotal(); got != 168 {
		t.Errorf("GrandTotal() = %d, expected 168", got)
	}
}

func TestScorecardComplete(t *testing.T) {
	card := NewScorecard()
	for _, c := range Categories[:len(Categories)-1] {
		card[c] = 1
	}
	if card.Complete() {
		t.Error("card with an open category reported complete")
	}
	card[Categories[len(Categories)-1]] = 0
	if !card.Complete() {
		t.Error("fully written card not reported complete")
	}
}

func TestMatchAdvanceTurn(t *testing.T) {
	m := NewMatch("AB12CD", Participant{Name: "p1"})
	m.Participants = append(m.Participants, Participant{Name: "p2"})
	m.Phase = PhaseInProgress
	m.Round = 1

	m.AdvanceTurn()
	if m.TurnIndex != 1 || m.Round != 1 {
		t.Fatalf("after first advance: turn=%d round=%d, expected 1/1", m.TurnIndex, m.Round)
	}
	m.AdvanceTurn()
	if m.TurnIndex != 0 || m.Round != 2 {
		t.Fatalf("after wrap: turn=%d round=%d, expected 0/2", m.TurnIndex, m.Round)
	}
}
