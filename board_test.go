package holdem

import "testing"

func TestComputeSidePotsSingleTier(t *testing.T) {
	contributions := []int{100, 100, 100}
	folded := []bool{false, false, false}
	tiers := ComputeSidePots(contributions, folded)
	if len(tiers) != 1 {
		t.Fatalf("got %d tiers, want 1", len(tiers))
	}
	if tiers[0].Amount != 300 {
		t.Fatalf("tier amount = %d, want 300", tiers[0].Amount)
	}
	if len(tiers[0].Eligible) != 3 {
		t.Fatalf("eligible = %v, want all 3 seats", tiers[0].Eligible)
	}
}

func TestComputeSidePotsShortAllIn(t *testing.T) {
	// seat 0 all-in for 50, seats 1 and 2 both put in 200.
	contributions := []int{50, 200, 200}
	folded := []bool{false, false, false}
	tiers := ComputeSidePots(contributions, folded)
	if len(tiers) != 2 {
		t.Fatalf("got %d tiers, want 2", len(tiers))
	}
	if tiers[0].Amount != 150 { // 50 from each of the 3 seats
		t.Fatalf("main pot = %d, want 150", tiers[0].Amount)
	}
	if len(tiers[0].Eligible) != 3 {
		t.Fatalf("main pot eligible = %v, want all 3", tiers[0].Eligible)
	}
	if tiers[1].Amount != 300 { // remaining 150 each from seats 1 and 2
		t.Fatalf("side pot = %d, want 300", tiers[1].Amount)
	}
	if len(tiers[1].Eligible) != 2 {
		t.Fatalf("side pot eligible = %v, want seats 1 and 2", tiers[1].Eligible)
	}
}

func TestComputeSidePotsExcludesFoldedFromEligibility(t *testing.T) {
	contributions := []int{200, 200, 200}
	folded := []bool{true, false, false}
	tiers := ComputeSidePots(contributions, folded)
	if len(tiers) != 1 {
		t.Fatalf("got %d tiers, want 1", len(tiers))
	}
	if tiers[0].Amount != 600 {
		t.Fatalf("tier amount = %d, want 600 (folded chips still belong to the pot)", tiers[0].Amount)
	}
	if len(tiers[0].Eligible) != 2 {
		t.Fatalf("eligible = %v, want 2 (folded seat excluded)", tiers[0].Eligible)
	}
}

func TestNutsOnFlop(t *testing.T) {
	board := Must("As", "Ks", "Qs")
	h := Nuts(board)
	if h == nil {
		t.Fatal("Nuts returned nil")
	}
	if h.Rank != 1 {
		t.Fatalf("nuts rank = %d, want 1 (royal flush: Js Ts)", h.Rank)
	}
}

func TestShowdownSingleWinner(t *testing.T) {
	tb := newTestTable(t, 2, 1000)
	tb.StartNewHand()
	board, _ := NewCardsFrom(Must("2c", "7d", "9h", "Js", "4s")...)
	tb.Board.Set(board)
	tb.Seats[0].Cards.Set(mustCards(t, "As", "Ah"))
	tb.Seats[1].Cards.Set(mustCards(t, "2s", "3s"))
	tb.Contributions = []int{500, 500}
	tb.Seats[0].Chips, tb.Seats[1].Chips = 500, 500 // the other 500 each is already in the pot
	tb.Seats[0].State = NewPlayerState(Call, 500)
	tb.Seats[1].State = NewPlayerState(Call, 500)
	results, err := tb.Showdown()
	if err != nil {
		t.Fatalf("Showdown: %v", err)
	}
	won := map[int]int{}
	for _, r := range results {
		won[r.Seat] = r.Won
	}
	if won[0] != 1000 || won[1] != 0 {
		t.Fatalf("won = %v, want seat0=1000 seat1=0 (seat0 has a pair of aces)", won)
	}
	if tb.Seats[0].Chips != 1500 {
		t.Fatalf("seat0 chips = %d, want 1500 (500 stack + 1000 pot)", tb.Seats[0].Chips)
	}
}

func mustCards(t *testing.T, s ...string) *Cards {
	t.Helper()
	c, err := NewCardsFrom(Must(s...)...)
	if err != nil {
		t.Fatalf("NewCardsFrom: %v", err)
	}
	return c
}
