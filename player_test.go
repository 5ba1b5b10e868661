package holdem

import "testing"

func TestPlayerStateAmount(t *testing.T) {
	s := NewPlayerState(Bet, 100)
	if s.Amount() != 100 {
		t.Fatalf("Amount() = %d, want 100", s.Amount())
	}
	if NewPlayerState(Fold, 100).Amount() != 0 {
		t.Fatal("Fold should force amount to zero")
	}
}

func TestPlayerStateCanGivenMatrix(t *testing.T) {
	blind := NewPlayerState(Blind, 50)
	if !blind.CanGiven(NewPlayerState(Raise, 100)) {
		t.Fatal("Blind should be able to raise over itself")
	}
	if blind.CanGiven(NewPlayerState(Raise, 40)) {
		t.Fatal("Blind should not accept a raise below its own amount")
	}
	if !blind.CanGiven(NewPlayerState(Call, 100)) {
		t.Fatal("Blind should be able to complete to the current bet via Call")
	}
	if blind.CanGiven(NewPlayerState(Call, 50)) {
		t.Fatal("Blind cannot Call for its own amount or less")
	}
	check := NewPlayerState(Check, 0)
	if !check.CanGiven(NewPlayerState(Call, 10)) {
		t.Fatal("Check should accept a subsequent call once someone else bets")
	}
	if check.CanGiven(NewPlayerState(Bet, 10)) {
		t.Fatal("Check cannot transition directly to Bet under the spec's matrix")
	}
	allIn := NewPlayerState(AllIn, 1000)
	if allIn.CanGiven(NewPlayerState(Call, 1000)) {
		t.Fatal("AllIn seat cannot act again")
	}
}

func TestPlayerStateCanGivenAgainstEnforcesMaxBet(t *testing.T) {
	call := NewPlayerState(Call, 100)
	if call.CanGivenAgainst(NewPlayerState(ReRaise, 150), 200) {
		t.Fatal("a reraise below the max outstanding bet must be illegal")
	}
	if !call.CanGivenAgainst(NewPlayerState(ReRaise, 250), 200) {
		t.Fatal("a reraise above the max outstanding bet should be legal")
	}
	if !call.CanGivenAgainst(NewPlayerState(Fold, 0), 200) {
		t.Fatal("Fold is always legal regardless of max bet")
	}
}

func TestSeatDealAndCommit(t *testing.T) {
	s := NewSeat(0, "hero", 1000)
	if err := s.Deal(New(Ace, Spade)); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if err := s.Deal(New(King, Spade)); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if err := s.Deal(New(Queen, Spade)); err != ErrAlreadyDealt {
		t.Fatalf("third deal: got %v, want ErrAlreadyDealt", err)
	}
	if err := s.CommitToPot(100, NewPlayerState(Bet, 100)); err != nil {
		t.Fatalf("CommitToPot: %v", err)
	}
	if s.Chips != 900 {
		t.Fatalf("Chips = %d, want 900", s.Chips)
	}
	if err := s.CommitToPot(10000, NewPlayerState(AllIn, 10100)); err != ErrInsufficientChips {
		t.Fatalf("over-commit: got %v, want ErrInsufficientChips", err)
	}
}
