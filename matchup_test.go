package holdem

import "testing"

func TestSuitIsomorphismShiftCount(t *testing.T) {
	hero := MustTwo(New(Ace, Spade), New(King, Spade))
	villain := MustTwo(New(Ace, Heart), New(King, Heart))
	hu, err := NewSortedHeadsUp(hero, villain)
	if err != nil {
		t.Fatalf("NewSortedHeadsUp: %v", err)
	}
	shifts := hu.Shifts()
	if len(shifts) != 6 {
		t.Fatalf("len(shifts) = %d, want 6", len(shifts))
	}
}

func TestSortedHeadsUpCanonicalOrder(t *testing.T) {
	a := MustTwo(New(Two, Club), New(Three, Club))
	b := MustTwo(New(Ace, Spade), New(King, Spade))
	hu1, err := NewSortedHeadsUp(a, b)
	if err != nil {
		t.Fatalf("NewSortedHeadsUp: %v", err)
	}
	hu2, err := NewSortedHeadsUp(b, a)
	if err != nil {
		t.Fatalf("NewSortedHeadsUp: %v", err)
	}
	if hu1 != hu2 {
		t.Fatal("NewSortedHeadsUp should canonicalize regardless of argument order")
	}
}

func TestNewSortedHeadsUpRejectsOverlap(t *testing.T) {
	a := MustTwo(New(Ace, Spade), New(King, Spade))
	b := MustTwo(New(Ace, Spade), New(Queen, Spade))
	if _, err := NewSortedHeadsUp(a, b); err != ErrDuplicateCard {
		t.Fatalf("got %v, want ErrDuplicateCard", err)
	}
}
