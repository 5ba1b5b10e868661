package holdem

import "testing"

func TestBardBijection(t *testing.T) {
	cards := Must("As", "Kh", "7d", "2c")
	s, err := NewCardsFrom(cards...)
	if err != nil {
		t.Fatalf("NewCardsFrom: %v", err)
	}
	b := s.Bard()
	got := b.Cards()
	want := s.Sort()
	gv, wv := got.Sort().Cards(), want.Cards()
	if len(gv) != len(wv) {
		t.Fatalf("length mismatch: got %d, want %d", len(gv), len(wv))
	}
	for i := range gv {
		if gv[i] != wv[i] {
			t.Fatalf("mismatch at %d: got %v, want %v", i, gv[i], wv[i])
		}
	}
}

func TestBardSetOps(t *testing.T) {
	a := BardFromCard(New(Ace, Spade))
	k := BardFromCard(New(King, Spade))
	u := a.Union(k)
	if u.Count() != 2 {
		t.Fatalf("Union count = %d, want 2", u.Count())
	}
	if u.Intersect(a) != a {
		t.Fatal("Intersect(a, union) should equal a")
	}
	if !u.Contains(New(Ace, Spade)) || !u.Contains(New(King, Spade)) {
		t.Fatal("Contains should report both cards present")
	}
	if u.Xor(a) != k {
		t.Fatal("Xor should isolate the other card")
	}
}

func TestBardEmpty(t *testing.T) {
	if !BlankBard.Empty() {
		t.Fatal("BlankBard should be empty")
	}
	if BardFromCard(New(Ace, Spade)).Empty() {
		t.Fatal("non-blank Bard should not be empty")
	}
}
