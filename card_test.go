package holdem

import "testing"

func TestCardRoundTrip(t *testing.T) {
	for _, s := range []string{"As", "Kh", "Td", "2c", "Qs"} {
		cards, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if len(cards) != 1 {
			t.Fatalf("Parse(%q): got %d cards, want 1", s, len(cards))
		}
		if got := cards[0].String(); got != s {
			t.Fatalf("round-trip: Parse(%q).String() = %q", s, got)
		}
	}
}

func TestCardParseMulti(t *testing.T) {
	cards, err := Parse("As Kh 7d")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}
}

func TestCardParseRejectsBadToken(t *testing.T) {
	if _, err := Parse("As Zz"); err == nil {
		t.Fatal("expected error for invalid token")
	}
}

func TestCardParseForgiving(t *testing.T) {
	cards := ParseForgiving("As", "Zz")
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	if cards[0] != New(Ace, Spade) {
		t.Fatalf("cards[0] = %v, want As", cards[0])
	}
	if cards[1] != Blank {
		t.Fatalf("cards[1] = %v, want blank", cards[1])
	}
}

func TestCardFlagsClearedForEval(t *testing.T) {
	c := New(Ace, Spade)
	flagged := c.WithFlag(FlagPaired)
	if !flagged.Paired() {
		t.Fatal("expected Paired() true")
	}
	if flagged.Clean() != c {
		t.Fatal("Clean() should strip frequency flags back to the original card")
	}
	buf, err := flagged.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var rt Card
	if err := rt.UnmarshalText(buf); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if rt != c {
		t.Fatalf("frequency flags leaked through serialization: got %v, want %v", rt, c)
	}
}

func TestSuitRotations(t *testing.T) {
	if Spade.Down() != Heart || Heart.Down() != Diamond || Club.Down() != Spade {
		t.Fatal("Down() rotation incorrect")
	}
	if Heart.Up() != Spade || Spade.Up() != Club {
		t.Fatal("Up() rotation incorrect")
	}
	if Spade.Opposite() != Diamond || Heart.Opposite() != Club {
		t.Fatal("Opposite() incorrect")
	}
}

func TestCardIndexRoundTrip(t *testing.T) {
	for i := 0; i < 52; i++ {
		c := FromIndex(i)
		if !c.Valid() {
			t.Fatalf("FromIndex(%d) invalid", i)
		}
		if c.Index() != i {
			t.Fatalf("FromIndex(%d).Index() = %d", i, c.Index())
		}
	}
}
