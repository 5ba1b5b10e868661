package holdem

import "testing"

func TestRoyalFlush(t *testing.T) {
	cards := Must("As", "Ks", "Qs", "Js", "Ts")
	r := Eval5(cards[0], cards[1], cards[2], cards[3], cards[4])
	if r != 1 {
		t.Fatalf("royal flush rank = %d, want 1", r)
	}
}

func TestWheelStraightFlush(t *testing.T) {
	cards := Must("5s", "4s", "3s", "2s", "As")
	r := Eval5(cards[0], cards[1], cards[2], cards[3], cards[4])
	if r != 10 {
		t.Fatalf("wheel straight-flush rank = %d, want 10", r)
	}
}

func TestWheelNonFlush(t *testing.T) {
	cards := Must("5d", "4s", "3s", "2s", "As")
	r := Eval5(cards[0], cards[1], cards[2], cards[3], cards[4])
	if r != 1609 {
		t.Fatalf("wheel non-flush rank = %d, want 1609", r)
	}
}

func TestHandRankMonotonicity(t *testing.T) {
	cases := []struct {
		cards []string
		max   HandRank
	}{
		{[]string{"As", "Ks", "Qs", "Js", "Ts"}, StraightFlush},
		{[]string{"Ah", "Ac", "Ad", "As", "Kh"}, FourOfAKind},
		{[]string{"Ah", "Ac", "Ad", "Kh", "Ks"}, FullHouse},
		{[]string{"As", "Ks", "Qs", "Js", "8s"}, Flush},
		{[]string{"9h", "8c", "7d", "6s", "5h"}, Straight},
		{[]string{"Ah", "Ac", "Ad", "Kh", "Qs"}, ThreeOfAKind},
		{[]string{"Ah", "Ac", "Kh", "Kc", "Qs"}, TwoPair},
		{[]string{"Ah", "Ac", "Kh", "Qc", "Js"}, Pair},
		{[]string{"Ah", "Kc", "Qh", "Jc", "9s"}, Nothing},
	}
	for _, c := range cases {
		cards := Must(c.cards...)
		r := Eval5(cards[0], cards[1], cards[2], cards[3], cards[4])
		if r > c.max {
			t.Fatalf("%v: rank %d exceeds max %d for class", c.cards, r, c.max)
		}
	}
}

func TestSevenCardMaximumProperty(t *testing.T) {
	cards := Must("As", "Ah", "Kd", "Kc", "Qs", "Qh", "2c")
	got, _, _ := Eval(cards)
	best := Invalid
	gen, sub := NewCombinGen(cards, 5)
	for gen.Next() {
		r := Eval5(sub[0], sub[1], sub[2], sub[3], sub[4])
		if best == Invalid || r < best {
			best = r
		}
	}
	if got != best {
		t.Fatalf("Eval7 = %d, want %d (manual C(7,5) min)", got, best)
	}
}

func TestSevenCardTwoPairNotFullHouse(t *testing.T) {
	cards := Must("As", "Ah", "Kd", "Kc", "Qs", "Qh", "2c")
	rank, best, _ := Eval(cards)
	if rank.Fixed() != TwoPair {
		t.Fatalf("class = %v, want TwoPair", rank.Fixed())
	}
	counts := map[Rank]int{}
	for _, c := range best {
		counts[c.Rank()]++
	}
	if counts[Ace] != 2 || counts[King] != 2 || counts[Queen] != 1 {
		t.Fatalf("best five %v does not contain AA KK Q kicker", best)
	}
}
