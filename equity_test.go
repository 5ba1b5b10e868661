package holdem

import (
	"context"
	"math"
	"testing"
)

func aaVsKk(t *testing.T) SortedHeadsUp {
	t.Helper()
	hero := MustTwo(New(Ace, Spade), New(Ace, Club))
	villain := MustTwo(New(King, Spade), New(King, Club))
	hu, err := NewSortedHeadsUp(hero, villain)
	if err != nil {
		t.Fatalf("NewSortedHeadsUp: %v", err)
	}
	return hu
}

func TestEquityExhaustiveAAvsKK(t *testing.T) {
	hu := aaVsKk(t)
	o := EquityExhaustive(hu)
	if o.Total != 1_712_304 {
		t.Fatalf("Total = %d, want C(48,5) = 1712304", o.Total)
	}
	if got := o.HeroEquity(); math.Abs(got-0.8215) > 0.01 {
		t.Fatalf("hero equity = %.4f, want ~0.8215", got)
	}
}

func TestEquityExhaustiveParallelMatchesSequential(t *testing.T) {
	hu := aaVsKk(t)
	want := EquityExhaustive(hu)
	got, err := EquityExhaustiveParallel(context.Background(), hu)
	if err != nil {
		t.Fatalf("EquityExhaustiveParallel: %v", err)
	}
	if got != want {
		t.Fatalf("parallel result %+v does not match sequential %+v", got, want)
	}
}

func TestOddsEquitySumsToOne(t *testing.T) {
	o := Odds{HeroWins: 70, VillainWins: 20, Splits: 10, Total: 100}
	if math.Abs(o.HeroEquity()+o.VillainEquity()-1.0) > 1e-9 {
		t.Fatalf("equities do not sum to 1: hero=%v villain=%v", o.HeroEquity(), o.VillainEquity())
	}
}
