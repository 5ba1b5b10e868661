package holdem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryOddsCacheInsertOrSkip(t *testing.T) {
	c := NewMemoryOddsCache()
	if err := c.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	key := uint64(42)
	first := Odds{HeroWins: 1, Total: 1}
	second := Odds{HeroWins: 2, Total: 2}
	if err := c.Insert(key, first); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := c.Insert(key, second); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, ok, err := c.Select(key)
	require.NoError(t, err)
	require.True(t, ok, "expected key present")
	require.Equal(t, first, got, "second insert should be a no-op")
}

func TestFileOddsCacheRoundTrip(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "odds-*.bin")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	f.Close()

	c := NewFileOddsCache(path)
	if err := c.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	odds := Odds{HeroWins: 10, VillainWins: 5, Splits: 2, Total: 17}
	if err := c.Insert(7, odds); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	c.Close()

	c2 := NewFileOddsCache(path)
	if err := c2.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema (reload): %v", err)
	}
	got, ok, err := c2.Select(7)
	require.NoError(t, err)
	require.True(t, ok, "expected key present after reload")
	require.Equal(t, odds, got)
	c2.Close()
}

func TestEquityCachedSeedsShiftSet(t *testing.T) {
	hero := MustTwo(New(Ace, Spade), New(King, Spade))
	villain := MustTwo(New(Ace, Heart), New(King, Heart))
	hu, err := NewSortedHeadsUp(hero, villain)
	if err != nil {
		t.Fatalf("NewSortedHeadsUp: %v", err)
	}
	cache := NewMemoryOddsCache()
	_ = cache.CreateSchema()
	calls := 0
	compute := func(SortedHeadsUp) Odds {
		calls++
		return Odds{HeroWins: 1, Total: 1}
	}
	if _, err := EquityCached(hu, cache, compute); err != nil {
		t.Fatalf("EquityCached: %v", err)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
	for _, shifted := range hu.Shifts() {
		if _, ok, _ := cache.Select(shifted.Key()); !ok {
			t.Fatalf("shift %v not seeded in cache", shifted)
		}
	}
	if _, err := EquityCached(hu, cache, compute); err != nil {
		t.Fatalf("EquityCached (cached): %v", err)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times on cache hit, want still 1", calls)
	}
}
