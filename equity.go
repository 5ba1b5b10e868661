package holdem

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Odds is the exact equity result of enumerating every possible board for a
// [SortedHeadsUp] matchup: counts of boards where hero wins outright,
// villain wins outright, and the two split.
type Odds struct {
	HeroWins    int
	VillainWins int
	Splits      int
	Total       int
}

// Add accumulates other into o (used to reduce per-worker partial results;
// the reduction is plain addition, which is associative and commutative).
func (o *Odds) Add(other Odds) {
	o.HeroWins += other.HeroWins
	o.VillainWins += other.VillainWins
	o.Splits += other.Splits
	o.Total += other.Total
}

// HeroEquity returns hero's normalized equity share: (2*wins + splits) /
// (2*total), matching the spec's normalization.
func (o Odds) HeroEquity() float64 {
	if o.Total == 0 {
		return 0
	}
	return float64(2*o.HeroWins+o.Splits) / float64(2*o.Total)
}

// VillainEquity returns villain's normalized equity share.
func (o Odds) VillainEquity() float64 {
	if o.Total == 0 {
		return 0
	}
	return float64(2*o.VillainWins+o.Splits) / float64(2*o.Total)
}

// Percent returns HeroEquity as a 0..100 percentage.
func (o Odds) Percent() float64 {
	return o.HeroEquity() * 100
}

// remainingCards returns the 48 cards not held by either side of hu, in
// canonical deck order.
func remainingCards(hu SortedHeadsUp) []Card {
	held, _ := NewCardsFrom(hu.Hero.hi, hu.Hero.lo, hu.Villain.hi, hu.Villain.lo)
	return DeckMinus(held).Cards()
}

// EquityExhaustive computes the exact [Odds] for hu by enumerating all
// C(48,5) = 1,712,304 remaining boards sequentially. Prefer
// [EquityExhaustiveParallel] for interactive use; this is provided for
// testing and for environments where spinning up a worker pool isn't
// worthwhile (e.g. a single lookup on a cache-miss path that's about to be
// shared across 24 suit-isomorphic keys anyway).
func EquityExhaustive(hu SortedHeadsUp) Odds {
	remaining := remainingCards(hu)
	var o Odds
	gen, board := NewCombinGen(remaining, 5)
	for gen.Next() {
		accumulateBoard(hu, board, &o)
	}
	return o
}

// accumulateBoard evaluates both sides against board and tallies the
// outcome into o.
func accumulateBoard(hu SortedHeadsUp, board []Card, o *Odds) {
	heroRank, _, _ := Eval(append([]Card{hu.Hero.hi, hu.Hero.lo}, board...))
	villainRank, _, _ := Eval(append([]Card{hu.Villain.hi, hu.Villain.lo}, board...))
	o.Total++
	switch {
	case heroRank < villainRank:
		o.HeroWins++
	case villainRank < heroRank:
		o.VillainWins++
	default:
		o.Splits++
	}
}

// EquityExhaustiveParallel computes the exact [Odds] for hu, splitting the
// C(48,5) board enumeration across runtime.NumCPU() workers (capped at 8,
// matching the worker-pool pattern this is grounded on). Each worker owns a
// contiguous slice of the combination index space, seeks its start offset
// via [ixGenAt] rather than skipping boards one at a time, and accumulates
// an independent [Odds] that is summed once every worker completes —
// addition is associative, so this reduction is safe regardless of
// worker/board ordering.
func EquityExhaustiveParallel(ctx context.Context, hu SortedHeadsUp) (Odds, error) {
	remaining := remainingCards(hu)
	const n, k = 48, 5
	total := Comb(n, k)
	if len(remaining) != n {
		total = Comb(len(remaining), k)
	}
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 1 {
		workers = 1
	}
	if total < workers {
		workers = 1
	}
	chunk := total / workers
	results := make([]Odds, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if w == workers-1 {
			end = total
		}
		g.Go(func() error {
			return runEquityWorker(gctx, hu, remaining, start, end, &results[w])
		})
	}
	if err := g.Wait(); err != nil {
		return Odds{}, err
	}
	var o Odds
	for _, r := range results {
		o.Add(r)
	}
	return o, nil
}

// runEquityWorker evaluates board combinations with indices in [start,end)
// of the lexicographic C(len(remaining),5) ordering, accumulating into out.
func runEquityWorker(ctx context.Context, hu SortedHeadsUp, remaining []Card, start, end int, out *Odds) error {
	if start >= end {
		return nil
	}
	idx := ixGenAt(len(remaining), 5, start)
	board := make([]Card, 5)
	for i := start; i < end; i++ {
		if i%4096 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		for j, ix := range idx {
			board[j] = remaining[ix]
		}
		accumulateBoard(hu, board, out)
		if i != end-1 {
			advanceIndex(idx, len(remaining))
		}
	}
	return nil
}

// advanceIndex advances a combination index vector (as produced by
// [ixGenAt]) to the next lexicographic combination in place.
func advanceIndex(v []int, n int) {
	k := len(v)
	i := k - 1
	for i >= 0 && v[i] == n-k+i {
		i--
	}
	if i < 0 {
		return // exhausted; caller's loop bound prevents this from being reached
	}
	v[i]++
	for j := i + 1; j < k; j++ {
		v[j] = v[j-1] + 1
	}
}
