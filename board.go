package holdem

import "sort"

// PotTier is one layer of a showdown pot: an amount and the seat indices
// eligible to win it. The main pot is always tier 0; subsequent tiers are
// side pots created by a short all-in stack, ordered from smallest
// all-in amount to largest.
type PotTier struct {
	Amount   int
	Eligible []int
}

// ComputeSidePots partitions a hand's total contributions into pot tiers,
// grounded on the classic "layer by distinct all-in amount" algorithm: sort
// the contribution levels of seats still live for the showdown (i.e. not
// folded), then peel off one layer per distinct level, each layer collecting
// min(level - previous level, remaining contribution) from every seat that contributed
// anything at all (folded seats' chips still belong to the pot, they're
// just never eligible to win it).
//
// contributions must be indexed by seat number (see [Table.Contributions]);
// folded reports whether seat i has folded (folded seats contribute to
// every tier's amount but are never in a tier's Eligible list).
func ComputeSidePots(contributions []int, folded []bool) []PotTier {
	n := len(contributions)
	levels := make([]int, 0, n)
	seen := make(map[int]bool)
	for i, amt := range contributions {
		if amt > 0 && !folded[i] && !seen[amt] {
			seen[amt] = true
			levels = append(levels, amt)
		}
	}
	sort.Ints(levels)
	remaining := append([]int(nil), contributions...)
	var tiers []PotTier
	prev := 0
	for _, level := range levels {
		tier := PotTier{}
		for i := 0; i < n; i++ {
			if remaining[i] <= 0 {
				continue
			}
			take := level - prev
			if take > remaining[i] {
				take = remaining[i]
			}
			if take <= 0 {
				continue
			}
			tier.Amount += take
			remaining[i] -= take
			if !folded[i] && contributions[i] >= level {
				tier.Eligible = append(tier.Eligible, i)
			}
		}
		if tier.Amount > 0 {
			tiers = append(tiers, tier)
		}
		prev = level
	}
	// Any contribution above the highest all-in level (i.e. among seats who
	// were never capped) forms a final tier open to every non-folded seat
	// that contributed past that point.
	final := PotTier{}
	for i := 0; i < n; i++ {
		if remaining[i] > 0 {
			final.Amount += remaining[i]
			remaining[i] = 0
		}
	}
	if final.Amount > 0 {
		for i := 0; i < n; i++ {
			if !folded[i] && contributions[i] > prev {
				final.Eligible = append(final.Eligible, i)
			}
		}
		tiers = append(tiers, final)
	}
	return tiers
}

// ShowdownResult is one seat's outcome at showdown.
type ShowdownResult struct {
	Seat int
	Hand *Hand
	Won  int
}

// Showdown evaluates every non-folded seat's best hand against the board
// and resolves every [PotTier] to its winner(s), splitting a tier evenly
// (odd chips to the earliest-acting eligible seat, matching the standard
// "first to act postflop gets the odd chip" house rule) among ties.
// Advances the table to [PhaseNewHand] and logs [EventPlayerWins] for every
// seat that collects chips.
func (t *Table) Showdown() ([]ShowdownResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	board := t.Board.Get().Cards()
	folded := make([]bool, len(t.Seats))
	hands := make(map[int]*Hand, len(t.Seats))
	for i, s := range t.Seats {
		folded[i] = s.State.Kind == Fold || s.State.Kind == Out
		if !folded[i] {
			pocket := s.Cards.Get().Cards()
			if len(pocket) != 2 {
				continue
			}
			hands[i] = NewHand(pocket, board)
		}
	}
	tiers := ComputeSidePots(t.Contributions, folded)
	won := make(map[int]int, len(t.Seats))
	for _, tier := range tiers {
		best := Invalid
		var winners []int
		for _, idx := range tier.Eligible {
			h, ok := hands[idx]
			if !ok {
				continue
			}
			switch {
			case h.Rank < best:
				best = h.Rank
				winners = []int{idx}
			case h.Rank == best:
				winners = append(winners, idx)
			}
		}
		if len(winners) == 0 {
			continue
		}
		n := len(t.Seats)
		first := FirstToActIndex(n, t.Button, false)
		sort.Slice(winners, func(a, b int) bool {
			return (winners[a]-first+n)%n < (winners[b]-first+n)%n
		})
		share := tier.Amount / len(winners)
		remainder := tier.Amount % len(winners)
		for i, idx := range winners {
			amt := share
			if i == 0 {
				amt += remainder
			}
			won[idx] += amt
		}
	}
	results := make([]ShowdownResult, 0, len(t.Seats))
	for i, s := range t.Seats {
		amt := won[i]
		if amt > 0 {
			s.Chips += amt
			t.append(Event{Kind: EventPlayerWins, Seat: i, Amount: amt})
		} else if !folded[i] {
			t.append(Event{Kind: EventPlayerLoses, Seat: i})
		}
		results = append(results, ShowdownResult{Seat: i, Hand: hands[i], Won: amt})
	}
	t.Pot = 0
	t.Phase = PhaseNewHand
	return results, nil
}

// Nuts returns the best possible [Hand] obtainable on board among all
// remaining (undealt, unseen) two-card pockets — the "what's the nuts here"
// query used by training tools and post-hand analysis. Nuts evaluates
// whatever cards board actually holds (3, 4, or 5).
func Nuts(board []Card) *Hand {
	seen, _ := NewCardsFrom(board...)
	candidates := DeckMinus(seen).Cards()
	best := (*Hand)(nil)
	gen, pocket := NewCombinGen(candidates, 2)
	for gen.Next() {
		h := NewHand(append([]Card(nil), pocket...), board)
		if best == nil || h.Rank < best.Rank {
			best = h
		}
	}
	return best
}
