package holdem

import (
	"fmt"
	"sort"
)

// HandRank is a canonical 5-card poker hand rank: an integer in 1..7462
// where 1 is strongest (royal flush) and 7462 is weakest (7-high). Each
// value maps to exactly one hand class.
type HandRank uint16

// Invalid is the unevaluated/invalid hand rank sentinel.
const Invalid HandRank = 0

// Hand class upper bounds (cumulative): a rank r belongs to the lowest
// class c such that r <= c.
const (
	StraightFlush HandRank = 10
	FourOfAKind   HandRank = 166
	FullHouse     HandRank = 322
	Flush         HandRank = 1599
	Straight      HandRank = 1609
	ThreeOfAKind  HandRank = 2467
	TwoPair       HandRank = 3325
	Pair          HandRank = 6185
	Nothing       HandRank = 7462
)

// Fixed classifies rank into its hand class, returning the class's
// cumulative upper-bound constant (e.g. a flush returns [Flush]).
func (r HandRank) Fixed() HandRank {
	switch {
	case r <= StraightFlush:
		return StraightFlush
	case r <= FourOfAKind:
		return FourOfAKind
	case r <= FullHouse:
		return FullHouse
	case r <= Flush:
		return Flush
	case r <= Straight:
		return Straight
	case r <= ThreeOfAKind:
		return ThreeOfAKind
	case r <= TwoPair:
		return TwoPair
	case r <= Pair:
		return Pair
	default:
		return Nothing
	}
}

// Name returns the hand class name for rank.
func (r HandRank) Name() string {
	switch r.Fixed() {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	default:
		return "High Card"
	}
}

// String satisfies the [fmt.Stringer] interface.
func (r HandRank) String() string {
	return fmt.Sprintf("%s (%d)", r.Name(), uint16(r))
}

// evaluator static tables, populated once at init from the Cactus Kev
// prime-product construction and never mutated again. 26,160 entries total
// (about 61KB), computed at process startup rather than at
// request time, and safe to share across goroutines since they are
// read-only after init.
var (
	// flushes is indexed directly by the 13-bit rank union; populated only
	// at the 1,287 patterns with exactly 5 distinct rank bits set.
	flushes [8192]HandRank
	// straightHigh is indexed the same way, holding straights and
	// otherwise-unclassified ("nothing"/high-card) hands.
	straightHigh [8192]HandRank
	// products and values are parallel, sorted ascending by product, and
	// hold every paired-rank hand (quads, full house, trips, two pair, pair).
	products [4888]uint32
	values   [4888]HandRank
)

func init() {
	// rank-bit patterns for the ten straights, ace-high down to the wheel.
	orders := [10]uint32{
		0x1f00, // ace-high (royal)
		0x0f80,
		0x07c0,
		0x03e0,
		0x01f0,
		0x00f8,
		0x007c,
		0x003e,
		0x001f, // six-high
		0x100f, // wheel (five-high, A2345)
	}
	isStraight := func(n uint32) bool {
		for _, o := range orders {
			if n == o {
				return true
			}
		}
		return false
	}
	// every 5-of-13 rank-bit pattern (C(13,5) = 1,287), in ascending
	// numeric order, via the bit-permutation hack seeded at the lowest
	// pattern (0x1f, deuce through six).
	all := make([]uint32, 0, 1287)
	for n, i := uint32(0x1f), 0; i < 1287; i++ {
		all = append(all, n)
		n = nextBitPermutation(n)
	}
	var nonStraight []uint32
	for _, n := range all {
		if !isStraight(n) {
			nonStraight = append(nonStraight, n)
		}
	}
	for i, o := range orders {
		flushes[o] = 1 + HandRank(i)
		straightHigh[o] = 1 + Flush + HandRank(i)
	}
	// nonStraight is in ascending bit-permutation order (weakest pattern
	// first numerically), but flush/high-card rank descends with the best
	// (highest) pattern being strongest, so walk it in reverse.
	for i := 0; i < len(nonStraight); i++ {
		n := nonStraight[len(nonStraight)-1-i]
		flushes[n] = 1 + FullHouse + HandRank(i)
		straightHigh[n] = 1 + Pair + HandRank(i)
	}
	buildPairedTables()
}

// buildPairedTables fills products/values with every paired-rank hand class
// (quads, full house, trips, two pair, pair), sorted by prime product.
func buildPairedTables() {
	type entry struct {
		product uint32
		rank    HandRank
	}
	var entries []entry
	ranks := [13]int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0} // ace..deuce
	kickersExcept := func(base []int, excl int) []int {
		k := make([]int, 0, len(base)-1)
		for _, v := range base {
			if v != excl {
				k = append(k, v)
			}
		}
		return k
	}
	fullBase := make([]int, 13)
	copy(fullBase, ranks[:])
	r3, r2, r1 := 1+Straight, 1+ThreeOfAKind, 1+TwoPair
	for i := 0; i < 13; i++ {
		k := kickersExcept(fullBase, ranks[i])
		for j, n := range k {
			// four of a kind: rank i quads, kicker n.
			entries = append(entries, entry{
				primes[ranks[i]] * primes[ranks[i]] * primes[ranks[i]] * primes[ranks[i]] * primes[n],
				1 + StraightFlush + HandRank(i*len(k)+j),
			})
			// full house: rank i trips, rank n pair.
			entries = append(entries, entry{
				primes[ranks[i]] * primes[ranks[i]] * primes[ranks[i]] * primes[n] * primes[n],
				1 + FourOfAKind + HandRank(i*len(k)+j),
			})
		}
		// three of a kind: rank i trips, two distinct kickers from k.
		for j := 0; j < len(k)-1; j++ {
			for l := j + 1; l < len(k); l++ {
				entries = append(entries, entry{
					primes[ranks[i]] * primes[ranks[i]] * primes[ranks[i]] * primes[k[j]] * primes[k[l]],
					r3,
				})
				r3++
			}
		}
		// two pair: rank i and rank j (j beneath i in rank order) paired, one kicker.
		for j := i + 1; j < 13; j++ {
			for _, n := range kickersExcept(k, ranks[j]) {
				entries = append(entries, entry{
					primes[ranks[i]] * primes[ranks[i]] * primes[ranks[j]] * primes[ranks[j]] * primes[n],
					r2,
				})
				r2++
			}
		}
		// pair: rank i paired, three distinct kickers from k.
		for l := 0; l < len(k)-2; l++ {
			for m := l + 1; m < len(k)-1; m++ {
				for n := m + 1; n < len(k); n++ {
					entries = append(entries, entry{
						primes[ranks[i]] * primes[ranks[i]] * primes[k[l]] * primes[k[m]] * primes[k[n]],
						r1,
					})
					r1++
				}
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].product < entries[j].product })
	if len(entries) != len(products) {
		panic(fmt.Sprintf("holdem: internal error: generated %d paired-hand entries, want %d", len(entries), len(products)))
	}
	for i, e := range entries {
		products[i] = e.product
		values[i] = e.rank
	}
}

// nextBitPermutation calculates the lexicographically next bit permutation
// with the same popcount as bits.
//
// See: https://graphics.stanford.edu/~seander/bithacks.html#NextBitPermutation.
func nextBitPermutation(bits uint32) uint32 {
	i := (bits | (bits - 1)) + 1
	return i | ((((i & -i) / (bits & -bits)) >> 1) - 1)
}

// lookupProduct binary-searches the sorted products table, returning the
// corresponding value and true, or [Invalid] and false if absent.
func lookupProduct(p uint32) (HandRank, bool) {
	i := sort.Search(len(products), func(i int) bool { return products[i] >= p })
	if i < len(products) && products[i] == p {
		return values[i], true
	}
	return Invalid, false
}
