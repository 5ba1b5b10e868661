package holdem

// Two is a canonicalized two-card starting hand: an ordered pair where the
// "first" slot holds the higher-ranked card, ties broken by canonical suit
// order (spade > heart > diamond > club). There are exactly 1,326 possible
// Twos (C(52,2)).
type Two struct {
	hi, lo Card
}

// NewTwo creates a canonicalized [Two] from two distinct, valid cards,
// ordering them so hi >= lo under the total order (rank-descending, then
// canonical suit order within rank).
func NewTwo(a, b Card) (Two, error) {
	if a.Blank() || b.Blank() {
		return Two{}, ErrBlankCard
	}
	if a == b {
		return Two{}, ErrDuplicateCard
	}
	a, b = a.Clean(), b.Clean()
	if twoLess(a, b) {
		a, b = b, a
	}
	return Two{hi: a, lo: b}, nil
}

// MustTwo is like [NewTwo] but panics on error.
func MustTwo(a, b Card) Two {
	t, err := NewTwo(a, b)
	if err != nil {
		panic(err)
	}
	return t
}

// twoLess reports whether a sorts before b in the Two total order (a comes
// first if a has the higher rank, or equal rank and higher canonical suit).
func twoLess(a, b Card) bool {
	ar, br := a.RankIndex(), b.RankIndex()
	if ar != br {
		return ar < br
	}
	return a.SuitIndex() > b.SuitIndex() // lower suit index == higher canonical suit
}

// Hi returns the higher-ranked card.
func (t Two) Hi() Card { return t.hi }

// Lo returns the lower-ranked (or, if paired, second) card.
func (t Two) Lo() Card { return t.lo }

// Cards returns [hi, lo].
func (t Two) Cards() []Card { return []Card{t.hi, t.lo} }

// Contains reports whether t holds c.
func (t Two) Contains(c Card) bool {
	c = c.Clean()
	return t.hi == c || t.lo == c
}

// Disjoint reports whether t and other share no card.
func (t Two) Disjoint(other Two) bool {
	return !t.Contains(other.hi) && !t.Contains(other.lo)
}

// Paired reports whether t is a pocket pair.
func (t Two) Paired() bool {
	return t.hi.Rank() == t.lo.Rank()
}

// Suited reports whether both cards share a suit (implies !Paired()).
func (t Two) Suited() bool {
	return !t.Paired() && t.hi.Suit() == t.lo.Suit()
}

// String satisfies the [fmt.Stringer] interface (ex: "AhKs").
func (t Two) String() string {
	return t.hi.String() + t.lo.String()
}

// ClassName returns the 169-class shorthand name (ex: "AA", "AKs", "AKo").
func (t Two) ClassName() string {
	if t.Paired() {
		return string(t.hi.RankByte()) + string(t.lo.RankByte())
	}
	suffix := byte('o')
	if t.Suited() {
		suffix = 's'
	}
	return string(t.hi.RankByte()) + string(t.lo.RankByte()) + string(suffix)
}

// Less provides a total order over Twos (by hi then lo), used to
// canonicalize a [SortedHeadsUp] pair ("hero" is the lexicographically
// smaller Two) and for deterministic cache-key ordering.
func (t Two) Less(other Two) bool {
	if t.hi != other.hi {
		return t.hi < other.hi
	}
	return t.lo < other.lo
}

// bitPack packs t into a 12-bit key (two 6-bit card indices, hi then lo),
// the same per-side layout [SortedHeadsUp.Key] computes.
func (t Two) bitPack() uint32 {
	return uint32(t.hi.Index())<<6 | uint32(t.lo.Index())
}

// shuffleSuits returns the Two obtained by applying perm (a permutation of
// the four suits, perm[i] = the suit that suit i maps to) to both cards.
func (t Two) shuffleSuits(perm [4]Suit) Two {
	shift := func(c Card) Card {
		return New(c.Rank(), perm[c.SuitIndex()])
	}
	nt, _ := NewTwo(shift(t.hi), shift(t.lo))
	return nt
}

// starting169Classes enumerates the 169 canonical distinct starting-hand
// classes (13 pairs, 78 suited, 78 offsuit), each represented by its
// lexicographically-smallest-suits member (pairs -> spade+heart; suited ->
// double spade; offsuit -> spade high, heart low).
func starting169Classes() []Two {
	classes := make([]Two, 0, 169)
	for hi := Ace; ; hi-- {
		classes = append(classes, MustTwo(New(hi, Spade), New(hi, Heart)))
		if hi == Two {
			break
		}
	}
	for hi := Ace; ; hi-- {
		for lo := hi - 1; ; lo-- {
			classes = append(classes, MustTwo(New(hi, Spade), New(lo, Spade)))
			if lo == Two {
				break
			}
		}
		if hi == Two+1 {
			break
		}
	}
	for hi := Ace; ; hi-- {
		for lo := hi - 1; ; lo-- {
			classes = append(classes, MustTwo(New(hi, Spade), New(lo, Heart)))
			if lo == Two {
				break
			}
		}
		if hi == Two+1 {
			break
		}
	}
	return classes
}

// AllTwos enumerates all 1,326 possible Twos from a fresh deck.
func AllTwos() []Two {
	d := Deck()
	cards := d.Cards()
	var out []Two
	gen, d2 := NewCombinGen(cards, 2)
	for gen.Next() {
		out = append(out, MustTwo(d2[0], d2[1]))
	}
	return out
}

// suitPerms are the 24 permutations of the four suits, used to compute
// suit-isomorphism equivalence classes. perm[s] gives the suit the s-th
// canonical suit (spade,heart,diamond,club) maps to.
var suitPerms = permutationsOf4Suits()

func permutationsOf4Suits() [][4]Suit {
	base := [4]Suit{Spade, Heart, Diamond, Club}
	var perms [][4]Suit
	var permute func(cur []Suit, rest []Suit)
	permute = func(cur []Suit, rest []Suit) {
		if len(rest) == 0 {
			var p [4]Suit
			copy(p[:], cur)
			perms = append(perms, p)
			return
		}
		for i := range rest {
			next := make([]Suit, 0, len(rest)-1)
			next = append(next, rest[:i]...)
			next = append(next, rest[i+1:]...)
			permute(append(cur, rest[i]), next)
		}
	}
	permute(nil, base[:])
	return perms
}
