package holdem

import (
	"math/rand"
	"sort"
	"sync"
)

// Cards is an insertion-order-preserving, duplicate-rejecting collection of
// cards. Semantically a mapping from [Card] to insertion index with a side
// invariant of uniqueness: essential for dealing order (the order cards
// were dealt matters) while still needing fast membership tests.
//
// Cards is transient: built from a string, a [Bard], by filtering a deck, or
// by drawing from one. For concurrent aliased access (seats, board, deck,
// muck on a live [Table]) see [CardsCell].
type Cards struct {
	v    []Card
	seen map[Card]int
}

// NewCards creates an empty [Cards] collection.
func NewCards() *Cards {
	return &Cards{seen: make(map[Card]int)}
}

// NewCardsFrom creates a [Cards] collection from the given cards, rejecting
// blanks and duplicates.
func NewCardsFrom(cards ...Card) (*Cards, error) {
	c := NewCards()
	for _, card := range cards {
		if err := c.Insert(card); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewCardsFromBard builds a [Cards] collection from a [Bard], iterating in
// deck order (see [Bard.Cards]).
func NewCardsFromBard(b Bard) *Cards {
	return b.Cards()
}

// Deck returns the 52-card deck in canonical order: AS, KS, ..., 2S, AH, ..., 2C.
func Deck() *Cards {
	c := &Cards{v: make([]Card, 0, 52), seen: make(map[Card]int, 52)}
	for _, s := range suitOrder {
		for r := Ace; ; r-- {
			_ = c.insert(New(r, s))
			if r == Two {
				break
			}
		}
	}
	return c
}

// DeckMinus returns the 52-card deck with held removed, preserving canonical
// deck order.
func DeckMinus(held *Cards) *Cards {
	d := Deck()
	return d.Minus(held)
}

// insert appends card without validation (internal helper for canonical
// table construction, where the caller already guarantees validity).
func (c *Cards) insert(card Card) error {
	if _, ok := c.seen[card]; ok {
		return ErrDuplicateCard
	}
	c.seen[card] = len(c.v)
	c.v = append(c.v, card)
	return nil
}

// Insert appends card to the collection, rejecting blanks and duplicates.
func (c *Cards) Insert(card Card) error {
	if card.Blank() {
		return ErrBlankCard
	}
	return c.insert(card)
}

// Len returns the number of cards in the collection.
func (c *Cards) Len() int {
	return len(c.v)
}

// Cards returns the underlying cards in insertion order. The returned slice
// must not be mutated by the caller.
func (c *Cards) Cards() []Card {
	return c.v
}

// Contains reports whether card is present in the collection.
func (c *Cards) Contains(card Card) bool {
	_, ok := c.seen[card]
	return ok
}

// Clone returns a deep copy of the collection.
func (c *Cards) Clone() *Cards {
	v := make([]Card, len(c.v))
	copy(v, c.v)
	seen := make(map[Card]int, len(c.seen))
	for k, i := range c.seen {
		seen[k] = i
	}
	return &Cards{v: v, seen: seen}
}

// Bard returns the [Bard] bitmask for the collection's cards.
func (c *Cards) Bard() Bard {
	return BardFromCards(c.v)
}

// Shuffle returns a new collection with the cards uniformly permuted using
// f (the same interface as [math/rand.Shuffle] / [math/rand.Rand.Shuffle]).
func (c *Cards) Shuffle(f func(n int, swap func(i, j int))) *Cards {
	v := make([]Card, len(c.v))
	copy(v, c.v)
	f(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
	seen := make(map[Card]int, len(v))
	for i, card := range v {
		seen[card] = i
	}
	return &Cards{v: v, seen: seen}
}

// ShuffleRand shuffles using r (or the package [math/rand] source if r is nil).
func (c *Cards) ShuffleRand(r *rand.Rand) *Cards {
	if r != nil {
		return c.Shuffle(r.Shuffle)
	}
	return c.Shuffle(rand.Shuffle)
}

// Draw removes and returns the first n cards. Fails with [ErrNotEnoughCards]
// if n exceeds the collection's length.
func (c *Cards) Draw(n int) ([]Card, error) {
	if n < 0 || len(c.v) < n {
		return nil, ErrNotEnoughCards
	}
	drawn := make([]Card, n)
	copy(drawn, c.v[:n])
	c.v = c.v[n:]
	c.reindex()
	return drawn, nil
}

// DrawFromBottom removes and returns the last n cards.
func (c *Cards) DrawFromBottom(n int) ([]Card, error) {
	if n < 0 || len(c.v) < n {
		return nil, ErrNotEnoughCards
	}
	l := len(c.v)
	drawn := make([]Card, n)
	copy(drawn, c.v[l-n:])
	c.v = c.v[:l-n]
	c.reindex()
	return drawn, nil
}

func (c *Cards) reindex() {
	seen := make(map[Card]int, len(c.v))
	for i, card := range c.v {
		seen[card] = i
	}
	c.seen = seen
}

// Minus returns the set difference c \ other, preserving c's original order.
func (c *Cards) Minus(other *Cards) *Cards {
	r := NewCards()
	for _, card := range c.v {
		if !other.Contains(card) {
			_ = r.insert(card)
		}
	}
	return r
}

// Sort returns a new collection sorted suit-primary descending
// (♠ > ♥ > ♦ > ♣), then rank-descending within suit.
func (c *Cards) Sort() *Cards {
	v := make([]Card, len(c.v))
	copy(v, c.v)
	sort.Slice(v, func(i, j int) bool {
		si, sj := v[i].SuitIndex(), v[j].SuitIndex()
		if si != sj {
			return si < sj
		}
		return v[i].RankIndex() > v[j].RankIndex()
	})
	r, _ := NewCardsFrom(v...)
	return r
}

// combGen is the iterator state for [Cards.Combinations].
type combGen struct {
	gen *BinGen[Card]
	d   []Card
}

// Combinations returns a lazy iterator over all k-subsets of the collection
// in lexicographic order by current collection index, implemented as an
// index-based stateful generator (no per-combination allocation once the
// destination slice is obtained).
func (c *Cards) Combinations(k int) func() ([]Card, bool) {
	gen, d := NewCombinGen(c.v, k)
	return func() ([]Card, bool) {
		if !gen.Next() {
			return nil, false
		}
		return d, true
	}
}

// CardsCell is the interior-mutable variant of [Cards], used where multiple
// goroutines need aliased reference to the same collection: a seat's hole
// cards, the table's deck, board, and muck. Reads are non-blocking with
// respect to each other; writes take an exclusive lock for their duration,
// and no reader observes a partially-mutated collection.
type CardsCell struct {
	mu sync.RWMutex
	c  *Cards
}

// NewCardsCell wraps c (or a new empty [Cards] if c is nil) in a [CardsCell].
func NewCardsCell(c *Cards) *CardsCell {
	if c == nil {
		c = NewCards()
	}
	return &CardsCell{c: c}
}

// Get returns a snapshot clone of the cell's current collection, safe to
// read without holding any lock.
func (cc *CardsCell) Get() *Cards {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.c.Clone()
}

// Len returns the number of cards currently in the cell.
func (cc *CardsCell) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.c.Len()
}

// Contains reports whether the cell's collection currently contains card.
func (cc *CardsCell) Contains(card Card) bool {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.c.Contains(card)
}

// With runs f with exclusive write access to the underlying collection. f
// may mutate *c's contents by replacing the pointee via *c = ...; no other
// reader or writer observes the collection until f returns.
func (cc *CardsCell) With(f func(c *Cards)) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	f(cc.c)
}

// Set replaces the cell's collection wholesale.
func (cc *CardsCell) Set(c *Cards) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.c = c
}

// Draw draws n cards from the cell's collection under an exclusive lock.
func (cc *CardsCell) Draw(n int) ([]Card, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.c.Draw(n)
}

// Insert inserts card into the cell's collection under an exclusive lock.
func (cc *CardsCell) Insert(card Card) error {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.c.Insert(card)
}
