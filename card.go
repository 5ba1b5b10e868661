package holdem

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Rank is a card rank.
type Rank uint8

// Card ranks.
const (
	Ace Rank = 12 - iota
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

// InvalidRank is an invalid card rank.
const InvalidRank = ^Rank(0)

// primes are the first 13 prime numbers, one per card rank (deuce=2 .. ace=41).
var primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// RankFromRune returns a rune's card rank.
func RankFromRune(r rune) Rank {
	switch r {
	case 'A', 'a':
		return Ace
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'J', 'j':
		return Jack
	case 'T', 't':
		return Ten
	case '9':
		return Nine
	case '8':
		return Eight
	case '7':
		return Seven
	case '6':
		return Six
	case '5':
		return Five
	case '4':
		return Four
	case '3':
		return Three
	case '2':
		return Two
	}
	return InvalidRank
}

// String satisfies the [fmt.Stringer] interface.
func (rank Rank) String() string {
	return string(rank.Byte())
}

// Byte returns the card rank byte.
func (rank Rank) Byte() byte {
	switch rank {
	case Ace:
		return 'A'
	case King:
		return 'K'
	case Queen:
		return 'Q'
	case Jack:
		return 'J'
	case Ten:
		return 'T'
	case Nine:
		return '9'
	case Eight:
		return '8'
	case Seven:
		return '7'
	case Six:
		return '6'
	case Five:
		return '5'
	case Four:
		return '4'
	case Three:
		return '3'
	case Two:
		return '2'
	}
	return '0'
}

// Index returns the card rank int index (0-12 for [Two]-[Ace]).
func (rank Rank) Index() int {
	return int(rank)
}

// Prime returns the card rank's prime number.
func (rank Rank) Prime() uint32 {
	return primes[rank]
}

// Name returns the card rank name.
func (rank Rank) Name() string {
	switch rank {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case Ten:
		return "Ten"
	case Nine:
		return "Nine"
	case Eight:
		return "Eight"
	case Seven:
		return "Seven"
	case Six:
		return "Six"
	case Five:
		return "Five"
	case Four:
		return "Four"
	case Three:
		return "Three"
	case Two:
		return "Two"
	}
	return ""
}

// PluralName returns the card rank plural name.
func (rank Rank) PluralName() string {
	if rank == Six {
		return "Sixes"
	}
	return rank.Name() + "s"
}

// StraightFlushName returns the card rank's straight-flush display name.
func (rank Rank) StraightFlushName() string {
	if rank == Ace {
		return "Royal"
	}
	return rank.Name() + "-high"
}

// Suit is a card suit, encoded as a one-hot bitmask so that a union of
// suits (as used by [Bard] and flush detection) is a plain OR.
type Suit uint8

// Card suits, in canonical display order (spade > heart > diamond > club).
const (
	Spade Suit = 8 >> iota
	Heart
	Diamond
	Club
)

// InvalidSuit is an invalid card suit.
const InvalidSuit = ^Suit(0)

// SuitFromRune returns a rune's card suit.
func SuitFromRune(r rune) Suit {
	switch r {
	case 'S', 's', UnicodeSpadeBlack, UnicodeSpadeWhite:
		return Spade
	case 'H', 'h', UnicodeHeartBlack, UnicodeHeartWhite:
		return Heart
	case 'D', 'd', UnicodeDiamondBlack, UnicodeDiamondWhite:
		return Diamond
	case 'C', 'c', UnicodeClubBlack, UnicodeClubWhite:
		return Club
	}
	return InvalidSuit
}

// String satisfies the [fmt.Stringer] interface.
func (suit Suit) String() string {
	return string(suit.Byte())
}

// Byte returns the card suit byte.
func (suit Suit) Byte() byte {
	switch suit {
	case Spade:
		return 's'
	case Heart:
		return 'h'
	case Diamond:
		return 'd'
	case Club:
		return 'c'
	}
	return '0'
}

// Index returns the card suit int index (0-3, spade-primary canonical order).
func (suit Suit) Index() int {
	switch suit {
	case Spade:
		return 0
	case Heart:
		return 1
	case Diamond:
		return 2
	case Club:
		return 3
	}
	return -1
}

// Name returns the card suit name.
func (suit Suit) Name() string {
	switch suit {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Diamond:
		return "Diamond"
	case Club:
		return "Club"
	}
	return ""
}

// PluralName returns the card suit plural name.
func (suit Suit) PluralName() string {
	return suit.Name() + "s"
}

// suitOrder is the canonical suit rotation order, spade-primary.
var suitOrder = [4]Suit{Spade, Heart, Diamond, Club}

// Down rotates the suit to the next-lower suit in canonical order
// (spade -> heart -> diamond -> club -> spade).
func (suit Suit) Down() Suit {
	return suitOrder[(suit.Index()+1)%4]
}

// Up rotates the suit to the next-higher suit in canonical order
// (club -> diamond -> heart -> spade -> club).
func (suit Suit) Up() Suit {
	return suitOrder[(suit.Index()+3)%4]
}

// Opposite returns the suit two positions away in canonical order
// (spade <-> diamond, heart <-> club).
func (suit Suit) Opposite() Suit {
	return suitOrder[(suit.Index()+2)%4]
}

// UnicodeBlack returns the card suit's black unicode pip rune.
func (suit Suit) UnicodeBlack() rune {
	switch suit {
	case Spade:
		return UnicodeSpadeBlack
	case Heart:
		return UnicodeHeartBlack
	case Diamond:
		return UnicodeDiamondBlack
	case Club:
		return UnicodeClubBlack
	}
	return 0
}

// UnicodeWhite returns the card suit's white unicode pip rune.
func (suit Suit) UnicodeWhite() rune {
	switch suit {
	case Spade:
		return UnicodeSpadeWhite
	case Heart:
		return UnicodeHeartWhite
	case Diamond:
		return UnicodeDiamondWhite
	case Club:
		return UnicodeClubWhite
	}
	return 0
}

// Card is a single playing card, encoded as a 32-bit value:
//
//	bits 31..29 : frequency flags (paired/tripped/quaded) — display only
//	bits 28..16 : one-hot rank bit (bit 16 = deuce, ... bit 28 = ace)
//	bits 15..12 : one-hot suit bit (spade=8, heart=4, diamond=2, club=1)
//	bits 11..8  : rank index (0..12 for deuce..ace)
//	bits  7..6  : unused
//	bits  5..0  : prime number of rank
//
// The zero value is the blank sentinel.
type Card uint32

// InvalidCard is an invalid card.
const InvalidCard = ^Card(0)

// Blank is the blank card sentinel.
const Blank Card = 0

// Frequency flags, set by the holder of a hand (never by [New]) to tag a
// card as part of a pair/trips/quads for display. Cleared by [Card.Clean]
// before evaluation.
const (
	FlagPaired Card = 1 << 29
	FlagTripped Card = 1 << 30
	FlagQuaded Card = 1 << 31
	freqMask    Card = FlagPaired | FlagTripped | FlagQuaded
)

// New creates a card for the rank and suit.
func New(rank Rank, suit Suit) Card {
	if Ace < rank || (suit != Spade && suit != Heart && suit != Diamond && suit != Club) {
		return InvalidCard
	}
	return 1<<Card(rank)<<16 | Card(suit)<<12 | Card(rank)<<8 | Card(primes[rank])
}

// FromRune creates a card from a unicode playing card rune.
func FromRune(r rune) Card {
	switch {
	case unicode.Is(rangeS, r):
		return New(runeCardRank(r, UnicodeSpadeAce), Spade)
	case unicode.Is(rangeH, r):
		return New(runeCardRank(r, UnicodeHeartAce), Heart)
	case unicode.Is(rangeD, r):
		return New(runeCardRank(r, UnicodeDiamondAce), Diamond)
	case unicode.Is(rangeC, r):
		return New(runeCardRank(r, UnicodeClubAce), Club)
	}
	return InvalidCard
}

// FromString creates a card from a string. Accepts "__" as the blank card.
func FromString(s string) Card {
	if s == "__" {
		return Blank
	}
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	switch v := []rune(s); len(v) {
	case 1:
		return FromRune(v[0])
	case 2:
		return New(RankFromRune(v[0]), SuitFromRune(v[1]))
	}
	return InvalidCard
}

// FromIndex creates a card from a numerical index (0-51).
func FromIndex(i int) Card {
	if 0 <= i && i < 52 {
		return New(Rank(i%13), suitOrder[i/13])
	}
	return InvalidCard
}

// Parse parses common string representations of [Card]'s contained in v,
// ignoring case and whitespace. A single token failing to parse returns a
// structured [ParseError] and aborts the whole parse (strict mode).
//
// Accepts a rank followed by a suit letter (ex: "Ah", "Ks", "Tc"), a rank
// followed by a unicode suit pip (ex: "J♠"), or a unicode playing-card
// rune (ex: "🃁"). "__" parses to the blank sentinel.
func Parse(v ...string) ([]Card, error) {
	var cards []Card
	for n, s := range v {
		for i, r := 0, []rune(s); i < len(r); i++ {
			switch {
			case unicode.IsSpace(r[i]):
				continue
			case unicode.Is(rangeA, r[i]):
				c := FromRune(r[i])
				if c == InvalidCard {
					return nil, &ParseError{S: s, N: n, I: i, Err: ErrInvalidCardIndex}
				}
				cards = append(cards, c)
				continue
			case r[i] == '_' && i+1 < len(r) && r[i+1] == '_':
				cards = append(cards, Blank)
				i++
				continue
			case len(r)-i < 2:
				return nil, &ParseError{S: s, N: n, I: i, Err: ErrInvalidCardIndex}
			}
			c := r[i]
			if 2 < len(r)-i && c == '1' && r[i+1] == '0' {
				c, i = 'T', i+1
			}
			card := New(RankFromRune(c), SuitFromRune(r[i+1]))
			if card == InvalidCard {
				return nil, &ParseError{S: s, N: n, I: i, Err: ErrInvalidCardIndex}
			}
			cards = append(cards, card)
			i++
		}
	}
	return cards, nil
}

// ParseForgiving parses v like [Parse], but substitutes [Blank] for any
// token that fails to parse instead of aborting. Intended only for display
// contexts (e.g. showing partially-known hole cards). Unlike [Parse], it
// does not recognize single-rune unicode playing cards; such a rune yields
// [Blank].
func ParseForgiving(v ...string) []Card {
	var cards []Card
	for _, s := range v {
		r := []rune(s)
		for i := 0; i < len(r); i++ {
			if unicode.IsSpace(r[i]) {
				continue
			}
			if len(r)-i < 2 {
				cards = append(cards, Blank)
				break
			}
			c := r[i]
			if 2 < len(r)-i && c == '1' && r[i+1] == '0' {
				c, i = 'T', i+1
			}
			card := New(RankFromRune(c), SuitFromRune(r[i+1]))
			if card == InvalidCard {
				card = Blank
			}
			cards = append(cards, card)
			i++
		}
	}
	return cards
}

// Must parses common string representations of [Card]'s contained in v,
// panicking on any error. See [Parse].
func Must(v ...string) []Card {
	cards, err := Parse(v...)
	if err != nil {
		panic(err)
	}
	return cards
}

// Rank returns the card rank.
func (c Card) Rank() Rank {
	return Rank(c >> 8 & 0xf)
}

// RankByte returns the card rank byte.
func (c Card) RankByte() byte {
	return c.Rank().Byte()
}

// RankIndex returns the card rank index.
func (c Card) RankIndex() int {
	return c.Rank().Index()
}

// Suit returns the card suit.
func (c Card) Suit() Suit {
	return Suit(c >> 12 & 0xf)
}

// SuitByte returns the card suit byte.
func (c Card) SuitByte() byte {
	return c.Suit().Byte()
}

// SuitIndex returns the card suit index.
func (c Card) SuitIndex() int {
	return c.Suit().Index()
}

// Index returns the card's canonical deck index (0-51).
func (c Card) Index() int {
	return c.SuitIndex()*13 + c.RankIndex()
}

// Prime returns the card rank's prime number (bits 5..0).
func (c Card) Prime() uint32 {
	return uint32(c) & 0x3f
}

// RankBit returns the card's one-hot rank bit, shifted down to bit 0..12
// (i.e. the contribution this card makes to a 13-bit rank union).
func (c Card) RankBit() uint32 {
	return uint32(c>>16) & 0x1fff
}

// Blank reports whether the card is the blank sentinel.
func (c Card) Blank() bool {
	return c == Blank
}

// Valid reports whether the card is a well-formed, non-blank card: exactly
// one rank bit, one suit bit, the matching rank index, and matching prime.
func (c Card) Valid() bool {
	if c == Blank || c == InvalidCard {
		return false
	}
	clean := c.Clean()
	return New(clean.Rank(), clean.Suit()) == clean
}

// Clean clears the frequency flags (bits 31..29), returning the card ready
// for evaluation. These flags are display-only and are never serialized.
func (c Card) Clean() Card {
	return c &^ freqMask
}

// Paired reports whether the paired frequency flag is set.
func (c Card) Paired() bool { return c&FlagPaired != 0 }

// Tripped reports whether the tripped frequency flag is set.
func (c Card) Tripped() bool { return c&FlagTripped != 0 }

// Quaded reports whether the quaded frequency flag is set.
func (c Card) Quaded() bool { return c&FlagQuaded != 0 }

// WithFlag returns a copy of c with the given frequency flag (and only that
// flag) set over its clean bits.
func (c Card) WithFlag(flag Card) Card {
	return c.Clean() | (flag & freqMask)
}

// UnmarshalText satisfies the [encoding.TextUnmarshaler] interface.
func (c *Card) UnmarshalText(buf []byte) error {
	if *c = FromString(string(buf)); *c == InvalidCard {
		return ErrInvalidCardIndex
	}
	return nil
}

// MarshalText satisfies the [encoding.TextMarshaler] interface. Frequency
// flags are never serialized.
func (c Card) MarshalText() ([]byte, error) {
	if c == Blank {
		return []byte("__"), nil
	}
	if c == InvalidCard {
		return nil, ErrInvalidCardIndex
	}
	c = c.Clean()
	return []byte{c.RankByte(), c.SuitByte()}, nil
}

// String satisfies the [fmt.Stringer] interface.
func (c Card) String() string {
	if c == Blank {
		return "__"
	}
	return string(c.RankByte()) + string(c.SuitByte())
}

// Format satisfies the [fmt.Formatter] interface.
//
// Supported verbs:
//
//	s, v - rank and suit (ex: Ks Ah)
//	S    - same as s, uppercased (ex: KS AH)
//	q    - same as s, quoted
//	r    - rank only (ex: K A)
//	u    - suit only (ex: s h)
//	b    - rank and black unicode pip
//	n, N - rank name, lower/title cased
//	p, P - plural rank name, lower/title cased
//	t, T - suit name, lower/title cased
//	l, L - plural suit name, lower/title cased
//	F    - straight-flush rank name
//	d    - base-10 integer value
func (c Card) Format(f fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'S', 'v':
		buf = append(buf, c.RankByte(), c.SuitByte())
		if verb == 'S' {
			buf = bytes.ToUpper(buf)
		}
	case 'q':
		buf = append(buf, '"', c.RankByte(), c.SuitByte(), '"')
	case 'r':
		buf = append(buf, c.RankByte())
	case 'u':
		buf = append(buf, c.SuitByte())
	case 'b':
		buf = append(buf, (string(c.RankByte()) + string(c.Suit().UnicodeBlack()))...)
	case 'n', 'N':
		buf = append(buf, c.Rank().Name()...)
		if verb == 'n' {
			buf = bytes.ToLower(buf)
		}
	case 'p', 'P':
		buf = append(buf, c.Rank().PluralName()...)
		if verb == 'p' {
			buf = bytes.ToLower(buf)
		}
	case 't', 'T':
		buf = append(buf, c.Suit().Name()...)
		if verb == 't' {
			buf = bytes.ToLower(buf)
		}
	case 'l', 'L':
		buf = append(buf, c.Suit().PluralName()...)
		if verb == 'l' {
			buf = bytes.ToLower(buf)
		}
	case 'F':
		buf = append(buf, c.Rank().StraightFlushName()...)
	case 'd':
		buf = append(buf, strconv.Itoa(int(c))...)
	default:
		buf = append(buf, fmt.Sprintf("%%!%c(ERROR=unknown verb, card: %s)", verb, c)...)
	}
	_, _ = f.Write(buf)
}

// CardFormatter wraps formatting a slice of cards, so `go vet` can check the
// format verbs used with a slice the same way as with a single [Card].
type CardFormatter []Card

// Format satisfies the [fmt.Formatter] interface.
func (v CardFormatter) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte{'['})
	for i, c := range v {
		if i != 0 {
			_, _ = f.Write([]byte{' '})
		}
		c.Format(f, verb)
	}
	_, _ = f.Write([]byte{']'})
}

// Unicode card runes.
const (
	UnicodeSpadeAce     rune = '🂡'
	UnicodeHeartAce     rune = '🂱'
	UnicodeDiamondAce   rune = '🃁'
	UnicodeClubAce      rune = '🃑'
	UnicodeSpadeBlack   rune = '♠'
	UnicodeSpadeWhite   rune = '♤'
	UnicodeHeartBlack   rune = '♥'
	UnicodeHeartWhite   rune = '♡'
	UnicodeDiamondBlack rune = '♦'
	UnicodeDiamondWhite rune = '♢'
	UnicodeClubBlack    rune = '♣'
	UnicodeClubWhite    rune = '♧'
)

// runeCardRank converts the unicode rune offset to a card rank.
func runeCardRank(rank, ace rune) Rank {
	r := Rank(rank - ace)
	switch {
	case r == 0:
		return Ace
	case 11 <= r:
		return r - 2
	}
	return r - 1
}

func init() {
	s, h, d, c := make([]rune, 14), make([]rune, 14), make([]rune, 14), make([]rune, 14)
	for i := 0; i < 14; i++ {
		s[i] = UnicodeSpadeAce + rune(i)
		h[i] = UnicodeHeartAce + rune(i)
		d[i] = UnicodeDiamondAce + rune(i)
		c[i] = UnicodeClubAce + rune(i)
	}
	rangeS = newRangeTable(s...)
	rangeH = newRangeTable(h...)
	rangeD = newRangeTable(d...)
	rangeC = newRangeTable(c...)
	a := make([]rune, 0, 14*4)
	a = append(a, s...)
	a = append(a, h...)
	a = append(a, d...)
	a = append(a, c...)
	rangeA = newRangeTable(a...)
}

var (
	rangeS *unicode.RangeTable // spades
	rangeH *unicode.RangeTable // hearts
	rangeD *unicode.RangeTable // diamonds
	rangeC *unicode.RangeTable // clubs
	rangeA *unicode.RangeTable // all
)

// newRangeTable creates a range table for the passed runes.
func newRangeTable(r ...rune) *unicode.RangeTable {
	if len(r) == 0 {
		return &unicode.RangeTable{}
	}
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	k := 1
	for i := 1; i < len(r); i++ {
		if r[k-1] != r[i] {
			r[k] = r[i]
			k++
		}
	}
	rt := new(unicode.RangeTable)
	for _, r := range r[:k] {
		if r <= 0xFFFF {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(r), Hi: uint16(r), Stride: 1})
		} else {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(r), Hi: uint32(r), Stride: 1})
		}
	}
	return rt
}
