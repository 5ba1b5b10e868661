package holdem

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
)

// Phase is a table's position in the hand lifecycle.
type Phase int

// Phases, in lifecycle order.
const (
	PhaseNewHand Phase = iota
	PhaseShuffleNewDeck
	PhaseForcedBets
	PhaseDealHoleCards
	PhaseBettingPreFlop
	PhaseDealFlop
	PhaseBettingFlop
	PhaseDealTurn
	PhaseBettingTurn
	PhaseDealRiver
	PhaseBettingRiver
	PhaseShowdown
)

// String satisfies the [fmt.Stringer] interface.
func (p Phase) String() string {
	switch p {
	case PhaseNewHand:
		return "NewHand"
	case PhaseShuffleNewDeck:
		return "ShuffleNewDeck"
	case PhaseForcedBets:
		return "ForcedBets"
	case PhaseDealHoleCards:
		return "DealHoleCards"
	case PhaseBettingPreFlop:
		return "BettingPreFlop"
	case PhaseDealFlop:
		return "DealFlop"
	case PhaseBettingFlop:
		return "BettingFlop"
	case PhaseDealTurn:
		return "DealTurn"
	case PhaseBettingTurn:
		return "BettingTurn"
	case PhaseDealRiver:
		return "DealRiver"
	case PhaseBettingRiver:
		return "BettingRiver"
	case PhaseShowdown:
		return "Showdown"
	}
	return "Unknown"
}

// EventKind tags an [Event]'s meaning.
type EventKind int

// Event kinds, matching spec.md §4.6's append-only event log.
const (
	EventTableOpen EventKind = iota
	EventPlayerSeated
	EventNewHand
	EventShuffleDeck
	EventSetButton
	EventMoveButton
	EventForcedBetSmallBlind
	EventForcedBetBigBlind
	EventDealt
	EventDealtFlop
	EventDealtTurn
	EventDealtRiver
	EventActionTo
	EventCheck
	EventBet
	EventCall
	EventRaise
	EventAllIn
	EventFold
	EventMuckCards
	EventBringItIn
	EventPlayerWins
	EventPlayerLoses
	EventErrorLogged
	EventDeckPassesAudit
)

// Event is one append-only record in a table's audit log.
type Event struct {
	Kind   EventKind
	Seat   int
	Amount int
	Bard   Bard
	Err    error
	Note   string
}

// Table is a live No-Limit Hold'em table: the seat ring, shared card cells,
// pot, betting parameters, phase, and event log. Seats never hold a
// back-reference to the table; event records flow one-directionally from
// seat/betting operations into the table's log, owned exclusively by the
// table (resolving the cyclic-reference pattern the source exhibits).
type Table struct {
	mu sync.Mutex // guards transitions; readers use the seats'/cells' own locks

	Seats      []*Seat
	Button     int
	Deck       *CardsCell
	Board      *CardsCell
	Muck       *CardsCell
	Pot        int
	CurrentBet int
	LastRaise  int
	// Contributions[i] is the total chips seat i has committed this hand,
	// across every street — the ledger [ComputeSidePots] layers against.
	// Unlike Pot (which only reflects chips already swept off the felt by
	// [Table.BringItIn] or forfeited by a fold), this tracks commitments as they happen so side
	// pots can be computed correctly even mid-street, e.g. right after an
	// all-in.
	Contributions []int
	SmallBlind    int
	BigBlind      int
	Phase         Phase
	Burn          bool // whether this table burns a card before flop/turn/river
	// ActingIndex is the seat index whose turn it currently is, or -1 if the
	// round is complete. Set to the street's first-to-act seat whenever a
	// betting round begins ([Table.PostForcedBets], [Table.DealFlop]/
	// [Table.DealTurn]/[Table.DealRiver]), and advanced by [Table.Act].
	ActingIndex int
	// HandsPlayed counts completed calls to [Table.StartNewHand]; the button
	// only advances from the second hand onward.
	HandsPlayed int

	Rand *rand.Rand

	events []Event
	log    *logrus.Entry
}

// NewTable creates a table for the given seats (owner names with starting
// chip stacks), button position, and blind sizes. burn selects whether the
// table burns a card before each of flop/turn/river (spec.md declares this
// optional-but-must-be-consistent; callers should not flip it mid-session).
func NewTable(owners []string, chips []int, button, smallBlind, bigBlind int, burn bool, r *rand.Rand) *Table {
	if len(owners) != len(chips) {
		panic("holdem: owners and chips must be the same length")
	}
	seats := make([]*Seat, len(owners))
	for i, owner := range owners {
		seats[i] = NewSeat(i, owner, chips[i])
	}
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	t := &Table{
		Seats:      seats,
		Button:     button % len(seats),
		Deck:       NewCardsCell(Deck()),
		Board:      NewCardsCell(nil),
		Muck:       NewCardsCell(nil),
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Phase:      PhaseNewHand,
		Burn:       burn,
		Rand:       r,
		log:        logrus.WithField("component", "table"),
	}
	t.append(Event{Kind: EventTableOpen, Note: "table opened"})
	for _, s := range seats {
		t.append(Event{Kind: EventPlayerSeated, Seat: s.Number, Note: s.Owner})
	}
	t.append(Event{Kind: EventSetButton, Seat: t.Button})
	return t
}

// append adds ev to the event log. The log append happens-before the
// mutation's externally observable effect: callers invoke append before
// returning from the method that performed the mutation, but after the
// mutation itself, so that a reader observing the new state is guaranteed
// to also observe the preceding event.
func (t *Table) append(ev Event) {
	t.events = append(t.events, ev)
	t.log.WithFields(logrus.Fields{"kind": ev.Kind, "seat": ev.Seat, "amount": ev.Amount}).Debug(ev.Note)
}

// Events returns the table's event log. The returned slice must not be
// mutated by the caller.
func (t *Table) Events() []Event {
	return t.events
}

// TotalChips returns the sum of every seat's chips, bets, and the pot —
// the invariant that must be conserved across every transition.
func (t *Table) TotalChips() int {
	total := t.Pot
	for _, s := range t.Seats {
		total += s.Chips + s.State.Amount()
	}
	return total
}

// StartNewHand resets the table to begin a new hand: moves the button,
// clears board/muck, and transitions to [PhaseShuffleNewDeck].
func (t *Table) StartNewHand() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Phase != PhaseNewHand && t.Phase != PhaseShowdown {
		panic("holdem: StartNewHand called outside NewHand/Showdown phase")
	}
	if t.HandsPlayed > 0 {
		t.Button = (t.Button + 1) % len(t.Seats)
		t.append(Event{Kind: EventMoveButton, Seat: t.Button})
	}
	t.HandsPlayed++
	t.Board.Set(NewCards())
	t.Muck.Set(NewCards())
	t.Pot, t.CurrentBet, t.LastRaise = 0, 0, 0
	t.Contributions = make([]int, len(t.Seats))
	for _, s := range t.Seats {
		s.Cards.Set(NewCards())
		if s.Chips <= 0 {
			s.State = NewPlayerState(Out, 0)
		} else {
			s.State = NewPlayerState(YetToAct, 0)
		}
	}
	t.append(Event{Kind: EventNewHand})
	t.Phase = PhaseShuffleNewDeck
}

// ShuffleDeck shuffles a fresh 52-card deck into the table's deck cell
// using the table's injected RNG, and advances to [PhaseForcedBets].
func (t *Table) ShuffleDeck() {
	t.mu.Lock()
	defer t.mu.Unlock()
	shuffled := Deck().ShuffleRand(t.Rand)
	t.Deck.Set(shuffled)
	t.append(Event{Kind: EventShuffleDeck})
	t.Phase = PhaseForcedBets
}

// activeSeatCount returns how many seats can still act this hand (not Out).
func (t *Table) activeSeatCount() int {
	n := 0
	for _, s := range t.Seats {
		if s.State.Kind != Out {
			n++
		}
	}
	return n
}

// PostForcedBets posts the small and big blinds, applying the heads-up
// special case via [SmallBlindIndex]/[BigBlindIndex], and advances to
// [PhaseDealHoleCards].
func (t *Table) PostForcedBets() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.Seats)
	sbIdx, bbIdx := SmallBlindIndex(n, t.Button), BigBlindIndex(n, t.Button)
	sb, bb := t.Seats[sbIdx], t.Seats[bbIdx]
	sbAmt := min(t.SmallBlind, sb.Chips)
	if err := sb.CommitToPot(sbAmt, NewPlayerState(Blind, sbAmt)); err != nil {
		return err
	}
	t.Contributions[sbIdx] += sbAmt
	t.append(Event{Kind: EventForcedBetSmallBlind, Seat: sbIdx, Amount: sbAmt})
	bbAmt := min(t.BigBlind, bb.Chips)
	if err := bb.CommitToPot(bbAmt, NewPlayerState(Blind, bbAmt)); err != nil {
		return err
	}
	t.Contributions[bbIdx] += bbAmt
	t.append(Event{Kind: EventForcedBetBigBlind, Seat: bbIdx, Amount: bbAmt})
	t.CurrentBet = bbAmt
	t.LastRaise = t.BigBlind
	t.ActingIndex = FirstToActIndex(n, t.Button, true)
	t.Phase = PhaseDealHoleCards
	return nil
}

// DealHoleCards deals two hole cards to every active seat, one card per
// seat per cycle, starting from the small blind and wrapping — per
// spec.md §4.6, this order is observable and reproducible for a given RNG
// seed. Advances to [PhaseBettingPreFlop].
func (t *Table) DealHoleCards() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.Seats)
	start := SmallBlindIndex(n, t.Button)
	for round := 0; round < 2; round++ {
		for i := 0; i < n; i++ {
			idx := (start + i) % n
			s := t.Seats[idx]
			if s.State.Kind == Out {
				continue
			}
			cards, err := t.Deck.Draw(1)
			if err != nil {
				return err
			}
			if err := s.Deal(cards[0]); err != nil {
				return err
			}
			t.append(Event{Kind: EventDealt, Seat: idx, Bard: BardFromCard(cards[0])})
		}
	}
	t.Phase = PhaseBettingPreFlop
	return nil
}

// dealBoard burns (if enabled) and draws n cards onto the board.
func (t *Table) dealBoard(n int, kind EventKind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Burn {
		burned, err := t.Deck.Draw(1)
		if err != nil {
			return err
		}
		if err := t.Muck.Insert(burned[0]); err != nil {
			return err
		}
	}
	cards, err := t.Deck.Draw(n)
	if err != nil {
		return err
	}
	t.Board.With(func(c *Cards) {
		for _, card := range cards {
			_ = c.Insert(card)
		}
	})
	t.append(Event{Kind: kind, Bard: BardFromCards(cards)})
	return nil
}

// DealFlop burns (if enabled) and deals the three flop cards, advancing to
// [PhaseBettingFlop].
func (t *Table) DealFlop() error {
	if err := t.dealBoard(3, EventDealtFlop); err != nil {
		return err
	}
	t.mu.Lock()
	t.CurrentBet, t.LastRaise = 0, 0
	t.ActingIndex = FirstToActIndex(len(t.Seats), t.Button, false)
	t.Phase = PhaseBettingFlop
	t.mu.Unlock()
	return nil
}

// DealTurn burns (if enabled) and deals the turn card, advancing to
// [PhaseBettingTurn].
func (t *Table) DealTurn() error {
	if err := t.dealBoard(1, EventDealtTurn); err != nil {
		return err
	}
	t.mu.Lock()
	t.CurrentBet, t.LastRaise = 0, 0
	t.ActingIndex = FirstToActIndex(len(t.Seats), t.Button, false)
	t.Phase = PhaseBettingTurn
	t.mu.Unlock()
	return nil
}

// DealRiver burns (if enabled) and deals the river card, advancing to
// [PhaseBettingRiver].
func (t *Table) DealRiver() error {
	if err := t.dealBoard(1, EventDealtRiver); err != nil {
		return err
	}
	t.mu.Lock()
	t.CurrentBet, t.LastRaise = 0, 0
	t.ActingIndex = FirstToActIndex(len(t.Seats), t.Button, false)
	t.Phase = PhaseBettingRiver
	t.mu.Unlock()
	return nil
}

// IsBettingComplete reports whether the current betting round is finished.
func (t *Table) IsBettingComplete() bool {
	return IsBettingComplete(t.Seats, t.CurrentBet)
}

// NextToAct returns the seat index owed an action, walking from
// [Table.ActingIndex] (the seat whose turn it currently is), or -1 if the
// round is complete.
func (t *Table) NextToAct() int {
	if t.ActingIndex < 0 {
		return -1
	}
	return NextToAct(t.Seats, t.ActingIndex, t.CurrentBet)
}

// Act applies a player action to seat idx, enforcing the legality matrix
// via [PlayerState.CanGivenAgainst]. On success, appends the matching
// event and updates the table's current bet / last raise tracking.
func (t *Table) Act(idx int, next PlayerState) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx != t.ActingIndex {
		return ErrInvalidTableAction
	}
	s := t.Seats[idx]
	if !s.State.Active() {
		return ErrPlayerOutOfHand
	}
	if !s.State.CanGivenAgainst(next, t.CurrentBet) {
		return ErrInvalidTableAction
	}
	delta := s.BetDelta(next)
	if next.Kind == Fold {
		// chips already in front of a folding seat stay in the pot
		t.Pot += s.State.Amount()
		delta = 0
	}
	if delta < 0 {
		return ErrInvalidTableAction
	}
	if err := s.CommitToPot(delta, next); err != nil {
		return err
	}
	t.Contributions[idx] += delta
	switch next.Kind {
	case Raise, ReRaise, Bet:
		t.LastRaise = next.Amount() - t.CurrentBet
		t.CurrentBet = next.Amount()
	case AllIn:
		if next.Amount() > t.CurrentBet {
			t.LastRaise = next.Amount() - t.CurrentBet
			t.CurrentBet = next.Amount()
		}
	}
	t.append(Event{Kind: eventKindFor(next.Kind), Seat: idx, Amount: next.Amount()})
	t.ActingIndex = NextToAct(t.Seats, (idx+1)%len(t.Seats), t.CurrentBet)
	return nil
}

func eventKindFor(k StateKind) EventKind {
	switch k {
	case Check:
		return EventCheck
	case Bet:
		return EventBet
	case Call:
		return EventCall
	case Raise, ReRaise:
		return EventRaise
	case AllIn:
		return EventAllIn
	case Fold:
		return EventFold
	}
	return EventErrorLogged
}

// BringItIn drains every seat's committed bet into the pot, resets
// non-folded/non-all-in seats to YetToAct, and returns the amount
// collected. Fails with [ErrActionIsntFinished] if betting is not complete.
func (t *Table) BringItIn() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !IsBettingComplete(t.Seats, t.CurrentBet) {
		return 0, ErrActionIsntFinished
	}
	collected := BringItIn(t.Seats, &t.Pot)
	t.append(Event{Kind: EventBringItIn, Amount: collected})
	return collected, nil
}

// AuditDeck verifies the deck-conservation invariant: the deck, every
// seat's hole cards, the board, and the muck together form a permutation of
// the 52-card deck (accounting for burns living in the muck).
func (t *Table) AuditDeck() bool {
	total := t.Deck.Len() + t.Board.Len() + t.Muck.Len()
	seen := t.Deck.Get().Bard() | t.Board.Get().Bard() | t.Muck.Get().Bard()
	for _, s := range t.Seats {
		total += s.Cards.Len()
		seen |= s.Cards.Get().Bard()
	}
	ok := total == 52 && seen.Count() == 52
	if ok {
		t.append(Event{Kind: EventDeckPassesAudit})
	}
	return ok
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
