package holdem

import "fmt"

// StateKind tags the variant of a [PlayerState].
type StateKind uint8

// Player state kinds.
const (
	YetToAct StateKind = iota
	Blind
	Check
	Bet
	Call
	Raise
	ReRaise
	AllIn
	Fold
	Out
)

// String satisfies the [fmt.Stringer] interface.
func (k StateKind) String() string {
	switch k {
	case YetToAct:
		return "YetToAct"
	case Blind:
		return "Blind"
	case Check:
		return "Check"
	case Bet:
		return "Bet"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case ReRaise:
		return "ReRaise"
	case AllIn:
		return "AllIn"
	case Fold:
		return "Fold"
	case Out:
		return "Out"
	}
	return "Unknown"
}

// PlayerState is a tagged variant over a seat's current action, carrying an
// amount payload for every variant except Fold/Out/YetToAct. Comparisons
// between states must go through [PlayerState.Amount], never compare the
// discriminant kinds as if they were ordered chip amounts.
type PlayerState struct {
	Kind   StateKind
	amount int
}

// NewPlayerState creates a [PlayerState] of the given kind and amount. The
// amount is ignored (forced to zero) for Fold, Out, and YetToAct.
func NewPlayerState(kind StateKind, amount int) PlayerState {
	switch kind {
	case Fold, Out, YetToAct:
		amount = 0
	}
	return PlayerState{Kind: kind, amount: amount}
}

// Amount is the state's chip-amount projection: the total this player has
// committed to the pot this betting round (0 for Fold/Out/YetToAct).
func (s PlayerState) Amount() int {
	return s.amount
}

// String satisfies the [fmt.Stringer] interface.
func (s PlayerState) String() string {
	switch s.Kind {
	case Fold, Out, YetToAct:
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", s.Kind, s.amount)
}

// Active reports whether the seat can still act or win the pot this hand
// (i.e. has not folded and is not sitting out).
func (s PlayerState) Active() bool {
	return s.Kind != Fold && s.Kind != Out
}

// Owed reports whether this state still owes an action given the current
// outstanding bet: it is Blind, YetToAct, or has committed less than bet.
func (s PlayerState) Owed(bet int) bool {
	switch s.Kind {
	case YetToAct, Blind:
		return true
	case Fold, Out, AllIn:
		return false
	default:
		return s.amount < bet
	}
}

// CanGiven reports whether transitioning from s to next is legal under the
// action legality matrix in spec.md §4.6, ignoring the opposing bet (see
// [PlayerState.CanGivenAgainst] for the stricter check used in practice).
func (s PlayerState) CanGiven(next PlayerState) bool {
	switch s.Kind {
	case YetToAct:
		return true
	case Blind:
		switch next.Kind {
		case Check:
			return next.amount == s.amount
		case Call:
			return next.amount > s.amount
		case Raise, ReRaise, Bet:
			return next.amount > s.amount
		case Fold, AllIn:
			return true
		}
		return false
	case Check, Bet:
		switch next.Kind {
		case Call, Raise, ReRaise, AllIn:
			return next.amount > s.amount
		case Fold:
			return true
		}
		return false
	case Call, Raise, ReRaise:
		switch next.Kind {
		case Call, ReRaise, AllIn:
			return next.amount > s.amount
		case Fold:
			return true
		}
		return false
	case AllIn, Fold, Out:
		return false
	}
	return false
}

// CanGivenAgainst reports whether transitioning from s to next is legal,
// additionally requiring that a non-fold action's amount is at least the
// opposing maximum outstanding bet.
func (s PlayerState) CanGivenAgainst(next PlayerState, maxBet int) bool {
	if !s.CanGiven(next) {
		return false
	}
	if next.Kind == Fold {
		return true
	}
	return next.amount >= maxBet
}

// Seat is one position at a [Table]: an owner handle, chip stack, current
// betting state, and a fixed-length hole-card slot (two for Hold'em).
type Seat struct {
	Owner  string
	Chips  int
	State  PlayerState
	Cards  *CardsCell
	Number int
}

// NewSeat creates an empty seat numbered n for owner with the given
// starting chip stack.
func NewSeat(n int, owner string, chips int) *Seat {
	return &Seat{
		Owner:  owner,
		Chips:  chips,
		State:  NewPlayerState(YetToAct, 0),
		Cards:  NewCardsCell(nil),
		Number: n,
	}
}

// Deal places card into the seat's hole-card slot. Fails with
// [ErrAlreadyDealt] if the slot already holds 2 cards (Hold'em's fixed
// hole-card count), or [ErrBlankCard] for a blank card.
func (s *Seat) Deal(card Card) error {
	if card.Blank() {
		return ErrBlankCard
	}
	if s.Cards.Len() >= 2 {
		return ErrAlreadyDealt
	}
	return s.Cards.Insert(card)
}

// CommitToPot moves amount from the seat's chip stack to its current bet,
// transitioning to next. Fails with [ErrInsufficientChips] if amount
// exceeds the seat's chips (callers are expected to cap amount at the
// seat's stack for an all-in beforehand).
func (s *Seat) CommitToPot(amount int, next PlayerState) error {
	if amount > s.Chips {
		return ErrInsufficientChips
	}
	s.Chips -= amount
	s.State = next
	return nil
}

// BetDelta returns the additional chips the seat must put in to reach
// next's amount, given its current state's amount.
func (s *Seat) BetDelta(next PlayerState) int {
	return next.Amount() - s.State.Amount()
}
