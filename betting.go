package holdem

// NextToAct walks the seat ring starting at from (inclusive), skipping
// folded/out/all-in seats, and returns the index of the first seat that
// still owes an action against currentBet (see [PlayerState.Owed]), or -1
// if none do (the round is complete).
func NextToAct(seats []*Seat, from, currentBet int) int {
	n := len(seats)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if seats[idx].State.Owed(currentBet) {
			return idx
		}
	}
	return -1
}

// IsBettingComplete reports whether every active, non-all-in seat has
// matched currentBet and no seat remains Blind or YetToAct.
func IsBettingComplete(seats []*Seat, currentBet int) bool {
	return NextToAct(seats, 0, currentBet) == -1
}

// UTGIndex returns the under-the-gun seat index for the given street:
// button+3 preflop (first to act after the blinds), button+1 postflop,
// both modulo the seat count. Heads-up is the exception handled by the
// caller via [HeadsUp]; this function implements the general N-seat rule.
func UTGIndex(seats int, button int, preflop bool) int {
	if preflop {
		return (button + 3) % seats
	}
	return (button + 1) % seats
}

// HeadsUp reports whether n seats constitutes a heads-up table, in which
// case the standard blind/action-order special case applies (button posts
// small blind and acts first preflop, last on every later street).
func HeadsUp(n int) bool {
	return n == 2
}

// SmallBlindIndex returns the small-blind seat index for the given button
// and seat count, applying the heads-up special case.
func SmallBlindIndex(seats, button int) int {
	if HeadsUp(seats) {
		return button
	}
	return (button + 1) % seats
}

// BigBlindIndex returns the big-blind seat index.
func BigBlindIndex(seats, button int) int {
	if HeadsUp(seats) {
		return (button + 1) % seats
	}
	return (button + 2) % seats
}

// FirstToActIndex returns the first seat to act for the given street,
// applying the heads-up special case (button acts first preflop, last
// postflop) and the general N-seat UTG rule otherwise.
func FirstToActIndex(seats, button int, preflop bool) int {
	if HeadsUp(seats) {
		if preflop {
			return button // small blind, acts first heads-up preflop
		}
		return (button + 1) % seats // big blind, acts first heads-up postflop
	}
	return UTGIndex(seats, button, preflop)
}

// BringItIn drains every active seat's current bet into pot, in seat order,
// and resets each non-folded, non-all-in seat's state to YetToAct for the
// next round. Returns the total amount collected. Implements spec.md
// §4.6's pot-collection step, to be called once [IsBettingComplete] holds.
func BringItIn(seats []*Seat, pot *int) int {
	collected := 0
	for _, s := range seats {
		amt := s.State.Amount()
		collected += amt
		*pot += amt
		switch s.State.Kind {
		case Fold, Out, AllIn:
			// stays as-is between rounds
		default:
			s.State = NewPlayerState(YetToAct, 0)
		}
	}
	return collected
}

// MinRaiseTo returns the minimum legal total amount a raise must reach,
// given the current outstanding bet, the size of the last raise increment,
// and the big blind (used as the increment's floor when no raise has
// occurred yet this round). Grounded on the standard "raise must be at
// least as large as the previous raise" no-limit rule.
func MinRaiseTo(currentBet, lastRaiseAmount, bigBlind int) int {
	inc := lastRaiseAmount
	if inc < bigBlind {
		inc = bigBlind
	}
	return currentBet + inc
}
