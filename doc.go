// Package holdem implements the core mechanics of No-Limit Texas Hold'em:
// card and hand representation, the Cactus Kev hand evaluator, a table
// state machine covering forced bets through showdown with side-pot
// resolution, starting-hand range expressions, and exhaustive/parallel
// preflop equity calculation with a pluggable cache.
//
// The package has no notion of a network protocol, a UI, or a persistence
// format beyond the [OddsCache] interface; callers wire those in.
package holdem
