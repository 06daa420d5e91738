package engine

import "github.com/sorapuyo/ghoti/internal/puyo"

// State is one player's live position: the board, the visible (known)
// upcoming tumo sequence, the player's current frame clock, and its queued
// scoring carry-over (points from an in-progress chain not yet converted to
// ojama). internal/match.PlayerState wraps this for the 2P simulator; the
// standalone CLI driver builds one directly for 1P play.
type State struct {
	Field      *puyo.Field
	Tumos      []puyo.Kumipuyo
	Frame      int
	CarryOver  int
	PendingOjama int // ojama already queued against this player, not yet dropped
	OwedOjama    int // ojama this player currently owes the opponent
}

// TwoPContext is the opponent snapshot the fire gate and beam search worker
// consult: whether the opponent is mid-chain, that chain's own result, the
// opponent's field (for harassment/buried-opponent checks), and the
// opponent's own potential-chain menu (for counter-fire and saturation
// comparisons).
type TwoPContext struct {
	Chaining   bool
	Rensa      puyo.RensaResult
	Frame      int
	Field      *puyo.Field
	Potentials []puyo.IgnitionCandidate
}

// maxPotentialScore returns the highest score among the opponent's
// potential chains, or 0 if there are none.
func (c *TwoPContext) maxPotentialScore() int {
	best := 0
	for _, p := range c.Potentials {
		if p.Rensa.Score > best {
			best = p.Rensa.Score
		}
	}
	return best
}
