// Package match runs the event-driven 2P (and solo 1P) simulation that
// pits two internal/engine-driven AIs against each other over a shared
// tumo sequence, with garbage commit/absorb bookkeeping.
package match

import (
	"math/rand"

	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// defaultVisibleWindow is how many upcoming tumos a player can see when
// newPlayerState is given a non-positive window.
const defaultVisibleWindow = 3

// maxOjamaPerCommit caps a single garbage drop, matching the original's
// "ojama up to 30 per commit" ceiling.
const maxOjamaPerCommit = 30

// PlayerState is one side of a match: the live engine.State the AI reasons
// over, plus the bookkeeping the simulator needs that the decision engine
// itself doesn't care about (the full shared tumo sequence, garbage debts,
// and whether this side has already died).
type PlayerState struct {
	engine.State

	FullSequence  []puyo.Kumipuyo
	TumoIndex     int
	VisibleWindow int
	Dead          bool
	DeadAtFrame   int

	// TotalScore is the running sum of every chain's score this match.
	TotalScore int
	// LastPlacementFrame/LastRensa describe the most recently resolved
	// drop, used to tell the opponent's fire gate whether this player's
	// chain is still "in flight" as of a given simulation clock value.
	LastPlacementFrame int
	LastRensa          puyo.RensaResult
}

// newPlayerState builds a fresh player sharing seq, with the board empty
// and the visible window primed from the start of the sequence.
func newPlayerState(seq []puyo.Kumipuyo, visibleWindow int) *PlayerState {
	if visibleWindow <= 0 {
		visibleWindow = defaultVisibleWindow
	}
	p := &PlayerState{
		State: engine.State{
			Field: puyo.NewField(),
		},
		FullSequence:  seq,
		VisibleWindow: visibleWindow,
	}
	p.refreshVisible()
	return p
}

// refreshVisible recomputes the AI-visible tumo window from TumoIndex.
func (p *PlayerState) refreshVisible() {
	end := p.TumoIndex + p.VisibleWindow
	if end > len(p.FullSequence) {
		end = len(p.FullSequence)
	}
	if p.TumoIndex >= len(p.FullSequence) {
		p.Tumos = nil
		return
	}
	p.Tumos = p.FullSequence[p.TumoIndex:end]
}

// currentTumo is the piece about to be placed.
func (p *PlayerState) currentTumo() puyo.Kumipuyo {
	return p.FullSequence[p.TumoIndex]
}

// absorbPendingOjama drops up to maxOjamaPerCommit queued garbage cells
// into the field, distributing full rows first and a random residual
// across the rest, and returns how many cells were dropped.
func (p *PlayerState) absorbPendingOjama(rng *rand.Rand) int {
	if p.PendingOjama <= 0 {
		return 0
	}
	n := p.PendingOjama
	if n > maxOjamaPerCommit {
		n = maxOjamaPerCommit
	}
	dropped := p.Field.DropOjama(n, rng)
	p.PendingOjama -= dropped
	return dropped
}
