package engine

import "github.com/sorapuyo/ghoti/internal/puyo"

// node is either a frontierNode (survives into the next beam ply, scored by
// the evaluator) or an ignitionNode (a visible-horizon plan that ignited a
// chain, scored by its own chain score and held for the fire gate). Two
// tagged variants behind one interface, not a single struct with an
// optional field, since the two kinds are scored and consumed completely
// differently downstream.
type node interface {
	isNode()
	decisions() []puyo.Decision
}

// frontierNode is a beam-search survivor: a candidate sequence of decisions
// so far, the field it leads to, and the evaluator's score for that field.
type frontierNode struct {
	plan  puyo.Plan
	dec   []puyo.Decision
	eval  int32
	frame int
}

func (frontierNode) isNode()                     {}
func (n frontierNode) decisions() []puyo.Decision { return n.dec }

// ignitionNode is a plan, found within the visible tumo window, that
// ignites a chain. Its eval is the chain's own score, not an evaluator
// estimate, and it is only ever considered by the fire gate.
type ignitionNode struct {
	plan  puyo.Plan
	dec   []puyo.Decision
	eval  int32
	frame int
}

func (ignitionNode) isNode()                     {}
func (n ignitionNode) decisions() []puyo.Decision { return n.dec }

// ojamaProduced estimates the ojama this ignition would send, from its
// chain's score at the standard 70-points-per-ojama conversion rate.
func (n ignitionNode) ojamaProduced() int {
	return n.plan.Rensa.Score / 70
}
