package match

import (
	"math/rand"

	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// AI chooses a decision sequence for a player's current state, given the
// opponent snapshot the fire gate needs. Implemented by BeamSearchAI; the
// indirection lets the simulator and the GA tuner run weaker stand-ins
// (e.g. a fixed-depth search) in tests without pulling in the full beam
// search worker pool.
type AI interface {
	Think(state engine.State, fg *engine.FireGate, thinkFrame int) []puyo.Decision
}

// BeamSearchAI is the production AI: the parallel beam search scheduler
// tuned with a given weight vector.
type BeamSearchAI struct {
	Scheduler *engine.Scheduler
}

// NewBeamSearchAI builds a BeamSearchAI using weights as its evaluator and
// the production think-bucket schedule.
func NewBeamSearchAI(weights evaluator.Weights) *BeamSearchAI {
	return &BeamSearchAI{Scheduler: &engine.Scheduler{Weights: weights}}
}

// NewBeamSearchAICustom builds a BeamSearchAI with a fixed beam depth,
// width, and worker fan-out instead of the think-frame-derived schedule,
// mirroring BeamSearchAI::new_customize — used by the GA tuner to keep
// self-play matches cheap.
func NewBeamSearchAICustom(weights evaluator.Weights, depth, width, workers int) *BeamSearchAI {
	return &BeamSearchAI{Scheduler: &engine.Scheduler{Weights: weights, Depth: depth, Width: width, Workers: workers}}
}

// Think delegates to the scheduler.
func (a *BeamSearchAI) Think(state engine.State, fg *engine.FireGate, thinkFrame int) []puyo.Decision {
	return a.Scheduler.Think(state, fg, thinkFrame)
}

// Name matches BeamSearchAI::name, the same string cmd/ghoti-cli's
// --ai-1p/--ai-2p flags accept to select this AI.
func (a *BeamSearchAI) Name() string { return "BeamSearchAI" }

// RandomAI picks uniformly among the current tumo's single-piece
// placements, a cheap opponent stand-in for smoke-testing the simulator
// without paying for a real beam search.
type RandomAI struct {
	Rng *rand.Rand
}

// NewRandomAI builds a RandomAI seeded from rng.
func NewRandomAI(rng *rand.Rand) *RandomAI {
	return &RandomAI{Rng: rng}
}

// Name matches RandomAI::name.
func (a *RandomAI) Name() string { return "RandomAI" }

// Think ignores fg entirely and picks a uniformly random legal placement
// for the next tumo.
func (a *RandomAI) Think(state engine.State, fg *engine.FireGate, thinkFrame int) []puyo.Decision {
	if len(state.Tumos) == 0 {
		return nil
	}
	plans := puyo.IterateAvailablePlans(state.Field, state.Tumos[:1], 1)
	if len(plans) == 0 {
		return []puyo.Decision{puyo.NewDecision(puyo.StartColumn, 0)}
	}
	return plans[a.Rng.Intn(len(plans))].Decisions
}
