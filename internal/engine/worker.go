package engine

import (
	"log"
	"math/rand"
	"sort"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// beamResult is what one beam search worker reports back to the scheduler.
type beamResult struct {
	Decisions []puyo.Decision
	Fired     bool
}

// muriDecision is returned when even the frontier's best survivor has no
// legal first placement (a dead board): drop the suicide piece into column
// 3 rather than stall.
var muriDecision = []puyo.Decision{puyo.NewDecision(3, 0)}

// beamWorker runs one independent Monte-Carlo beam search rollout (spec
// §4.D "think_single_thread"): extend the visible tumo sequence with random
// future pieces, widen-then-prune a beam of candidate plans ply by ply, and
// either fire an ignition the gate accepts or fall back to the best
// evaluated frontier survivor.
func beamWorker(rng *rand.Rand, state State, fg *FireGate, weights evaluator.Weights, depth, width int) beamResult {
	visible := len(state.Tumos)
	seq := make([]puyo.Kumipuyo, depth)
	copy(seq, state.Tumos)
	for i := visible; i < depth; i++ {
		seq[i] = randomKumipuyo(rng)
	}

	frontier := []frontierNode{{
		plan:  puyo.Plan{Field: state.Field},
		dec:   nil,
		eval:  0,
		frame: state.Frame,
	}}
	var ignitionPool []ignitionNode

	for ply := 0; ply < depth && ply < len(seq); ply++ {
		if ply > 0 && sameFirstDecision(frontier) {
			break
		}

		var next []frontierNode
		for _, parent := range frontier {
			plans := puyo.IterateAvailablePlans(parent.plan.Field, []puyo.Kumipuyo{seq[ply]}, 1)
			for _, p := range plans {
				dec := appendDecisions(parent.dec, p.Decisions)
				frame := parent.frame + p.Frames

				if ply < visible && p.Fired {
					ignitionPool = append(ignitionPool, ignitionNode{
						plan:  p,
						dec:   dec,
						eval:  int32(p.Rensa.Score),
						frame: frame,
					})
				}

				next = append(next, frontierNode{
					plan:  p,
					dec:   dec,
					eval:  evaluator.Evaluate(weights, p),
					frame: frame,
				})
			}
		}

		if len(next) == 0 {
			break
		}
		sort.Slice(next, func(i, j int) bool { return next[i].eval > next[j].eval })
		if len(next) > width {
			next = next[:width]
		}
		frontier = next
	}

	if best, ok := selectIgnition(ignitionPool, fg); ok {
		log.Printf("[beam] fire chain=%d score=%d", best.plan.Rensa.Chain, best.plan.Rensa.Score)
		return beamResult{Decisions: best.dec, Fired: true}
	}
	if len(frontier) > 0 && len(frontier[0].dec) > 0 {
		log.Printf("[beam] eval=%d", frontier[0].eval)
		return beamResult{Decisions: frontier[0].dec, Fired: false}
	}
	log.Printf("[beam] muri, no legal placement found")
	return beamResult{Decisions: muriDecision, Fired: false}
}

// selectIgnition returns the highest-scoring ignition candidate the fire
// gate accepts, if any.
func selectIgnition(pool []ignitionNode, fg *FireGate) (ignitionNode, bool) {
	var best ignitionNode
	found := false
	for _, cand := range pool {
		if !fg.Decide(cand) {
			continue
		}
		if !found || cand.eval > best.eval {
			best = cand
			found = true
		}
	}
	return best, found
}

func sameFirstDecision(frontier []frontierNode) bool {
	if len(frontier) == 0 {
		return false
	}
	first := frontier[0].dec
	if len(first) == 0 {
		return false
	}
	for _, n := range frontier[1:] {
		if len(n.dec) == 0 || n.dec[0] != first[0] {
			return false
		}
	}
	return true
}

func appendDecisions(prefix []puyo.Decision, more []puyo.Decision) []puyo.Decision {
	out := make([]puyo.Decision, 0, len(prefix)+len(more))
	out = append(out, prefix...)
	out = append(out, more...)
	return out
}

func randomKumipuyo(rng *rand.Rand) puyo.Kumipuyo {
	axis := puyo.NormalColors[rng.Intn(puyo.NumNormalColors)]
	child := puyo.NormalColors[rng.Intn(puyo.NumNormalColors)]
	return puyo.NewKumipuyo(axis, child)
}
