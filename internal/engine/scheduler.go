package engine

import (
	"math/rand"
	"sync"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// BeamDepth is a think budget bucket (spec §4.F), a (Depth, Width) pair:
// which pair applies is chosen by thinkBucket from the think-frame budget.
type BeamDepth struct {
	Depth, Width int
}

// thinkBucket maps a think-frame budget to (depth, width), widening the
// search the more frames are available before the piece must drop.
func thinkBucket(thinkFrame int) BeamDepth {
	switch {
	case thinkFrame <= 2:
		return BeamDepth{Depth: 20, Width: 20}
	case thinkFrame <= 8:
		return BeamDepth{Depth: 30, Width: 60}
	default:
		return BeamDepth{Depth: 40, Width: 140}
	}
}

// parallelWorkers is the fixed fan-out for each Think call when the visible
// tumo window doesn't already cover the full search depth (sampling future
// tumos is then pointless — every worker would see the same truth).
const parallelWorkers = 20

// Scheduler runs the N-way parallel beam rollout and picks one decision
// list from it, mirroring Engine.SearchWithLimits's channel/WaitGroup
// shape: no cancellation mid-rollout, fire-first-wins, and stragglers'
// results are discarded once a firing result has been returned.
//
// Depth, Width, and Workers override the think-frame-derived defaults when
// non-zero. The GA tuner's self-play matches need a cheaper, fixed search
// (ga_tuning_2p.rs's `--beam-depth`/`--beam-width`/`--beam-parallel` flags
// construct each contestant's AI with an explicit budget rather than the
// production think-bucket schedule) so a generation of pairwise matches
// finishes in a reasonable time.
type Scheduler struct {
	Weights evaluator.Weights

	Depth, Width, Workers int
}

// Think chooses the next decision sequence for state, given an optional
// opponent snapshot and the current think-frame budget.
func (s *Scheduler) Think(state State, fg *FireGate, thinkFrame int) []puyo.Decision {
	bucket := thinkBucket(thinkFrame)
	if s.Depth > 0 {
		bucket.Depth = s.Depth
	}
	if s.Width > 0 {
		bucket.Width = s.Width
	}

	n := parallelWorkers
	if s.Workers > 0 {
		n = s.Workers
	}
	if len(state.Tumos) >= bucket.Depth {
		n = 1
	}

	resultCh := make(chan beamResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		seed := int64(i)*0x9E3779B97F4A7C15 + int64(thinkFrame) + 1
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			resultCh <- beamWorker(rng, state, fg, s.Weights, bucket.Depth, bucket.Width)
		}(seed)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(resultCh)
		close(done)
	}()

	var results []beamResult
	for r := range resultCh {
		results = append(results, r)
		if r.Fired {
			// Fire decisions are expected to agree across workers; return to
			// the caller immediately rather than waiting out the stragglers.
			// resultCh is buffered to n, so their sends land without a
			// receiver and wg.Wait() still unblocks them to exit cleanly.
			return r.Decisions
		}
	}
	<-done

	return pluralityVote(results)
}

// pluralityVote tallies non-fire results by first decision and returns the
// decision list of the plurality winner, ties broken by enumeration order
// over AllValidDecisions.
func pluralityVote(results []beamResult) []puyo.Decision {
	if len(results) == 0 {
		return muriDecision
	}

	votes := make(map[puyo.Decision]int)
	byFirst := make(map[puyo.Decision][]puyo.Decision)
	for _, r := range results {
		if len(r.Decisions) == 0 {
			continue
		}
		first := r.Decisions[0]
		votes[first]++
		if _, ok := byFirst[first]; !ok {
			byFirst[first] = r.Decisions
		}
	}
	if len(votes) == 0 {
		return muriDecision
	}

	order := puyo.AllValidDecisions()
	best := -1
	var bestDecision puyo.Decision
	for _, d := range order {
		if v, ok := votes[d]; ok && v > best {
			best = v
			bestDecision = d
		}
	}
	if best < 0 {
		return muriDecision
	}
	return byFirst[bestDecision]
}
