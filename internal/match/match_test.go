package match

import (
	"math/rand"
	"testing"

	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// firstMoveAI always takes the first enumerated decision for the current
// tumo. It exists so match-loop tests don't have to pay for a real beam
// search worker pool.
type firstMoveAI struct{}

func (firstMoveAI) Think(state engine.State, fg *engine.FireGate, thinkFrame int) []puyo.Decision {
	if len(state.Tumos) == 0 {
		return nil
	}
	plans := puyo.IterateAvailablePlans(state.Field, state.Tumos[:1], 1)
	if len(plans) == 0 {
		return []puyo.Decision{puyo.NewDecision(puyo.StartColumn, 0)}
	}
	return plans[0].Decisions
}

func longSequence(n int) []puyo.Kumipuyo {
	rng := rand.New(rand.NewSource(7))
	return puyo.GenerateRandomSequence(rng, n)
}

func TestRun1PStopsAtMaxTumos(t *testing.T) {
	seq := longSequence(40)
	result := Run1P(firstMoveAI{}, seq, 3, 20, nil)
	if result.TumosPlayed != 20 {
		t.Fatalf("expected 20 tumos played, got %d", result.TumosPlayed)
	}
	if len(result.Decisions) != 20 {
		t.Fatalf("expected 20 recorded decisions, got %d", len(result.Decisions))
	}
}

func TestRun1PStopsOnRequiredChainScore(t *testing.T) {
	seq := longSequence(40)
	gate := 1
	result := Run1P(firstMoveAI{}, seq, 3, 40, &gate)
	if !result.ScoreGateHit {
		t.Fatalf("expected the score gate to trigger with a threshold of 1")
	}
}

func TestRun2PEndsWithAWinnerOrADraw(t *testing.T) {
	seq := longSequence(200)
	ais := [2]AI{firstMoveAI{}, firstMoveAI{}}
	rng := rand.New(rand.NewSource(11))

	result := Run2P(seq, ais, 3, rng, nil)
	if result.Winner < -1 || result.Winner > 1 {
		t.Fatalf("winner out of range: %d", result.Winner)
	}
	if result.Frame <= 0 {
		t.Fatalf("expected the match to advance past frame 0, got %d", result.Frame)
	}
}

func TestBuildFireGateReflectsOpponentChainInFlight(t *testing.T) {
	me := newPlayerState(longSequence(5), 3)
	opp := newPlayerState(longSequence(5), 3)
	opp.LastPlacementFrame = 100
	opp.LastRensa = puyo.RensaResult{Chain: 4, Score: 1000, Frames: 50}

	fg := buildFireGate(me, opp, 120)
	if !fg.TwoP.Chaining {
		t.Fatalf("expected opponent to still be chaining at frame 120 (ends at 150)")
	}

	fg2 := buildFireGate(me, opp, 200)
	if fg2.TwoP.Chaining {
		t.Fatalf("expected opponent's chain to have settled by frame 200")
	}
}
