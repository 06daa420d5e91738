package kifu

import (
	"math/rand"
	"testing"
	"time"

	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/match"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

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

func TestMatchRecorderCapturesFramesAcrossRun2P(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seq := puyo.GenerateRandomSequence(rng, 200)
	ais := [2]match.AI{firstMoveAI{}, firstMoveAI{}}

	rec, finish := NewMatchRecorder()
	result := match.Run2P(seq, ais, 3, rng, rec)

	m := finish(result.Winner == 0, seq)
	if len(m.JsonEvents) == 0 {
		t.Fatal("expected at least one recorded frame")
	}
	if m.JsonEvents[0].Frame != 0 {
		t.Fatalf("expected the first event at frame 0, got %d", m.JsonEvents[0].Frame)
	}
	if len(m.Tumos) != len(seq) {
		t.Fatalf("expected %d encoded tumos, got %d", len(seq), len(m.Tumos))
	}

	out := NewSimulateResult2P(time.Unix(0, 0), 1, 0, 3, []Match{m})
	if out.JsonMatches[0].ID != m.ID {
		t.Fatal("expected the assembled result to carry the match through unchanged")
	}
}

func TestSimulateResult1PCarriesDecisionsAndScore(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	seq := puyo.GenerateRandomSequence(rng, 30)
	result := match.Run1P(firstMoveAI{}, seq, 3, 10, nil)

	out := NewSimulateResult1P(time.Unix(0, 0), result, seq, 3)
	if out.Score != result.Score {
		t.Fatalf("expected score %d, got %d", result.Score, out.Score)
	}
	if len(out.JsonDecisions) != len(result.Decisions) {
		t.Fatalf("expected %d decisions, got %d", len(result.Decisions), len(out.JsonDecisions))
	}
}
