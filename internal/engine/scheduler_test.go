package engine

import (
	"testing"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

func TestSchedulerThinkReturnsALegalDecision(t *testing.T) {
	s := &Scheduler{Weights: evaluator.Default()}
	state := State{
		Field: puyo.NewField(),
		Tumos: []puyo.Kumipuyo{puyo.NewKumipuyo(puyo.Red, puyo.Blue)},
		Frame: 0,
	}
	fg := &FireGate{Frame: 0}

	decisions := s.Think(state, fg, 10)
	if len(decisions) == 0 {
		t.Fatal("expected Think to return at least one decision")
	}
	if !decisionIsValid(decisions[0]) {
		t.Fatalf("expected a valid first decision, got %+v", decisions[0])
	}
}

func decisionIsValid(d puyo.Decision) bool {
	for _, v := range puyo.AllValidDecisions() {
		if v == d {
			return true
		}
	}
	return false
}

func TestPluralityVoteTiesBreakByEnumerationOrder(t *testing.T) {
	a := puyo.NewDecision(1, 0)
	b := puyo.NewDecision(2, 0)
	results := []beamResult{
		{Decisions: []puyo.Decision{a}},
		{Decisions: []puyo.Decision{b}},
	}
	got := pluralityVote(results)
	if len(got) == 0 || got[0] != a {
		t.Fatalf("expected the earlier-enumerated decision %+v to win the tie, got %+v", a, got)
	}
}
