package engine

import (
	"testing"

	"github.com/sorapuyo/ghoti/internal/puyo"
)

func ignitionFor(rensa puyo.RensaResult, field *puyo.Field, frame int) ignitionNode {
	return ignitionNode{
		plan:  puyo.Plan{Field: field, Rensa: rensa, Fired: true},
		frame: frame,
	}
}

func TestFireGateEarlyZenkeshi(t *testing.T) {
	fg := &FireGate{Frame: 100}
	cand := ignitionFor(puyo.RensaResult{Chain: 2, Score: 400}, puyo.NewField(), 10)
	if !fg.Decide(cand) {
		t.Fatal("expected an early, low-chain zenkeshi clear to fire")
	}
}

func TestFireGateSoloThreshold(t *testing.T) {
	fg := &FireGate{Frame: 10_000}
	below := ignitionFor(puyo.RensaResult{Chain: 5, Score: 79_999}, puyo.FieldFromRows("RRRR.."), 10)
	if fg.Decide(below) {
		t.Fatal("expected a sub-80000 solo chain not to fire")
	}
	above := ignitionFor(puyo.RensaResult{Chain: 5, Score: 80_000}, puyo.FieldFromRows("RRRR.."), 10)
	if !fg.Decide(above) {
		t.Fatal("expected an 80000+ solo chain to fire")
	}
}

func TestFireGateOpponentChainingDeadline(t *testing.T) {
	fg := &FireGate{
		Frame: 0,
		TwoP: &TwoPContext{
			Chaining: true,
			Rensa:    puyo.RensaResult{Chain: 3, Score: 1000, Frames: 10},
			Frame:    0,
		},
	}
	// ignitionDeadline = 0 + 24 + 200 = 224 > chainEnd (0+10=10): must not fire.
	late := ignitionFor(puyo.RensaResult{Chain: 2, Score: 500}, puyo.FieldFromRows("RRRR.."), 200)
	if fg.Decide(late) {
		t.Fatal("expected a candidate that misses the opponent's chain-end deadline not to fire")
	}
}

func TestFireGateSaturationLeadership(t *testing.T) {
	fg := &FireGate{
		Frame: 10_000,
		TwoP: &TwoPContext{
			Field: puyo.FieldFromRows("RRRRRR"),
			Potentials: []puyo.IgnitionCandidate{
				{Rensa: puyo.RensaResult{Chain: 4, Score: 50_000}},
			},
		},
	}
	cand := ignitionFor(puyo.RensaResult{Chain: 8, Score: 110_000}, puyo.FieldFromRows("RRRR.."), 10)
	if !fg.Decide(cand) {
		t.Fatal("expected a dominant chain (110000 vs opponent's 50000 best) to fire")
	}

	fg2 := &FireGate{
		Frame: 10_000,
		TwoP: &TwoPContext{
			Field: puyo.FieldFromRows("RRRRRR"),
			Potentials: []puyo.IgnitionCandidate{
				{Rensa: puyo.RensaResult{Chain: 4, Score: 90_000}},
			},
		},
	}
	weak := ignitionFor(puyo.RensaResult{Chain: 4, Score: 85_000}, puyo.FieldFromRows("RRRR.."), 10)
	if fg2.Decide(weak) {
		t.Fatal("expected an 85000 chain against a stronger 90000 opponent threat not to fire")
	}
}
