package engine

import "github.com/sorapuyo/ghoti/internal/puyo"

// ojamaPerPoint is the standard conversion rate: 70 score points become one
// ojama puyo.
const ojamaPerPoint = 70

// framesPerSecond60 is the beam search worker's frame clock unit.
const framesPerSecond60 = 60

// FireGate decides whether a candidate ignition should be taken now, rather
// than folded back into the frontier for a possibly-bigger chain later. It
// captures the 1P state at search start plus the opponent's pre-computed
// snapshot, and runs the rule cascade from the beam search worker's
// think loop: first matching rule wins, later rules only run if no earlier
// one decided.
type FireGate struct {
	Frame     int
	CarryOver int

	// SelfPendingOjama is ojama already queued against the 1P side but not
	// yet dropped; SelfOwedOjama is ojama the 1P side currently owes the
	// opponent that would offset an incoming debt.
	SelfPendingOjama int
	SelfOwedOjama    int

	TwoP *TwoPContext // nil for solo play
}

// Decide runs the cascade for one ignition candidate.
func (fg *FireGate) Decide(cand ignitionNode) bool {
	// Rule 1: early zenkeshi opener, solo or not.
	if fg.Frame <= 12*framesPerSecond60 && cand.plan.Rensa.Chain <= 3 && cand.plan.Field.IsZenkeshi() {
		return true
	}

	if fg.TwoP == nil {
		// Rule 6: solo play.
		return cand.plan.Rensa.Score >= 80_000
	}

	if fg.TwoP.Chaining {
		// Rule 2: an opponent already mid-chain sets a hard deadline.
		ignitionDeadline := fg.Frame + 24 + cand.frame
		chainEnd := fg.TwoP.Frame + fg.TwoP.Rensa.Frames
		if ignitionDeadline > chainEnd {
			return false
		}
	} else if fg.decideHarassmentOrBuried(cand) {
		// Rule 3.
		return true
	}

	if decided, fire := fg.decideAbsorptionCounter(cand); decided {
		// Rule 4.
		return fire
	}

	// Rule 5: saturation leadership, the catch-all.
	return fg.decideSaturation(cand)
}

// decideHarassmentOrBuried implements rule 3's two sub-cases: an
// opponent whose field is flat and defenceless, or one whose stack is
// mostly buried under garbage.
func (fg *FireGate) decideHarassmentOrBuried(cand ignitionNode) bool {
	effective := cand.plan.Rensa.Score + fg.CarryOver
	chain := cand.plan.Rensa.Chain

	if isFlatField(fg.TwoP.Field) && minHeight(fg.TwoP.Field, 2, 6) >= 2 && !hasCounter(fg.TwoP.Potentials, 6, effective) {
		if (chain == 1 && effective >= 9*ojamaPerPoint) || (chain <= 3 && effective >= 12*ojamaPerPoint) {
			return true
		}
	}

	active, minH := activePuyoSummary(fg.TwoP.Field)
	if active <= 20 && minH >= 6 {
		if (minH >= 9 && effective >= 3*ojamaPerPoint) || (chain <= 3 && effective >= 6*ojamaPerPoint) {
			return true
		}
	}
	return false
}

// decideAbsorptionCounter implements rule 4: whether the signed ojama
// balance forces or forbids firing now.
func (fg *FireGate) decideAbsorptionCounter(cand ignitionNode) (decided bool, fire bool) {
	// Ojama this candidate would need to answer for: self-owed debt, plus
	// the opponent's in-flight chain if it's already committed, minus what
	// the 1P side itself owes back (which would offset the incoming debt).
	signed := fg.SelfPendingOjama - fg.SelfOwedOjama
	if fg.TwoP.Chaining {
		signed += fg.TwoP.Rensa.Score / ojamaPerPoint
	}

	candOjama := cand.ojamaProduced()

	if signed > 0 {
		estimatedRows := signed / puyo.Width
		estimatedCol3Height := cand.plan.Field.Height(3) + estimatedRows
		if estimatedCol3Height >= puyo.Height-1 {
			return true, candOjama >= signed
		}
	}

	if signed >= 3 {
		if fg.TwoP.Rensa.Chain <= 3 {
			switch {
			case signed >= 24 && averageHeight(fg.TwoP.Field) >= 5:
				return true, candOjama+6 >= signed && candOjama <= signed+90
			case signed > 6:
				return true, candOjama+6 >= signed
			}
			return false, false
		}
		return true, candOjama >= signed
	}
	return false, false
}

// decideSaturation implements rule 5: fire once this chain clearly
// out-scores the opponent's best available answer, with a margin that
// shrinks as the candidate's own score grows.
func (fg *FireGate) decideSaturation(cand ignitionNode) bool {
	score := cand.plan.Rensa.Score
	if score < 80_000 {
		return false
	}
	h := fg.TwoP.maxPotentialScore()
	switch {
	case score >= 100_000 && h+10_000 <= score:
		return true
	case score >= 90_000 && h+20_000 <= score:
		return true
	case score >= 80_000 && h+30_000 <= score:
		return true
	default:
		return h <= score
	}
}

func isFlatField(f *puyo.Field) bool {
	min, max := f.Height(2), f.Height(2)
	for x := 2; x <= 6; x++ {
		h := f.Height(x)
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return max-min <= 1
}

func minHeight(f *puyo.Field, from, to int) int {
	min := f.Height(from)
	for x := from + 1; x <= to; x++ {
		if h := f.Height(x); h < min {
			min = h
		}
	}
	return min
}

func averageHeight(f *puyo.Field) int {
	total := 0
	for x := 1; x <= puyo.Width; x++ {
		total += f.Height(x)
	}
	return total / puyo.Width
}

// hasCounter reports whether the opponent holds any potential chain at or
// below maxChain scoring at least scoreFloor — a ready answer to the
// candidate that would make harassment pointless.
func hasCounter(potentials []puyo.IgnitionCandidate, maxChain, scoreFloor int) bool {
	for _, p := range potentials {
		if p.Rensa.Chain <= maxChain && p.Rensa.Score >= scoreFloor {
			return true
		}
	}
	return false
}

// activePuyoSummary scans every column top-down, counting puyos that are
// still "active" (reachable before a second separate run of garbage would
// bury them), and returns that count alongside the field's minimum column
// height.
func activePuyoSummary(f *puyo.Field) (active int, minH int) {
	minH = f.Height(1)
	for x := 1; x <= puyo.Width; x++ {
		h := f.Height(x)
		if h < minH {
			minH = h
		}

		ojamaRuns := 0
		inOjamaRun := false
		for y := h; y >= 1; y-- {
			c := f.Color(x, y)
			if c == puyo.Ojama {
				if !inOjamaRun {
					ojamaRuns++
					inOjamaRun = true
				}
				if ojamaRuns > 1 {
					break
				}
			} else {
				inOjamaRun = false
			}
			active++
		}
	}
	return active, minH
}
