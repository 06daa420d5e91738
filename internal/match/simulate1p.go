package match

import (
	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// Result1P is the outcome of one solo run: the accumulated score, every
// decision the AI actually took, and the reason play stopped.
type Result1P struct {
	Score         int
	Decisions     []puyo.Decision
	TumosPlayed   int
	Dead          bool
	ScoreGateHit  bool
}

// Run1P plays a single AI against a fixed tumo sequence with no opponent,
// stopping at maxTumos, a board death, or (if requiredChainScore is
// non-nil) the first chain scoring at least that many points. Grounded on
// simulate_1p.rs's single-player drive loop: think, drop, simulate, check
// the stop conditions, advance.
func Run1P(ai AI, seq []puyo.Kumipuyo, visibleWindow, maxTumos int, requiredChainScore *int) Result1P {
	player := newPlayerState(seq, visibleWindow)

	result := Result1P{}
	for i := 0; i < maxTumos && player.TumoIndex < len(seq); i++ {
		player.refreshVisible()
		fg := &engine.FireGate{Frame: player.Frame, CarryOver: player.CarryOver}
		decisions := ai.Think(player.State, fg, thinkFrameBudget)
		if len(decisions) == 0 {
			decisions = []puyo.Decision{puyo.NewDecision(puyo.StartColumn, 0)}
		}
		d := decisions[0]
		result.Decisions = append(result.Decisions, d)

		tumo := player.currentTumo()
		player.Field.DropKumipuyo(tumo, d)
		rensa := player.Field.Simulate()
		result.Score += rensa.Score
		result.TumosPlayed++

		if requiredChainScore != nil && rensa.Score >= *requiredChainScore {
			result.ScoreGateHit = true
			break
		}
		if player.Field.IsDead() {
			result.Dead = true
			break
		}
		player.TumoIndex++
	}
	return result
}
