package match

import (
	"container/heap"
	"math/rand"

	"github.com/sorapuyo/ghoti/internal/engine"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// Result2P is the outcome of one 2P match: the winning player index (0 or
// 1), -1 for a simultaneous-death draw, the frame the match ended on, and
// each side's accumulated score.
type Result2P struct {
	Winner  int
	Frame   int
	Score0  int
	Score1  int
}

// thinkFrameBudget is a fixed stand-in for "frames available before this
// player's decision is due". A real-time driver would measure wall-clock
// latency against the frame clock; a pure simulation has no such latency,
// so every think call gets the scheduler's middle think bucket (depth 30,
// width 60) rather than re-deriving urgency from nothing.
const thinkFrameBudget = 5

// EventRecorder receives a snapshot of both players every time the match
// clock advances to a new board state, for kifu JSON export. Run2P calls it
// at the same points simulate_2p.rs's push_json_event! macro fires: the
// initial position and after every placement or garbage drop. A nil
// recorder disables capture entirely.
type EventRecorder interface {
	Record2P(frame int, p0, p1 *PlayerState)
}

// garbageDropFrames is how long dropping n ojama cells takes to settle.
func garbageDropFrames(n int) int {
	if n == 0 {
		return 0
	}
	return 2 + n/puyo.Width
}

// Run2P plays one match to a death (or a drawn simultaneous death, or
// running out of the shared tumo sequence) and reports the result. Event
// ordering, garbage commit/absorb, and the chain-resolves-as-one-event
// simplification follow spec.md §4.G; see DESIGN.md for where this
// collapses the original's per-chain-step event granularity into a single
// Simulate() call per drop.
func Run2P(seq []puyo.Kumipuyo, ais [2]AI, visibleWindow int, rng *rand.Rand, rec EventRecorder) Result2P {
	players := [2]*PlayerState{
		newPlayerState(seq, visibleWindow),
		newPlayerState(seq, visibleWindow),
	}

	if rec != nil {
		rec.Record2P(0, players[0], players[1])
	}

	pq := &eventQueue{}
	heap.Init(pq)
	heap.Push(pq, &Event{Frame: 0, Player: 0})
	heap.Push(pq, &Event{Frame: 0, Player: 1})

	for pq.Len() > 0 {
		ev := heap.Pop(pq).(*Event)
		me := players[ev.Player]
		opp := players[1-ev.Player]
		if me.Dead {
			continue
		}

		if !ev.HasDecision {
			if me.TumoIndex >= len(me.FullSequence) {
				return outOfSequenceResult(players, ev.Frame)
			}

			if !ev.ForceThink {
				if dropped := me.absorbPendingOjama(rng); dropped > 0 {
					next := ev.Frame + garbageDropFrames(dropped)
					if rec != nil {
						rec.Record2P(next, players[0], players[1])
					}
					heap.Push(pq, &Event{Frame: next, Player: ev.Player, ForceThink: true})
					continue
				}
			}

			decision := think(ais[ev.Player], me, opp, ev.Frame)
			frames := me.Field.FramesToDropNext(decision)
			heap.Push(pq, &Event{Frame: ev.Frame + frames, Player: ev.Player, Decision: decision, HasDecision: true})
			continue
		}

		// Place the chosen piece and resolve whatever chain follows.
		tumo := me.currentTumo()
		me.Field.DropKumipuyo(tumo, ev.Decision)
		me.TumoIndex++
		me.refreshVisible()
		me.Frame = ev.Frame

		if rec != nil {
			rec.Record2P(ev.Frame, players[0], players[1])
		}

		rensa := me.Field.Simulate()
		me.LastPlacementFrame = ev.Frame
		me.LastRensa = rensa

		if rensa.Chain >= 1 {
			me.TotalScore += rensa.Score
			me.CarryOver += rensa.Score
			produced := me.CarryOver / 70
			me.CarryOver %= 70

			if produced > 0 {
				absorbed := produced
				if absorbed > me.OwedOjama {
					absorbed = me.OwedOjama
				}
				me.OwedOjama -= absorbed
				opp.PendingOjama += produced - absorbed
			}

			if me.Field.IsDead() {
				return declareOutcome(players, ev.Player, ev.Frame)
			}
			heap.Push(pq, &Event{Frame: ev.Frame + rensa.Frames, Player: ev.Player})
			continue
		}

		me.CarryOver = 0
		if me.Field.IsDead() {
			return declareOutcome(players, ev.Player, ev.Frame)
		}
		if ev.ForceThink {
			heap.Push(pq, &Event{Frame: ev.Frame, Player: ev.Player, ForceThink: true})
		} else {
			heap.Push(pq, &Event{Frame: ev.Frame, Player: ev.Player})
		}
	}

	return Result2P{Winner: -1, Frame: 0, Score0: players[0].TotalScore, Score1: players[1].TotalScore}
}

func think(ai AI, me, opp *PlayerState, frame int) puyo.Decision {
	fg := buildFireGate(me, opp, frame)
	decisions := ai.Think(me.State, fg, thinkFrameBudget)
	if len(decisions) == 0 {
		return puyo.NewDecision(puyo.StartColumn, 0)
	}
	return decisions[0]
}

// buildFireGate snapshots the opponent's state into the fire gate context
// the beam search worker needs: whether the opponent's most recent chain is
// still resolving as of the current global simulation clock, and the
// opponent's own potential-chain menu (3..12-chain drops only, per the
// fire gate's counter/saturation rules).
func buildFireGate(me, opp *PlayerState, clock int) *engine.FireGate {
	chainEnd := opp.LastPlacementFrame + opp.LastRensa.Frames
	chaining := opp.LastRensa.Chain >= 1 && clock < chainEnd

	var noMask [puyo.Width + 1]bool
	potentials := puyo.DetectByDrop(opp.Field, noMask, puyo.ForFire, 3, 12)

	return &engine.FireGate{
		Frame:            me.Frame,
		CarryOver:        me.CarryOver,
		SelfPendingOjama: me.PendingOjama,
		SelfOwedOjama:    me.OwedOjama,
		TwoP: &engine.TwoPContext{
			Chaining:   chaining,
			Rensa:      opp.LastRensa,
			Frame:      opp.LastPlacementFrame,
			Field:      opp.Field,
			Potentials: potentials,
		},
	}
}

func declareOutcome(players [2]*PlayerState, deadPlayer, frame int) Result2P {
	players[deadPlayer].Dead = true
	players[deadPlayer].DeadAtFrame = frame

	other := 1 - deadPlayer
	result := Result2P{Frame: frame, Score0: players[0].TotalScore, Score1: players[1].TotalScore}

	// Simultaneous death (spec.md §9 redesign): if the opponent's own board
	// is already dead too, credit neither side.
	if players[other].Field.IsDead() {
		result.Winner = -1
		return result
	}
	result.Winner = other
	return result
}

func outOfSequenceResult(players [2]*PlayerState, frame int) Result2P {
	result := Result2P{Frame: frame, Score0: players[0].TotalScore, Score1: players[1].TotalScore}
	switch {
	case result.Score0 > result.Score1:
		result.Winner = 0
	case result.Score1 > result.Score0:
		result.Winner = 1
	default:
		result.Winner = -1
	}
	return result
}
