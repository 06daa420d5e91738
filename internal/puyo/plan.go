package puyo

// Plan is one candidate sequence of placements starting from a given field,
// carrying the resulting field and, once a chain has fired along the way,
// the RensaResult that produced it. Mirrors plan.rs's Plan struct: a node in
// the plan-enumeration tree that the beam search worker and the evaluator
// both consume.
type Plan struct {
	Decisions []Decision
	Field     *Field
	Frames    int
	Fired     bool
	Rensa     RensaResult
}

// decisionsFor returns the decision set to try for a kumipuyo: the reduced
// 11-entry set for monochrome pieces, the full 22-entry set otherwise.
func decisionsFor(k Kumipuyo) []Decision {
	if k.IsRep() {
		return AllValidDecisionsForRep()
	}
	return AllValidDecisions()
}

// IteratePlans enumerates every reachable plan obtainable by placing up to
// maxDepth pieces from tumos (in order) onto field, calling visit once per
// leaf plan. A branch stops early and is reported as a leaf as soon as a
// placement ignites a chain (Fired=true, Rensa populated), since neither beam
// search nor the evaluator look past an already-fired branch. A placement
// that tops out a column but is itself rescued by that same drop's chain is
// not dead; only a branch that is dead and does not ignite, or still dead
// after its chain resolves, is filtered out of the tree entirely.
func IteratePlans(field *Field, tumos []Kumipuyo, maxDepth int, visit func(Plan)) {
	controller := NewPuyoController()
	var walk func(f *Field, depth int, decisions []Decision, frames int)
	walk = func(f *Field, depth int, decisions []Decision, frames int) {
		if depth >= maxDepth || depth >= len(tumos) {
			visit(Plan{Decisions: append([]Decision(nil), decisions...), Field: f, Frames: frames})
			return
		}
		k := tumos[depth]
		any := false
		for _, d := range decisionsFor(k) {
			if !controller.IsReachable(f, d) {
				continue
			}
			any = true
			next := f.Clone()
			next.DropKumipuyo(k, d)
			nextFrames := frames + f.FramesToDropNext(d)
			nextDecisions := append(append([]Decision(nil), decisions...), d)

			// Simulate before judging death: a placement that tops out a
			// column is still alive if the same drop's chain clears it.
			resolved := next.Clone()
			rensa := resolved.Simulate()

			if rensa.Chain >= 1 {
				if resolved.IsDead() {
					// Fires but still dead after the cascade resolves: not a
					// usable leaf, and not a continuable branch either.
					continue
				}
				visit(Plan{
					Decisions: nextDecisions,
					Field:     resolved,
					Frames:    nextFrames + rensa.Frames,
					Fired:     true,
					Rensa:     rensa,
				})
				continue
			}

			if next.IsDead() {
				// Doesn't ignite and is dead on placement: filtered, not visited.
				continue
			}
			walk(next, depth+1, nextDecisions, nextFrames)
		}
		if !any {
			visit(Plan{Decisions: append([]Decision(nil), decisions...), Field: f, Frames: frames})
		}
	}
	walk(field, 0, nil, 0)
}

// IterateAvailablePlans collects IteratePlans's output into a slice.
func IterateAvailablePlans(field *Field, tumos []Kumipuyo, maxDepth int) []Plan {
	var plans []Plan
	IteratePlans(field, tumos, maxDepth, func(p Plan) {
		plans = append(plans, p)
	})
	return plans
}
