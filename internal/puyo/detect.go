package puyo

// Purpose records why a caller is running the chain-completion search.
// ForFire is the only value either call site needs today: find a board that
// would actually ignite and report its chain. It is threaded through so the
// signature matches the documented external interface even though there is
// currently nothing to branch on.
type Purpose int

const (
	ForFire Purpose = iota
)

// IgnitionCandidate is one way of completing a board with up to two inserted
// puyos that ignites a chain: the column that received the most of the
// inserted puyos (for ignition-height lookups, measured on the original
// board by the caller) and the chain the completion produced.
type IgnitionCandidate struct {
	X     int
	Rensa RensaResult
}

// insertion is one puyo the detector adds above a column's existing stack.
type insertion struct {
	x     int
	color Color
}

// DetectByDrop searches every way of completing field with up to two
// inserted puyos — a single puyo in one column, two stacked in the same
// column, or one each in two different columns — and reports every
// completion whose simulated chain length falls in [minChain, maxChain].
// colMask excludes columns the caller has ruled out of the search (index by
// column number; column 0 is unused). field is never mutated.
func DetectByDrop(field *Field, colMask [Width + 1]bool, purpose Purpose, minChain, maxChain int) []IgnitionCandidate {
	_ = purpose

	var candidates []IgnitionCandidate
	tryInsert := func(inserts []insertion) {
		clone := field.Clone()
		counts := make(map[int]int, len(inserts))
		for _, ins := range inserts {
			h := clone.Height(ins.x)
			if h >= Height {
				return
			}
			clone.setColor(ins.x, h+1, ins.color)
			counts[ins.x]++
		}

		rensa := clone.Simulate()
		if rensa.Chain < minChain || rensa.Chain > maxChain {
			return
		}

		// 同列に最大2個補完するので、発火点はその列の元々の高さで決まる。
		bestX, bestN := 0, -1
		for x, n := range counts {
			if n > bestN {
				bestX, bestN = x, n
			}
		}
		candidates = append(candidates, IgnitionCandidate{X: bestX, Rensa: rensa})
	}

	// One complementation: a single puyo dropped into one column.
	for x := 1; x <= Width; x++ {
		if colMask[x] || field.Height(x) >= Height {
			continue
		}
		for _, c := range NormalColors {
			tryInsert([]insertion{{x, c}})
		}
	}

	// Two complementations, same column: two puyos stacked on top of each
	// other before the field is simulated.
	for x := 1; x <= Width; x++ {
		if colMask[x] || field.Height(x) >= Height-1 {
			continue
		}
		for _, c1 := range NormalColors {
			for _, c2 := range NormalColors {
				tryInsert([]insertion{{x, c1}, {x, c2}})
			}
		}
	}

	// Two complementations, different columns: one puyo in each.
	for x1 := 1; x1 <= Width; x1++ {
		if colMask[x1] || field.Height(x1) >= Height {
			continue
		}
		for x2 := x1 + 1; x2 <= Width; x2++ {
			if colMask[x2] || field.Height(x2) >= Height {
				continue
			}
			for _, c1 := range NormalColors {
				for _, c2 := range NormalColors {
					tryInsert([]insertion{{x1, c1}, {x2, c2}})
				}
			}
		}
	}

	return candidates
}
