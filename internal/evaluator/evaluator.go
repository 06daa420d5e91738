package evaluator

import (
	"math"

	"github.com/sorapuyo/ghoti/internal/evaluator/pattern"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// deadScore is returned for a plan whose field has topped out; far below any
// score a live field can produce, so the beam search and fire gate always
// prefer a live branch over a dead one.
const deadScore = math.MinInt32 >> 7

// Evaluate scores plan's resulting field plus, if the plan already ignited a
// chain, the realized chain's quality. Higher is better. The weighted terms
// are summed in float64 and converted to int32 once at the end (truncating
// toward zero) to avoid the original's intermediate-rounding quirks creeping
// back in column by column.
func Evaluate(w Weights, plan puyo.Plan) int32 {
	f := plan.Field
	if f.IsDead() {
		return deadScore
	}

	var score float64
	avg := averageHeight(f)
	coef := heightCoefficient(w, avg)

	for x := 1; x <= puyo.Width; x++ {
		score += float64(w.Valley) * float64(f.ValleyDepth(x))
		score += float64(w.Ridge) * float64(f.RidgeHeight(x))

		diff := float64(f.Height(x)) - (avg + idealHeightOffset(x))
		score += coef * float64(w.IdealHeightDiff) * diff
		score += coef * float64(w.IdealHeightDiffSq) * diff * diff

		if !f.IsEmpty(x, puyo.Height) {
			score += float64(w.TopRow[x-1])
		}
	}

	third := float64(f.Height(3))
	score += float64(w.ThirdColumnHeight) * third
	score += float64(w.ThirdColumnHeightSq) * third * third

	score += float64(w.UnreachableSpace) * float64(f.CountUnreachableSpaces())

	c2, c3 := connectivityCounts(f)
	score += float64(w.Connectivity2) * float64(c2)
	score += float64(w.Connectivity3) * float64(c3)

	if plan.Fired {
		res := plan.Rensa
		score += float64(w.Chain) * float64(res.Chain)
		score += float64(w.ChainSq) * float64(res.Chain) * float64(res.Chain)
		score += float64(w.ChainScore) * float64(res.Score/1000)
		score += float64(w.ChainFrame) * float64(res.Frames)
	}

	main, sub, ok := bestPotentialChains(f)
	if ok.main {
		c := float64(main.Rensa.Chain)
		// Preserves the original evaluator's quirk: PotentialMainChainSq is
		// never read here, PotentialMainChain multiplies both the linear and
		// squared chain terms.
		score += float64(w.PotentialMainChain) * c
		score += float64(w.PotentialMainChain) * c * c
		score += float64(w.PotentialMainChainFrame) * float64(main.Rensa.Frames)
		score += float64(w.PotentialMainChainIgnitionHeight) * float64(f.Height(main.X))
	}
	if ok.sub {
		c := float64(sub.Rensa.Chain)
		score += float64(w.PotentialSubChain) * c
		score += float64(w.PotentialSubChain) * c * c
		score += float64(w.PotentialSubChainFrame) * float64(sub.Rensa.Frames)
		score += float64(w.PotentialSubChainIgnitionHeight) * float64(f.Height(sub.X))
	}

	chigiriCount := 0
	for _, d := range plan.Decisions {
		if f.IsChigiriDecision(d) {
			chigiriCount++
		}
	}
	score += float64(w.Chigiri) * float64(chigiriCount)
	score += float64(w.MoveFrame) * float64(plan.Frames)

	score += patternScore(w, f)

	return int32(score)
}

func averageHeight(f *puyo.Field) float64 {
	total := 0
	for x := 1; x <= puyo.Width; x++ {
		total += f.Height(x)
	}
	return float64(total) / float64(puyo.Width)
}

// idealHeightOffset nudges the target profile up at the walls and down at
// the centre columns, matching the GTR-shaped build order's natural slope.
func idealHeightOffset(x int) float64 {
	switch x {
	case 1, 6:
		return 2
	case 3, 4:
		return -2
	default:
		return 0
	}
}

func heightCoefficient(w Weights, avg float64) float64 {
	switch {
	case avg < 1:
		return 0
	case avg < 3:
		return float64(w.IdealHeightCoef1) / 1000
	case avg < 5:
		return float64(w.IdealHeightCoef2) / 1000
	case avg < 7:
		return float64(w.IdealHeightCoef3) / 1000
	case avg < 9:
		return float64(w.IdealHeightCoef4) / 1000
	default:
		return 1.0
	}
}

// connectivityCounts returns the number of same-colour connected groups of
// exactly size 2 and of size 3, each group counted once regardless of which
// member cell is visited first. Groups of size 4+ never appear in a settled
// field: Simulate erases them before a field is handed to the evaluator.
func connectivityCounts(f *puyo.Field) (size2, size3 int) {
	var seen [puyo.Width + 1][puyo.Height + 1]bool
	for x := 1; x <= puyo.Width; x++ {
		for y := 1; y <= f.Height(x); y++ {
			if seen[x][y] || !f.Color(x, y).IsNormal() {
				continue
			}
			n := f.CountConnected(x, y)
			markConnected(f, x, y, &seen)
			switch n {
			case 2:
				size2++
			case 3:
				size3++
			}
		}
	}
	return size2, size3
}

// markConnected flood-fills the same-colour group containing (x, y) into
// seen, so connectivityCounts visits each group's cells only once.
func markConnected(f *puyo.Field, x, y int, seen *[puyo.Width + 1][puyo.Height + 1]bool) {
	if x < 1 || x > puyo.Width || y < 1 || y > f.Height(x) {
		return
	}
	if seen[x][y] {
		return
	}
	seen[x][y] = true
	c := f.Color(x, y)
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d[0], y+d[1]
		if nx < 1 || nx > puyo.Width || ny < 1 || ny > f.Height(nx) {
			continue
		}
		if f.Color(nx, ny) == c {
			markConnected(f, nx, ny, seen)
		}
	}
}

type chainCandidate struct {
	X     int
	Rensa puyo.RensaResult
}

type chainFound struct {
	main, sub bool
}

// bestPotentialChains finds, among every up-to-2-puyo completion detect.go's
// DetectByDrop can reach (2..13-chain completions, matching the original's
// detect_chains), the most efficient (score/frame) candidate scoring at
// least 5000 points ("main") and, separately, the most efficient candidate
// scoring at least 70 but under 5000 ("sub"). Weaker drops are ignored.
func bestPotentialChains(f *puyo.Field) (main, sub chainCandidate, found chainFound) {
	var noMask [puyo.Width + 1]bool
	for _, cand := range puyo.DetectByDrop(f, noMask, puyo.ForFire, 2, 13) {
		switch {
		case cand.Rensa.Score >= 5000:
			if !found.main || cand.Rensa.Score*main.Rensa.Frames > main.Rensa.Score*cand.Rensa.Frames {
				main = chainCandidate{X: cand.X, Rensa: cand.Rensa}
				found.main = true
			}
		case cand.Rensa.Score >= 70:
			if !found.sub || cand.Rensa.Score*sub.Rensa.Frames > sub.Rensa.Score*cand.Rensa.Frames {
				sub = chainCandidate{X: cand.X, Rensa: cand.Rensa}
				found.sub = true
			}
		}
	}
	return main, sub, found
}

type patternCheck struct {
	weight int32
	match  func(*puyo.Field) bool
}

// patternScore sums weight*match over every GTR template wired to Weights.
// gtr_base_8 has no Weights field (see the pattern package) and is omitted.
func patternScore(w Weights, f *puyo.Field) float64 {
	checks := []patternCheck{
		{w.GtrBase1, pattern.GtrBase1}, {w.GtrBase2, pattern.GtrBase2},
		{w.GtrBase3, pattern.GtrBase3}, {w.GtrBase4, pattern.GtrBase4},
		{w.GtrBase5, pattern.GtrBase5}, {w.GtrBase6, pattern.GtrBase6},
		{w.GtrBase7, pattern.GtrBase7},
		{w.Gtr1, pattern.Gtr1}, {w.Gtr2, pattern.Gtr2}, {w.Gtr3, pattern.Gtr3},
		{w.Gtr4, pattern.Gtr4}, {w.Gtr5, pattern.Gtr5}, {w.Gtr6, pattern.Gtr6},
		{w.GtrTail11, pattern.GtrTail11}, {w.GtrTail12, pattern.GtrTail12}, {w.GtrTail13, pattern.GtrTail13},
		{w.GtrTail21, pattern.GtrTail21}, {w.GtrTail22, pattern.GtrTail22}, {w.GtrTail23, pattern.GtrTail23},
		{w.GtrTail24, pattern.GtrTail24}, {w.GtrTail25, pattern.GtrTail25}, {w.GtrTail26, pattern.GtrTail26},
		{w.GtrTail27, pattern.GtrTail27},
		{w.GtrTail31, pattern.GtrTail31}, {w.GtrTail32, pattern.GtrTail32},
		{w.GtrTail33, pattern.GtrTail33}, {w.GtrTail34, pattern.GtrTail34},
		{w.GtrTail41, pattern.GtrTail41},
		{w.GtrTail51, pattern.GtrTail51}, {w.GtrTail52, pattern.GtrTail52},
		{w.GtrTail61, pattern.GtrTail61}, {w.GtrTail62, pattern.GtrTail62}, {w.GtrTail63, pattern.GtrTail63},
		{w.GtrHead1, pattern.GtrHead1}, {w.GtrHead2, pattern.GtrHead2}, {w.GtrHead3, pattern.GtrHead3},
		{w.GtrHead4, pattern.GtrHead4}, {w.GtrHead5, pattern.GtrHead5}, {w.GtrHead6, pattern.GtrHead6},
	}

	var total float64
	for _, c := range checks {
		if c.match(f) {
			total += float64(c.weight)
		}
	}
	return total
}
