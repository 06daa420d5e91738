package puyo

import "math/rand"

// RensaResult summarises one full chain resolution: every cascade step from
// the first group erase until no four-connected group remains.
type RensaResult struct {
	Chain     int
	Score     int
	Frames    int
	Quick     bool
	Zenkeshi  bool
}

// chainBonus[i] is the official Puyo Puyo chain-power bonus for the (i+1)-th
// simultaneous erase step (0-indexed). Index 20 onward extrapolates the
// documented +32-per-step tail.
var chainBonus = []int{
	0, 8, 16, 32, 64, 96, 128, 160, 192, 224,
	256, 288, 320, 352, 384, 416, 448, 480, 512, 544,
}

// groupBonus[size] is the bonus for a single erased group of that size;
// indices below 4 never occur (groups smaller than 4 never erase). Sizes
// beyond the table reuse the last entry.
var groupBonus = []int{0, 0, 0, 0, 0, 2, 3, 4, 5, 6, 7}

// colorBonus[n] is the bonus for n distinct colours erased in one step.
var colorBonus = []int{0, 0, 3, 6, 12, 24}

func chainBonusAt(step int) int {
	if step < 0 {
		step = 0
	}
	if step >= len(chainBonus) {
		return chainBonus[len(chainBonus)-1] + 32*(step-len(chainBonus)+1)
	}
	return chainBonus[step]
}

func groupBonusFor(size int) int {
	if size >= len(groupBonus) {
		return groupBonus[len(groupBonus)-1]
	}
	return groupBonus[size]
}

func colorBonusFor(n int) int {
	if n >= len(colorBonus) {
		return colorBonus[len(colorBonus)-1]
	}
	return colorBonus[n]
}

type cell struct{ x, y int }

// DropKumipuyo places k according to d on field, grounding each half in its
// own column so that a chigiri placement (differing column heights) lands
// the axis and child at different rows, same as a real controller dropping
// two physically separated halves.
func (f *Field) DropKumipuyo(k Kumipuyo, d Decision) {
	axisX, childX := d.AxisX, d.ChildX()
	if axisX == childX {
		base := f.Height(axisX)
		switch d.Rot {
		case 2:
			f.setColor(axisX, base+2, k.Axis)
			f.setColor(axisX, base+1, k.Child)
		default:
			f.setColor(axisX, base+1, k.Axis)
			f.setColor(axisX, base+2, k.Child)
		}
		return
	}
	f.setColor(axisX, f.Height(axisX)+1, k.Axis)
	f.setColor(childX, f.Height(childX)+1, k.Child)
}

// Simulate resolves every cascading chain step starting from f's current
// contents, mutating f in place (ending with f holding the post-chain
// board), and returns a summary of what happened.
func (f *Field) Simulate() RensaResult {
	var result RensaResult
	for {
		groups := f.findErasingGroups()
		if len(groups) == 0 {
			break
		}
		result.Chain++

		erased := make(map[cell]bool)
		colors := make(map[Color]bool)
		bonus := 0
		count := 0
		for _, g := range groups {
			bonus += groupBonusFor(len(g))
			c := f.Color(g[0].x, g[0].y)
			colors[c] = true
			for _, cl := range g {
				erased[cl] = true
				count++
			}
		}
		// Garbage adjacent to an erasing group clears too, but doesn't count
		// toward the erase total or colour bonus.
		garbage := f.adjacentOjama(erased)
		for cl := range garbage {
			erased[cl] = true
		}

		bonus += colorBonusFor(len(colors))
		multiplier := chainBonusAt(result.Chain - 1) + bonus
		if multiplier < 1 {
			multiplier = 1
		}
		result.Score += 10 * count * multiplier
		result.Frames += frameChain(result.Chain - 1)

		f.erase(erased)
		f.applyGravity()
	}
	result.Quick = result.Chain <= 1
	result.Zenkeshi = f.IsZenkeshi()
	return result
}

// findErasingGroups returns every four-or-more four-connected same-colour
// group currently on the board.
func (f *Field) findErasingGroups() [][]cell {
	var visited [Width + 1][Height + 1]bool
	var groups [][]cell
	for x := 1; x <= Width; x++ {
		for y := 1; y <= Height; y++ {
			c := f.Color(x, y)
			if !c.IsNormal() || visited[x][y] {
				continue
			}
			group := f.collectGroup(x, y, c, &visited)
			if len(group) >= 4 {
				groups = append(groups, group)
			}
		}
	}
	return groups
}

func (f *Field) collectGroup(x, y int, c Color, visited *[Width + 1][Height + 1]bool) []cell {
	if x < 1 || x > Width || y < 1 || y > Height {
		return nil
	}
	if visited[x][y] || f.cells[x][y] != c {
		return nil
	}
	visited[x][y] = true
	group := []cell{{x, y}}
	group = append(group, f.collectGroup(x+1, y, c, visited)...)
	group = append(group, f.collectGroup(x-1, y, c, visited)...)
	group = append(group, f.collectGroup(x, y+1, c, visited)...)
	group = append(group, f.collectGroup(x, y-1, c, visited)...)
	return group
}

func (f *Field) adjacentOjama(erased map[cell]bool) map[cell]bool {
	garbage := make(map[cell]bool)
	for cl := range erased {
		for _, n := range [][2]int{{cl.x + 1, cl.y}, {cl.x - 1, cl.y}, {cl.x, cl.y + 1}, {cl.x, cl.y - 1}} {
			if f.Color(n[0], n[1]) == Ojama {
				garbage[cell{n[0], n[1]}] = true
			}
		}
	}
	return garbage
}

func (f *Field) erase(cells map[cell]bool) {
	for cl := range cells {
		f.cells[cl.x][cl.y] = Empty
	}
}

// applyGravity compacts every column downward, closing gaps left by erase.
func (f *Field) applyGravity() {
	for x := 1; x <= Width; x++ {
		write := 1
		for y := 1; y <= Height; y++ {
			if f.cells[x][y] != Empty {
				f.cells[x][write] = f.cells[x][y]
				if write != y {
					f.cells[x][y] = Empty
				}
				write++
			}
		}
		for y := write; y <= Height; y++ {
			f.cells[x][y] = Empty
		}
	}
	f.recomputeHeights()
}

// DropOjama drops up to n garbage cells onto f: full rows first (one ojama
// per column), then a random residual spread across columns with headroom,
// matching the 2P simulator's garbage-commit distribution. Returns the
// number of cells actually placed, which can be less than n if the field
// runs out of headroom.
func (f *Field) DropOjama(n int, rng *rand.Rand) int {
	dropped := 0
	for n >= Width {
		for x := 1; x <= Width; x++ {
			if f.Height(x) < Height {
				f.setColor(x, f.Height(x)+1, Ojama)
				dropped++
			}
		}
		n -= Width
	}
	if n > 0 {
		cols := rng.Perm(Width)
		for i := 0; i < n && i < Width; i++ {
			x := cols[i] + 1
			if f.Height(x) < Height {
				f.setColor(x, f.Height(x)+1, Ojama)
				dropped++
			}
		}
	}
	return dropped
}

// RensaWillOccurWhenLastDecisionIs reports whether dropping k via d onto a
// clone of f would immediately ignite a chain (chain count >= 1), without
// mutating f.
func RensaWillOccurWhenLastDecisionIs(f *Field, k Kumipuyo, d Decision) bool {
	clone := f.Clone()
	clone.DropKumipuyo(k, d)
	result := clone.Simulate()
	return result.Chain >= 1
}
