package puyo

import "strings"

// Board dimensions (spec: 6 columns x 13 rows, row 13 is the kill row).
const (
	Width  = 6
	Height = 13

	// DeathColumn/DeathRow: a piece occupying this cell makes the field dead.
	DeathColumn = 3
	DeathRow    = 12
)

// Field is the 6x13 board. Columns and rows are 1-indexed; row 1 is the
// floor, row Height is the topmost (kill) row, matching the convention used
// throughout original_source/puyoai (CoreField).
type Field struct {
	cells   [Width + 1][Height + 1]Color
	heights [Width + 1]int
	hash    uint64
}

// NewField returns an empty field.
func NewField() *Field {
	return &Field{}
}

// Clone returns an independent copy of f.
func (f *Field) Clone() *Field {
	cp := *f
	return &cp
}

// Color returns the colour at (x, y), or Empty if out of bounds.
func (f *Field) Color(x, y int) Color {
	if x < 1 || x > Width || y < 1 || y > Height {
		return Empty
	}
	return f.cells[x][y]
}

// IsEmpty reports whether (x, y) holds no puyo.
func (f *Field) IsEmpty(x, y int) bool {
	return f.Color(x, y) == Empty
}

// Height returns the stack height of column x (count of occupied cells from
// the floor up; puyo fields never have gaps below the topmost occupied cell).
func (f *Field) Height(x int) int {
	if x < 1 || x > Width {
		return 0
	}
	return f.heights[x]
}

// setColor sets a single cell and keeps the height cache consistent. Callers
// must only build fields bottom-up (no gaps), which every mutator here
// guarantees.
func (f *Field) setColor(x, y int, c Color) {
	if old := f.cells[x][y]; old != Empty {
		f.hash ^= zobristTable[x][y][int(old)]
	}
	f.cells[x][y] = c
	if c != Empty {
		if y > f.heights[x] {
			f.heights[x] = y
		}
		f.hash ^= zobristTable[x][y][int(c)]
	}
}

// recomputeHeights rescans the whole field; used after bulk mutations like
// gravity where cells moved non-monotonically.
func (f *Field) recomputeHeights() {
	for x := 1; x <= Width; x++ {
		h := 0
		for y := 1; y <= Height; y++ {
			if f.cells[x][y] != Empty {
				h = y
			}
		}
		f.heights[x] = h
	}
	f.rehashFull()
}

// IsDead reports whether the field is in a terminal (lost) state.
func (f *Field) IsDead() bool {
	return !f.IsEmpty(DeathColumn, DeathRow)
}

// IsZenkeshi reports whether the field is entirely empty (an "all clear").
func (f *Field) IsZenkeshi() bool {
	for x := 1; x <= Width; x++ {
		if f.heights[x] != 0 {
			return false
		}
	}
	return true
}

// ValleyDepth returns how much lower column x sits than the shallower of its
// neighbours, clamped to >= 0 (min(height(x-1), height(x+1)) - height(x)).
func (f *Field) ValleyDepth(x int) int {
	min, ok := minNeighborHeight(f, x)
	if !ok {
		return 0
	}
	if d := min - f.Height(x); d > 0 {
		return d
	}
	return 0
}

// RidgeHeight returns how much higher column x sits than the taller of its
// neighbours, clamped to >= 0 (dual of ValleyDepth).
func (f *Field) RidgeHeight(x int) int {
	max, ok := maxNeighborHeight(f, x)
	if !ok {
		return 0
	}
	if d := f.Height(x) - max; d > 0 {
		return d
	}
	return 0
}

func minNeighborHeight(f *Field, x int) (int, bool) {
	switch {
	case x == 1:
		return f.Height(2), true
	case x == Width:
		return f.Height(Width - 1), true
	default:
		l, r := f.Height(x-1), f.Height(x+1)
		if l < r {
			return l, true
		}
		return r, true
	}
}

func maxNeighborHeight(f *Field, x int) (int, bool) {
	switch {
	case x == 1:
		return f.Height(2), true
	case x == Width:
		return f.Height(Width - 1), true
	default:
		l, r := f.Height(x-1), f.Height(x+1)
		if l > r {
			return l, true
		}
		return r, true
	}
}

// CountUnreachableSpaces counts empty cells that can never be filled because
// a lower neighbouring column's overhang seals them off from above (a
// "pocket" under a taller wall on both sides is still reachable from
// directly above its own column, so only genuinely sealed cells count: a
// cell is unreachable when both of its horizontal neighbours are already
// taller than the row directly above it, at or below the field ceiling).
func (f *Field) CountUnreachableSpaces() int {
	count := 0
	for x := 1; x <= Width; x++ {
		for y := f.Height(x) + 1; y <= Height-1; y++ {
			leftBlocked := x == 1 || f.Height(x-1) > y
			rightBlocked := x == Width || f.Height(x+1) > y
			if leftBlocked && rightBlocked {
				count++
			}
		}
	}
	return count
}

// CountConnected returns the size of the four-connected same-colour group
// containing (x, y). Returns 0 for empty/garbage cells.
func (f *Field) CountConnected(x, y int) int {
	c := f.Color(x, y)
	if !c.IsNormal() {
		return 0
	}
	var visited [Width + 1][Height + 1]bool
	return f.floodCount(x, y, c, &visited)
}

func (f *Field) floodCount(x, y int, c Color, visited *[Width + 1][Height + 1]bool) int {
	if x < 1 || x > Width || y < 1 || y > Height {
		return 0
	}
	if visited[x][y] || f.cells[x][y] != c {
		return 0
	}
	visited[x][y] = true
	n := 1
	n += f.floodCount(x+1, y, c, visited)
	n += f.floodCount(x-1, y, c, visited)
	n += f.floodCount(x, y+1, c, visited)
	n += f.floodCount(x, y-1, c, visited)
	return n
}

// FieldFromRows builds a Field from rows given top-to-bottom, each exactly
// Width characters wide using the pfen-like byte codes from Color.Byte /
// ColorFromByte. This mirrors CoreField::from_str's visual convention used
// throughout original_source's tests and doc comments.
func FieldFromRows(rows ...string) *Field {
	f := NewField()
	n := len(rows)
	for i, row := range rows {
		y := n - i
		row = strings.TrimRight(row, " ")
		for j := 0; j < len(row) && j < Width; j++ {
			x := j + 1
			c := ColorFromByte(row[j])
			if c != Empty {
				f.setColor(x, y, c)
			}
		}
	}
	f.recomputeHeights()
	return f
}

// FieldFromColumns builds a Field from columns given bottom-to-top, each a
// string of single-character colour codes (internal/kifu's pfen-like
// board encoding, the inverse of EncodeField/convert_core_field).
func FieldFromColumns(columns []string) *Field {
	f := NewField()
	for x := 1; x <= Width && x-1 < len(columns); x++ {
		col := columns[x-1]
		for y := 1; y <= len(col) && y <= Height; y++ {
			c := ColorFromByte(col[y-1])
			if c != Empty {
				f.setColor(x, y, c)
			}
		}
	}
	f.recomputeHeights()
	return f
}

// String renders the field bottom row last, for debugging/logging.
func (f *Field) String() string {
	var b strings.Builder
	for y := Height; y >= 1; y-- {
		for x := 1; x <= Width; x++ {
			c := f.Color(x, y)
			if c == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte(c.Byte())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
