package puyo

import "testing"

func TestNewFieldEmpty(t *testing.T) {
	f := NewField()
	if !f.IsZenkeshi() {
		t.Fatal("new field must be zenkeshi")
	}
	if f.IsDead() {
		t.Fatal("new field must not be dead")
	}
	for x := 1; x <= Width; x++ {
		if h := f.Height(x); h != 0 {
			t.Fatalf("column %d: got height %d, want 0", x, h)
		}
	}
}

func TestValleyAndRidge(t *testing.T) {
	// heights: 1 3 1 1 1 1 -> column 2 is a ridge, column 1 is a valley;
	// column 3 is not (its other neighbour, column 4, is level with it).
	f := FieldFromRows(
		".r....", // y=3
		".r....", // y=2
		"rrrrrr", // y=1
	)
	if got := f.Height(2); got != 3 {
		t.Fatalf("height(2) = %d, want 3", got)
	}
	if got := f.Height(1); got != 1 {
		t.Fatalf("height(1) = %d, want 1", got)
	}
	if got := f.RidgeHeight(2); got != 2 {
		t.Fatalf("RidgeHeight(2) = %d, want 2 (neighbours both height 1)", got)
	}
	if got := f.ValleyDepth(1); got != 2 {
		t.Fatalf("ValleyDepth(1) = %d, want 2 (only neighbour height 3)", got)
	}
	if got := f.ValleyDepth(3); got != 0 {
		t.Fatalf("ValleyDepth(3) = %d, want 0 (shallower neighbour is column 4 at height 1)", got)
	}
}

func TestCountConnected(t *testing.T) {
	f := FieldFromRows("rrrr..")
	if got := f.CountConnected(1, 1); got != 4 {
		t.Fatalf("CountConnected = %d, want 4", got)
	}
	if got := f.CountConnected(5, 1); got != 0 {
		t.Fatalf("CountConnected on empty cell = %d, want 0", got)
	}
}

func TestCountUnreachableSpaces(t *testing.T) {
	// A U-shaped pocket: columns 1 and 3 stand 3 tall, column 2 is empty. The
	// bottom two rows of column 2 sit below both neighbouring walls' tops and
	// count as sealed; row 3 of column 2 is level with the walls and doesn't.
	f := FieldFromRows(
		"r.r...",
		"r.r...",
		"r.r...",
	)
	if got := f.CountUnreachableSpaces(); got != 2 {
		t.Fatalf("CountUnreachableSpaces = %d, want 2", got)
	}
}

func TestHash(t *testing.T) {
	a := FieldFromRows("rrrr..")
	b := FieldFromRows("rrrr..")
	if a.Hash() != b.Hash() {
		t.Fatal("identical boards must hash equal")
	}
	c := FieldFromRows("rrrb..")
	if a.Hash() == c.Hash() {
		t.Fatal("different boards must (almost certainly) hash different")
	}
}
