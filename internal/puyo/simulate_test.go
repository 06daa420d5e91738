package puyo

import "testing"

func TestSimulateSingleGroupErase(t *testing.T) {
	f := FieldFromRows("rrrr..")
	result := f.Simulate()
	if result.Chain != 1 {
		t.Fatalf("Chain = %d, want 1", result.Chain)
	}
	if !result.Quick {
		t.Fatal("a single-step chain must be Quick")
	}
	wantScore := 10 * 4 * 1 // chainBonus(0)=0, groupBonus(4)=0, colorBonus(1)=0, clamped to 1
	if result.Score != wantScore {
		t.Fatalf("Score = %d, want %d", result.Score, wantScore)
	}
	if !f.IsZenkeshi() {
		t.Fatal("board should be empty after the only group erases")
	}
	if !result.Zenkeshi {
		t.Fatal("result.Zenkeshi should be true")
	}
}

func TestSimulateTwoStepChain(t *testing.T) {
	// Red erases first; gravity then drops the two separated blue pairs onto
	// the same row, where they merge into a second erasing group.
	f := FieldFromRows(
		"..bb..", // y=3
		"bb....", // y=2
		"rrrr..", // y=1
	)
	result := f.Simulate()
	if result.Chain != 2 {
		t.Fatalf("Chain = %d, want 2", result.Chain)
	}
	if result.Quick {
		t.Fatal("a two-step chain must not be Quick")
	}
	step1 := 10 * 4 * 1
	step2 := 10 * 4 * chainBonusAt(1)
	if want := step1 + step2; result.Score != want {
		t.Fatalf("Score = %d, want %d", result.Score, want)
	}
	if want := frameChain(0) + frameChain(1); result.Frames != want {
		t.Fatalf("Frames = %d, want %d", result.Frames, want)
	}
	if !f.IsZenkeshi() {
		t.Fatal("board should be fully cleared")
	}
}

func TestSimulateNoGroup(t *testing.T) {
	f := FieldFromRows("rrrb..")
	result := f.Simulate()
	if result.Chain != 0 {
		t.Fatalf("Chain = %d, want 0", result.Chain)
	}
	if result.Score != 0 {
		t.Fatalf("Score = %d, want 0", result.Score)
	}
}

func TestDropKumipuyoVertical(t *testing.T) {
	f := NewField()
	f.DropKumipuyo(Kumipuyo{Axis: Red, Child: Blue}, Decision{AxisX: 3, Rot: 0})
	if f.Color(3, 1) != Red || f.Color(3, 2) != Blue {
		t.Fatalf("rot=0 vertical drop placed wrong colours: (3,1)=%v (3,2)=%v", f.Color(3, 1), f.Color(3, 2))
	}
}

func TestIsChigiriDecision(t *testing.T) {
	f := FieldFromRows("r.....")
	if !f.IsChigiriDecision(Decision{AxisX: 1, Rot: 1}) {
		t.Fatal("differing column heights must be a chigiri placement")
	}
	if f.IsChigiriDecision(Decision{AxisX: 2, Rot: 1}) {
		t.Fatal("equal column heights (both empty) must not be a chigiri placement")
	}
}

func TestFramesToDropNextBoundary(t *testing.T) {
	f := NewField()
	cases := []struct {
		d    Decision
		want int
	}{
		{Decision{AxisX: 3, Rot: 0}, FramesGrounding[0]},
		{Decision{AxisX: 3, Rot: 1}, FramesGrounding[0]},
		{Decision{AxisX: 3, Rot: 3}, FramesGrounding[0]},
		{Decision{AxisX: 3, Rot: 2}, FramesGrounding[1]},
	}
	for _, c := range cases {
		if got := f.FramesToDropNext(c.d); got != c.want {
			t.Errorf("FramesToDropNext(%+v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestDetectByDrop(t *testing.T) {
	f := FieldFromRows("rrr...")
	var noMask [Width + 1]bool
	candidates := DetectByDrop(f, noMask, ForFire, 1, 13)
	found := false
	for _, c := range candidates {
		if c.X == 1 && c.Rensa.Chain == 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("dropping a 4th red onto column 1, next to the three reds in row 1, should ignite a chain")
	}
}

func TestDetectByDropTwoComplementations(t *testing.T) {
	// Column 1 has only two reds stacked; igniting it needs two more puyos
	// inserted before simulation, which a single-drop search could never find.
	f := FieldFromRows("r.....", "r.....")
	var noMask [Width + 1]bool
	candidates := DetectByDrop(f, noMask, ForFire, 1, 13)
	found := false
	for _, c := range candidates {
		if c.X == 1 && c.Rensa.Chain >= 1 {
			found = true
		}
	}
	if !found {
		t.Fatal("stacking two more reds onto the 2-stack in column 1 should ignite a chain")
	}
}
