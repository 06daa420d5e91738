package puyo

import "testing"

func TestDecisionCounts(t *testing.T) {
	if got := len(AllValidDecisions()); got != 22 {
		t.Fatalf("len(AllValidDecisions()) = %d, want 22", got)
	}
	if got := len(AllValidDecisionsForRep()); got != 11 {
		t.Fatalf("len(AllValidDecisionsForRep()) = %d, want 11", got)
	}
}

func TestDecisionChildX(t *testing.T) {
	cases := []struct {
		d    Decision
		want int
	}{
		{Decision{AxisX: 3, Rot: 0}, 3},
		{Decision{AxisX: 3, Rot: 1}, 4},
		{Decision{AxisX: 3, Rot: 2}, 3},
		{Decision{AxisX: 3, Rot: 3}, 2},
	}
	for _, c := range cases {
		if got := c.d.ChildX(); got != c.want {
			t.Errorf("ChildX(%+v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestDecisionValidBounds(t *testing.T) {
	if (Decision{AxisX: 1, Rot: 3}).valid() {
		t.Fatal("rot=3 at column 1 moves the child out of bounds")
	}
	if (Decision{AxisX: Width, Rot: 1}).valid() {
		t.Fatal("rot=1 at the last column moves the child out of bounds")
	}
}

func TestKumipuyoIsRep(t *testing.T) {
	if !(Kumipuyo{Axis: Red, Child: Red}).IsRep() {
		t.Fatal("matching axis/child colours must be a rep piece")
	}
	if (Kumipuyo{Axis: Red, Child: Blue}).IsRep() {
		t.Fatal("differing axis/child colours must not be a rep piece")
	}
}

func TestSequenceForKeyDeterministic(t *testing.T) {
	a := SequenceForKey(1234)
	b := SequenceForKey(1234)
	if a != b {
		t.Fatal("the same key must always produce the same sequence")
	}
	c := SequenceForKey(4321)
	if a == c {
		t.Fatal("different keys should (almost certainly) produce different sequences")
	}
}
