package puyo

import "testing"

func TestIterateAvailablePlansSingleDepth(t *testing.T) {
	f := NewField()
	tumos := []Kumipuyo{{Axis: Red, Child: Blue}}
	plans := IterateAvailablePlans(f, tumos, 1)
	if got := len(plans); got != 22 {
		t.Fatalf("len(plans) = %d, want 22 (every placement reachable on an empty board)", got)
	}
	for _, p := range plans {
		if p.Fired {
			t.Fatal("a single non-monochrome piece on an empty board can never ignite a chain")
		}
	}
}

func TestIterateAvailablePlansRepDepth(t *testing.T) {
	f := NewField()
	tumos := []Kumipuyo{{Axis: Red, Child: Red}}
	plans := IterateAvailablePlans(f, tumos, 1)
	if got := len(plans); got != 11 {
		t.Fatalf("len(plans) = %d, want 11 (reduced set for a monochrome piece)", got)
	}
}

func TestIterateAvailablePlansDetectsIgnition(t *testing.T) {
	f := FieldFromRows("rrr...")
	tumos := []Kumipuyo{{Axis: Red, Child: Blue}}
	plans := IterateAvailablePlans(f, tumos, 1)
	fired := false
	for _, p := range plans {
		if p.Fired {
			fired = true
			if p.Rensa.Chain < 1 {
				t.Fatal("a fired plan must carry a Rensa with Chain >= 1")
			}
		}
	}
	if !fired {
		t.Fatal("dropping a red next to the three reds in row 1 should ignite a chain in at least one plan")
	}
}
