package pattern

import (
	"testing"

	"github.com/sorapuyo/ghoti/internal/puyo"
)

func TestGtr1Matches(t *testing.T) {
	// Bottom-to-top: row1 "AABB__", row2 "CCAB__" (renamed to actual colours
	// below), row3 "CAB___".
	f := puyo.FieldFromRows(
		"GRB...",
		"GGRB..",
		"RRBB..",
	)
	if !Gtr1(f) {
		t.Fatal("expected gtr_1 to match the canonical GTR shape")
	}
}

func TestGtr1BreaksWhenAdjacentCellsShareAColour(t *testing.T) {
	f := puyo.FieldFromRows(
		"GRB...",
		"GGRB..",
		"RRBBB.",
	)
	if Gtr1(f) {
		t.Fatal("expected gtr_1 not to match once column 5 row 1 shares blue's colour with an adjacent B cell")
	}
}

func TestGtrBase1MatchesAnyPairOfColumns(t *testing.T) {
	f := puyo.FieldFromRows("RR....")
	if !GtrBase1(f) {
		t.Fatal("expected gtr_base_1 (two adjacent same-colour cells) to match")
	}
}

func TestGtrBase1RejectsMismatchedColumns(t *testing.T) {
	f := puyo.FieldFromRows("RB....")
	if GtrBase1(f) {
		t.Fatal("expected gtr_base_1 to reject two different colours")
	}
}

func TestGtrBase8IsExercisedEvenThoughUnweighted(t *testing.T) {
	f := puyo.FieldFromRows(
		"RB....",
		"RR....",
		"BB....",
	)
	if !GtrBase8(f) {
		t.Fatal("expected gtr_base_8 to match its column-pair shape")
	}
}

func TestMatchRejectsInconsistentLetterMapping(t *testing.T) {
	// gtr_base_4 requires the two A cells and the two B cells to each map to
	// one consistent colour; make the left B disagree with the right B.
	f := puyo.FieldFromRows(
		"RGY...",
		"YY....",
	)
	if GtrBase4(f) {
		t.Fatal("expected gtr_base_4 to reject an inconsistent B mapping")
	}
}
