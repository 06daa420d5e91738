// Package pattern implements the shape-matching template DSL used to detect
// GTR opening patterns: each template is a small grid of tokens (A..E for a
// colour variable, _ for "don't care") checked against the board for a
// consistent, injective letter-to-colour mapping.
package pattern

import "github.com/sorapuyo/ghoti/internal/puyo"

const tokenNone = 9

func tokenIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'B':
		return 1
	case 'C':
		return 2
	case 'D':
		return 3
	case 'E':
		return 4
	default:
		return tokenNone
	}
}

// match reports whether rows (topmost row first, each exactly puyo.Width
// tokens, columns 1..Width left to right) matches field: every non-'_'
// letter must map to one consistent real colour, no two letters may map to
// the same colour, and no two grid cells that
// use different tokens (including '_' as a distinct "unconstrained" token)
// may sit on the same real colour, horizontally or vertically adjacent.
func match(f *puyo.Field, rows []string) bool {
	var corr [5]puyo.Color
	n := len(rows)
	var prevRow [puyo.Width]int
	for i := range prevRow {
		prevRow[i] = tokenNone
	}

	for i, row := range rows {
		y := n - i
		prevCol := tokenNone
		for j := 0; j < puyo.Width; j++ {
			x := j + 1
			tok := tokenIndex(row[j])

			if tok != tokenNone {
				if corr[tok] == puyo.Empty {
					corr[tok] = f.Color(x, y)
				} else if corr[tok] != f.Color(x, y) {
					return false
				}
			}
			if x > 1 && prevCol != tok && f.Color(x-1, y) == f.Color(x, y) {
				return false
			}
			if prevRow[j] != tok && f.Color(x, y+1) == f.Color(x, y) {
				return false
			}

			prevRow[j] = tok
			prevCol = tok
		}
	}
	for a := 0; a < len(corr); a++ {
		if corr[a] == puyo.Empty {
			continue
		}
		for b := a + 1; b < len(corr); b++ {
			if corr[a] == corr[b] {
				return false
			}
		}
	}
	return true
}

// Templates, listed topmost row first, matching the on-disk GTR diagrams.
var (
	tmplGtrBase1 = []string{"AA____"}
	tmplGtrBase2 = []string{"BB____", "AA____"}
	tmplGtrBase3 = []string{"B_____", "BB____", "AA____"}
	tmplGtrBase4 = []string{"BBA___", "AA____"}
	tmplGtrBase5 = []string{"B_____", "A_____"}
	tmplGtrBase6 = []string{"B_____", "AAC___"}
	tmplGtrBase7 = []string{"__A___", "AAB___"}
	tmplGtrBase8 = []string{"BA____", "BB____", "AA____"}

	tmplGtr1 = []string{"CAB___", "CCAB__", "AABB__"}
	tmplGtr2 = []string{"CAB___", "CCABB_", "AAB___"}
	tmplGtr3 = []string{"CAB___", "CCABBB", "AAB___"}
	tmplGtr4 = []string{"CAB___", "CCABB_", "AAB_B_"}
	tmplGtr5 = []string{"CAB___", "CCABB_", "AA_B__"}
	tmplGtr6 = []string{"CAB___", "CCABBB", "AA____"}

	tmplGtrTail11 = []string{"_ABC__", "__ABCC", "AABBC_"}
	tmplGtrTail12 = []string{"_ABC__", "__ABC_", "AABBCC"}
	tmplGtrTail13 = []string{"___C__", "_ABC__", "__ABC_", "AABBC_"}
	tmplGtrTail21 = []string{"_AB_C_", "__ABBC", "AABCC_"}
	tmplGtrTail22 = []string{"_AB_C_", "__ABB_", "AABCCC"}
	tmplGtrTail23 = []string{"_AB_CC", "__ABBC", "AABCC_"}
	tmplGtrTail24 = []string{"_ABCC_", "__ABBC", "AAB__C"}
	tmplGtrTail25 = []string{"____C_", "_ABCC_", "__ABBC", "AAB__C"}
	tmplGtrTail26 = []string{"_AB_C_", "__ABBC", "AAB_CC"}
	tmplGtrTail27 = []string{"_ABCC_", "__ABBC", "AAB_CC"}
	tmplGtrTail31 = []string{"_AB_C_", "__ABBB", "AABCCC"}
	tmplGtrTail32 = []string{"_AB__C", "__ABBB", "AABCCC"}
	tmplGtrTail33 = []string{"_AB_CC", "__ABBB", "AABCCC"}
	tmplGtrTail34 = []string{"_AB_CC", "__ABBB", "AABCC_"}
	tmplGtrTail41 = []string{"_AB_C_", "__ABBC", "AABCBC"}
	tmplGtrTail51 = []string{"_AB_C_", "__ABBC", "AA_BCC"}
	tmplGtrTail52 = []string{"_ABC__", "__ABB_", "AACBCC"}
	tmplGtrTail61 = []string{"_AB_C_", "__ABBB", "AA_CCC"}
	tmplGtrTail62 = []string{"_AB__C", "__ABBB", "AA_CCC"}
	tmplGtrTail63 = []string{"_AB_CC", "__ABBB", "AA_CCC"}

	tmplGtrHead1 = []string{"CCC___", "BA____", "BBA___", "AA____"}
	tmplGtrHead2 = []string{"DDD___", "CCC___", "BA____", "BBA___", "AA____"}
	tmplGtrHead3 = []string{"CDD___", "CCD___", "BA____", "BBA___", "AA____"}
	tmplGtrHead4 = []string{"CCD___", "CDD___", "BA____", "BBA___", "AA____"}
	tmplGtrHead5 = []string{"CDD___", "CCD___", "EEE___", "BA____", "BBA___", "AA____"}
	tmplGtrHead6 = []string{"CCD___", "CDD___", "EEE___", "BA____", "BBA___", "AA____"}
)

func GtrBase1(f *puyo.Field) bool { return match(f, tmplGtrBase1) }
func GtrBase2(f *puyo.Field) bool { return match(f, tmplGtrBase2) }
func GtrBase3(f *puyo.Field) bool { return match(f, tmplGtrBase3) }
func GtrBase4(f *puyo.Field) bool { return match(f, tmplGtrBase4) }
func GtrBase5(f *puyo.Field) bool { return match(f, tmplGtrBase5) }
func GtrBase6(f *puyo.Field) bool { return match(f, tmplGtrBase6) }
func GtrBase7(f *puyo.Field) bool { return match(f, tmplGtrBase7) }

// GtrBase8 is kept for completeness (the original template set defines it)
// but no Weights field consumes it: the evaluator's pattern sum only wires
// gtr_base_1..7.
func GtrBase8(f *puyo.Field) bool { return match(f, tmplGtrBase8) }

func Gtr1(f *puyo.Field) bool { return match(f, tmplGtr1) }
func Gtr2(f *puyo.Field) bool { return match(f, tmplGtr2) }
func Gtr3(f *puyo.Field) bool { return match(f, tmplGtr3) }
func Gtr4(f *puyo.Field) bool { return match(f, tmplGtr4) }
func Gtr5(f *puyo.Field) bool { return match(f, tmplGtr5) }
func Gtr6(f *puyo.Field) bool { return match(f, tmplGtr6) }

func GtrTail11(f *puyo.Field) bool { return match(f, tmplGtrTail11) }
func GtrTail12(f *puyo.Field) bool { return match(f, tmplGtrTail12) }
func GtrTail13(f *puyo.Field) bool { return match(f, tmplGtrTail13) }
func GtrTail21(f *puyo.Field) bool { return match(f, tmplGtrTail21) }
func GtrTail22(f *puyo.Field) bool { return match(f, tmplGtrTail22) }
func GtrTail23(f *puyo.Field) bool { return match(f, tmplGtrTail23) }
func GtrTail24(f *puyo.Field) bool { return match(f, tmplGtrTail24) }
func GtrTail25(f *puyo.Field) bool { return match(f, tmplGtrTail25) }
func GtrTail26(f *puyo.Field) bool { return match(f, tmplGtrTail26) }
func GtrTail27(f *puyo.Field) bool { return match(f, tmplGtrTail27) }
func GtrTail31(f *puyo.Field) bool { return match(f, tmplGtrTail31) }
func GtrTail32(f *puyo.Field) bool { return match(f, tmplGtrTail32) }
func GtrTail33(f *puyo.Field) bool { return match(f, tmplGtrTail33) }
func GtrTail34(f *puyo.Field) bool { return match(f, tmplGtrTail34) }
func GtrTail41(f *puyo.Field) bool { return match(f, tmplGtrTail41) }
func GtrTail51(f *puyo.Field) bool { return match(f, tmplGtrTail51) }
func GtrTail52(f *puyo.Field) bool { return match(f, tmplGtrTail52) }
func GtrTail61(f *puyo.Field) bool { return match(f, tmplGtrTail61) }
func GtrTail62(f *puyo.Field) bool { return match(f, tmplGtrTail62) }
func GtrTail63(f *puyo.Field) bool { return match(f, tmplGtrTail63) }

func GtrHead1(f *puyo.Field) bool { return match(f, tmplGtrHead1) }
func GtrHead2(f *puyo.Field) bool { return match(f, tmplGtrHead2) }
func GtrHead3(f *puyo.Field) bool { return match(f, tmplGtrHead3) }
func GtrHead4(f *puyo.Field) bool { return match(f, tmplGtrHead4) }
func GtrHead5(f *puyo.Field) bool { return match(f, tmplGtrHead5) }
func GtrHead6(f *puyo.Field) bool { return match(f, tmplGtrHead6) }
