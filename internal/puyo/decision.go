package puyo

// StartColumn is the column the falling piece's axis puyo appears in before
// any horizontal movement.
const StartColumn = 3

// Decision is a placement: move the axis puyo to column AxisX and rotate to
// Rot before dropping. Rot follows the usual four-puyo rotation states:
//
//	0: child directly above the axis
//	1: child to the right of the axis (AxisX+1)
//	2: child directly below the axis
//	3: child to the left of the axis (AxisX-1)
type Decision struct {
	AxisX int
	Rot   int
}

// NewDecision constructs a Decision.
func NewDecision(axisX, rot int) Decision {
	return Decision{AxisX: axisX, Rot: rot}
}

// ChildX returns the column the child puyo ends up in.
func (d Decision) ChildX() int {
	switch d.Rot {
	case 1:
		return d.AxisX + 1
	case 3:
		return d.AxisX - 1
	default:
		return d.AxisX
	}
}

// valid reports whether the decision keeps both cells in bounds.
func (d Decision) valid() bool {
	if d.AxisX < 1 || d.AxisX > Width {
		return false
	}
	cx := d.ChildX()
	return cx >= 1 && cx <= Width
}

var allValidDecisions []Decision
var allValidDecisionsForRep []Decision

func init() {
	for x := 1; x <= Width; x++ {
		for rot := 0; rot < 4; rot++ {
			d := Decision{AxisX: x, Rot: rot}
			if d.valid() {
				allValidDecisions = append(allValidDecisions, d)
			}
		}
	}
	// Deduped set for a monochrome (axis colour == child colour) kumipuyo:
	// vertical rot 0/2 collapse to one placement per column, and horizontal
	// rot 1 (x, x+1) / rot 3 (x+1, x) collapse to one placement per adjacent
	// pair. 6 vertical + 5 horizontal = 11, matching spec.md §3.
	for x := 1; x <= Width; x++ {
		allValidDecisionsForRep = append(allValidDecisionsForRep, Decision{AxisX: x, Rot: 0})
	}
	for x := 1; x < Width; x++ {
		allValidDecisionsForRep = append(allValidDecisionsForRep, Decision{AxisX: x, Rot: 1})
	}
}

// AllValidDecisions returns the full 22-entry decision set, in a fixed
// deterministic order used for enumeration tie-breaks.
func AllValidDecisions() []Decision {
	return allValidDecisions
}

// AllValidDecisionsForRep returns the 11-entry reduced decision set used
// when the kumipuyo's axis and child share a colour.
func AllValidDecisionsForRep() []Decision {
	return allValidDecisionsForRep
}
