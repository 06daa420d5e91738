// Package evaluator scores a puyo.Plan with a weighted linear combination of
// shape, connectivity, realized-chain, potential-chain, frame and
// pattern-match terms. The weight vector is the GA tuner's genotype.
package evaluator

import "github.com/sorapuyo/ghoti/internal/puyo"

// Weights is the full set of named coefficients the evaluator sums over.
// Field names are stable across versions so GA checkpoints (population.json,
// best.json) round-trip regardless of which fields a given run actually
// tunes.
type Weights struct {
	// Shape
	Valley             int32
	Ridge              int32
	IdealHeightDiff    int32
	IdealHeightDiffSq  int32
	IdealHeightCoef1   int32
	IdealHeightCoef2   int32
	IdealHeightCoef3   int32
	IdealHeightCoef4   int32
	ThirdColumnHeight  int32
	ThirdColumnHeightSq int32
	UnreachableSpace   int32
	TopRow             [puyo.Width]int32

	// Connectivity
	Connectivity2 int32
	Connectivity3 int32

	// Realized chain
	Chain      int32
	ChainSq    int32
	ChainScore int32
	ChainFrame int32

	// Potential chain
	PotentialMainChain            int32
	PotentialMainChainSq          int32
	PotentialMainChainFrame       int32
	PotentialMainChainIgnitionHeight int32
	PotentialSubChain             int32
	PotentialSubChainSq           int32
	PotentialSubChainFrame        int32
	PotentialSubChainIgnitionHeight int32

	// Frame
	Chigiri   int32
	MoveFrame int32

	// Pattern matching
	GtrBase1 int32
	GtrBase2 int32
	GtrBase3 int32
	GtrBase4 int32
	GtrBase5 int32
	GtrBase6 int32
	GtrBase7 int32
	Gtr1     int32
	Gtr2     int32
	Gtr3     int32
	Gtr4     int32
	Gtr5     int32
	Gtr6     int32
	GtrTail11 int32
	GtrTail12 int32
	GtrTail13 int32
	GtrTail21 int32
	GtrTail22 int32
	GtrTail23 int32
	GtrTail24 int32
	GtrTail25 int32
	GtrTail26 int32
	GtrTail27 int32
	GtrTail31 int32
	GtrTail32 int32
	GtrTail33 int32
	GtrTail34 int32
	GtrTail41 int32
	GtrTail51 int32
	GtrTail52 int32
	GtrTail61 int32
	GtrTail62 int32
	GtrTail63 int32
	GtrHead1 int32
	GtrHead2 int32
	GtrHead3 int32
	GtrHead4 int32
	GtrHead5 int32
	GtrHead6 int32

	// SubName is an optional tuning-lineage label (e.g. "Gen 42 #03");
	// nil for the untouched default.
	SubName *string
}

// Default returns the baseline hand-tuned weight vector.
func Default() Weights {
	return Weights{
		Valley:             -352,
		Ridge:              -84,
		IdealHeightDiff:    307,
		IdealHeightDiffSq:  -681,
		IdealHeightCoef1:   124,
		IdealHeightCoef2:   590,
		IdealHeightCoef3:   310,
		IdealHeightCoef4:   754,
		ThirdColumnHeight:  356,
		ThirdColumnHeightSq: -19,
		UnreachableSpace:   -339,
		TopRow:             [puyo.Width]int32{-21, -237, 154, 391, 506, -74},

		Connectivity2: 52,
		Connectivity3: 345,

		Chain:      201,
		ChainSq:    -96,
		ChainScore: 538,
		ChainFrame: 18,

		PotentialMainChain:               311,
		PotentialMainChainSq:             145,
		PotentialMainChainFrame:          99,
		PotentialMainChainIgnitionHeight: 658,
		PotentialSubChain:                350,
		PotentialSubChainSq:              -154,
		PotentialSubChainFrame:           -22,
		PotentialSubChainIgnitionHeight:  466,

		Chigiri:   -29,
		MoveFrame: -559,

		GtrBase1: 20, GtrBase2: 20, GtrBase3: 20, GtrBase4: 20,
		GtrBase5: 20, GtrBase6: 20, GtrBase7: 20,
		Gtr1: 50, Gtr2: 50, Gtr3: 50, Gtr4: 50, Gtr5: 50, Gtr6: 50,
		GtrTail11: 30, GtrTail12: 30, GtrTail13: 30,
		GtrTail21: 30, GtrTail22: 30, GtrTail23: 30, GtrTail24: 30, GtrTail25: 30, GtrTail26: 30, GtrTail27: 30,
		GtrTail31: 30, GtrTail32: 30, GtrTail33: 30, GtrTail34: 30,
		GtrTail41: 30,
		GtrTail51: 30, GtrTail52: 30,
		GtrTail61: 30, GtrTail62: 30, GtrTail63: 30,
		GtrHead1: 30, GtrHead2: 30, GtrHead3: 30, GtrHead4: 30, GtrHead5: 30, GtrHead6: 30,

		SubName: nil,
	}
}

// Name returns a human-readable label, "Evaluator <SubName>", falling back
// to "Evaluator Default" when SubName is unset.
func (w Weights) Name() string {
	if w.SubName != nil {
		return "Evaluator " + *w.SubName
	}
	return "Evaluator Default"
}
