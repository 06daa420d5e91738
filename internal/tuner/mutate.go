package tuner

import (
	"math/rand"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/puyo"
)

// geneMin/geneMax bound every tunable coefficient.
const (
	geneMin = -999
	geneMax = 999
)

func randGene(rng *rand.Rand) int32 {
	return int32(rng.Intn(geneMax-geneMin+1) + geneMin)
}

// Generate produces a fresh, fully-randomized weight vector labelled name.
func Generate(name string, rng *rand.Rand) evaluator.Weights {
	w := evaluator.Weights{
		Valley:              randGene(rng),
		Ridge:               randGene(rng),
		IdealHeightDiff:     randGene(rng),
		IdealHeightDiffSq:   randGene(rng),
		IdealHeightCoef1:    randGene(rng),
		IdealHeightCoef2:    randGene(rng),
		IdealHeightCoef3:    randGene(rng),
		IdealHeightCoef4:    randGene(rng),
		ThirdColumnHeight:   randGene(rng),
		ThirdColumnHeightSq: randGene(rng),
		UnreachableSpace:    randGene(rng),

		Connectivity2: randGene(rng),
		Connectivity3: randGene(rng),

		Chain:      randGene(rng),
		ChainSq:    randGene(rng),
		ChainScore: randGene(rng),
		ChainFrame: randGene(rng),

		PotentialMainChain:               randGene(rng),
		PotentialMainChainSq:             randGene(rng),
		PotentialMainChainFrame:          randGene(rng),
		PotentialMainChainIgnitionHeight: randGene(rng),
		PotentialSubChain:                randGene(rng),
		PotentialSubChainSq:              randGene(rng),
		PotentialSubChainFrame:           randGene(rng),
		PotentialSubChainIgnitionHeight:  randGene(rng),

		Chigiri:   randGene(rng),
		MoveFrame: randGene(rng),

		GtrBase1: randGene(rng), GtrBase2: randGene(rng), GtrBase3: randGene(rng), GtrBase4: randGene(rng),
		GtrBase5: randGene(rng), GtrBase6: randGene(rng), GtrBase7: randGene(rng),
		Gtr1: randGene(rng), Gtr2: randGene(rng), Gtr3: randGene(rng),
		Gtr4: randGene(rng), Gtr5: randGene(rng), Gtr6: randGene(rng),
		GtrTail11: randGene(rng), GtrTail12: randGene(rng), GtrTail13: randGene(rng),
		GtrTail21: randGene(rng), GtrTail22: randGene(rng), GtrTail23: randGene(rng),
		GtrTail24: randGene(rng), GtrTail25: randGene(rng), GtrTail26: randGene(rng), GtrTail27: randGene(rng),
		GtrTail31: randGene(rng), GtrTail32: randGene(rng), GtrTail33: randGene(rng), GtrTail34: randGene(rng),
		GtrTail41: randGene(rng),
		GtrTail51: randGene(rng), GtrTail52: randGene(rng),
		GtrTail61: randGene(rng), GtrTail62: randGene(rng), GtrTail63: randGene(rng),
		GtrHead1: randGene(rng), GtrHead2: randGene(rng), GtrHead3: randGene(rng),
		GtrHead4: randGene(rng), GtrHead5: randGene(rng), GtrHead6: randGene(rng),
	}
	for i := 0; i < puyo.Width; i++ {
		w.TopRow[i] = randGene(rng)
	}
	w.SubName = &name
	return w
}

// Crossover breeds a child weight vector labelled name from two parents:
// each gene independently takes parent1's value (42%), parent2's value
// (42%), their average (15%), or a fresh random value (1%), then a small
// uniform jitter in [-10, 10] is added and the result clamped back to
// [-999, 999].
func Crossover(p1, p2 evaluator.Weights, name string, rng *rand.Rand) evaluator.Weights {
	g := func(v1, v2 int32) int32 { return crossoverGene(v1, v2, rng) }

	w := evaluator.Weights{
		Valley:              g(p1.Valley, p2.Valley),
		Ridge:               g(p1.Ridge, p2.Ridge),
		IdealHeightDiff:     g(p1.IdealHeightDiff, p2.IdealHeightDiff),
		IdealHeightDiffSq:   g(p1.IdealHeightDiffSq, p2.IdealHeightDiffSq),
		IdealHeightCoef1:    g(p1.IdealHeightCoef1, p2.IdealHeightCoef1),
		IdealHeightCoef2:    g(p1.IdealHeightCoef2, p2.IdealHeightCoef2),
		IdealHeightCoef3:    g(p1.IdealHeightCoef3, p2.IdealHeightCoef3),
		IdealHeightCoef4:    g(p1.IdealHeightCoef4, p2.IdealHeightCoef4),
		ThirdColumnHeight:   g(p1.ThirdColumnHeight, p2.ThirdColumnHeight),
		ThirdColumnHeightSq: g(p1.ThirdColumnHeightSq, p2.ThirdColumnHeightSq),
		UnreachableSpace:    g(p1.UnreachableSpace, p2.UnreachableSpace),

		Connectivity2: g(p1.Connectivity2, p2.Connectivity2),
		Connectivity3: g(p1.Connectivity3, p2.Connectivity3),

		Chain:      g(p1.Chain, p2.Chain),
		ChainSq:    g(p1.ChainSq, p2.ChainSq),
		ChainScore: g(p1.ChainScore, p2.ChainScore),
		ChainFrame: g(p1.ChainFrame, p2.ChainFrame),

		PotentialMainChain:               g(p1.PotentialMainChain, p2.PotentialMainChain),
		PotentialMainChainSq:             g(p1.PotentialMainChainSq, p2.PotentialMainChainSq),
		PotentialMainChainFrame:          g(p1.PotentialMainChainFrame, p2.PotentialMainChainFrame),
		PotentialMainChainIgnitionHeight: g(p1.PotentialMainChainIgnitionHeight, p2.PotentialMainChainIgnitionHeight),
		PotentialSubChain:                g(p1.PotentialSubChain, p2.PotentialSubChain),
		PotentialSubChainSq:              g(p1.PotentialSubChainSq, p2.PotentialSubChainSq),
		PotentialSubChainFrame:           g(p1.PotentialSubChainFrame, p2.PotentialSubChainFrame),
		PotentialSubChainIgnitionHeight:  g(p1.PotentialSubChainIgnitionHeight, p2.PotentialSubChainIgnitionHeight),

		Chigiri:   g(p1.Chigiri, p2.Chigiri),
		MoveFrame: g(p1.MoveFrame, p2.MoveFrame),

		GtrBase1: g(p1.GtrBase1, p2.GtrBase1), GtrBase2: g(p1.GtrBase2, p2.GtrBase2),
		GtrBase3: g(p1.GtrBase3, p2.GtrBase3), GtrBase4: g(p1.GtrBase4, p2.GtrBase4),
		GtrBase5: g(p1.GtrBase5, p2.GtrBase5), GtrBase6: g(p1.GtrBase6, p2.GtrBase6),
		GtrBase7: g(p1.GtrBase7, p2.GtrBase7),
		Gtr1:     g(p1.Gtr1, p2.Gtr1), Gtr2: g(p1.Gtr2, p2.Gtr2), Gtr3: g(p1.Gtr3, p2.Gtr3),
		Gtr4: g(p1.Gtr4, p2.Gtr4), Gtr5: g(p1.Gtr5, p2.Gtr5), Gtr6: g(p1.Gtr6, p2.Gtr6),
		GtrTail11: g(p1.GtrTail11, p2.GtrTail11), GtrTail12: g(p1.GtrTail12, p2.GtrTail12), GtrTail13: g(p1.GtrTail13, p2.GtrTail13),
		GtrTail21: g(p1.GtrTail21, p2.GtrTail21), GtrTail22: g(p1.GtrTail22, p2.GtrTail22), GtrTail23: g(p1.GtrTail23, p2.GtrTail23),
		GtrTail24: g(p1.GtrTail24, p2.GtrTail24), GtrTail25: g(p1.GtrTail25, p2.GtrTail25),
		GtrTail26: g(p1.GtrTail26, p2.GtrTail26), GtrTail27: g(p1.GtrTail27, p2.GtrTail27),
		GtrTail31: g(p1.GtrTail31, p2.GtrTail31), GtrTail32: g(p1.GtrTail32, p2.GtrTail32),
		GtrTail33: g(p1.GtrTail33, p2.GtrTail33), GtrTail34: g(p1.GtrTail34, p2.GtrTail34),
		GtrTail41: g(p1.GtrTail41, p2.GtrTail41),
		GtrTail51: g(p1.GtrTail51, p2.GtrTail51), GtrTail52: g(p1.GtrTail52, p2.GtrTail52),
		GtrTail61: g(p1.GtrTail61, p2.GtrTail61), GtrTail62: g(p1.GtrTail62, p2.GtrTail62), GtrTail63: g(p1.GtrTail63, p2.GtrTail63),
		GtrHead1: g(p1.GtrHead1, p2.GtrHead1), GtrHead2: g(p1.GtrHead2, p2.GtrHead2),
		GtrHead3: g(p1.GtrHead3, p2.GtrHead3), GtrHead4: g(p1.GtrHead4, p2.GtrHead4),
		GtrHead5: g(p1.GtrHead5, p2.GtrHead5), GtrHead6: g(p1.GtrHead6, p2.GtrHead6),
	}
	for i := 0; i < puyo.Width; i++ {
		w.TopRow[i] = g(p1.TopRow[i], p2.TopRow[i])
	}
	w.SubName = &name
	return w
}

// crossoverGene picks parent1 (42%), parent2 (42%), their average (15%), or
// a fresh random gene (1%), jitters by [-10, 10], and clamps to
// [geneMin, geneMax].
func crossoverGene(v1, v2 int32, rng *rand.Rand) int32 {
	var v int32
	switch roll := rng.Intn(100); {
	case roll <= 41:
		v = v1
	case roll <= 83:
		v = v2
	case roll <= 98:
		v = (v1 + v2) / 2
	default:
		v = randGene(rng)
	}
	v += int32(rng.Intn(21) - 10)

	switch {
	case v < geneMin:
		return geneMin
	case v > geneMax:
		return geneMax
	default:
		return v
	}
}
