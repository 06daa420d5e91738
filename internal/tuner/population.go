// Package tuner runs the genetic-algorithm co-evolution loop: a population
// of evaluator.Weights vectors, ranked each generation by pairwise 2P match
// wins, with elitism and weighted crossover producing the next generation.
package tuner

import (
	"fmt"
	"math/rand"

	"github.com/sorapuyo/ghoti/internal/evaluator"
)

// Population is one generation's pool of weight vectors.
type Population struct {
	Generation int
	Members    []evaluator.Weights
}

// NewPopulation seeds generation 0: member 0 is the hand-tuned baseline
// (kept so every run can measure itself against it), the rest are randomly
// generated, matching new_population's "always keep one Evaluator::default"
// convention.
func NewPopulation(size int, rng *rand.Rand) Population {
	members := make([]evaluator.Weights, 0, size)
	members = append(members, evaluator.Default())
	for i := 0; i < size-1; i++ {
		name := fmt.Sprintf("Gen 0 #%02d", i)
		members = append(members, Generate(name, rng))
	}
	return Population{Generation: 0, Members: members}
}
