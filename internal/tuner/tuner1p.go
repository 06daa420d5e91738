package tuner

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sorapuyo/ghoti/internal/evaluator"
	"github.com/sorapuyo/ghoti/internal/match"
)

// Options1P configures the solo-play fitness variant: each member plays
// SimulateCount independent toko-puyo runs and is scored by the average of
// a move-efficiency-adjusted score (see fitness1P).
type Options1P struct {
	PopulationSize     int
	EliteSize          int
	Parallel           int
	VisibleTumos       int
	MaxTumos           int
	SimulateCount      int
	RequiredChainScore int
}

// fitness1P scores one simulate_1p run the way calc_score does: the score
// raised to the 1.1 power, normalized by how many decisions it took — so
// that reaching a given score in fewer moves ranks higher.
func fitness1P(result match.Result1P) int {
	if result.TumosPlayed == 0 {
		return 0
	}
	return int(math.Pow(float64(result.Score), 1.1)) / result.TumosPlayed
}

// RunGeneration1P is the solo-play counterpart to RunGeneration: every
// member is independently fitness-scored rather than matched pairwise, then
// ranked, elited, and bred the same way.
func RunGeneration1P(ctx context.Context, pop Population, opts Options1P, rng *rand.Rand) (Population, error) {
	if opts.EliteSize >= opts.PopulationSize {
		return Population{}, fmt.Errorf("tuner: elite size %d must be less than population size %d", opts.EliteSize, opts.PopulationSize)
	}

	margin := pop.Generation / opts.SimulateCount * opts.SimulateCount

	scores := make([]int, opts.PopulationSize)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := 0; i < opts.PopulationSize; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			ai := match.NewBeamSearchAI(pop.Members[i])
			total := 0
			for run := 0; run < opts.SimulateCount; run++ {
				seq := HaipuyoSequence(margin + run)
				var gate *int
				if opts.RequiredChainScore > 0 {
					g := opts.RequiredChainScore
					gate = &g
				}
				result := match.Run1P(ai, seq, opts.VisibleTumos, opts.MaxTumos, gate)
				total += fitness1P(result)
			}

			mu.Lock()
			scores[i] = total / opts.SimulateCount
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Population{}, err
	}

	ranked := make([]int, opts.PopulationSize)
	for i := range ranked {
		ranked[i] = i
	}
	sort.Slice(ranked, func(a, b int) bool { return scores[ranked[a]] > scores[ranked[b]] })

	log.Printf("[tuner-1p] gen=%d margin=%d top=%q score=%d", pop.Generation, margin, pop.Members[ranked[0]].Name(), scores[ranked[0]])

	return buildNextGeneration(pop, ranked, scores, opts.EliteSize, rng), nil
}

// buildNextGeneration is shared by both fitness variants: carry the ranked
// order forward, then fill the non-elite slots with weighted crossover
// children (selection weight = score² + 1, per crossover_gene's sibling
// WeightedIndex::new(v*v+1) in both ga_tuning_1p.rs and ga_tuning_2p.rs).
func buildNextGeneration(pop Population, ranked []int, scores []int, eliteSize int, rng *rand.Rand) Population {
	next := Population{Generation: pop.Generation + 1, Members: make([]evaluator.Weights, len(ranked))}
	for i, idx := range ranked {
		next.Members[i] = pop.Members[idx]
	}
	for i := eliteSize; i < len(ranked); i++ {
		p1 := weightedPick(ranked, scores, rng)
		p2 := p1
		for p2 == p1 {
			p2 = weightedPick(ranked, scores, rng)
		}
		name := fmt.Sprintf("Gen %d #%02d", next.Generation, i-eliteSize)
		next.Members[i] = Crossover(pop.Members[p1], pop.Members[p2], name, rng)
	}
	return next
}
